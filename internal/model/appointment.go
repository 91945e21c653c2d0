package model

import "time"

type Appointment struct {
	ID          string
	Name        string
	AccountType string
	AccountID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AppointmentView is a list item enriched with the holder's display
// name. AccountName stays empty when the referenced account no longer
// exists.
type AppointmentView struct {
	ID          string `json:"id"`
	Name        string `json:"appointment_name"`
	AccountType string `json:"account_type"`
	AccountID   string `json:"account_id,omitempty"`
	AccountName string `json:"account_name,omitempty"`
}

type CreateAppointmentRequest struct {
	AppointmentName string `json:"appointment_name"`
	AccountType     string `json:"account_type"`
	AccountID       string `json:"account_id"`
}

type UpdateAppointmentRequest struct {
	AppointmentID string `json:"appointment_id"`
	AccountID     string `json:"account_id"`
}
