package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/yaboywf/bb-website-v3/internal/db"
	"github.com/yaboywf/bb-website-v3/internal/model"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrAccountNotFound      = errors.New("account not found")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrProtectedAppointment = errors.New("appointment cannot be deleted")
)

// Core appointments that must always exist; delete refuses them
// regardless of the caller's role. Matched case-insensitively.
var protectedAppointments = map[string]struct{}{
	"csm":        {},
	"captain":    {},
	"dy csm":     {},
	"sec 4/5 ps": {},
	"sec 3 ps":   {},
	"sec 2 ps":   {},
	"sec 1 ps":   {},
}

type AppointmentRepo interface {
	ListAppointments(ctx context.Context) ([]model.Appointment, error)
	GetAppointmentByID(ctx context.Context, id string) (*model.Appointment, error)
	InsertAppointment(ctx context.Context, name, accountType, accountID string) (*model.Appointment, error)
	SetAppointmentHolder(ctx context.Context, id, accountID string) error
	DeleteAppointment(ctx context.Context, id string) error
}

type UserRepo interface {
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	SetCurrentAppointment(ctx context.Context, id, appointmentName string) error
}

type AppointmentService struct {
	appointments AppointmentRepo
	users        UserRepo
}

func NewAppointmentService(appointments AppointmentRepo, users UserRepo) *AppointmentService {
	return &AppointmentService{appointments: appointments, users: users}
}

// List returns every appointment, each enriched with its holder's
// display name. An appointment whose holder no longer exists is
// returned unenriched instead of failing the whole list.
func (s *AppointmentService) List(ctx context.Context) ([]model.AppointmentView, error) {
	appointments, err := s.appointments.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]model.AppointmentView, 0, len(appointments))
	for _, a := range appointments {
		view := model.AppointmentView{
			ID:          a.ID,
			Name:        a.Name,
			AccountType: a.AccountType,
		}
		if a.AccountID != "" {
			user, err := s.users.GetUserByID(ctx, a.AccountID)
			switch {
			case err == nil:
				view.AccountID = user.ID
				view.AccountName = user.Name
			case db.IsNoRows(err):
				log.Printf("Appointment %s references missing account %s", a.ID, a.AccountID)
				view.AccountID = a.AccountID
			default:
				return nil, err
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// Create inserts a new appointment and points the target account's
// denormalized current_appointment field at it.
func (s *AppointmentService) Create(ctx context.Context, callerID string, req model.CreateAppointmentRequest) error {
	if err := s.requireOfficer(ctx, callerID); err != nil {
		return err
	}
	if req.AppointmentName == "" || req.AccountType == "" || req.AccountID == "" {
		return ErrInvalidInput
	}

	if _, err := s.appointments.InsertAppointment(ctx, req.AppointmentName, req.AccountType, req.AccountID); err != nil {
		return err
	}
	return s.users.SetCurrentAppointment(ctx, req.AccountID, req.AppointmentName)
}

// Reassign moves an appointment to a different account. The previous
// holder's denormalized field is left as-is.
func (s *AppointmentService) Reassign(ctx context.Context, callerID string, req model.UpdateAppointmentRequest) error {
	if err := s.requireOfficer(ctx, callerID); err != nil {
		return err
	}
	if req.AccountID == "" || req.AppointmentID == "" {
		return ErrInvalidInput
	}

	if _, err := s.appointments.GetAppointmentByID(ctx, req.AppointmentID); err != nil {
		if db.IsNoRows(err) {
			return ErrAppointmentNotFound
		}
		return err
	}
	return s.appointments.SetAppointmentHolder(ctx, req.AppointmentID, req.AccountID)
}

// Delete removes an appointment unless its name is protected. The
// protected check runs before any write.
func (s *AppointmentService) Delete(ctx context.Context, callerID, appointmentID string) error {
	if err := s.requireOfficer(ctx, callerID); err != nil {
		return err
	}
	if appointmentID == "" {
		return ErrInvalidInput
	}

	appointment, err := s.appointments.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		if db.IsNoRows(err) {
			return ErrAppointmentNotFound
		}
		return err
	}

	if _, protected := protectedAppointments[strings.ToLower(appointment.Name)]; protected {
		return ErrProtectedAppointment
	}
	return s.appointments.DeleteAppointment(ctx, appointmentID)
}

// requireOfficer resolves the caller's account and gates the mutating
// operations on the Officer/Admin roles.
func (s *AppointmentService) requireOfficer(ctx context.Context, callerID string) error {
	user, err := s.users.GetUserByID(ctx, callerID)
	if err != nil {
		if db.IsNoRows(err) {
			return ErrAccountNotFound
		}
		return err
	}
	return Authorize(user.Role, model.RoleOfficer, model.RoleAdmin)
}
