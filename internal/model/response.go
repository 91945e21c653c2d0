package model

type ErrorResponse struct {
	Message string `json:"message"`
}

type StatusResponse struct {
	Message string `json:"message"`
}
