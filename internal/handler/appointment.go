package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yaboywf/bb-website-v3/internal/model"
	"github.com/yaboywf/bb-website-v3/internal/service"
)

type AppointmentHandler struct {
	svc *service.AppointmentService
}

func NewAppointmentHandler(svc *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

// GetAppointments godoc
// @Summary List appointments
// @Description Every appointment, enriched with the holder's display name.
// @Tags appointments
// @Produce json
// @Success 200 {array} model.AppointmentView
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/get_appointments [get]
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	views, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeAppointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// CreateAppointment godoc
// @Summary Create an appointment
// @Description Creates an appointment bound to an account and updates that account's current appointment.
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body model.CreateAppointmentRequest true "Appointment name, account type and holder account id"
// @Success 201 {object} model.StatusResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/create_appointment [post]
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	claims := GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Message: "unauthorized"})
		return
	}

	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: "invalid input"})
		return
	}

	if err := h.svc.Create(c.Request.Context(), claims.AccountID, req); err != nil {
		writeAppointmentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.StatusResponse{Message: "appointment created"})
}

// UpdateAppointment godoc
// @Summary Reassign an appointment
// @Description Points an existing appointment at a different account.
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body model.UpdateAppointmentRequest true "Appointment id and new holder account id"
// @Success 200 {object} model.StatusResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/update_appointment [put]
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	claims := GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Message: "unauthorized"})
		return
	}

	var req model.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: "invalid input"})
		return
	}

	if err := h.svc.Reassign(c.Request.Context(), claims.AccountID, req); err != nil {
		writeAppointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Message: "appointment updated"})
}

// DeleteAppointment godoc
// @Summary Delete an appointment
// @Description Deletes the appointment with the given id. Core appointments (Captain, CSM, section PS slots) are refused.
// @Tags appointments
// @Produce json
// @Param id query string true "Appointment id"
// @Success 200 {object} model.StatusResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/delete_appointment [delete]
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	claims := GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Message: "unauthorized"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), claims.AccountID, c.Query("id")); err != nil {
		writeAppointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Message: "appointment deleted"})
}

func writeAppointmentError(c *gin.Context, err error) {
	switch err {
	case service.ErrInvalidInput, service.ErrMissingRole:
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: err.Error()})
	case service.ErrRoleNotAllowed, service.ErrProtectedAppointment:
		c.JSON(http.StatusForbidden, model.ErrorResponse{Message: err.Error()})
	case service.ErrAccountNotFound, service.ErrAppointmentNotFound:
		c.JSON(http.StatusNotFound, model.ErrorResponse{Message: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Message: "server error"})
	}
}
