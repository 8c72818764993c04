package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tattoo-studio/internal/domains/appointment/model"
	"tattoo-studio/internal/domains/appointment/service"
	"tattoo-studio/internal/shared/middleware"
	"tattoo-studio/internal/shared/response"
	"tattoo-studio/internal/shared/utils"
)

type AppointmentHandler struct {
	service service.ServiceInterface
}

func NewAppointmentHandler(service service.ServiceInterface) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// List xử lý GET /appointments/?filter=&page=
func (h *AppointmentHandler) List(c *gin.Context) {
	clientID, ok := h.caller(c)
	if !ok {
		return
	}

	list, page, err := h.service.List(c.Request.Context(), clientID, c.Query("filter"), c.Query("page"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, list, page.Meta())
}

// BookForm xử lý GET /appointments/book/
func (h *AppointmentHandler) BookForm(c *gin.Context) {
	clientID, ok := h.caller(c)
	if !ok {
		return
	}

	opts, err := h.service.BookingOptions(c.Request.Context(), clientID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", opts)
}

// Book xử lý POST /appointments/book/
func (h *AppointmentHandler) Book(c *gin.Context) {
	// Step 1: Get caller
	clientID, ok := h.caller(c)
	if !ok {
		return
	}

	// Step 2: Bind body
	var form model.BookForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	req, err := form.ToBookRequest()
	if err != nil {
		h.handleError(c, err)
		return
	}

	// Step 3: Call service
	appt, err := h.service.Book(c.Request.Context(), clientID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", "/appointments/")
	response.Success(c, http.StatusCreated, model.MsgBooked, appt)
}

// CancelConfirm xử lý GET /appointments/:id/cancel/
func (h *AppointmentHandler) CancelConfirm(c *gin.Context) {
	clientID, id, ok := h.callerAndID(c)
	if !ok {
		return
	}

	appt, err := h.service.GetCancellable(c.Request.Context(), clientID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", appt)
}

// Cancel xử lý POST /appointments/:id/cancel/
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	clientID, id, ok := h.callerAndID(c)
	if !ok {
		return
	}

	appt, err := h.service.Cancel(c.Request.Context(), clientID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.MsgCancelled, appt)
}

// Reschedule xử lý GET /appointments/:id/reschedule/
func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	clientID, id, ok := h.callerAndID(c)
	if !ok {
		return
	}

	result, err := h.service.Reschedule(c.Request.Context(), clientID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", result.Redirect)
	response.Success(c, http.StatusOK, result.Message, result)
}

func (h *AppointmentHandler) caller(c *gin.Context) (uuid.UUID, bool) {
	clientID, err := middleware.CurrentUserID(c)
	if err != nil {
		response.Unauthorized(c, "Authentication required")
		return uuid.Nil, false
	}
	return clientID, true
}

func (h *AppointmentHandler) callerAndID(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	clientID, ok := h.caller(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c)
		return uuid.Nil, uuid.Nil, false
	}
	return clientID, id, true
}

func (h *AppointmentHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.ValidationFailed(c, verrs)
	case errors.Is(err, model.ErrAppointmentNotFound), errors.Is(err, utils.ErrInvalidPage):
		response.NotFound(c)
	default:
		log.Error().Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("route", c.FullPath()).
			Msg("appointment handler error")
		response.InternalServerError(c)
	}
}
