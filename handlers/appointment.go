// File: handlers/appointment.go
package handlers

import (
	"net/http"

	"praxia/models"
	"praxia/services/appointment"
	"praxia/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes the slot subsystem over HTTP.
type AppointmentHandler struct {
	Service appointment.AppointmentService
}

// NewAppointmentHandler constructs an AppointmentHandler.
func NewAppointmentHandler(svc appointment.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// statusForAppointmentError maps the service error taxonomy to HTTP statuses.
func statusForAppointmentError(err error) int {
	switch appointment.CodeOf(err) {
	case appointment.CodeUnauthenticated:
		return http.StatusUnauthorized
	case appointment.CodeUnauthorized:
		return http.StatusForbidden
	case appointment.CodeInvalidInput, appointment.CodeSlotNotAvailable:
		return http.StatusBadRequest
	case appointment.CodeActorNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ListSlotsHandler handles GET /appointments/slots. Optional from/to query
// parameters narrow the result to a date range.
func (h *AppointmentHandler) ListSlotsHandler(c *gin.Context) {
	slots, err := h.Service.List(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(statusForAppointmentError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, slots)
}

// AvailabilityHandler handles GET /appointments/availability: the filtered
// view an ordinary actor may act on.
func (h *AppointmentHandler) AvailabilityHandler(c *gin.Context) {
	slots, err := h.Service.Availability(c.Request.Context())
	if err != nil {
		c.JSON(statusForAppointmentError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, slots)
}

// EnableSlotsHandler handles POST /appointments/enable.
func (h *AppointmentHandler) EnableSlotsHandler(c *gin.Context) {
	var req models.EnableSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	created, err := h.Service.Enable(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		utils.GetLogger().Warn("Slot enablement failed",
			zap.String("date", req.Date),
			zap.Error(err),
		)
		c.JSON(statusForAppointmentError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "createdSlots": created})
}

// ReserveSlotHandler handles POST /appointments/reserve.
func (h *AppointmentHandler) ReserveSlotHandler(c *gin.Context) {
	var req models.ReserveSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	slot, err := h.Service.Reserve(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		utils.GetLogger().Warn("Reservation failed",
			zap.String("date", req.Date),
			zap.String("timeSlot", req.TimeSlot),
			zap.Error(err),
		)
		c.JSON(statusForAppointmentError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "appointment": slot})
}

// BlockSlotHandler handles POST /appointments/block.
func (h *AppointmentHandler) BlockSlotHandler(c *gin.Context) {
	var req models.BlockSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	if err := h.Service.SetBlocked(c.Request.Context(), c.GetString("userID"), req); err != nil {
		c.JSON(statusForAppointmentError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DayOverviewHandler handles GET /appointments/overview/:date for the
// privileged occupancy view.
func (h *AppointmentHandler) DayOverviewHandler(c *gin.Context) {
	view, err := h.Service.DayOverview(c.Request.Context(), c.GetString("userID"), c.Param("date"))
	if err != nil {
		c.JSON(statusForAppointmentError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}
