package appointment

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /api/appointments
// --------------------------------------------------
func (h *Handler) Book(c *gin.Context) {
	var req struct {
		DoctorID string `json:"doctorId"`
		Date     string `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.DoctorID == "" || req.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Please provide doctorId and date",
		})
		return
	}

	detail, err := h.service.Book(c.GetString("userID"), req.DoctorID, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid date format. Use ISO format (e.g., 2024-05-30T14:00:00Z)",
			})
		case errors.Is(err, ErrDoctorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Doctor not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": detail})
}

// --------------------------------------------------
// GET /api/appointments?doctorId=
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	details, err := h.service.List(c.GetString("userID"), c.Query("doctorId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(details),
		"data":    details,
	})
}

// --------------------------------------------------
// GET /api/appointments/:id
// --------------------------------------------------
func (h *Handler) GetByID(c *gin.Context) {
	detail, err := h.service.GetByID(c.GetString("userID"), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Appointment not found"})
		case errors.Is(err, ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Not authorized to access this appointment",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": detail})
}

// --------------------------------------------------
// PATCH /api/appointments/:id
// --------------------------------------------------
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid status. Must be one of: pending, confirmed, cancelled",
		})
		return
	}

	detail, err := h.service.UpdateStatus(c.GetString("userID"), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid status. Must be one of: pending, confirmed, cancelled",
			})
		case errors.Is(err, ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Appointment not found"})
		case errors.Is(err, ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Not authorized to update this appointment",
			})
		case errors.Is(err, ErrPastCancel):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Cannot cancel appointments that have already occurred",
			})
		case errors.Is(err, ErrWindowClosed):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": fmt.Sprintf(
					"Appointments must be cancelled at least %d hour(s) before the scheduled time",
					CancellationWindowHours(),
				),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": detail})
}
