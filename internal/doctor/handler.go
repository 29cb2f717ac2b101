package doctor

import (
	"errors"
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
// GET /api/doctors?name=&specialty=
// --------------------------------------------------
func (h *Handler) GetDoctors(c *gin.Context) {
	doctors, err := h.service.Search(c.Query("name"), c.Query("specialty"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(doctors),
		"data":    doctors,
	})
}

// --------------------------------------------------
// GET /api/doctors/:id
// --------------------------------------------------
func (h *Handler) GetDoctorByID(c *gin.Context) {
	doctor, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrDoctorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Doctor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": doctor})
}

// --------------------------------------------------
// POST /api/admin/doctors/reseed  (ADMIN only)
// --------------------------------------------------
func (h *Handler) Reseed(c *gin.Context) {
	if err := Reseed(h.service.repo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server error"})
		return
	}

	count, err := h.service.repo.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Doctor directory reseeded",
		"count":   count,
	})
}

// --------------------------------------------------
// GET /api/doctors/specialty/:specialty
// --------------------------------------------------
func (h *Handler) GetDoctorsBySpecialty(c *gin.Context) {
	doctors, err := h.service.BySpecialty(c.Param("specialty"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(doctors),
		"data":    doctors,
	})
}
