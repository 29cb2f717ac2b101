package appointment

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rupamjb/Healiofyre/internal/doctor"
	"github.com/gin-gonic/gin"
)

func setupAppointmentRouter(t *testing.T, userID string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service, _ := newTestService(t)
	handler := NewHandler(service)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	})
	r.POST("/api/appointments", handler.Book)
	r.GET("/api/appointments", handler.List)
	r.GET("/api/appointments/:id", handler.GetByID)
	r.PATCH("/api/appointments/:id", handler.UpdateStatus)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBookEndpoint(t *testing.T) {
	r := setupAppointmentRouter(t, "user-1")

	w := doJSON(r, http.MethodPost, "/api/appointments", gin.H{
		"doctorId": "doc-1",
		"date":     "2030-05-30T14:00:00Z",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Status string         `json:"status"`
			Doctor *DoctorSummary `json:"doctor"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Data.Status != StatusPending {
		t.Fatalf("expected pending, got %q", resp.Data.Status)
	}
	if resp.Data.Doctor == nil || resp.Data.Doctor.Specialty != "Cardiology" {
		t.Fatalf("doctor info missing: %+v", resp.Data.Doctor)
	}
}

func TestBookEndpointMissingFields(t *testing.T) {
	r := setupAppointmentRouter(t, "user-1")

	w := doJSON(r, http.MethodPost, "/api/appointments", gin.H{"doctorId": "doc-1"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestBookEndpointBadDate(t *testing.T) {
	r := setupAppointmentRouter(t, "user-1")

	w := doJSON(r, http.MethodPost, "/api/appointments", gin.H{
		"doctorId": "doc-1",
		"date":     "next tuesday",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestBookEndpointUnknownDoctor(t *testing.T) {
	r := setupAppointmentRouter(t, "user-1")

	w := doJSON(r, http.MethodPost, "/api/appointments", gin.H{
		"doctorId": "nope",
		"date":     "2030-05-30T14:00:00Z",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestUpdateStatusEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	doctors := doctor.NewInMemoryRepository()
	if err := doctors.Save(&doctor.Doctor{ID: "doc-1", Name: "Dr. John Smith", Specialty: "Cardiology"}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	service := NewService(NewInMemoryRepository(), doctor.NewService(doctors))
	handler := NewHandler(service)

	detail, err := service.Book("user-1", "doc-1", "2030-05-30T14:00:00Z")
	if err != nil {
		t.Fatalf("book failed: %v", err)
	}

	newRouter := func(userID string) *gin.Engine {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			c.Set("userID", userID)
			c.Next()
		})
		r.PATCH("/api/appointments/:id", handler.UpdateStatus)
		return r
	}

	// Another user cannot touch the appointment.
	w := doJSON(newRouter("user-2"), http.MethodPatch, "/api/appointments/"+detail.ID, gin.H{"status": "confirmed"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}

	// Unknown status is rejected.
	w = doJSON(newRouter("user-1"), http.MethodPatch, "/api/appointments/"+detail.ID, gin.H{"status": "done"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	w = doJSON(newRouter("user-1"), http.MethodPatch, "/api/appointments/"+detail.ID, gin.H{"status": "confirmed"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
