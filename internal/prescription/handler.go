package prescription

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Rupamjb/Healiofyre/internal/llm"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxImageSize = 5 << 20 // 5MB

// Storage archives uploaded prescription images. Optional: a nil Storage
// skips archival and the OCR call still runs.
type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Handler struct {
	service *Service
	ocr     llm.VisionClient
	storage Storage
}

func NewHandler(service *Service, ocr llm.VisionClient, storage Storage) *Handler {
	return &Handler{service: service, ocr: ocr, storage: storage}
}

type ocrTextRequest struct {
	OCRText string `json:"ocrText"`
}

// --------------------------------------------------
// POST /api/prescriptions/preprocess
// --------------------------------------------------
func (h *Handler) Preprocess(c *gin.Context) {
	var req ocrTextRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.OCRText) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "OCR text required"})
		return
	}

	result := h.service.Preprocess(c.Request.Context(), req.OCRText)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// --------------------------------------------------
// POST /api/prescriptions/analyze
// --------------------------------------------------
func (h *Handler) Analyze(c *gin.Context) {
	var req ocrTextRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.OCRText) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "OCR text is required"})
		return
	}

	userID := c.GetString("userID")
	analysis := h.service.Analyze(c.Request.Context(), userID, req.OCRText)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    analysis,
	})
}

// --------------------------------------------------
// POST /api/prescriptions/extract-text (multipart image)
// --------------------------------------------------
func (h *Handler) ExtractText(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No file uploaded"})
		return
	}
	defer file.Close()

	if header.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Image exceeds the 5MB limit"})
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType != "image/jpeg" && mimeType != "image/png" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Only JPG and PNG images are allowed"})
		return
	}

	image, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Error processing image upload: " + err.Error()})
		return
	}

	// archival is best-effort; OCR proceeds either way
	if h.storage != nil {
		key := fmt.Sprintf(
			"prescriptions/%s/%s%s",
			c.GetString("userID"),
			uuid.New().String(),
			strings.ToLower(filepath.Ext(header.Filename)),
		)
		if _, err := h.storage.Upload(c.Request.Context(), key, bytes.NewReader(image), mimeType); err != nil {
			log.Printf("IMAGE_ARCHIVE_FAILED key=%s err=%v", key, err)
		}
	}

	text, err := h.ocr.ExtractImageText(c.Request.Context(), mimeType, image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to extract text from image: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"text": text},
	})
}

// --------------------------------------------------
// GET /api/prescriptions/history
// --------------------------------------------------
func (h *Handler) History(c *gin.Context) {
	records, err := h.service.History(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(records),
		"data":    records,
	})
}
