package prescription

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/Rupamjb/Healiofyre/internal/llm"
	"github.com/gin-gonic/gin"
)

type fakeVisionClient struct {
	text string
	err  error
}

func (f *fakeVisionClient) ExtractImageText(ctx context.Context, mimeType string, image []byte) (string, error) {
	return f.text, f.err
}

func setupPrescriptionRouter(client llm.Client, ocr llm.VisionClient) (*gin.Engine, *InMemoryRepository) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	repo := NewInMemoryRepository()
	service := NewService(NewExtractor(client), NewAnalyzer(client), repo)
	handler := NewHandler(service, ocr, nil)

	// test stand-in for the auth middleware
	r.Use(func(c *gin.Context) {
		c.Set("userID", "user-1")
	})

	r.POST("/api/prescriptions/preprocess", handler.Preprocess)
	r.POST("/api/prescriptions/analyze", handler.Analyze)
	r.POST("/api/prescriptions/extract-text", handler.ExtractText)
	r.GET("/api/prescriptions/history", handler.History)

	return r, repo
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPreprocessMissingText(t *testing.T) {
	r, _ := setupPrescriptionRouter(&fakeLLMClient{}, &fakeVisionClient{})

	w := postJSON(t, r, "/api/prescriptions/preprocess", map[string]string{"ocrText": "   "})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestPreprocessReturnsExtraction(t *testing.T) {
	client := &fakeLLMClient{
		responses: map[llm.Task]string{llm.TaskExtraction: extractionJSON},
	}
	r, _ := setupPrescriptionRouter(client, &fakeVisionClient{})

	w := postJSON(t, r, "/api/prescriptions/preprocess", map[string]string{"ocrText": "Amoxicillin 500mg TID x7 days"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool             `json:"success"`
		Data    ExtractionResult `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if !resp.Success || resp.Data.MedicationCount != 1 {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestAnalyzeAlwaysSucceedsOverHTTP(t *testing.T) {
	// total provider outage: both LLM calls fail
	client := &fakeLLMClient{
		errs: map[llm.Task]error{
			llm.TaskExtraction:     errors.New("provider down"),
			llm.TaskSafetyAnalysis: errors.New("provider down"),
		},
	}
	r, _ := setupPrescriptionRouter(client, &fakeVisionClient{})

	w := postJSON(t, r, "/api/prescriptions/analyze", map[string]string{"ocrText": "Amoxicillin 500mg"})

	if w.Code != http.StatusOK {
		t.Fatalf("analyze must degrade, never fail: got %d", w.Code)
	}

	var resp struct {
		Success bool           `json:"success"`
		Data    SafetyAnalysis `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if len(resp.Data.Precautions.DietaryRestrictions) != 1 {
		t.Fatalf("expected basic fallback payload, got %+v", resp.Data)
	}
}

func TestAnalyzeMissingText(t *testing.T) {
	r, _ := setupPrescriptionRouter(&fakeLLMClient{}, &fakeVisionClient{})

	w := postJSON(t, r, "/api/prescriptions/analyze", map[string]string{})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func multipartImage(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := io.Copy(part, bytes.NewReader(data)); err != nil {
		t.Fatal(err)
	}
	writer.Close()

	return body, writer.FormDataContentType()
}

func TestExtractTextFromImage(t *testing.T) {
	r, _ := setupPrescriptionRouter(&fakeLLMClient{}, &fakeVisionClient{text: "Amoxicillin 500mg TID x7 days"})

	body, contentType := multipartImage(t, "image", "rx.jpg", "image/jpeg", []byte("fake-jpeg-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/prescriptions/extract-text", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Text string `json:"text"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if resp.Data.Text != "Amoxicillin 500mg TID x7 days" {
		t.Fatalf("unexpected text %q", resp.Data.Text)
	}
}

func TestExtractTextRejectsUnsupportedType(t *testing.T) {
	r, _ := setupPrescriptionRouter(&fakeLLMClient{}, &fakeVisionClient{})

	body, contentType := multipartImage(t, "image", "rx.gif", "image/gif", []byte("gif"))
	req := httptest.NewRequest(http.MethodPost, "/api/prescriptions/extract-text", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestExtractTextOCRFailure(t *testing.T) {
	r, _ := setupPrescriptionRouter(&fakeLLMClient{}, &fakeVisionClient{err: errors.New("vision model unavailable")})

	body, contentType := multipartImage(t, "image", "rx.png", "image/png", []byte("png"))
	req := httptest.NewRequest(http.MethodPost, "/api/prescriptions/extract-text", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestHistoryReturnsOwnRecords(t *testing.T) {
	r, repo := setupPrescriptionRouter(&fakeLLMClient{}, &fakeVisionClient{})

	repo.Save(context.Background(), &Prescription{UserID: "user-1", OCRText: "mine", Analysis: *basicAnalysis()})
	repo.Save(context.Background(), &Prescription{UserID: "user-2", OCRText: "not mine", Analysis: *basicAnalysis()})

	req := httptest.NewRequest(http.MethodGet, "/api/prescriptions/history", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Count int            `json:"count"`
		Data  []Prescription `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if resp.Count != 1 || resp.Data[0].OCRText != "mine" {
		t.Fatalf("unexpected history %+v", resp)
	}
}
