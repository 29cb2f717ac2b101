package llm

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultAPIURL = "https://api.groq.com/openai/v1/chat/completions"

const (
	defaultModel       = "llama3-8b-8192"
	defaultVisionModel = "meta-llama/llama-4-scout-17b-16e-instruct"
)

// Per-task generation settings. Low temperature on the structured tasks
// keeps the JSON output as deterministic as the model allows.
var taskConfig = map[Task]struct {
	system      string
	temperature float64
	maxTokens   int
}{
	TaskExtraction: {
		system:      "You are a pharmacist extracting medication information from prescriptions. Format your ENTIRE response as a valid JSON object with medications array and text field. Each medication should have name, dosage, frequency, duration, and specialInstructions fields. Use clear, standardized terms for frequency and timing.",
		temperature: 0.2,
		maxTokens:   1024,
	},
	TaskSafetyAnalysis: {
		system:      "You are a pharmacist providing medication safety information. Your response must be a valid JSON object with no additional text. Use clear, specific language that patients can understand.",
		temperature: 0.3,
		maxTokens:   2048,
	},
	TaskChatGeneral: {
		system:      "You are a helpful healthcare assistant that provides concise, accurate responses to general health-related questions. Keep responses short (1-2 sentences).",
		temperature: 0.2,
		maxTokens:   256,
	},
	TaskChatPrescription: {
		system:      "You are a helpful healthcare assistant specializing in medication advice and prescription information. Provide concise, accurate responses (1-2 sentences) based on prescription details when available.",
		temperature: 0.2,
		maxTokens:   256,
	},
}

type GroqClient struct {
	apiKey      string
	model       string
	visionModel string
	apiURL      string
}

func NewGroqClient() *GroqClient {
	model := os.Getenv("GROQ_MODEL")
	if model == "" {
		model = defaultModel
	}
	visionModel := os.Getenv("GROQ_VISION_MODEL")
	if visionModel == "" {
		visionModel = defaultVisionModel
	}
	apiURL := os.Getenv("GROQ_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	return &GroqClient{
		apiKey:      os.Getenv("GROQ_API_KEY"),
		model:       model,
		visionModel: visionModel,
		apiURL:      apiURL,
	}
}

// Complete sends one chat completion and returns the raw text of the single
// choice. No retries: a failed call surfaces to the caller immediately.
func (g *GroqClient) Complete(ctx context.Context, task Task, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("missing GROQ_API_KEY")
	}

	cfg, ok := taskConfig[task]
	if !ok {
		return "", fmt.Errorf("unknown llm task %q", task)
	}

	payload := map[string]any{
		"model": g.model,
		"messages": []map[string]any{
			{"role": "system", "content": cfg.system},
			{"role": "user", "content": prompt},
		},
		"temperature": cfg.temperature,
		"max_tokens":  cfg.maxTokens,
	}

	return g.send(ctx, payload)
}

// ExtractImageText runs OCR on a prescription image through the vision model.
func (g *GroqClient) ExtractImageText(ctx context.Context, mimeType string, image []byte) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("missing GROQ_API_KEY")
	}
	if len(image) == 0 {
		return "", errors.New("empty image")
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	dataURL := fmt.Sprintf(
		"data:%s;base64,%s",
		mimeType,
		base64.StdEncoding.EncodeToString(image),
	)

	payload := map[string]any{
		"model": g.visionModel,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{
						"type": "text",
						"text": VisionOCRInstruction,
					},
					{
						"type":      "image_url",
						"image_url": map[string]string{"url": dataURL},
					},
				},
			},
		},
		"temperature": 0.1,
		"max_tokens":  4096,
	}

	text, err := g.send(ctx, payload)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (g *GroqClient) send(ctx context.Context, payload map[string]any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		g.apiURL,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("groq api error (status %d): %s", resp.StatusCode, string(raw))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}

	if len(result.Choices) == 0 {
		return "", errors.New("empty groq response")
	}

	return result.Choices[0].Message.Content, nil
}
