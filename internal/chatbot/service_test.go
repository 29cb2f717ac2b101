package chatbot

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Rupamjb/Healiofyre/internal/llm"
	"github.com/Rupamjb/Healiofyre/internal/prescription"
)

type fakeLLMClient struct {
	response string
	err      error
	tasks    []llm.Task
	prompts  []string
}

func (f *fakeLLMClient) Complete(_ context.Context, task llm.Task, prompt string) (string, error) {
	f.tasks = append(f.tasks, task)
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func savePrescription(t *testing.T, repo prescription.Repository, userID, ocrText string) {
	t.Helper()
	err := repo.Save(context.Background(), &prescription.Prescription{
		UserID:  userID,
		OCRText: ocrText,
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
}

func TestRespondGeneralContext(t *testing.T) {
	client := &fakeLLMClient{response: "  Drink plenty of water.  "}
	service := NewService(client, prescription.NewInMemoryRepository())

	response, err := service.Respond(context.Background(), "user-1", "How do I stay hydrated?", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response != "Drink plenty of water." {
		t.Fatalf("unexpected response: %q", response)
	}
	if len(client.tasks) != 1 || client.tasks[0] != llm.TaskChatGeneral {
		t.Fatalf("expected general chat task, got %v", client.tasks)
	}
}

func TestRespondRejectsEmptyQuery(t *testing.T) {
	service := NewService(&fakeLLMClient{}, prescription.NewInMemoryRepository())

	if _, err := service.Respond(context.Background(), "user-1", "   ", ""); !errors.Is(err, ErrEmptyQuery) {
		t.Fatalf("expected ErrEmptyQuery, got %v", err)
	}
}

func TestRespondPrescriptionContextUsesLatestPrescription(t *testing.T) {
	repo := prescription.NewInMemoryRepository()
	savePrescription(t, repo, "user-1", "Amoxicillin 500mg TID x7 days")

	client := &fakeLLMClient{response: "Take it with food."}
	service := NewService(client, repo)

	_, err := service.Respond(context.Background(), "user-1", "Can I take this with food?", ContextPrescription)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(client.tasks) != 1 || client.tasks[0] != llm.TaskChatPrescription {
		t.Fatalf("expected prescription chat task, got %v", client.tasks)
	}
	if !strings.Contains(client.prompts[0], "Amoxicillin 500mg TID x7 days") {
		t.Fatalf("prescription text missing from prompt: %s", client.prompts[0])
	}
}

func TestRespondPrescriptionContextWithoutPrescription(t *testing.T) {
	client := &fakeLLMClient{response: "General advice."}
	service := NewService(client, prescription.NewInMemoryRepository())

	_, err := service.Respond(context.Background(), "user-1", "Can I take this with food?", ContextPrescription)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(client.tasks) != 1 || client.tasks[0] != llm.TaskChatGeneral {
		t.Fatalf("expected fallback to general chat task, got %v", client.tasks)
	}
}

func TestRespondFallsBackToMockOnModelFailure(t *testing.T) {
	repo := prescription.NewInMemoryRepository()
	savePrescription(t, repo, "user-1", "Amoxicillin 500mg TID x7 days")

	client := &fakeLLMClient{err: errors.New("gateway down")}
	service := NewService(client, repo)

	response, err := service.Respond(context.Background(), "user-1", "Can I skip a dose?", ContextPrescription)
	if err != nil {
		t.Fatalf("fallback should not error: %v", err)
	}
	if response != "Do not skip doses of Amoxicillin; take as prescribed to ensure the infection is properly treated." {
		t.Fatalf("unexpected mock response: %q", response)
	}
}

func TestMockResponseTable(t *testing.T) {
	lisinopril := &prescription.Prescription{OCRText: "Lisinopril 10mg once daily"}

	tests := []struct {
		name  string
		query string
		presc *prescription.Prescription
		want  string
	}{
		{
			name:  "lisinopril food question",
			query: "Should I eat before taking it?",
			presc: lisinopril,
			want:  "Lisinopril can be taken with or without food. Maintain a low-sodium diet as recommended by your doctor.",
		},
		{
			name:  "generic side effect question",
			query: "What side effects should I watch for?",
			presc: &prescription.Prescription{OCRText: "Metformin 500mg"},
			want:  "Every medication can have side effects. Monitor how you feel and report any unusual symptoms to your healthcare provider.",
		},
		{
			name:  "sleep advice",
			query: "I have insomnia, what can I do?",
			want:  "For better sleep, maintain a consistent schedule, avoid screens before bed, limit caffeine, and create a comfortable sleep environment.",
		},
		{
			name:  "unmatched query",
			query: "What is the meaning of life?",
			want:  defaultMockResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mockResponse(tt.query, tt.presc); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
