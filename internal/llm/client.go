package llm

import "context"

// Task selects the system role and generation parameters for a completion.
type Task string

const (
	TaskExtraction       Task = "extraction"
	TaskSafetyAnalysis   Task = "safety_analysis"
	TaskChatGeneral      Task = "chat_general"
	TaskChatPrescription Task = "chat_prescription"
)

// Client is the chat-completion contract the pipeline depends on.
// One attempt per call; callers decide what to do on failure.
type Client interface {
	Complete(ctx context.Context, task Task, prompt string) (string, error)
}

// VisionClient extracts text from a prescription image.
type VisionClient interface {
	ExtractImageText(ctx context.Context, mimeType string, image []byte) (string, error)
}
