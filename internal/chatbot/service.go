package chatbot

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Rupamjb/Healiofyre/internal/llm"
	"github.com/Rupamjb/Healiofyre/internal/prescription"
)

const (
	ContextGeneral      = "general"
	ContextPrescription = "prescription"
)

var ErrEmptyQuery = errors.New("query is required")

type Service struct {
	client        llm.Client
	prescriptions prescription.Repository
}

func NewService(client llm.Client, prescriptions prescription.Repository) *Service {
	return &Service{client: client, prescriptions: prescriptions}
}

// Respond answers a health question. In prescription context the user's
// latest prescription is folded into the prompt. A failed model call
// degrades to a canned response rather than an error.
func (s *Service) Respond(ctx context.Context, userID, query, contextType string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", ErrEmptyQuery
	}
	if contextType == "" {
		contextType = ContextGeneral
	}

	var presc *prescription.Prescription
	if contextType == ContextPrescription {
		p, err := s.prescriptions.LatestByUser(ctx, userID)
		switch {
		case err == nil:
			presc = p
		case errors.Is(err, prescription.ErrNoPrescription):
			// No prescription on file, answer as general context.
		default:
			return "", err
		}
	}

	var task llm.Task
	var prompt string
	if contextType == ContextPrescription && presc != nil && presc.OCRText != "" {
		task = llm.TaskChatPrescription
		prompt = llm.BuildPrescriptionChatPrompt(presc.OCRText, query)
	} else {
		task = llm.TaskChatGeneral
		prompt = llm.BuildChatPrompt(query)
	}

	content, err := s.client.Complete(ctx, task, prompt)
	if err != nil {
		log.Printf("CHATBOT_FALLBACK user=%s reason=%v", userID, err)
		return mockResponse(query, presc), nil
	}

	return strings.TrimSpace(content), nil
}
