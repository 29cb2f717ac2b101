package prescription

import (
	"context"
	"encoding/json"
	"log"

	"github.com/Rupamjb/Healiofyre/internal/llm"
)

// Extractor turns raw OCR text into a structured medication list.
type Extractor struct {
	client llm.Client
}

func NewExtractor(client llm.Client) *Extractor {
	return &Extractor{client: client}
}

// rawMedication tolerates the loose typing of model output; duration arrives
// as a string or a number depending on the completion.
type rawMedication struct {
	Name                string `json:"name"`
	Dosage              string `json:"dosage"`
	Frequency           string `json:"frequency"`
	Duration            any    `json:"duration"`
	SpecialInstructions string `json:"specialInstructions"`
}

// Extract never fails: any error (missing API key, gateway failure, bad JSON)
// degrades to an empty medication list with isAiProcessed=false. The raw
// extraction failure must not reach the end user.
func (e *Extractor) Extract(ctx context.Context, ocrText string) *ExtractionResult {
	cleaned := CleanPrescriptionText(ocrText)

	fallback := &ExtractionResult{
		StructuredText:  StructuredText{Text: cleaned, Medications: []Medication{}},
		MedicationCount: 0,
		IsAIProcessed:   false,
	}

	content, err := e.client.Complete(ctx, llm.TaskExtraction, llm.BuildExtractionPrompt(cleaned))
	if err != nil {
		log.Printf("EXTRACTION_FALLBACK reason=%v", err)
		return fallback
	}

	jsonText, err := llm.ExtractJSON(content, "medications")
	if err != nil {
		log.Printf("EXTRACTION_FALLBACK reason=%v", err)
		return fallback
	}

	var parsed struct {
		Medications []rawMedication `json:"medications"`
	}
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		log.Printf("EXTRACTION_FALLBACK reason=%v", err)
		return fallback
	}

	medications := make([]Medication, 0, len(parsed.Medications))
	for _, med := range parsed.Medications {
		medications = append(medications, Medication{
			Name:                med.Name,
			Dosage:              med.Dosage,
			Frequency:           ValidateFrequency(med.Frequency),
			Duration:            ValidateDuration(med.Duration),
			SpecialInstructions: ValidateTiming(med.SpecialInstructions),
		})
	}

	return &ExtractionResult{
		StructuredText:  StructuredText{Text: cleaned, Medications: medications},
		MedicationCount: len(medications),
		IsAIProcessed:   true,
	}
}
