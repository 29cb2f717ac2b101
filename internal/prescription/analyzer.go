package prescription

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Rupamjb/Healiofyre/internal/llm"
)

// Analyzer produces the safety payload for an extracted medication list.
// Unlike the Extractor it does NOT self-heal: every failure propagates so the
// orchestrator can decide on the final fallback.
type Analyzer struct {
	client llm.Client
}

func NewAnalyzer(client llm.Client) *Analyzer {
	return &Analyzer{client: client}
}

type rawSafety struct {
	Precautions struct {
		DietaryRestrictions []string `json:"dietary_restrictions"`
		ActivityLimitations []string `json:"activity_limitations"`
		SideEffects         []string `json:"side_effects"`
	} `json:"precautions"`
	Duration struct {
		TotalDays any    `json:"total_days"`
		Frequency string `json:"frequency"`
		Timing    string `json:"timing"`
	} `json:"duration"`
	Warnings struct {
		DrugInteractions  []string `json:"drug_interactions"`
		Contraindications []string `json:"contraindications"`
		OverdoseSymptoms  []string `json:"overdose_symptoms"`
	} `json:"warnings"`
}

func (a *Analyzer) Analyze(ctx context.Context, structured StructuredText) (*SafetyAnalysis, error) {
	content, err := a.client.Complete(
		ctx,
		llm.TaskSafetyAnalysis,
		llm.BuildSafetyPrompt(structured.Medications),
	)
	if err != nil {
		return nil, err
	}

	jsonText, err := llm.ExtractJSON(content, "precautions")
	if err != nil {
		return nil, fmt.Errorf("failed to parse safety information: %w", err)
	}

	var raw rawSafety
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse safety information: %w", err)
	}

	analysis := &SafetyAnalysis{
		Precautions: Precautions{
			DietaryRestrictions: orDefault(raw.Precautions.DietaryRestrictions, analyzerDefaultDietary),
			ActivityLimitations: orDefault(raw.Precautions.ActivityLimitations, analyzerDefaultActivity),
			SideEffects:         orDefault(raw.Precautions.SideEffects, analyzerDefaultSideEffects),
		},
		Duration: DurationInfo{
			TotalDays: ValidateDuration(raw.Duration.TotalDays),
			Frequency: orDefaultString(raw.Duration.Frequency, analyzerDefaultFrequency),
			Timing:    orDefaultString(raw.Duration.Timing, analyzerDefaultTiming),
		},
		Warnings: Warnings{
			DrugInteractions:  orDefault(raw.Warnings.DrugInteractions, analyzerDefaultDrugInteractions),
			Contraindications: orDefault(raw.Warnings.Contraindications, analyzerDefaultContraindications),
			OverdoseSymptoms:  orDefault(raw.Warnings.OverdoseSymptoms, analyzerDefaultOverdose),
		},
	}

	return analysis, nil
}

// orDefault injects exactly one advisory sentence when the model left the
// category empty, so no array field ever reaches the client empty.
func orDefault(values []string, fallback string) []string {
	if len(values) == 0 {
		return []string{fallback}
	}
	return values
}

func orDefaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
