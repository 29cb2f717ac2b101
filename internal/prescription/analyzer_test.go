package prescription

import (
	"context"
	"errors"
	"testing"

	"github.com/Rupamjb/Healiofyre/internal/llm"
)

func structuredAmoxicillin() StructuredText {
	duration := 7
	return StructuredText{
		Text: "Amoxicillin 500mg TID x7 days",
		Medications: []Medication{{
			Name:                "Amoxicillin",
			Dosage:              "500mg",
			Frequency:           "three times daily",
			Duration:            &duration,
			SpecialInstructions: "with food",
		}},
	}
}

func TestAnalyzeSuccess(t *testing.T) {
	client := &fakeLLMClient{
		responses: map[llm.Task]string{llm.TaskSafetyAnalysis: safetyJSON},
	}
	analyzer := NewAnalyzer(client)

	analysis, err := analyzer.Analyze(context.Background(), structuredAmoxicillin())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if analysis.Duration.TotalDays == nil || *analysis.Duration.TotalDays != 7 {
		t.Fatalf("unexpected total_days %v", analysis.Duration.TotalDays)
	}
	if len(analysis.Precautions.SideEffects) != 2 {
		t.Fatalf("expected model side effects to survive, got %v", analysis.Precautions.SideEffects)
	}
}

func TestAnalyzePropagatesGatewayError(t *testing.T) {
	client := &fakeLLMClient{
		errs: map[llm.Task]error{llm.TaskSafetyAnalysis: errors.New("timeout")},
	}
	analyzer := NewAnalyzer(client)

	if _, err := analyzer.Analyze(context.Background(), structuredAmoxicillin()); err == nil {
		t.Fatal("expected gateway error to propagate")
	}
}

func TestAnalyzePropagatesParseError(t *testing.T) {
	client := &fakeLLMClient{
		responses: map[llm.Task]string{llm.TaskSafetyAnalysis: "no json here"},
	}
	analyzer := NewAnalyzer(client)

	if _, err := analyzer.Analyze(context.Background(), structuredAmoxicillin()); err == nil {
		t.Fatal("expected parse error to propagate")
	}
}

func TestAnalyzeFillsEmptyCategories(t *testing.T) {
	client := &fakeLLMClient{
		responses: map[llm.Task]string{llm.TaskSafetyAnalysis: `{
			"precautions": {"dietary_restrictions": [], "activity_limitations": [], "side_effects": []},
			"duration": {"total_days": null, "frequency": "", "timing": ""},
			"warnings": {"drug_interactions": [], "contraindications": [], "overdose_symptoms": []}
		}`},
	}
	analyzer := NewAnalyzer(client)

	analysis, err := analyzer.Analyze(context.Background(), structuredAmoxicillin())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	categories := map[string][]string{
		"dietary_restrictions": analysis.Precautions.DietaryRestrictions,
		"activity_limitations": analysis.Precautions.ActivityLimitations,
		"side_effects":         analysis.Precautions.SideEffects,
		"drug_interactions":    analysis.Warnings.DrugInteractions,
		"contraindications":    analysis.Warnings.Contraindications,
		"overdose_symptoms":    analysis.Warnings.OverdoseSymptoms,
	}
	seen := map[string]bool{}
	for name, values := range categories {
		if len(values) != 1 {
			t.Fatalf("%s: expected exactly one default advisory, got %v", name, values)
		}
		if seen[values[0]] {
			t.Fatalf("%s: default advisory %q reused for another category", name, values[0])
		}
		seen[values[0]] = true
	}

	if analysis.Duration.TotalDays != nil {
		t.Fatalf("expected nil total_days, got %v", *analysis.Duration.TotalDays)
	}
	if analysis.Duration.Frequency != analyzerDefaultFrequency {
		t.Fatalf("unexpected frequency default %q", analysis.Duration.Frequency)
	}
	if analysis.Duration.Timing != analyzerDefaultTiming {
		t.Fatalf("unexpected timing default %q", analysis.Duration.Timing)
	}
}
