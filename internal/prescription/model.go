package prescription

import "time"

// Medication is one normalized entry from the extraction pipeline.
// Duration is days, nil when the source text gave nothing parseable.
type Medication struct {
	Name                string `json:"name"`
	Dosage              string `json:"dosage"`
	Frequency           string `json:"frequency"`
	Duration            *int   `json:"duration"`
	SpecialInstructions string `json:"specialInstructions"`
}

type StructuredText struct {
	Text        string       `json:"text"`
	Medications []Medication `json:"medications"`
}

// ExtractionResult is the preprocess payload returned to the client.
type ExtractionResult struct {
	StructuredText  StructuredText `json:"structuredText"`
	MedicationCount int            `json:"medicationCount"`
	IsAIProcessed   bool           `json:"isAiProcessed"`
}

type Precautions struct {
	DietaryRestrictions []string `json:"dietary_restrictions"`
	ActivityLimitations []string `json:"activity_limitations"`
	SideEffects         []string `json:"side_effects"`
}

type DurationInfo struct {
	TotalDays *int   `json:"total_days"`
	Frequency string `json:"frequency"`
	Timing    string `json:"timing"`
}

type Warnings struct {
	DrugInteractions  []string `json:"drug_interactions"`
	Contraindications []string `json:"contraindications"`
	OverdoseSymptoms  []string `json:"overdose_symptoms"`
}

// SafetyAnalysis is what the client renders. After validation every array
// holds at least one entry; none is ever nil.
type SafetyAnalysis struct {
	Precautions Precautions  `json:"precautions"`
	Duration    DurationInfo `json:"duration"`
	Warnings    Warnings     `json:"warnings"`
}

// Prescription is the stored analysis record.
type Prescription struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	OCRText   string         `json:"ocrText"`
	Analysis  SafetyAnalysis `json:"analysis"`
	CreatedAt time.Time      `json:"createdAt"`
}
