package prescription

import (
	"context"
	"log"
)

// Service sequences the analysis pipeline: extract, then analyze, with a
// canned fallback at every failure point so the caller always gets a
// well-formed payload. Each request runs the pipeline independently; no state
// is shared between requests beyond the repository.
type Service struct {
	extractor *Extractor
	analyzer  *Analyzer
	repo      Repository
}

func NewService(extractor *Extractor, analyzer *Analyzer, repo Repository) *Service {
	return &Service{
		extractor: extractor,
		analyzer:  analyzer,
		repo:      repo,
	}
}

// Preprocess runs extraction only. Never fails; degraded extraction comes
// back as an empty medication list.
func (s *Service) Preprocess(ctx context.Context, ocrText string) *ExtractionResult {
	return s.extractor.Extract(ctx, ocrText)
}

// Analyze runs the full pipeline. Extraction degrades to an empty medication
// list; a failed or skipped safety analysis degrades to the basic canned
// payload. The record is persisted best-effort so the chatbot and history
// endpoints can see it.
func (s *Service) Analyze(ctx context.Context, userID, ocrText string) *SafetyAnalysis {
	extraction := s.extractor.Extract(ctx, ocrText)

	var analysis *SafetyAnalysis
	if extraction.MedicationCount == 0 {
		log.Printf("ANALYSIS_BASIC user=%s reason=no_medications", userID)
		analysis = basicAnalysis()
	} else {
		result, err := s.analyzer.Analyze(ctx, extraction.StructuredText)
		if err != nil {
			log.Printf("ANALYSIS_BASIC user=%s reason=%v", userID, err)
			analysis = basicAnalysis()
		} else {
			analysis = mergeWithBasicDefaults(result)
		}
	}

	if s.repo != nil {
		record := &Prescription{
			UserID:   userID,
			OCRText:  ocrText,
			Analysis: *analysis,
		}
		if err := s.repo.Save(ctx, record); err != nil {
			log.Printf("PRESCRIPTION_SAVE_FAILED user=%s err=%v", userID, err)
		}
	}

	return analysis
}

// History returns the user's stored analyses, newest first.
func (s *Service) History(ctx context.Context, userID string) ([]Prescription, error) {
	return s.repo.ListByUser(ctx, userID)
}

// mergeWithBasicDefaults backstops any field the analyzer left empty with the
// orchestrator-level default. The analyzer already fills its own defaults, so
// this only fires if an empty field slips through its mapping.
func mergeWithBasicDefaults(analysis *SafetyAnalysis) *SafetyAnalysis {
	basic := basicAnalysis()

	merged := *analysis
	merged.Precautions.DietaryRestrictions = orDefault(analysis.Precautions.DietaryRestrictions, basic.Precautions.DietaryRestrictions[0])
	merged.Precautions.ActivityLimitations = orDefault(analysis.Precautions.ActivityLimitations, basic.Precautions.ActivityLimitations[0])
	merged.Precautions.SideEffects = orDefault(analysis.Precautions.SideEffects, basic.Precautions.SideEffects[0])
	merged.Duration.Frequency = orDefaultString(analysis.Duration.Frequency, basic.Duration.Frequency)
	merged.Duration.Timing = orDefaultString(analysis.Duration.Timing, basic.Duration.Timing)
	merged.Warnings.DrugInteractions = orDefault(analysis.Warnings.DrugInteractions, basic.Warnings.DrugInteractions[0])
	merged.Warnings.Contraindications = orDefault(analysis.Warnings.Contraindications, basic.Warnings.Contraindications[0])
	merged.Warnings.OverdoseSymptoms = orDefault(analysis.Warnings.OverdoseSymptoms, basic.Warnings.OverdoseSymptoms[0])

	return &merged
}
