package prescription

// Two layers of canned advisory text. basicAnalysis is the orchestrator-level
// fallback returned whenever extraction finds nothing or the safety analysis
// fails outright. The analyzerDefault* strings fill individual fields the
// model left empty inside an otherwise usable analysis.

func basicAnalysis() *SafetyAnalysis {
	return &SafetyAnalysis{
		Precautions: Precautions{
			DietaryRestrictions: []string{"Take your medication at the same time each day in relation to your meals"},
			ActivityLimitations: []string{"Until you know how this medication affects you, be careful with driving or operating machinery"},
			SideEffects:         []string{"Contact your doctor if you notice any unusual changes in how you feel"},
		},
		Duration: DurationInfo{
			TotalDays: nil,
			Frequency: DefaultFrequency,
			Timing:    DefaultTiming,
		},
		Warnings: Warnings{
			DrugInteractions:  []string{"Tell your doctor about all medications you're taking, including over-the-counter medicines"},
			Contraindications: []string{"Tell your doctor about any allergies or health conditions you have"},
			OverdoseSymptoms:  []string{"Seek emergency medical attention if you think you've taken too much"},
		},
	}
}

const (
	analyzerDefaultDietary           = "Take medication at consistent times relative to meals"
	analyzerDefaultActivity          = "Monitor how medication affects you before driving or operating machinery"
	analyzerDefaultSideEffects       = "Contact your doctor if you experience any unusual symptoms"
	analyzerDefaultDrugInteractions  = "Inform healthcare providers about all medications you take"
	analyzerDefaultContraindications = "Discuss any allergies or health conditions with your doctor"
	analyzerDefaultOverdose          = "Seek immediate medical attention if you suspect an overdose"

	analyzerDefaultFrequency = "Take as prescribed"
	analyzerDefaultTiming    = "Follow doctor's instructions"
)
