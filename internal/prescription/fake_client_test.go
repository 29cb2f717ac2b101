package prescription

import (
	"context"
	"errors"

	"github.com/Rupamjb/Healiofyre/internal/llm"
)

// fakeLLMClient scripts one response (or error) per task.
type fakeLLMClient struct {
	responses map[llm.Task]string
	errs      map[llm.Task]error
	calls     []llm.Task
}

func (f *fakeLLMClient) Complete(ctx context.Context, task llm.Task, prompt string) (string, error) {
	f.calls = append(f.calls, task)
	if err, ok := f.errs[task]; ok {
		return "", err
	}
	if resp, ok := f.responses[task]; ok {
		return resp, nil
	}
	return "", errors.New("no scripted response for task " + string(task))
}

const extractionJSON = `{
  "medications": [
    {
      "name": "Amoxicillin",
      "dosage": "500mg",
      "frequency": "three times daily",
      "duration": "7 days",
      "specialInstructions": "with food"
    }
  ],
  "text": "Amoxicillin 500mg TID x7 days"
}`

const safetyJSON = `{
  "precautions": {
    "dietary_restrictions": ["Avoid alcohol"],
    "activity_limitations": ["May cause drowsiness"],
    "side_effects": ["Diarrhea", "Nausea"]
  },
  "duration": {
    "total_days": 7,
    "frequency": "three times daily",
    "timing": "with food"
  },
  "warnings": {
    "drug_interactions": ["Reduces effectiveness of oral contraceptives"],
    "contraindications": ["Penicillin allergy"],
    "overdose_symptoms": ["Severe vomiting"]
  }
}`
