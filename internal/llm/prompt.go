package llm

import (
	"encoding/json"
	"fmt"
)

// VisionOCRInstruction is the text part of the vision OCR request.
const VisionOCRInstruction = "This is a prescription image. Please extract all text visible in this image as accurately as possible. Focus on medication names, dosages, instructions, and any other text that appears on the prescription. Return only the extracted text, formatted in a clear and readable way. Do not add any additional commentary or explanations."

// BuildExtractionPrompt asks for a structured medication list from cleaned
// prescription text.
func BuildExtractionPrompt(cleanedText string) string {
	return fmt.Sprintf(`Analyze the following prescription text and extract medication information in a structured JSON format.
Include medication names, dosages, frequencies, durations, and any special instructions.
Format your response as a JSON object with this exact structure:
{
  "medications": [
    {
      "name": "medication name",
      "dosage": "dosage information",
      "frequency": "how often to take (e.g., once daily, twice daily)",
      "duration": "duration in days or specific period",
      "specialInstructions": "timing or special instructions (e.g., with food, before meals)"
    }
  ],
  "text": "original prescription text"
}

Here is the prescription text to analyze:
%s`, cleanedText)
}

// BuildSafetyPrompt embeds the extracted medication list in a safety-analysis
// request. The payload is sent as the JSON-encoded user message.
func BuildSafetyPrompt(medications any) string {
	prompt := map[string]any{
		"medications": medications,
		"request": `Analyze these medications and provide comprehensive safety information. Include specific details about:
- Dietary restrictions and food interactions
- Activity limitations and precautions
- Common and serious side effects
- Drug interactions
- Contraindications
- Signs of overdose

Format your response exactly as a JSON object with this structure:
{
  "precautions": {
    "dietary_restrictions": ["list specific food restrictions"],
    "activity_limitations": ["list specific activity warnings"],
    "side_effects": ["list important side effects"]
  },
  "duration": {
    "total_days": number or null,
    "frequency": "specific frequency",
    "timing": "specific timing instructions"
  },
  "warnings": {
    "drug_interactions": ["list specific drug interactions"],
    "contraindications": ["list specific contraindications"],
    "overdose_symptoms": ["list specific overdose symptoms"]
  }
}`,
	}

	body, _ := json.Marshal(prompt)
	return string(body)
}

// BuildChatPrompt is the general-context health assistant prompt.
func BuildChatPrompt(query string) string {
	return fmt.Sprintf("User Question: %s\n\nPlease provide concise, evidence-based health advice in response to this question. Keep your answer short (1-2 sentences) and focused on practical guidance.", query)
}

// BuildPrescriptionChatPrompt embeds the user's latest prescription text so
// the assistant can answer medication questions in context.
func BuildPrescriptionChatPrompt(ocrText, query string) string {
	prompt := map[string]any{
		"prescription_text": ocrText,
		"user_query":        query,
		"instructions":      "Analyze this prescription as a senior pharmacist and answer the user query based on the prescription details:",
		"requirements": map[string]any{
			"precautions": map[string]string{
				"dietary_restrictions": "List food/drinks to avoid",
				"activity_limitations": "Physical/mental activity warnings",
				"side_effects":         "Common side effects to monitor",
			},
			"duration": map[string]string{
				"total_days": "Numeric value only",
				"frequency":  "Exact times per day",
				"timing":     "Morning/evening/with-meal instructions",
			},
			"warnings": map[string]string{
				"drug_interactions": "List dangerous combinations",
				"contraindications": "Conditions where medication should be avoided",
				"overdose_symptoms": "Signs of accidental overdose",
			},
			"format_rules": []string{
				"Use medical database (Drugs.com/Medscape) as reference",
				"Flag uncertain terms with [LOW CONFIDENCE]",
				"Prioritize critical warnings first",
				"Response should be in plain text, not JSON",
				"Keep response concise (1-2 sentences)",
				"Directly answer the user's question",
			},
		},
		"example_input":  "Amoxicillin 500mg TID x7 days",
		"example_query":  "Can I skip a dose?",
		"example_output": "Do not skip doses of Amoxicillin; take as prescribed even if you feel better to ensure the infection is properly treated.",
	}

	body, _ := json.Marshal(prompt)
	return string(body)
}
