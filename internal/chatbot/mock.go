package chatbot

import (
	"strings"

	"github.com/Rupamjb/Healiofyre/internal/prescription"
)

const defaultMockResponse = "I recommend consulting with your healthcare provider for personalized advice on this matter. They can provide guidance specific to your health situation."

// mockResponse is the keyword-matched answer table used when the model
// is unreachable.
func mockResponse(query string, presc *prescription.Prescription) string {
	lowerQuery := strings.ToLower(query)

	if presc != nil {
		medication := strings.ToLower(presc.OCRText)

		if strings.Contains(medication, "amoxicillin") {
			switch {
			case strings.Contains(lowerQuery, "skip") && strings.Contains(lowerQuery, "dose"):
				return "Do not skip doses of Amoxicillin; take as prescribed to ensure the infection is properly treated."
			case strings.Contains(lowerQuery, "food") || strings.Contains(lowerQuery, "eat"):
				return "Amoxicillin can be taken with or without food, but taking it with a meal may help reduce stomach upset."
			case strings.Contains(lowerQuery, "alcohol") || strings.Contains(lowerQuery, "drink"):
				return "It's best to avoid alcohol while taking Amoxicillin as it can increase side effects like stomach upset and make you feel more tired."
			case strings.Contains(lowerQuery, "side effect"):
				return "Common side effects of Amoxicillin include diarrhea, stomach upset, and rash. Contact your doctor if you experience severe side effects."
			}
		} else if strings.Contains(medication, "lisinopril") {
			switch {
			case strings.Contains(lowerQuery, "skip") && strings.Contains(lowerQuery, "dose"):
				return "If you miss a dose of Lisinopril, take it as soon as you remember. If it's almost time for your next dose, skip the missed dose and continue your regular schedule."
			case strings.Contains(lowerQuery, "food") || strings.Contains(lowerQuery, "eat"):
				return "Lisinopril can be taken with or without food. Maintain a low-sodium diet as recommended by your doctor."
			case strings.Contains(lowerQuery, "alcohol") || strings.Contains(lowerQuery, "drink"):
				return "Limit alcohol consumption while taking Lisinopril as it can enhance the blood pressure-lowering effect and cause dizziness."
			case strings.Contains(lowerQuery, "side effect"):
				return "Common side effects of Lisinopril include dry cough, dizziness, and headache. Contact your doctor if these persist or worsen."
			}
		}

		if strings.Contains(lowerQuery, "skip") && strings.Contains(lowerQuery, "dose") {
			return "Generally, it's important not to skip doses of your medication. If you miss a dose, follow the guidance in your prescription or consult your doctor."
		}
		if strings.Contains(lowerQuery, "side effect") {
			return "Every medication can have side effects. Monitor how you feel and report any unusual symptoms to your healthcare provider."
		}
	}

	switch {
	case strings.Contains(lowerQuery, "diabetes") && (strings.Contains(lowerQuery, "diet") || strings.Contains(lowerQuery, "food")):
		return "For diabetes management, focus on low-carb foods, plenty of vegetables, lean proteins, and whole grains. Consult a nutritionist for personalized advice."
	case strings.Contains(lowerQuery, "blood pressure") || strings.Contains(lowerQuery, "hypertension"):
		return "To manage blood pressure, reduce sodium intake, exercise regularly, maintain a healthy weight, and take medications as prescribed."
	case strings.Contains(lowerQuery, "sleep") || strings.Contains(lowerQuery, "insomnia"):
		return "For better sleep, maintain a consistent schedule, avoid screens before bed, limit caffeine, and create a comfortable sleep environment."
	case strings.Contains(lowerQuery, "stress") || strings.Contains(lowerQuery, "anxiety"):
		return "To manage stress, try deep breathing exercises, regular physical activity, adequate sleep, and mindfulness practices."
	case strings.Contains(lowerQuery, "headache") || strings.Contains(lowerQuery, "migraine"):
		return "For headaches, ensure you're hydrated, get enough rest, and consider over-the-counter pain relievers. Consult a doctor for frequent or severe headaches."
	}

	return defaultMockResponse
}
