package prescription

import (
	"regexp"
	"strings"
)

// Common OCR misreads on printed prescriptions.
var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	digitLowerLRe = regexp.MustCompile(`([0-9])l`)
	digitUpperIRe = regexp.MustCompile(`([0-9])I`)
	ohDigitRe     = regexp.MustCompile(`O([0-9])`)
	rngRe         = regexp.MustCompile(`(?i)rng`)
	tabietRe      = regexp.MustCompile(`(?i)tabiet`)
)

// CleanPrescriptionText normalizes raw OCR output: collapses whitespace runs
// and fixes character confusions ("l"/"I" after a digit -> "1", "O" before a
// digit -> "0", "rng" -> "mg", "tabiet" -> "tablet"). Idempotent; empty in,
// empty out.
func CleanPrescriptionText(text string) string {
	if text == "" {
		return ""
	}

	cleaned := whitespaceRe.ReplaceAllString(text, " ")

	// The confusion patterns consume the digit that anchors them, so a run
	// like "5ll" only resolves one character per pass. Repeat until the
	// text stops changing; each pass removes at least one misread, so this
	// terminates.
	for {
		next := digitLowerLRe.ReplaceAllString(cleaned, "${1}1")
		next = digitUpperIRe.ReplaceAllString(next, "${1}1")
		next = ohDigitRe.ReplaceAllString(next, "0$1")
		if next == cleaned {
			break
		}
		cleaned = next
	}

	cleaned = rngRe.ReplaceAllString(cleaned, "mg")
	cleaned = tabietRe.ReplaceAllString(cleaned, "tablet")

	return strings.TrimSpace(cleaned)
}
