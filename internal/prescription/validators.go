package prescription

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Model output is free text; anything that does not match a known vocabulary
// is replaced with a safe instruction instead of reaching the client.

const (
	DefaultFrequency = "Take as prescribed by your doctor"
	DefaultTiming    = "Follow your doctor's instructions"
)

var validFrequencyPatterns = []string{
	"once daily", "twice daily", "three times daily", "four times daily",
	"every morning", "every night", "every evening",
	"every 4 hours", "every 6 hours", "every 8 hours", "every 12 hours",
	"as needed", "with meals", "before meals", "after meals",
	"weekly", "monthly", "daily",
}

var validTimingPatterns = []string{
	"before breakfast", "after breakfast", "before lunch", "after lunch",
	"before dinner", "after dinner", "at bedtime", "in the morning",
	"in the evening", "with food", "on empty stomach", "with meals",
	"before meals", "after meals",
}

var (
	numericFrequencyRe = regexp.MustCompile(`(?i)(\d+)\s*times?\s*(daily|a day|per day)`)
	daysRe             = regexp.MustCompile(`(?i)(\d+)\s*(days|day|d)\b`)
	weeksRe            = regexp.MustCompile(`(?i)(\d+)\s*(weeks|week|w)\b`)
	monthsRe           = regexp.MustCompile(`(?i)(\d+)\s*(months|month|m)\b`)
	bareNumberRe       = regexp.MustCompile(`^(\d+)$`)
)

// ValidateFrequency keeps the input only when it matches a known dosing
// phrasing; otherwise it returns the default instruction.
func ValidateFrequency(frequency string) string {
	if frequency == "" {
		return DefaultFrequency
	}

	lower := strings.ToLower(strings.TrimSpace(frequency))
	for _, pattern := range validFrequencyPatterns {
		if strings.Contains(lower, pattern) {
			return strings.TrimSpace(frequency)
		}
	}

	if m := numericFrequencyRe.FindStringSubmatch(lower); m != nil {
		plural := "s"
		if m[1] == "1" {
			plural = ""
		}
		return fmt.Sprintf("%s time%s daily", m[1], plural)
	}

	return DefaultFrequency
}

// ValidateTiming keeps the input only when it matches a known timing
// phrasing; otherwise it returns the default instruction.
func ValidateTiming(timing string) string {
	if timing == "" {
		return DefaultTiming
	}

	lower := strings.ToLower(strings.TrimSpace(timing))
	for _, pattern := range validTimingPatterns {
		if strings.Contains(lower, pattern) {
			return strings.TrimSpace(timing)
		}
	}

	return DefaultTiming
}

// ValidateDuration extracts a number of days from "N days", "N weeks" (x7),
// "N months" (x30) or a bare integer. Models return this field as either a
// string or a number, so it accepts any JSON-decoded value. Nil when nothing
// parseable is found.
func ValidateDuration(duration any) *int {
	if duration == nil {
		return nil
	}

	// json numbers decode as float64; fmt.Sprint(float64(7)) is "7", which
	// the bare-number branch below picks up
	str := strings.ToLower(strings.TrimSpace(fmt.Sprint(duration)))
	if str == "" || str == "<nil>" || str == "null" {
		return nil
	}

	for _, conv := range []struct {
		re    *regexp.Regexp
		scale int
	}{
		{daysRe, 1},
		{weeksRe, 7},
		{monthsRe, 30},
	} {
		if m := conv.re.FindStringSubmatch(str); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return nil
			}
			days := n * conv.scale
			return &days
		}
	}

	if m := bareNumberRe.FindStringSubmatch(str); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil
		}
		return &n
	}

	return nil
}
