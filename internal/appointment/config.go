package appointment

import (
	"os"
	"strconv"
)

// CancellationWindowHours returns how many hours before the scheduled
// time an appointment must be cancelled. Zero means cancellation is
// allowed up until the appointment starts.
func CancellationWindowHours() int {
	if v := os.Getenv("CANCELLATION_WINDOW_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil {
			return hours
		}
	}
	return 0
}
