package appointment

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

type Appointment struct {
	ID        string    `json:"id"`
	DoctorID  string    `json:"doctorId"`
	UserID    string    `json:"userId"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// DoctorSummary is the slice of doctor fields attached to appointment
// responses.
type DoctorSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	ImageURL  string `json:"imageUrl"`
}

// Detail is an appointment with its doctor info resolved. Doctor is nil
// when the referenced doctor no longer exists.
type Detail struct {
	*Appointment
	Doctor *DoctorSummary `json:"doctor"`
}
