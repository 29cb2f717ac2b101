package appointment

import "errors"

var ErrAppointmentNotFound = errors.New("appointment not found")

type Repository interface {
	Save(appointment *Appointment) error
	FindByID(id string) (*Appointment, error)
	// ListByUser returns the user's appointments sorted by date ascending.
	// A non-empty doctorID narrows the list to that doctor.
	ListByUser(userID, doctorID string) ([]*Appointment, error)
	Update(appointment *Appointment) error
}
