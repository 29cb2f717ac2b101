package appointment

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	appointments []*Appointment
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Save(appointment *Appointment) error {
	if appointment.ID == "" {
		appointment.ID = uuid.New().String()
	}
	if appointment.CreatedAt.IsZero() {
		appointment.CreatedAt = time.Now()
	}
	r.appointments = append(r.appointments, appointment)
	return nil
}

func (r *InMemoryRepository) FindByID(id string) (*Appointment, error) {
	for _, a := range r.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, ErrAppointmentNotFound
}

func (r *InMemoryRepository) ListByUser(userID, doctorID string) ([]*Appointment, error) {
	results := []*Appointment{}
	for _, a := range r.appointments {
		if a.UserID != userID {
			continue
		}
		if doctorID != "" && a.DoctorID != doctorID {
			continue
		}
		results = append(results, a)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Date.Before(results[j].Date)
	})
	return results, nil
}

func (r *InMemoryRepository) Update(appointment *Appointment) error {
	for i, a := range r.appointments {
		if a.ID == appointment.ID {
			r.appointments[i] = appointment
			return nil
		}
	}
	return ErrAppointmentNotFound
}
