package appointment

import (
	"errors"
	"log"
	"regexp"
	"time"

	"github.com/Rupamjb/Healiofyre/internal/doctor"
)

var (
	ErrInvalidDate    = errors.New("invalid date format")
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrNotOwner       = errors.New("appointment belongs to another user")
	ErrPastCancel     = errors.New("cannot cancel appointments that have already occurred")
	ErrWindowClosed   = errors.New("cancellation window has closed")
)

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})?$`)

// DoctorDirectory is the slice of the doctor service appointments need.
type DoctorDirectory interface {
	GetByID(id string) (*doctor.Doctor, error)
}

type Service struct {
	repo    Repository
	doctors DoctorDirectory
	now     func() time.Time
}

func NewService(repo Repository, doctors DoctorDirectory) *Service {
	return &Service{
		repo:    repo,
		doctors: doctors,
		now:     time.Now,
	}
}

// Book creates a pending appointment after checking the doctor exists
// and the date parses as an ISO timestamp.
func (s *Service) Book(userID, doctorID, date string) (*Detail, error) {
	if !isoDateRe.MatchString(date) {
		return nil, ErrInvalidDate
	}

	when, err := time.Parse(time.RFC3339, date)
	if err != nil {
		// Zone-less timestamps are accepted and read as local time.
		when, err = time.Parse("2006-01-02T15:04:05", date)
		if err != nil {
			return nil, ErrInvalidDate
		}
	}

	if _, err := s.doctors.GetByID(doctorID); err != nil {
		return nil, ErrDoctorNotFound
	}

	appointment := &Appointment{
		DoctorID: doctorID,
		UserID:   userID,
		Date:     when,
		Status:   StatusPending,
	}
	if err := s.repo.Save(appointment); err != nil {
		return nil, err
	}

	return s.populate(appointment), nil
}

func (s *Service) List(userID, doctorID string) ([]*Detail, error) {
	appointments, err := s.repo.ListByUser(userID, doctorID)
	if err != nil {
		return nil, err
	}

	details := []*Detail{}
	for _, a := range appointments {
		details = append(details, s.populate(a))
	}
	return details, nil
}

func (s *Service) GetByID(userID, id string) (*Detail, error) {
	appointment, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if appointment.UserID != userID {
		return nil, ErrNotOwner
	}
	return s.populate(appointment), nil
}

// UpdateStatus transitions an appointment. Cancellations are refused for
// appointments already in the past, and, when a cancellation window is
// configured, for appointments starting within that window.
func (s *Service) UpdateStatus(userID, id, status string) (*Detail, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	appointment, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if appointment.UserID != userID {
		return nil, ErrNotOwner
	}

	if status == StatusCancelled {
		now := s.now()
		if appointment.Date.Before(now) {
			return nil, ErrPastCancel
		}

		window := CancellationWindowHours()
		deadline := appointment.Date.Add(-time.Duration(window) * time.Hour)
		if window > 0 && now.After(deadline) {
			return nil, ErrWindowClosed
		}
	}

	appointment.Status = status
	if err := s.repo.Update(appointment); err != nil {
		return nil, err
	}

	return s.populate(appointment), nil
}

func (s *Service) populate(appointment *Appointment) *Detail {
	detail := &Detail{Appointment: appointment}

	doc, err := s.doctors.GetByID(appointment.DoctorID)
	if err != nil {
		log.Printf("APPOINTMENT_DOCTOR_MISSING appointment=%s doctor=%s", appointment.ID, appointment.DoctorID)
		return detail
	}

	detail.Doctor = &DoctorSummary{
		ID:        doc.ID,
		Name:      doc.Name,
		Specialty: doc.Specialty,
		ImageURL:  doc.ImageURL,
	}
	return detail
}
