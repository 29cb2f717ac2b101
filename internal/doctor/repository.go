package doctor

import "errors"

var ErrDoctorNotFound = errors.New("doctor not found")

type Repository interface {
	Save(doctor *Doctor) error
	// Search matches name as a case-insensitive substring and specialty as a
	// case-insensitive exact value. Either filter may be empty. Results are
	// sorted by name ascending.
	Search(name, specialty string) ([]*Doctor, error)
	FindByID(id string) (*Doctor, error)
	// FindBySpecialty returns doctors sorted by rating descending.
	FindBySpecialty(specialty string) ([]*Doctor, error)
	Count() (int, error)
	DeleteAll() error
}
