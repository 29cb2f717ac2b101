package doctor

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	doctors []*Doctor
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Save(doctor *Doctor) error {
	if doctor.ID == "" {
		doctor.ID = uuid.New().String()
	}
	r.doctors = append(r.doctors, doctor)
	return nil
}

func (r *InMemoryRepository) Search(name, specialty string) ([]*Doctor, error) {
	results := []*Doctor{}
	for _, d := range r.doctors {
		if !matches(d, name, specialty) {
			continue
		}
		results = append(results, d)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Name < results[j].Name
	})
	return results, nil
}

func matches(d *Doctor, name, specialty string) bool {
	if name == "" && specialty == "" {
		return true
	}
	if name != "" && strings.Contains(strings.ToLower(d.Name), strings.ToLower(name)) {
		return true
	}
	if specialty != "" && strings.EqualFold(d.Specialty, specialty) {
		return true
	}
	return false
}

func (r *InMemoryRepository) FindByID(id string) (*Doctor, error) {
	for _, d := range r.doctors {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, ErrDoctorNotFound
}

func (r *InMemoryRepository) FindBySpecialty(specialty string) ([]*Doctor, error) {
	results := []*Doctor{}
	for _, d := range r.doctors {
		if strings.EqualFold(d.Specialty, specialty) {
			results = append(results, d)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Rating > results[j].Rating
	})
	return results, nil
}

func (r *InMemoryRepository) Count() (int, error) {
	return len(r.doctors), nil
}

func (r *InMemoryRepository) DeleteAll() error {
	r.doctors = nil
	return nil
}
