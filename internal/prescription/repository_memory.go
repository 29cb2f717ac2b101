package prescription

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	records []Prescription
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Save(ctx context.Context, p *Prescription) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	r.records = append(r.records, *p)
	return nil
}

func (r *InMemoryRepository) LatestByUser(ctx context.Context, userID string) (*Prescription, error) {
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].UserID == userID {
			p := r.records[i]
			return &p, nil
		}
	}
	return nil, ErrNoPrescription
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]Prescription, error) {
	out := []Prescription{}
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].UserID == userID {
			out = append(out, r.records[i])
		}
	}
	return out, nil
}
