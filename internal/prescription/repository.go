package prescription

import (
	"context"
	"errors"
)

var ErrNoPrescription = errors.New("no prescription found")

// Repository stores finished analysis records.
type Repository interface {
	Save(ctx context.Context, p *Prescription) error
	LatestByUser(ctx context.Context, userID string) (*Prescription, error)
	ListByUser(ctx context.Context, userID string) ([]Prescription, error)
}
