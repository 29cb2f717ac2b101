package prescription

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ctx context.Context, p *Prescription) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	analysis, err := json.Marshal(p.Analysis)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO prescriptions (id, user_id, ocr_text, analysis, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, p.ID, p.UserID, p.OCRText, analysis, p.CreatedAt)
	return err
}

func (r *PostgresRepository) LatestByUser(ctx context.Context, userID string) (*Prescription, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, ocr_text, analysis, created_at
		FROM prescriptions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, userID)

	p, err := scanPrescription(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoPrescription
		}
		return nil, err
	}
	return p, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Prescription, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, ocr_text, analysis, created_at
		FROM prescriptions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prescriptions := []Prescription{}
	for rows.Next() {
		p, err := scanPrescription(rows)
		if err != nil {
			return nil, err
		}
		prescriptions = append(prescriptions, *p)
	}
	return prescriptions, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPrescription(row rowScanner) (*Prescription, error) {
	p := &Prescription{}
	var analysis []byte

	if err := row.Scan(&p.ID, &p.UserID, &p.OCRText, &analysis, &p.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(analysis, &p.Analysis); err != nil {
		return nil, err
	}
	return p, nil
}
