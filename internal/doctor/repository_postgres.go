package doctor

import (
	"context"
	"errors"
	"fmt"
	"strings"

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

const doctorColumns = `id, name, specialty, availability, bio, image_url,
	rating, experience, reviews, price, is_available_now, created_at`

func (r *PostgresRepository) Save(doctor *Doctor) error {
	if doctor.ID == "" {
		doctor.ID = uuid.New().String()
	}

	query := `
		INSERT INTO doctors
			(id, name, specialty, availability, bio, image_url,
			 rating, experience, reviews, price, is_available_now)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(context.Background(), query,
		doctor.ID, doctor.Name, doctor.Specialty, doctor.Availability,
		doctor.Bio, doctor.ImageURL, doctor.Rating, doctor.Experience,
		doctor.Reviews, doctor.Price, doctor.IsAvailableNow,
	)
	return err
}

func (r *PostgresRepository) Search(name, specialty string) ([]*Doctor, error) {
	conds := []string{}
	args := []any{}

	if name != "" {
		args = append(args, "%"+name+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if specialty != "" {
		args = append(args, specialty)
		conds = append(conds, fmt.Sprintf("LOWER(specialty) = LOWER($%d)", len(args)))
	}

	query := `SELECT ` + doctorColumns + ` FROM doctors`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " OR ")
	}
	query += ` ORDER BY name ASC`

	return r.queryDoctors(query, args...)
}

func (r *PostgresRepository) FindByID(id string) (*Doctor, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+doctorColumns+` FROM doctors WHERE id=$1`, id)

	doctor, err := scanDoctor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return doctor, nil
}

func (r *PostgresRepository) FindBySpecialty(specialty string) ([]*Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors
		WHERE LOWER(specialty) = LOWER($1) ORDER BY rating DESC`
	return r.queryDoctors(query, specialty)
}

func (r *PostgresRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM doctors`).Scan(&count)
	return count, err
}

func (r *PostgresRepository) DeleteAll() error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM doctors`)
	return err
}

func (r *PostgresRepository) queryDoctors(query string, args ...any) ([]*Doctor, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	doctors := []*Doctor{}
	for rows.Next() {
		doctor, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		doctors = append(doctors, doctor)
	}
	return doctors, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDoctor(row rowScanner) (*Doctor, error) {
	doctor := &Doctor{}
	if err := row.Scan(
		&doctor.ID, &doctor.Name, &doctor.Specialty, &doctor.Availability,
		&doctor.Bio, &doctor.ImageURL, &doctor.Rating, &doctor.Experience,
		&doctor.Reviews, &doctor.Price, &doctor.IsAvailableNow, &doctor.CreatedAt,
	); err != nil {
		return nil, err
	}
	return doctor, nil
}
