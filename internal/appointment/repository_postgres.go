package appointment

import (
	"context"
	"errors"

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

const appointmentColumns = `id, doctor_id, user_id, date, status, created_at`

func (r *PostgresRepository) Save(appointment *Appointment) error {
	if appointment.ID == "" {
		appointment.ID = uuid.New().String()
	}

	query := `
		INSERT INTO appointments (id, doctor_id, user_id, date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	return r.db.QueryRow(context.Background(), query,
		appointment.ID, appointment.DoctorID, appointment.UserID,
		appointment.Date, appointment.Status,
	).Scan(&appointment.CreatedAt)
}

func (r *PostgresRepository) FindByID(id string) (*Appointment, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+appointmentColumns+` FROM appointments WHERE id=$1`, id)

	appointment, err := scanAppointment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return appointment, nil
}

func (r *PostgresRepository) ListByUser(userID, doctorID string) ([]*Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE user_id=$1`
	args := []any{userID}
	if doctorID != "" {
		query += ` AND doctor_id=$2`
		args = append(args, doctorID)
	}
	query += ` ORDER BY date ASC`

	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appointments := []*Appointment{}
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, appointment)
	}
	return appointments, rows.Err()
}

func (r *PostgresRepository) Update(appointment *Appointment) error {
	query := `UPDATE appointments SET status=$1 WHERE id=$2`
	_, err := r.db.Exec(context.Background(), query, appointment.Status, appointment.ID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAppointment(row rowScanner) (*Appointment, error) {
	appointment := &Appointment{}
	if err := row.Scan(
		&appointment.ID, &appointment.DoctorID, &appointment.UserID,
		&appointment.Date, &appointment.Status, &appointment.CreatedAt,
	); err != nil {
		return nil, err
	}
	return appointment, nil
}
