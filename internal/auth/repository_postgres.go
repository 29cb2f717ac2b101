package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `id, name, email, password, role,
	COALESCE(phone, ''), COALESCE(address, ''), COALESCE(date_of_birth, ''),
	COALESCE(gender, ''), COALESCE(emergency_contact, ''),
	COALESCE(allergies, ''), COALESCE(medical_conditions, '')`

func (r *PostgresUserRepository) Save(user *User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	query := `
		INSERT INTO users (id, name, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.Password, user.Role,
	)
	return err
}

func (r *PostgresUserRepository) ExistsByEmail(email string) (bool, error) {
	query := `SELECT 1 FROM users WHERE email=$1 LIMIT 1`
	row := r.db.QueryRow(context.Background(), query, email)

	var exists int
	if err := row.Scan(&exists); err != nil {
		return false, nil
	}
	return true, nil
}

func (r *PostgresUserRepository) FindByEmail(email string) (*User, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE email=$1`, email)
	return scanUser(row)
}

func (r *PostgresUserRepository) FindByID(id string) (*User, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE id=$1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) Update(user *User) error {
	query := `
		UPDATE users
		SET name=$1, password=$2, phone=$3, address=$4, date_of_birth=$5,
			gender=$6, emergency_contact=$7, allergies=$8, medical_conditions=$9
		WHERE id=$10
	`
	_, err := r.db.Exec(context.Background(), query,
		user.Name, user.Password, user.Phone, user.Address, user.DateOfBirth,
		user.Gender, user.EmergencyContact, user.Allergies, user.MedicalConditions,
		user.ID,
	)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*User, error) {
	user := &User{}
	if err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Role,
		&user.Phone, &user.Address, &user.DateOfBirth,
		&user.Gender, &user.EmergencyContact,
		&user.Allergies, &user.MedicalConditions,
	); err != nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}
