package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'PATIENT',
			phone VARCHAR(50),
			address VARCHAR(500),
			date_of_birth VARCHAR(50),
			gender VARCHAR(50),
			emergency_contact VARCHAR(255),
			allergies TEXT,
			medical_conditions TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// DOCTORS
	// -------------------------------
	doctorTableSQL := `
		CREATE TABLE IF NOT EXISTS doctors (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			specialty VARCHAR(255) NOT NULL,
			availability TEXT[] NOT NULL DEFAULT '{}',
			bio TEXT NOT NULL DEFAULT '',
			image_url VARCHAR(500) NOT NULL DEFAULT '',
			rating DOUBLE PRECISION NOT NULL DEFAULT 4.5,
			experience VARCHAR(50) NOT NULL DEFAULT '5 years',
			reviews INT NOT NULL DEFAULT 0,
			price INT NOT NULL DEFAULT 100,
			is_available_now BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, doctorTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// APPOINTMENTS
	// -------------------------------
	appointmentTableSQL := `
		CREATE TABLE IF NOT EXISTS appointments (
			id UUID PRIMARY KEY,
			doctor_id UUID NOT NULL,
			user_id UUID NOT NULL,
			date TIMESTAMPTZ NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (doctor_id) REFERENCES doctors(id),
			FOREIGN KEY (user_id) REFERENCES users(id)
		)
	`
	if _, err := db.Exec(ctx, appointmentTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// PRESCRIPTIONS
	// -------------------------------
	prescriptionTableSQL := `
		CREATE TABLE IF NOT EXISTS prescriptions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			ocr_text TEXT NOT NULL,
			analysis JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)
	`
	if _, err := db.Exec(ctx, prescriptionTableSQL); err != nil {
		return err
	}

	indexSQL := `
		CREATE INDEX IF NOT EXISTS idx_prescriptions_user_created
		ON prescriptions (user_id, created_at DESC)
	`
	if _, err := db.Exec(ctx, indexSQL); err != nil {
		return err
	}

	log.Println("✅ Database schema initialized")
	return nil
}
