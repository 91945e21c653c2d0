package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/yaboywf/bb-website-v3/internal/model"
)

func (db *Postgres) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	query := `
		SELECT id, name, account_type, account_id, created_at, updated_at
		FROM appointments
	`
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appointments []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.AccountType,
			&a.AccountID,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}

func (db *Postgres) GetAppointmentByID(ctx context.Context, id string) (*model.Appointment, error) {
	query := `
		SELECT id, name, account_type, account_id, created_at, updated_at
		FROM appointments
		WHERE id = $1
	`
	var a model.Appointment
	err := db.Pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Name,
		&a.AccountType,
		&a.AccountID,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (db *Postgres) InsertAppointment(ctx context.Context, name, accountType, accountID string) (*model.Appointment, error) {
	query := `
		INSERT INTO appointments (id, name, account_type, account_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, name, account_type, account_id, created_at, updated_at
	`
	var a model.Appointment
	err := db.Pool.QueryRow(ctx, query, uuid.NewString(), name, accountType, accountID).Scan(
		&a.ID,
		&a.Name,
		&a.AccountType,
		&a.AccountID,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (db *Postgres) SetAppointmentHolder(ctx context.Context, id, accountID string) error {
	query := `
		UPDATE appointments
		SET account_id = $2, updated_at = NOW()
		WHERE id = $1
	`
	_, err := db.Pool.Exec(ctx, query, id, accountID)
	return err
}

func (db *Postgres) DeleteAppointment(ctx context.Context, id string) error {
	query := `DELETE FROM appointments WHERE id = $1`
	_, err := db.Pool.Exec(ctx, query, id)
	return err
}
