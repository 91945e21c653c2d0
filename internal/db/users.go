package db

import (
	"context"

	"github.com/yaboywf/bb-website-v3/internal/model"
)

func (db *Postgres) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	query := `
		SELECT id, name, role, current_appointment, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	var user model.User
	err := db.Pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Role,
		&user.CurrentAppointment,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *Postgres) SetCurrentAppointment(ctx context.Context, id, appointmentName string) error {
	query := `
		UPDATE users
		SET current_appointment = $2, updated_at = NOW()
		WHERE id = $1
	`
	_, err := db.Pool.Exec(ctx, query, id, appointmentName)
	return err
}
