package postgresql

import (
	"context"
	"fmt"

	"github.com/D4rK14/Control-de-asistencia/internal/domain/user"
	"github.com/D4rK14/Control-de-asistencia/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, rut, name, email, password_hash, qr_login_secret, role, status, created_at, updated_at`

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	return r.getOne(ctx, q, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByRUT implements user.UserRepository.
func (r *userRepository) GetByRUT(ctx context.Context, rut string) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	return r.getOne(ctx, q, `SELECT `+userColumns+` FROM users WHERE rut = $1`, rut)
}

// GetByQRSecret implements user.UserRepository.
func (r *userRepository) GetByQRSecret(ctx context.Context, secret string) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	return r.getOne(ctx, q, `SELECT `+userColumns+` FROM users WHERE qr_login_secret = $1`, secret)
}

// ListActiveIDs implements user.UserRepository.
func (r *userRepository) ListActiveIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id FROM users WHERE status = $1 ORDER BY id`, string(user.StatusActive))
	if err != nil {
		return nil, fmt.Errorf("failed to list active users: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate active users: %w", err)
	}

	return ids, nil
}

func (r *userRepository) getOne(ctx context.Context, q database.Querier, query string, arg any) (user.User, error) {
	var u user.User
	var role, status string

	err := q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.RUT, &u.Name, &u.Email, &u.PasswordHash, &u.QRLoginSecret,
		&role, &status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	u.Role = user.Role(role)
	u.Status = user.Status(status)
	return u, nil
}
