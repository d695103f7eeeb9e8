package userrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/otr-legal/otr-backend/internal/domain"
	"github.com/otr-legal/otr-backend/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const userColumns = `id, email, password_hash, first_name, last_name, phone, role,
		cases_per_month, cases_used, quota_reset_at, created_at`

func scanUser(row pg.RowScanner) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.Phone, &u.Role, &u.CasesPerMonth, &u.CasesUsed, &u.QuotaResetAt, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE id = $1
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE email = $1
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) Save(ctx context.Context, user *domain.User) error {
	query := `
        INSERT INTO users (email, password_hash, first_name, last_name, phone, role, cases_per_month)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, user.Email, user.PasswordHash, user.FirstName,
		user.LastName, user.Phone, user.Role, user.CasesPerMonth).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateRole(ctx context.Context, userID uuid.UUID, role domain.Role) error {
	query := `
        UPDATE users
        SET role = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, role, userID)
	if err != nil {
		zap.L().Error("can't update user role", zap.Error(err))
	}
	return err
}

// ConsumeQuota claims one case slot from the user's monthly quota. The limit
// is re-checked at write time so concurrent submissions cannot overrun it.
func (r *Repository) ConsumeQuota(ctx context.Context, userID uuid.UUID) (bool, error) {
	query := `
        UPDATE users
        SET cases_used = cases_used + 1
        WHERE id = $1 AND cases_used < cases_per_month
    `
	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't consume quota", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ResetQuota zeroes usage and advances the reset date one month forward.
func (r *Repository) ResetQuota(ctx context.Context, userID uuid.UUID, nextReset time.Time) error {
	query := `
        UPDATE users
        SET cases_used = 0, quota_reset_at = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, nextReset, userID)
	if err != nil {
		zap.L().Error("can't reset quota", zap.Error(err))
	}
	return err
}

func (r *Repository) UpdateQuotaLimit(ctx context.Context, userID uuid.UUID, casesPerMonth int) error {
	query := `
        UPDATE users
        SET cases_per_month = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, casesPerMonth, userID)
	if err != nil {
		zap.L().Error("can't update quota limit", zap.Error(err))
	}
	return err
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]domain.User, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&total); err != nil {
		zap.L().Error("can't count users", zap.Error(err))
		return nil, 0, err
	}

	query := `
        SELECT ` + userColumns + `
        FROM users
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, 0, err
		}
		users = append(users, *user)
	}
	return users, total, nil
}
