package finerepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/otr-legal/otr-backend/internal/domain"
	"github.com/otr-legal/otr-backend/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const fineColumns = `id, category, name, description, amount, points, is_active, created_at`

func scanFine(row pg.RowScanner) (*domain.FineType, error) {
	var f domain.FineType
	err := row.Scan(&f.ID, &f.Category, &f.Name, &f.Description, &f.Amount, &f.Points,
		&f.IsActive, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *Repository) Save(ctx context.Context, f *domain.FineType) error {
	query := `
        INSERT INTO fine_types (category, name, description, amount, points, is_active)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, f.Category, f.Name, f.Description, f.Amount, f.Points, f.IsActive).
		Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		zap.L().Error("can't save fine type", zap.Error(err))
	}
	return err
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.FineType, error) {
	query := `
        SELECT ` + fineColumns + `
        FROM fine_types
        WHERE id = $1
    `
	f, err := scanFine(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find fine type", zap.Error(err))
		return nil, err
	}
	return f, nil
}

// Search filters by category and a case-insensitive name fragment. Empty
// arguments disable the corresponding filter.
func (r *Repository) Search(ctx context.Context, category, name string) ([]domain.FineType, error) {
	query := `
        SELECT ` + fineColumns + `
        FROM fine_types
        WHERE is_active = TRUE
            AND ($1 = '' OR category = $1)
            AND ($2 = '' OR name ILIKE '%' || $2 || '%')
        ORDER BY category ASC, name ASC
    `
	rows, err := r.db.Query(ctx, query, category, name)
	if err != nil {
		zap.L().Error("can't search fine types", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var fines []domain.FineType
	for rows.Next() {
		f, err := scanFine(rows)
		if err != nil {
			zap.L().Error("can't scan fine type row", zap.Error(err))
			return nil, err
		}
		fines = append(fines, *f)
	}
	return fines, nil
}

func (r *Repository) Update(ctx context.Context, f *domain.FineType) error {
	query := `
        UPDATE fine_types
        SET category = $1, name = $2, description = $3, amount = $4, points = $5, is_active = $6
        WHERE id = $7
    `
	_, err := r.db.Exec(ctx, query, f.Category, f.Name, f.Description, f.Amount, f.Points,
		f.IsActive, f.ID)
	if err != nil {
		zap.L().Error("can't update fine type", zap.Error(err))
	}
	return err
}

// Deactivate soft-deletes a fine type so historical submissions keep their
// reference.
func (r *Repository) Deactivate(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
        UPDATE fine_types
        SET is_active = FALSE
        WHERE id = $1 AND is_active = TRUE
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't deactivate fine type", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
