package finerepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/otr-legal/otr-backend/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func fineRow(f *domain.FineType) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "category", "name", "description", "amount", "points", "is_active", "created_at"}).
		AddRow(f.ID, f.Category, f.Name, f.Description, f.Amount, f.Points, f.IsActive, f.CreatedAt)
}

func testFine() *domain.FineType {
	return &domain.FineType{
		ID:          uuid.New(),
		Category:    "speeding",
		Name:        "Speeding 20+ over",
		Description: "20 mph or more over the limit",
		Amount:      350,
		Points:      4,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	f := testFine()

	t.Run("Fine type saved", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO fine_types").
			WithArgs(f.Category, f.Name, f.Description, f.Amount, f.Points, f.IsActive).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(f.ID, f.CreatedAt))

		err := repo.Save(context.Background(), f)
		assert.NoError(t, err)
	})

	t.Run("Insert fails", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO fine_types").
			WillReturnError(errors.New("db error"))

		err := repo.Save(context.Background(), f)
		assert.Error(t, err)
	})
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	f := testFine()

	t.Run("Fine type found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM fine_types").
			WithArgs(f.ID).
			WillReturnRows(fineRow(f))

		got, err := repo.FindByID(context.Background(), f.ID)
		assert.NoError(t, err)
		assert.Equal(t, f, got)
	})

	t.Run("Fine type not found", func(t *testing.T) {
		missing := uuid.New()
		mock.ExpectQuery("SELECT (.+) FROM fine_types").
			WithArgs(missing).
			WillReturnError(pgx.ErrNoRows)

		got, err := repo.FindByID(context.Background(), missing)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestRepository_Search(t *testing.T) {
	repo, mock := NewMock(t)
	f := testFine()

	t.Run("Filtered by category", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM fine_types").
			WithArgs("speeding", "").
			WillReturnRows(fineRow(f))

		fines, err := repo.Search(context.Background(), "speeding", "")
		assert.NoError(t, err)
		assert.Len(t, fines, 1)
		assert.Equal(t, f.Name, fines[0].Name)
	})

	t.Run("No matches", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM fine_types").
			WithArgs("parking", "meter").
			WillReturnRows(pgxmock.NewRows([]string{"id", "category", "name", "description", "amount", "points", "is_active", "created_at"}))

		fines, err := repo.Search(context.Background(), "parking", "meter")
		assert.NoError(t, err)
		assert.Empty(t, fines)
	})
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	f := testFine()

	mock.ExpectExec("UPDATE fine_types").
		WithArgs(f.Category, f.Name, f.Description, f.Amount, f.Points, f.IsActive, f.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), f)
	assert.NoError(t, err)
}

func TestRepository_Deactivate(t *testing.T) {
	repo, mock := NewMock(t)
	fineTypeID := uuid.New()

	tests := []struct {
		name        string
		prepareMock func()
		want        bool
		wantErr     bool
	}{
		{
			name: "Fine type deactivated",
			prepareMock: func() {
				mock.ExpectExec("UPDATE fine_types").
					WithArgs(fineTypeID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			want: true,
		},
		{
			name: "Already inactive",
			prepareMock: func() {
				mock.ExpectExec("UPDATE fine_types").
					WithArgs(fineTypeID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			want: false,
		},
		{
			name: "Database error",
			prepareMock: func() {
				mock.ExpectExec("UPDATE fine_types").
					WithArgs(fineTypeID).
					WillReturnError(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			got, err := repo.Deactivate(context.Background(), fineTypeID)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
