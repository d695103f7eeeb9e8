package userrepo

import (
	"context"
	"errors"
	"regexp"
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
	repo := New(mockDB, nil)
	defer mockDB.Close()

	return repo, mockDB
}

func userRow(u *domain.User) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "email", "password_hash", "first_name", "last_name", "phone", "role",
		"cases_per_month", "cases_used", "quota_reset_at", "created_at",
	}).AddRow(u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Phone, u.Role,
		u.CasesPerMonth, u.CasesUsed, u.QuotaResetAt, u.CreatedAt)
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)
	reset := time.Now().AddDate(0, 1, 0)
	user := &domain.User{
		ID:            uuid.New(),
		Email:         "driver@example.com",
		PasswordHash:  "hashed",
		FirstName:     "Sam",
		LastName:      "Ortiz",
		Role:          domain.RoleUser,
		CasesPerMonth: 5,
		QuotaResetAt:  &reset,
		CreatedAt:     time.Now(),
	}

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			email: "driver@example.com",
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM users").
					WithArgs("driver@example.com").
					WillReturnRows(userRow(user))
			},
			result: user,
		},
		{
			name:  "User not found",
			email: "missing@example.com",
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM users").
					WithArgs("missing@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			email: "driver@example.com",
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM users").
					WithArgs("driver@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	user := &domain.User{
		Email:         "driver@example.com",
		PasswordHash:  "hashed",
		FirstName:     "Sam",
		LastName:      "Ortiz",
		Phone:         "+15550100",
		Role:          domain.RoleUser,
		CasesPerMonth: 5,
	}

	t.Run("Save succeeds", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs(user.Email, user.PasswordHash, user.FirstName, user.LastName,
				user.Phone, user.Role, user.CasesPerMonth).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, time.Now()))

		err := repo.Save(context.Background(), user)
		assert.NoError(t, err)
		assert.Equal(t, id, user.ID)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs(user.Email, user.PasswordHash, user.FirstName, user.LastName,
				user.Phone, user.Role, user.CasesPerMonth).
			WillReturnError(errors.New("duplicate key value violates unique constraint"))

		err := repo.Save(context.Background(), user)
		assert.Error(t, err)
	})
}

func TestRepository_ConsumeQuota(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name      string
		mockSetup func()
		claimed   bool
		expectErr bool
	}{
		{
			name: "Slot claimed",
			mockSetup: func() {
				mock.ExpectExec("UPDATE users").
					WithArgs(userID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			claimed: true,
		},
		{
			name: "Quota exhausted",
			mockSetup: func() {
				mock.ExpectExec("UPDATE users").
					WithArgs(userID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			claimed: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec("UPDATE users").
					WithArgs(userID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			claimed, err := repo.ConsumeQuota(context.Background(), userID)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.claimed, claimed)
		})
	}
}

func TestRepository_ResetQuota(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	nextReset := time.Now().AddDate(0, 1, 0)

	mock.ExpectExec("UPDATE users").
		WithArgs(nextReset, userID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.ResetQuota(context.Background(), userID, nextReset)
	assert.NoError(t, err)
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	reset := time.Now().AddDate(0, 1, 0)
	user := &domain.User{
		ID:            uuid.New(),
		Email:         "driver@example.com",
		Role:          domain.RoleUser,
		CasesPerMonth: 5,
		QuotaResetAt:  &reset,
		CreatedAt:     time.Now(),
	}

	t.Run("Returns page and total", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM users")).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(42))
		mock.ExpectQuery("SELECT (.+) FROM users").
			WithArgs(20, 0).
			WillReturnRows(userRow(user))

		users, total, err := repo.List(context.Background(), 20, 0)
		assert.NoError(t, err)
		assert.Equal(t, 42, total)
		assert.Len(t, users, 1)
		assert.Equal(t, user.Email, users[0].Email)
	})

	t.Run("Count error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM users")).
			WillReturnError(errors.New("database error"))

		_, _, err := repo.List(context.Background(), 20, 0)
		assert.Error(t, err)
	})
}
