package businessrepo

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
	repo := New(mockDB, nil)
	defer mockDB.Close()

	return repo, mockDB
}

func accountRow(a *domain.BusinessAccount) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "company_name", "company_registration", "business_type",
		"contact_email", "contact_phone", "contact_person", "city", "region",
		"plan_id", "stripe_customer_id", "subscription_id", "subscription_status",
		"account_manager_id", "created_at",
	}).AddRow(a.ID, a.CompanyName, a.CompanyRegistration, a.BusinessType,
		a.ContactEmail, a.ContactPhone, a.ContactPerson, a.City, a.Region,
		a.PlanID, a.StripeCustomerID, a.SubscriptionID, a.SubscriptionStatus,
		a.AccountManagerID, a.CreatedAt)
}

func testAccount() *domain.BusinessAccount {
	return &domain.BusinessAccount{
		ID:                 uuid.New(),
		CompanyName:        "Fast Fleet LLC",
		BusinessType:       "logistics",
		ContactEmail:       "ops@fastfleet.example",
		PlanID:             uuid.New(),
		StripeCustomerID:   "cus_123",
		SubscriptionStatus: "active",
		CreatedAt:          time.Now(),
	}
}

func TestRepository_FindPlans(t *testing.T) {
	repo, mock := NewMock(t)
	planID := uuid.New()
	maxFines := 50

	mock.ExpectQuery("SELECT (.+) FROM business_plans").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "name", "monthly_price", "setup_fee", "max_fines_per_month",
			"stripe_price_id", "is_active", "display_order",
		}).AddRow(planID, "Fleet 50", 499.0, 99.0, &maxFines, "price_123", true, 1))

	plans, err := repo.FindPlans(context.Background())
	assert.NoError(t, err)
	assert.Len(t, plans, 1)
	assert.Equal(t, "Fleet 50", plans[0].Name)
	assert.Equal(t, 50, *plans[0].MaxFinesPerMonth)
}

func TestRepository_FindPlanByID(t *testing.T) {
	repo, mock := NewMock(t)
	planID := uuid.New()
	maxFines := 50

	t.Run("Plan found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM business_plans").
			WithArgs(planID).
			WillReturnRows(pgxmock.NewRows([]string{
				"id", "name", "monthly_price", "setup_fee", "max_fines_per_month",
				"stripe_price_id", "is_active", "display_order",
			}).AddRow(planID, "Fleet 50", 499.0, 99.0, &maxFines, "price_123", true, 1))

		plan, err := repo.FindPlanByID(context.Background(), planID)
		assert.NoError(t, err)
		assert.Equal(t, 499.0, plan.MonthlyPrice)
	})

	t.Run("Plan not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM business_plans").
			WithArgs(planID).
			WillReturnError(pgx.ErrNoRows)

		plan, err := repo.FindPlanByID(context.Background(), planID)
		assert.NoError(t, err)
		assert.Nil(t, plan)
	})
}

func TestRepository_SaveAccount(t *testing.T) {
	repo, mock := NewMock(t)
	a := testAccount()

	t.Run("Account saved", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO business_accounts").
			WithArgs(a.CompanyName, a.CompanyRegistration, a.BusinessType,
				a.ContactEmail, a.ContactPhone, a.ContactPerson, a.City, a.Region,
				a.PlanID, a.StripeCustomerID, a.SubscriptionStatus, a.AccountManagerID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(a.ID, a.CreatedAt))

		err := repo.SaveAccount(context.Background(), a)
		assert.NoError(t, err)
	})

	t.Run("Insert fails", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO business_accounts").
			WillReturnError(errors.New("db error"))

		err := repo.SaveAccount(context.Background(), a)
		assert.Error(t, err)
	})
}

func TestRepository_FindAccountByCustomerID(t *testing.T) {
	repo, mock := NewMock(t)
	a := testAccount()

	t.Run("Account found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM business_accounts").
			WithArgs("cus_123").
			WillReturnRows(accountRow(a))

		got, err := repo.FindAccountByCustomerID(context.Background(), "cus_123")
		assert.NoError(t, err)
		assert.Equal(t, a.ID, got.ID)
	})

	t.Run("Unknown customer", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM business_accounts").
			WithArgs("cus_missing").
			WillReturnError(pgx.ErrNoRows)

		got, err := repo.FindAccountByCustomerID(context.Background(), "cus_missing")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestRepository_ListAccounts(t *testing.T) {
	repo, mock := NewMock(t)
	a := testAccount()

	mock.ExpectQuery("SELECT count").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery("SELECT (.+) FROM business_accounts").
		WithArgs(20, 0).
		WillReturnRows(accountRow(a))

	accounts, total, err := repo.ListAccounts(context.Background(), 20, 0)
	assert.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Len(t, accounts, 1)
}

func TestRepository_UpdateSubscription(t *testing.T) {
	repo, mock := NewMock(t)
	accountID := uuid.New()

	mock.ExpectExec("UPDATE business_accounts").
		WithArgs("sub_123", "active", accountID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateSubscription(context.Background(), accountID, "sub_123", "active")
	assert.NoError(t, err)
}

func TestRepository_Employees(t *testing.T) {
	repo, mock := NewMock(t)
	businessID := uuid.New()
	userID := uuid.New()
	addedBy := uuid.New()
	now := time.Now()

	t.Run("Employee added", func(t *testing.T) {
		e := &domain.BusinessEmployee{
			BusinessID: businessID,
			UserID:     userID,
			FullName:   "Sam Driver",
			Email:      "sam@fastfleet.example",
			Role:       "driver",
			AddedBy:    addedBy,
		}
		mock.ExpectQuery("INSERT INTO business_employees").
			WithArgs(e.BusinessID, e.UserID, e.FullName, e.Email, e.Phone, e.IDNumber, e.Role, e.AddedBy).
			WillReturnRows(pgxmock.NewRows([]string{"id", "added_at"}).AddRow(uuid.New(), now))

		err := repo.AddEmployee(context.Background(), e)
		assert.NoError(t, err)
	})

	t.Run("Employee found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM business_employees").
			WithArgs(businessID, userID).
			WillReturnRows(pgxmock.NewRows([]string{
				"id", "business_id", "user_id", "full_name", "email", "phone", "id_number", "role", "added_by", "added_at",
			}).AddRow(uuid.New(), businessID, userID, "Sam Driver", "sam@fastfleet.example", "", "", "driver", addedBy, now))

		e, err := repo.FindEmployee(context.Background(), businessID, userID)
		assert.NoError(t, err)
		assert.Equal(t, "Sam Driver", e.FullName)
	})

	t.Run("Employee removed", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM business_employees").
			WithArgs(businessID, userID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		removed, err := repo.RemoveEmployee(context.Background(), businessID, userID)
		assert.NoError(t, err)
		assert.True(t, removed)
	})

	t.Run("Employee already gone", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM business_employees").
			WithArgs(businessID, userID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		removed, err := repo.RemoveEmployee(context.Background(), businessID, userID)
		assert.NoError(t, err)
		assert.False(t, removed)
	})
}

func TestRepository_IncrementUsage(t *testing.T) {
	repo, mock := NewMock(t)
	businessID := uuid.New()

	t.Run("Within plan limit", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO business_monthly_usage").
			WithArgs(businessID, 2026, 8, 0, 0.0).
			WillReturnRows(pgxmock.NewRows([]string{
				"business_id", "year", "month", "fines_submitted", "fines_extra", "extra_fine_cost",
			}).AddRow(businessID, 2026, 8, 3, 0, 0.0))

		usage, err := repo.IncrementUsage(context.Background(), businessID, 2026, 8, false, 0)
		assert.NoError(t, err)
		assert.Equal(t, 3, usage.FinesSubmitted)
		assert.Equal(t, 0, usage.FinesExtra)
	})

	t.Run("Over plan limit", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO business_monthly_usage").
			WithArgs(businessID, 2026, 8, 1, 50.0).
			WillReturnRows(pgxmock.NewRows([]string{
				"business_id", "year", "month", "fines_submitted", "fines_extra", "extra_fine_cost",
			}).AddRow(businessID, 2026, 8, 51, 1, 50.0))

		usage, err := repo.IncrementUsage(context.Background(), businessID, 2026, 8, true, 50)
		assert.NoError(t, err)
		assert.Equal(t, 51, usage.FinesSubmitted)
		assert.Equal(t, 50.0, usage.ExtraFineCost)
	})
}

func TestRepository_Invoices(t *testing.T) {
	repo, mock := NewMock(t)
	businessID := uuid.New()
	now := time.Now()

	t.Run("Invoice saved", func(t *testing.T) {
		inv := &domain.BusinessInvoice{
			BusinessID:     businessID,
			InvoiceNumber:  "B2B-2026-08-0001",
			PeriodStart:    now.AddDate(0, -1, 0),
			PeriodEnd:      now,
			PlanFee:        499,
			ExtraFinesCost: 100,
			Subtotal:       599,
			Tax:            89.85,
			Total:          688.85,
		}
		mock.ExpectQuery("INSERT INTO business_invoices").
			WithArgs(inv.BusinessID, inv.InvoiceNumber, inv.PeriodStart, inv.PeriodEnd,
				inv.PlanFee, inv.SetupFee, inv.ExtraFinesCount, inv.ExtraFinesCost,
				inv.Subtotal, inv.Tax, inv.Total).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(uuid.New(), now))

		err := repo.SaveInvoice(context.Background(), inv)
		assert.NoError(t, err)
	})

	t.Run("Invoices listed", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM business_invoices").
			WithArgs(businessID).
			WillReturnRows(pgxmock.NewRows([]string{
				"id", "business_id", "invoice_number", "period_start", "period_end",
				"plan_fee", "setup_fee", "extra_fines_count", "extra_fines_cost",
				"subtotal", "tax", "total", "created_at",
			}).AddRow(uuid.New(), businessID, "B2B-2026-08-0001", now.AddDate(0, -1, 0), now,
				499.0, 0.0, 2, 100.0, 599.0, 89.85, 688.85, now))

		invoices, err := repo.FindInvoices(context.Background(), businessID)
		assert.NoError(t, err)
		assert.Len(t, invoices, 1)
		assert.Equal(t, 688.85, invoices[0].Total)
	})
}
