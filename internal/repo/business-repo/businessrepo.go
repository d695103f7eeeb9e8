package businessrepo

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
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindPlans(ctx context.Context) ([]domain.BusinessPlan, error) {
	query := `
        SELECT id, name, monthly_price, setup_fee, max_fines_per_month, stripe_price_id,
            is_active, display_order
        FROM business_plans
        WHERE is_active = TRUE
        ORDER BY display_order ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't query business plans", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var plans []domain.BusinessPlan
	for rows.Next() {
		var p domain.BusinessPlan
		if err := rows.Scan(&p.ID, &p.Name, &p.MonthlyPrice, &p.SetupFee, &p.MaxFinesPerMonth,
			&p.StripePriceID, &p.IsActive, &p.DisplayOrder); err != nil {
			zap.L().Error("can't scan business plan row", zap.Error(err))
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, nil
}

func (r *Repository) FindPlanByID(ctx context.Context, id uuid.UUID) (*domain.BusinessPlan, error) {
	query := `
        SELECT id, name, monthly_price, setup_fee, max_fines_per_month, stripe_price_id,
            is_active, display_order
        FROM business_plans
        WHERE id = $1
    `
	var p domain.BusinessPlan
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.MonthlyPrice, &p.SetupFee,
		&p.MaxFinesPerMonth, &p.StripePriceID, &p.IsActive, &p.DisplayOrder)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find business plan", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

const accountColumns = `id, company_name, company_registration, business_type,
		contact_email, contact_phone, contact_person, city, region,
		plan_id, stripe_customer_id, subscription_id, subscription_status,
		account_manager_id, created_at`

func scanAccount(row pg.RowScanner) (*domain.BusinessAccount, error) {
	var a domain.BusinessAccount
	err := row.Scan(&a.ID, &a.CompanyName, &a.CompanyRegistration, &a.BusinessType,
		&a.ContactEmail, &a.ContactPhone, &a.ContactPerson, &a.City, &a.Region,
		&a.PlanID, &a.StripeCustomerID, &a.SubscriptionID, &a.SubscriptionStatus,
		&a.AccountManagerID, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) SaveAccount(ctx context.Context, a *domain.BusinessAccount) error {
	query := `
        INSERT INTO business_accounts (company_name, company_registration, business_type,
            contact_email, contact_phone, contact_person, city, region,
            plan_id, stripe_customer_id, subscription_status, account_manager_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, a.CompanyName, a.CompanyRegistration, a.BusinessType,
		a.ContactEmail, a.ContactPhone, a.ContactPerson, a.City, a.Region,
		a.PlanID, a.StripeCustomerID, a.SubscriptionStatus, a.AccountManagerID).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		zap.L().Error("can't save business account", zap.Error(err))
	}
	return err
}

func (r *Repository) FindAccountByID(ctx context.Context, id uuid.UUID) (*domain.BusinessAccount, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM business_accounts
        WHERE id = $1
    `
	a, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find business account", zap.Error(err))
		return nil, err
	}
	return a, nil
}

// FindAccountByCustomerID looks an account up by its Stripe customer, used by
// webhook reconciliation.
func (r *Repository) FindAccountByCustomerID(ctx context.Context, customerID string) (*domain.BusinessAccount, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM business_accounts
        WHERE stripe_customer_id = $1
    `
	a, err := scanAccount(r.db.QueryRow(ctx, query, customerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find business account by customer", zap.Error(err))
		return nil, err
	}
	return a, nil
}

func (r *Repository) ListAccounts(ctx context.Context, limit, offset int) ([]domain.BusinessAccount, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM business_accounts`).Scan(&total); err != nil {
		zap.L().Error("can't count business accounts", zap.Error(err))
		return nil, 0, err
	}
	query := `
        SELECT ` + accountColumns + `
        FROM business_accounts
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("can't query business accounts", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var accounts []domain.BusinessAccount
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			zap.L().Error("can't scan business account row", zap.Error(err))
			return nil, 0, err
		}
		accounts = append(accounts, *a)
	}
	return accounts, total, nil
}

func (r *Repository) UpdateSubscription(ctx context.Context, accountID uuid.UUID, subscriptionID, status string) error {
	query := `
        UPDATE business_accounts
        SET subscription_id = $1, subscription_status = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, subscriptionID, status, accountID)
	if err != nil {
		zap.L().Error("can't update subscription", zap.Error(err))
	}
	return err
}

func (r *Repository) SetCustomerID(ctx context.Context, accountID uuid.UUID, customerID string) error {
	query := `
        UPDATE business_accounts
        SET stripe_customer_id = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, customerID, accountID)
	if err != nil {
		zap.L().Error("can't set stripe customer", zap.Error(err))
	}
	return err
}

func (r *Repository) AddEmployee(ctx context.Context, e *domain.BusinessEmployee) error {
	query := `
        INSERT INTO business_employees (business_id, user_id, full_name, email, phone, id_number, role, added_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, added_at
    `
	err := r.db.QueryRow(ctx, query, e.BusinessID, e.UserID, e.FullName, e.Email, e.Phone,
		e.IDNumber, e.Role, e.AddedBy).
		Scan(&e.ID, &e.AddedAt)
	if err != nil {
		zap.L().Error("can't add business employee", zap.Error(err))
	}
	return err
}

func (r *Repository) FindEmployees(ctx context.Context, businessID uuid.UUID) ([]domain.BusinessEmployee, error) {
	query := `
        SELECT id, business_id, user_id, full_name, email, phone, id_number, role, added_by, added_at
        FROM business_employees
        WHERE business_id = $1
        ORDER BY added_at ASC
    `
	rows, err := r.db.Query(ctx, query, businessID)
	if err != nil {
		zap.L().Error("can't query business employees", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var employees []domain.BusinessEmployee
	for rows.Next() {
		var e domain.BusinessEmployee
		if err := rows.Scan(&e.ID, &e.BusinessID, &e.UserID, &e.FullName, &e.Email, &e.Phone,
			&e.IDNumber, &e.Role, &e.AddedBy, &e.AddedAt); err != nil {
			zap.L().Error("can't scan business employee row", zap.Error(err))
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, nil
}

func (r *Repository) FindEmployee(ctx context.Context, businessID, userID uuid.UUID) (*domain.BusinessEmployee, error) {
	query := `
        SELECT id, business_id, user_id, full_name, email, phone, id_number, role, added_by, added_at
        FROM business_employees
        WHERE business_id = $1 AND user_id = $2
    `
	var e domain.BusinessEmployee
	err := r.db.QueryRow(ctx, query, businessID, userID).Scan(&e.ID, &e.BusinessID, &e.UserID,
		&e.FullName, &e.Email, &e.Phone, &e.IDNumber, &e.Role, &e.AddedBy, &e.AddedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find business employee", zap.Error(err))
		return nil, err
	}
	return &e, nil
}

func (r *Repository) RemoveEmployee(ctx context.Context, businessID, userID uuid.UUID) (bool, error) {
	query := `
        DELETE FROM business_employees
        WHERE business_id = $1 AND user_id = $2
    `
	tag, err := r.db.Exec(ctx, query, businessID, userID)
	if err != nil {
		zap.L().Error("can't remove business employee", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// IncrementUsage upserts the month row and returns the usage after the
// increment, so limit decisions see their own write.
func (r *Repository) IncrementUsage(ctx context.Context, businessID uuid.UUID, year, month int, extra bool, extraCost float64) (*domain.BusinessUsage, error) {
	query := `
        INSERT INTO business_monthly_usage (business_id, year, month, fines_submitted, fines_extra, extra_fine_cost)
        VALUES ($1, $2, $3, 1, $4, $5)
        ON CONFLICT (business_id, year, month) DO UPDATE
        SET fines_submitted = business_monthly_usage.fines_submitted + 1,
            fines_extra = business_monthly_usage.fines_extra + $4,
            extra_fine_cost = business_monthly_usage.extra_fine_cost + $5
        RETURNING business_id, year, month, fines_submitted, fines_extra, extra_fine_cost
    `
	extraCount := 0
	if extra {
		extraCount = 1
	}
	var u domain.BusinessUsage
	err := r.db.QueryRow(ctx, query, businessID, year, month, extraCount, extraCost).
		Scan(&u.BusinessID, &u.Year, &u.Month, &u.FinesSubmitted, &u.FinesExtra, &u.ExtraFineCost)
	if err != nil {
		zap.L().Error("can't increment business usage", zap.Error(err))
		return nil, err
	}
	return &u, nil
}

func (r *Repository) FindUsage(ctx context.Context, businessID uuid.UUID, year, month int) (*domain.BusinessUsage, error) {
	query := `
        SELECT business_id, year, month, fines_submitted, fines_extra, extra_fine_cost
        FROM business_monthly_usage
        WHERE business_id = $1 AND year = $2 AND month = $3
    `
	var u domain.BusinessUsage
	err := r.db.QueryRow(ctx, query, businessID, year, month).
		Scan(&u.BusinessID, &u.Year, &u.Month, &u.FinesSubmitted, &u.FinesExtra, &u.ExtraFineCost)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find business usage", zap.Error(err))
		return nil, err
	}
	return &u, nil
}

func (r *Repository) SaveInvoice(ctx context.Context, inv *domain.BusinessInvoice) error {
	query := `
        INSERT INTO business_invoices (business_id, invoice_number, period_start, period_end,
            plan_fee, setup_fee, extra_fines_count, extra_fines_cost, subtotal, tax, total)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, inv.BusinessID, inv.InvoiceNumber, inv.PeriodStart,
		inv.PeriodEnd, inv.PlanFee, inv.SetupFee, inv.ExtraFinesCount, inv.ExtraFinesCost,
		inv.Subtotal, inv.Tax, inv.Total).
		Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		zap.L().Error("can't save business invoice", zap.Error(err))
	}
	return err
}

func (r *Repository) FindInvoices(ctx context.Context, businessID uuid.UUID) ([]domain.BusinessInvoice, error) {
	query := `
        SELECT id, business_id, invoice_number, period_start, period_end,
            plan_fee, setup_fee, extra_fines_count, extra_fines_cost, subtotal, tax, total, created_at
        FROM business_invoices
        WHERE business_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, businessID)
	if err != nil {
		zap.L().Error("can't query business invoices", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var invoices []domain.BusinessInvoice
	for rows.Next() {
		var inv domain.BusinessInvoice
		if err := rows.Scan(&inv.ID, &inv.BusinessID, &inv.InvoiceNumber, &inv.PeriodStart,
			&inv.PeriodEnd, &inv.PlanFee, &inv.SetupFee, &inv.ExtraFinesCount, &inv.ExtraFinesCost,
			&inv.Subtotal, &inv.Tax, &inv.Total, &inv.CreatedAt); err != nil {
			zap.L().Error("can't scan business invoice row", zap.Error(err))
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}
