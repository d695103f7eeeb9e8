package paymentrepo

import (
	"context"
	"database/sql"
	"encoding/json"
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

const paymentColumns = `id, case_id, user_id, lawyer_id, amount, currency, type, status,
		transaction_id, stripe_intent_id, stripe_charge_id, stripe_refund_id,
		platform_fee_amount, platform_fee_percent, payout_amount, payout_status, payout_paid_at,
		refund_amount, refund_reason, refund_status, refund_requested_at, refund_processed_at,
		created_at`

func scanPayment(row pg.RowScanner) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(&p.ID, &p.CaseID, &p.UserID, &p.LawyerID, &p.Amount, &p.Currency, &p.Type, &p.Status,
		&p.TransactionID, &p.StripeIntentID, &p.StripeChargeID, &p.StripeRefundID,
		&p.PlatformFeeAmount, &p.PlatformFeePercent, &p.PayoutAmount, &p.PayoutStatus, &p.PayoutPaidAt,
		&p.RefundAmount, &p.RefundReason, &p.RefundStatus, &p.RefundRequestedAt, &p.RefundProcessedAt,
		&p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Save(ctx context.Context, p *domain.Payment) error {
	query := `
        INSERT INTO payments (case_id, user_id, lawyer_id, amount, currency, type, status,
            transaction_id, stripe_intent_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, p.CaseID, p.UserID, p.LawyerID, p.Amount, p.Currency,
		p.Type, p.Status, p.TransactionID, p.StripeIntentID).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		zap.L().Error("can't save payment", zap.Error(err))
	}
	return err
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

func (r *Repository) FindByCaseID(ctx context.Context, caseID uuid.UUID) (*domain.Payment, error) {
	return r.findOne(ctx, `WHERE case_id = $1 AND type = 'case_payment' ORDER BY created_at DESC LIMIT 1`, caseID)
}

func (r *Repository) FindByIntentID(ctx context.Context, intentID string) (*domain.Payment, error) {
	return r.findOne(ctx, `WHERE stripe_intent_id = $1`, intentID)
}

func (r *Repository) findOne(ctx context.Context, where string, args ...any) (*domain.Payment, error) {
	query := `
        SELECT ` + paymentColumns + `
        FROM payments
        ` + where + `
    `
	p, err := scanPayment(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment", zap.Error(err))
		return nil, err
	}
	return p, nil
}

// Confirm records the completed charge and the fee split in one statement.
// The guard on status makes a repeated webhook delivery a no-op.
func (r *Repository) Confirm(ctx context.Context, id uuid.UUID, chargeID string, feeAmount, feePercent, payoutAmount float64) (bool, error) {
	query := `
        UPDATE payments
        SET status = $1, stripe_charge_id = $2,
            platform_fee_amount = $3, platform_fee_percent = $4,
            payout_amount = $5, payout_status = $6
        WHERE id = $7 AND status <> $1
    `
	tag, err := r.db.Exec(ctx, query, domain.PaymentCompleted, chargeID,
		feeAmount, feePercent, payoutAmount, domain.PayoutPending, id)
	if err != nil {
		zap.L().Error("can't confirm payment", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) SetStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus) error {
	query := `
        UPDATE payments
        SET status = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("can't update payment status", zap.Error(err))
	}
	return err
}

func (r *Repository) RequestRefund(ctx context.Context, id uuid.UUID, amount float64, reason string, status domain.RefundStatus, at time.Time) error {
	query := `
        UPDATE payments
        SET refund_amount = $1, refund_reason = $2, refund_status = $3, refund_requested_at = $4
        WHERE id = $5
    `
	_, err := r.db.Exec(ctx, query, amount, reason, status, at, id)
	if err != nil {
		zap.L().Error("can't request refund", zap.Error(err))
	}
	return err
}

func (r *Repository) CompleteRefund(ctx context.Context, id uuid.UUID, stripeRefundID string, at time.Time) error {
	query := `
        UPDATE payments
        SET refund_status = $1, stripe_refund_id = $2, refund_processed_at = $3, status = $4
        WHERE id = $5
    `
	_, err := r.db.Exec(ctx, query, domain.RefundCompleted, stripeRefundID, at, domain.PaymentRefunded, id)
	if err != nil {
		zap.L().Error("can't complete refund", zap.Error(err))
	}
	return err
}

func (r *Repository) RejectRefund(ctx context.Context, id uuid.UUID) error {
	query := `
        UPDATE payments
        SET refund_status = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, domain.RefundRejected, id)
	if err != nil {
		zap.L().Error("can't reject refund", zap.Error(err))
	}
	return err
}

// ClaimPayout moves a pending payout into processing. A concurrent dispatcher
// run on the same payment affects zero rows.
func (r *Repository) ClaimPayout(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
        UPDATE payments
        SET payout_status = $1
        WHERE id = $2 AND payout_status = $3
    `
	tag, err := r.db.Exec(ctx, query, domain.PayoutProcessing, id, domain.PayoutPending)
	if err != nil {
		zap.L().Error("can't claim payout", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) CompletePayout(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `
        UPDATE payments
        SET payout_status = $1, payout_paid_at = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, domain.PayoutCompleted, at, id)
	if err != nil {
		zap.L().Error("can't complete payout", zap.Error(err))
	}
	return err
}

func (r *Repository) FailPayout(ctx context.Context, id uuid.UUID) error {
	query := `
        UPDATE payments
        SET payout_status = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, domain.PayoutFailed, id)
	if err != nil {
		zap.L().Error("can't fail payout", zap.Error(err))
	}
	return err
}

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Payment, error) {
	return r.findAll(ctx, `WHERE user_id = $1`, userID)
}

func (r *Repository) FindByLawyerID(ctx context.Context, lawyerID uuid.UUID) ([]domain.Payment, error) {
	return r.findAll(ctx, `WHERE lawyer_id = $1 AND status = 'completed'`, lawyerID)
}

func (r *Repository) FindPendingRefunds(ctx context.Context) ([]domain.Payment, error) {
	return r.findAll(ctx, `WHERE refund_status = 'pending'`)
}

// FindPayoutsPending returns completed payments whose payout has not been
// dispatched yet.
func (r *Repository) FindPayoutsPending(ctx context.Context, limit int) ([]domain.Payment, error) {
	return r.findAll(ctx, `WHERE status = 'completed' AND payout_status = 'pending' LIMIT $1`, limit)
}

func (r *Repository) findAll(ctx context.Context, where string, args ...any) ([]domain.Payment, error) {
	query := `
        SELECT ` + paymentColumns + `
        FROM payments
        ` + where + `
    `
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't query payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, nil
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]domain.Payment, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM payments`).Scan(&total); err != nil {
		zap.L().Error("can't count payments", zap.Error(err))
		return nil, 0, err
	}
	payments, err := r.findAll(ctx, `ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

func (r *Repository) SaveInvoice(ctx context.Context, inv *domain.Invoice) error {
	items, err := json.Marshal(inv.LineItems)
	if err != nil {
		return err
	}
	query := `
        INSERT INTO invoices (invoice_number, user_id, lawyer_id, case_id, status, line_items,
            subtotal, tax_amount, tax_percentage, discount_amount, total_amount, paid_amount,
            notes, due_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING id, created_at
    `
	err = r.db.QueryRow(ctx, query, inv.InvoiceNumber, inv.UserID, inv.LawyerID, inv.CaseID,
		inv.Status, items, inv.Subtotal, inv.TaxAmount, inv.TaxPercentage, inv.DiscountAmount,
		inv.TotalAmount, inv.PaidAmount, inv.Notes, inv.DueDate).
		Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		zap.L().Error("can't save invoice", zap.Error(err))
	}
	return err
}

func (r *Repository) FindInvoicesByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Invoice, error) {
	query := `
        SELECT id, invoice_number, user_id, lawyer_id, case_id, status, line_items,
            subtotal, tax_amount, tax_percentage, discount_amount, total_amount, paid_amount,
            notes, due_date, created_at
        FROM invoices
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't query invoices", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		var inv domain.Invoice
		var items []byte
		err := rows.Scan(&inv.ID, &inv.InvoiceNumber, &inv.UserID, &inv.LawyerID, &inv.CaseID,
			&inv.Status, &items, &inv.Subtotal, &inv.TaxAmount, &inv.TaxPercentage,
			&inv.DiscountAmount, &inv.TotalAmount, &inv.PaidAmount, &inv.Notes, &inv.DueDate,
			&inv.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan invoice row", zap.Error(err))
			return nil, err
		}
		if len(items) > 0 {
			if err := json.Unmarshal(items, &inv.LineItems); err != nil {
				return nil, err
			}
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}
