package paymentservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/otr-legal/otr-backend/internal/domain"
	"github.com/otr-legal/otr-backend/internal/pg"
	"github.com/otr-legal/otr-backend/internal/stripeclient"
)

type Repo interface {
	Save(ctx context.Context, p *domain.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	FindByCaseID(ctx context.Context, caseID uuid.UUID) (*domain.Payment, error)
	FindByIntentID(ctx context.Context, intentID string) (*domain.Payment, error)
	Confirm(ctx context.Context, id uuid.UUID, chargeID string, feeAmount, feePercent, payoutAmount float64) (bool, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus) error
	RequestRefund(ctx context.Context, id uuid.UUID, amount float64, reason string, status domain.RefundStatus, at time.Time) error
	CompleteRefund(ctx context.Context, id uuid.UUID, stripeRefundID string, at time.Time) error
	RejectRefund(ctx context.Context, id uuid.UUID) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Payment, error)
	FindByLawyerID(ctx context.Context, lawyerID uuid.UUID) ([]domain.Payment, error)
	FindPendingRefunds(ctx context.Context) ([]domain.Payment, error)
	List(ctx context.Context, limit, offset int) ([]domain.Payment, int, error)
	SaveInvoice(ctx context.Context, inv *domain.Invoice) error
	FindInvoicesByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Invoice, error)
}

type CaseRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Case, error)
	MarkPaid(ctx context.Context, caseID, paymentID uuid.UUID, actualPrice float64, paidAt time.Time) error
	MarkRefunded(ctx context.Context, caseID uuid.UUID, refundAmount float64) error
	UpdateStatus(ctx context.Context, caseID uuid.UUID, status domain.CaseStatus, note string, actorID uuid.UUID) error
}

type LawyerRepo interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Lawyer, error)
}

type Service struct {
	repo       Repo
	caseRepo   CaseRepo
	lawyerRepo LawyerRepo
	processor  stripeclient.Processor
	txManager  pg.TXManager
	feePercent float64
}

func New(repo Repo, caseRepo CaseRepo, lawyerRepo LawyerRepo, processor stripeclient.Processor, txManager pg.TXManager, feePercent float64) *Service {
	return &Service{
		repo:       repo,
		caseRepo:   caseRepo,
		lawyerRepo: lawyerRepo,
		processor:  processor,
		txManager:  txManager,
		feePercent: feePercent,
	}
}

var (
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrCaseNotFound        = errors.New("case not found")
	ErrCaseAlreadyPaid     = errors.New("case already paid")
	ErrPaymentNotCompleted = errors.New("payment not completed")
	ErrRefundNotPending    = errors.New("refund not pending")
	ErrAlreadyRefunded     = errors.New("payment already refunded")
	ErrNotAllowed          = errors.New("not allowed")
)

func newTransactionID(now time.Time) string {
	return fmt.Sprintf("TXN-%d-%06d", now.UnixMilli(), rand.Intn(1000000))
}

// round2 keeps ledger amounts at cent precision so the fee split always sums
// back to the charged amount.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CreateIntent opens a Stripe payment intent for a case's quoted price and
// records the pending ledger entry.
func (s *Service) CreateIntent(ctx context.Context, caseID, userID uuid.UUID) (*domain.Payment, string, error) {
	c, err := s.caseRepo.FindByID(ctx, caseID)
	if err != nil {
		return nil, "", err
	}
	if c == nil {
		return nil, "", ErrCaseNotFound
	}
	if c.UserID != userID {
		return nil, "", ErrNotAllowed
	}
	if c.PaymentStatus == domain.CasePaymentPaid {
		return nil, "", ErrCaseAlreadyPaid
	}

	intent, err := s.processor.CreateIntent(c.QuotedPrice, "usd", map[string]string{
		"case_id":     c.ID.String(),
		"case_number": c.CaseNumber,
	})
	if err != nil {
		zap.L().Error("can't create payment intent", zap.Error(err))
		return nil, "", err
	}

	payment := &domain.Payment{
		CaseID:         c.ID,
		UserID:         userID,
		LawyerID:       c.LawyerID,
		Amount:         c.QuotedPrice,
		Currency:       "usd",
		Type:           domain.PaymentTypeCase,
		Status:         domain.PaymentPending,
		TransactionID:  newTransactionID(time.Now()),
		StripeIntentID: intent.ID,
	}
	if err := s.repo.Save(ctx, payment); err != nil {
		return nil, "", err
	}
	return payment, intent.ClientSecret, nil
}

// Confirm verifies the intent with Stripe, splits the platform fee from the
// lawyer payout and marks the case paid. Confirming an already confirmed
// payment is a no-op.
func (s *Service) Confirm(ctx context.Context, paymentID, userID uuid.UUID) (*domain.Payment, error) {
	payment, err := s.repo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	if payment.UserID != userID {
		return nil, ErrNotAllowed
	}

	intent, err := s.processor.RetrieveIntent(payment.StripeIntentID)
	if err != nil {
		zap.L().Error("can't retrieve payment intent", zap.Error(err))
		return nil, err
	}
	if intent.Status != stripeclient.IntentSucceeded {
		return nil, ErrPaymentNotCompleted
	}

	return s.settle(ctx, payment, intent.ChargeID)
}

// HandleIntentSucceeded settles a payment from a webhook delivery. Unknown
// intents are ignored so replays of foreign events do not fail the endpoint.
func (s *Service) HandleIntentSucceeded(ctx context.Context, intentID, chargeID string) error {
	payment, err := s.repo.FindByIntentID(ctx, intentID)
	if err != nil {
		return err
	}
	if payment == nil {
		zap.L().Info("webhook for unknown intent", zap.String("intent_id", intentID))
		return nil
	}
	_, err = s.settle(ctx, payment, chargeID)
	return err
}

func (s *Service) settle(ctx context.Context, payment *domain.Payment, chargeID string) (*domain.Payment, error) {
	feeAmount := round2(payment.Amount * s.feePercent / 100)
	payoutAmount := round2(payment.Amount - feeAmount)

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		confirmed, err := s.repo.Confirm(ctx, payment.ID, chargeID, feeAmount, s.feePercent, payoutAmount)
		if err != nil {
			return err
		}
		if !confirmed {
			zap.L().Info("payment already confirmed", zap.String("payment_id", payment.ID.String()))
			return nil
		}
		now := time.Now()
		if err := s.caseRepo.MarkPaid(ctx, payment.CaseID, payment.ID, payment.Amount, now); err != nil {
			return err
		}
		c, err := s.caseRepo.FindByID(ctx, payment.CaseID)
		if err != nil {
			return err
		}
		if c != nil && c.Status == domain.CaseAssigned {
			return s.caseRepo.UpdateStatus(ctx, payment.CaseID, domain.CaseInProgress,
				"Payment received, case in progress", payment.UserID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	payment.Status = domain.PaymentCompleted
	payment.StripeChargeID = chargeID
	payment.PlatformFeeAmount = feeAmount
	payment.PlatformFeePercent = s.feePercent
	payment.PayoutAmount = payoutAmount
	payment.PayoutStatus = domain.PayoutPending
	zap.L().Info("payment confirmed",
		zap.String("payment_id", payment.ID.String()),
		zap.Float64("amount", payment.Amount),
		zap.Float64("platform_fee", feeAmount),
		zap.Float64("payout", payoutAmount))
	return payment, nil
}

// RequestRefund queues a refund for review. A guilty outcome entitles the
// client to their money back, so those refunds are approved and processed
// immediately.
func (s *Service) RequestRefund(ctx context.Context, paymentID, userID uuid.UUID, reason string) (*domain.Payment, error) {
	payment, err := s.repo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	if payment.UserID != userID {
		return nil, ErrNotAllowed
	}
	if payment.Status != domain.PaymentCompleted {
		return nil, ErrPaymentNotCompleted
	}
	if payment.RefundStatus != domain.RefundNone && payment.RefundStatus != domain.RefundRejected {
		return nil, ErrAlreadyRefunded
	}

	c, err := s.caseRepo.FindByID(ctx, payment.CaseID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if c != nil && c.OutcomeType == domain.OutcomeGuilty {
		if err := s.repo.RequestRefund(ctx, payment.ID, payment.Amount, reason, domain.RefundApproved, now); err != nil {
			return nil, err
		}
		payment.RefundStatus = domain.RefundApproved
		payment.RefundAmount = &payment.Amount
		return s.executeRefund(ctx, payment)
	}

	if err := s.repo.RequestRefund(ctx, payment.ID, payment.Amount, reason, domain.RefundPending, now); err != nil {
		return nil, err
	}
	payment.RefundStatus = domain.RefundPending
	payment.RefundAmount = &payment.Amount
	payment.RefundReason = reason
	payment.RefundRequestedAt = &now
	return payment, nil
}

// ProcessRefund resolves a queued refund. The Stripe call runs before any
// local mutation so a processor failure leaves the request pending.
func (s *Service) ProcessRefund(ctx context.Context, paymentID uuid.UUID, approve bool) (*domain.Payment, error) {
	payment, err := s.repo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	if payment.RefundStatus != domain.RefundPending && payment.RefundStatus != domain.RefundApproved {
		return nil, ErrRefundNotPending
	}

	if !approve {
		if err := s.repo.RejectRefund(ctx, payment.ID); err != nil {
			return nil, err
		}
		payment.RefundStatus = domain.RefundRejected
		return payment, nil
	}
	return s.executeRefund(ctx, payment)
}

func (s *Service) executeRefund(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	amount := payment.Amount
	if payment.RefundAmount != nil {
		amount = *payment.RefundAmount
	}

	refundID, err := s.processor.CreateRefund(payment.StripeChargeID, amount)
	if err != nil {
		zap.L().Error("can't create refund", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.CompleteRefund(ctx, payment.ID, refundID, now); err != nil {
			return err
		}
		if err := s.caseRepo.MarkRefunded(ctx, payment.CaseID, amount); err != nil {
			return err
		}
		return s.caseRepo.UpdateStatus(ctx, payment.CaseID, domain.CaseClosed,
			"Case closed after refund", payment.UserID)
	})
	if err != nil {
		return nil, err
	}
	payment.RefundStatus = domain.RefundCompleted
	payment.StripeRefundID = refundID
	payment.RefundProcessedAt = &now
	payment.Status = domain.PaymentRefunded
	zap.L().Info("refund processed",
		zap.String("payment_id", payment.ID.String()),
		zap.Float64("amount", amount))
	return payment, nil
}

func (s *Service) GetPayment(ctx context.Context, paymentID, requesterID uuid.UUID, role domain.Role) (*domain.Payment, error) {
	payment, err := s.repo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	if role != domain.RoleAdmin && payment.UserID != requesterID {
		return nil, ErrNotAllowed
	}
	return payment, nil
}

// GetHistory returns the payments visible to the requester: clients see their
// own charges, lawyers their completed earnings.
func (s *Service) GetHistory(ctx context.Context, requesterID uuid.UUID, role domain.Role) ([]domain.Payment, error) {
	if role == domain.RoleLawyer {
		lawyer, err := s.lawyerRepo.FindByUserID(ctx, requesterID)
		if err != nil {
			return nil, err
		}
		if lawyer == nil {
			return nil, ErrNotAllowed
		}
		return s.repo.FindByLawyerID(ctx, lawyer.ID)
	}
	return s.repo.FindByUserID(ctx, requesterID)
}

func (s *Service) ListPayments(ctx context.Context, limit, offset int) ([]domain.Payment, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) GetPendingRefunds(ctx context.Context) ([]domain.Payment, error) {
	return s.repo.FindPendingRefunds(ctx)
}

func newInvoiceNumber(userID uuid.UUID, now time.Time) string {
	id := userID.String()
	return fmt.Sprintf("INV-%s-%s", id[:8], now.Format("200601"))
}

// invoiceTotals folds the line items into the billed amounts. Tax applies to
// the full subtotal and the discount comes off after tax.
func invoiceTotals(items []domain.LineItem, taxPercent, discount float64) (subtotal, tax, total float64) {
	for _, item := range items {
		subtotal += item.Quantity * item.UnitPrice
	}
	subtotal = round2(subtotal)
	tax = round2(subtotal * taxPercent / 100)
	total = round2(subtotal + tax - discount)
	return subtotal, tax, total
}

// IssueInvoice builds an invoice for a paid case: the representation fee plus
// any extra line items, with tax and discount applied.
func (s *Service) IssueInvoice(ctx context.Context, caseID uuid.UUID, extra []domain.LineItem, taxPercent, discount float64) (*domain.Invoice, error) {
	c, err := s.caseRepo.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCaseNotFound
	}
	if c.PaymentStatus != domain.CasePaymentPaid {
		return nil, ErrPaymentNotCompleted
	}

	amount := c.QuotedPrice
	if c.ActualPrice != nil {
		amount = *c.ActualPrice
	}
	items := append([]domain.LineItem{{
		Description: fmt.Sprintf("Legal representation for case %s", c.CaseNumber),
		Quantity:    1,
		UnitPrice:   amount,
	}}, extra...)
	subtotal, tax, total := invoiceTotals(items, taxPercent, discount)

	now := time.Now()
	inv := &domain.Invoice{
		InvoiceNumber:  newInvoiceNumber(c.UserID, now),
		UserID:         c.UserID,
		LawyerID:       c.LawyerID,
		CaseID:         &c.ID,
		Status:         "paid",
		LineItems:      items,
		Subtotal:       subtotal,
		TaxAmount:      tax,
		TaxPercentage:  taxPercent,
		DiscountAmount: discount,
		TotalAmount:    total,
		PaidAmount:     total,
		DueDate:        now,
	}
	if err := s.repo.SaveInvoice(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *Service) GetInvoices(ctx context.Context, userID uuid.UUID) ([]domain.Invoice, error) {
	return s.repo.FindInvoicesByUserID(ctx, userID)
}
