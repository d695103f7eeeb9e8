package businessservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/otr-legal/otr-backend/internal/domain"
	"github.com/otr-legal/otr-backend/internal/pg"
)

type Repo interface {
	FindPlans(ctx context.Context) ([]domain.BusinessPlan, error)
	FindPlanByID(ctx context.Context, id uuid.UUID) (*domain.BusinessPlan, error)
	SaveAccount(ctx context.Context, a *domain.BusinessAccount) error
	FindAccountByID(ctx context.Context, id uuid.UUID) (*domain.BusinessAccount, error)
	FindAccountByCustomerID(ctx context.Context, customerID string) (*domain.BusinessAccount, error)
	ListAccounts(ctx context.Context, limit, offset int) ([]domain.BusinessAccount, int, error)
	UpdateSubscription(ctx context.Context, accountID uuid.UUID, subscriptionID, status string) error
	SetCustomerID(ctx context.Context, accountID uuid.UUID, customerID string) error
	AddEmployee(ctx context.Context, e *domain.BusinessEmployee) error
	FindEmployees(ctx context.Context, businessID uuid.UUID) ([]domain.BusinessEmployee, error)
	FindEmployee(ctx context.Context, businessID, userID uuid.UUID) (*domain.BusinessEmployee, error)
	RemoveEmployee(ctx context.Context, businessID, userID uuid.UUID) (bool, error)
	IncrementUsage(ctx context.Context, businessID uuid.UUID, year, month int, extra bool, extraCost float64) (*domain.BusinessUsage, error)
	FindUsage(ctx context.Context, businessID uuid.UUID, year, month int) (*domain.BusinessUsage, error)
	SaveInvoice(ctx context.Context, inv *domain.BusinessInvoice) error
	FindInvoices(ctx context.Context, businessID uuid.UUID) ([]domain.BusinessInvoice, error)
}

type FineRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.FineType, error)
}

type StripeClient interface {
	CreateCustomer(email, name, description string) (string, error)
	CreateCheckoutSession(priceID, customerID, successURL, cancelURL string) (string, error)
}

type Service struct {
	repo       Repo
	fineRepo   FineRepo
	stripe     StripeClient
	txManager  pg.TXManager
	vatPercent float64
}

func New(repo Repo, fineRepo FineRepo, stripe StripeClient, txManager pg.TXManager, vatPercent float64) *Service {
	return &Service{
		repo:       repo,
		fineRepo:   fineRepo,
		stripe:     stripe,
		txManager:  txManager,
		vatPercent: vatPercent,
	}
}

var (
	ErrPlanNotFound        = errors.New("plan not found")
	ErrAccountNotFound     = errors.New("business account not found")
	ErrEmployeeExists      = errors.New("employee already added")
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrSubscriptionExpired = errors.New("subscription not active")
	ErrFineTypeNotFound    = errors.New("fine type not found")
	ErrNotAllowed          = errors.New("not allowed")
)

// ExtraFineCost is charged per fine submitted over the plan's monthly limit.
const ExtraFineCost = 50.0

// usageWarningShare is the plan usage fraction past which submissions carry a
// warning.
const usageWarningShare = 0.8

// CreateAccount registers a business on a plan, opens its Stripe customer and
// enrolls the creating user as the admin employee.
func (s *Service) CreateAccount(ctx context.Context, account *domain.BusinessAccount, creator *domain.User) (*domain.BusinessAccount, error) {
	plan, err := s.repo.FindPlanByID(ctx, account.PlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	customerID, err := s.stripe.CreateCustomer(account.ContactEmail, account.CompanyName,
		fmt.Sprintf("Business account on plan %s", plan.Name))
	if err != nil {
		zap.L().Error("can't create stripe customer", zap.Error(err))
		return nil, err
	}
	account.StripeCustomerID = customerID
	account.SubscriptionStatus = "inactive"
	account.AccountManagerID = creator.ID

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.SaveAccount(ctx, account); err != nil {
			return err
		}
		employee := &domain.BusinessEmployee{
			BusinessID: account.ID,
			UserID:     creator.ID,
			FullName:   strings.TrimSpace(creator.FirstName + " " + creator.LastName),
			Email:      creator.Email,
			Phone:      creator.Phone,
			Role:       "admin",
			AddedBy:    creator.ID,
		}
		return s.repo.AddEmployee(ctx, employee)
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("business account created",
		zap.String("business_id", account.ID.String()),
		zap.String("plan", plan.Name))
	return account, nil
}

func (s *Service) GetPlans(ctx context.Context) ([]domain.BusinessPlan, error) {
	return s.repo.FindPlans(ctx)
}

func (s *Service) GetAccount(ctx context.Context, businessID, requesterID uuid.UUID, role domain.Role) (*domain.BusinessAccount, error) {
	account, err := s.repo.FindAccountByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if err := s.authorize(ctx, account, requesterID, role); err != nil {
		return nil, err
	}
	return account, nil
}

// authorize allows admins, business support staff and the account's own
// employees.
func (s *Service) authorize(ctx context.Context, account *domain.BusinessAccount, requesterID uuid.UUID, role domain.Role) error {
	if role == domain.RoleAdmin || role == domain.RoleBusinessSupport {
		return nil
	}
	employee, err := s.repo.FindEmployee(ctx, account.ID, requesterID)
	if err != nil {
		return err
	}
	if employee == nil {
		return ErrNotAllowed
	}
	return nil
}

func (s *Service) ListAccounts(ctx context.Context, limit, offset int) ([]domain.BusinessAccount, int, error) {
	return s.repo.ListAccounts(ctx, limit, offset)
}

func (s *Service) AddEmployee(ctx context.Context, businessID, requesterID uuid.UUID, role domain.Role, employee *domain.BusinessEmployee) (*domain.BusinessEmployee, error) {
	account, err := s.repo.FindAccountByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if err := s.authorize(ctx, account, requesterID, role); err != nil {
		return nil, err
	}
	existing, err := s.repo.FindEmployee(ctx, businessID, employee.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmployeeExists
	}
	employee.BusinessID = businessID
	employee.AddedBy = requesterID
	if employee.Role == "" {
		employee.Role = "employee"
	}
	if err := s.repo.AddEmployee(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *Service) ListEmployees(ctx context.Context, businessID, requesterID uuid.UUID, role domain.Role) ([]domain.BusinessEmployee, error) {
	account, err := s.repo.FindAccountByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if err := s.authorize(ctx, account, requesterID, role); err != nil {
		return nil, err
	}
	return s.repo.FindEmployees(ctx, businessID)
}

func (s *Service) RemoveEmployee(ctx context.Context, businessID, userID, requesterID uuid.UUID, role domain.Role) error {
	account, err := s.repo.FindAccountByID(ctx, businessID)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}
	if err := s.authorize(ctx, account, requesterID, role); err != nil {
		return err
	}
	removed, err := s.repo.RemoveEmployee(ctx, businessID, userID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrEmployeeNotFound
	}
	return nil
}

// FineSubmission reports the outcome of handing in a fine against the plan.
type FineSubmission struct {
	Usage     *domain.BusinessUsage
	FineType  *domain.FineType
	ExtraCost float64
	Warning   string
}

// SubmitFine records one fine against the current month. Submissions over the
// plan limit still go through but accrue the per-fine surcharge; nearing the
// limit produces a warning for the caller to surface.
func (s *Service) SubmitFine(ctx context.Context, businessID, requesterID uuid.UUID, role domain.Role, fineTypeID uuid.UUID) (*FineSubmission, error) {
	account, err := s.repo.FindAccountByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if err := s.authorize(ctx, account, requesterID, role); err != nil {
		return nil, err
	}
	if account.SubscriptionStatus != "active" {
		return nil, ErrSubscriptionExpired
	}

	fineType, err := s.fineRepo.FindByID(ctx, fineTypeID)
	if err != nil {
		return nil, err
	}
	if fineType == nil || !fineType.IsActive {
		return nil, ErrFineTypeNotFound
	}

	plan, err := s.repo.FindPlanByID(ctx, account.PlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	now := time.Now()
	year, month := now.Year(), int(now.Month())

	extra := false
	extraCost := 0.0
	if plan.MaxFinesPerMonth != nil {
		usage, err := s.repo.FindUsage(ctx, businessID, year, month)
		if err != nil {
			return nil, err
		}
		submitted := 0
		if usage != nil {
			submitted = usage.FinesSubmitted
		}
		if submitted >= *plan.MaxFinesPerMonth {
			extra = true
			extraCost = ExtraFineCost
		}
	}

	usage, err := s.repo.IncrementUsage(ctx, businessID, year, month, extra, extraCost)
	if err != nil {
		return nil, err
	}

	result := &FineSubmission{
		Usage:     usage,
		FineType:  fineType,
		ExtraCost: extraCost,
	}
	if plan.MaxFinesPerMonth != nil {
		limit := *plan.MaxFinesPerMonth
		if extra {
			result.Warning = fmt.Sprintf("Plan limit of %d fines exceeded, surcharge of %.0f applied", limit, ExtraFineCost)
		} else if float64(usage.FinesSubmitted) >= usageWarningShare*float64(limit) {
			result.Warning = fmt.Sprintf("Used %d of %d fines in the current plan month", usage.FinesSubmitted, limit)
		}
	}
	zap.L().Info("fine submitted",
		zap.String("business_id", businessID.String()),
		zap.Int("submitted", usage.FinesSubmitted),
		zap.Bool("extra", extra))
	return result, nil
}

func (s *Service) GetUsage(ctx context.Context, businessID, requesterID uuid.UUID, role domain.Role) (*domain.BusinessUsage, error) {
	account, err := s.repo.FindAccountByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if err := s.authorize(ctx, account, requesterID, role); err != nil {
		return nil, err
	}
	now := time.Now()
	usage, err := s.repo.FindUsage(ctx, businessID, now.Year(), int(now.Month()))
	if err != nil {
		return nil, err
	}
	if usage == nil {
		usage = &domain.BusinessUsage{BusinessID: businessID, Year: now.Year(), Month: int(now.Month())}
	}
	return usage, nil
}

func businessInvoiceNumber(businessID uuid.UUID, period time.Time) string {
	id := businessID.String()
	return fmt.Sprintf("INV-%s-%s", id[:8], period.Format("200601"))
}

// IssueMonthlyInvoice bills a finished month: plan fee, setup fee on the first
// invoice and the extra-fine surcharges, plus VAT on the subtotal.
func (s *Service) IssueMonthlyInvoice(ctx context.Context, businessID uuid.UUID, year, month int) (*domain.BusinessInvoice, error) {
	account, err := s.repo.FindAccountByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	plan, err := s.repo.FindPlanByID(ctx, account.PlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	periodStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0).Add(-time.Second)

	setupFee := 0.0
	previous, err := s.repo.FindInvoices(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if len(previous) == 0 {
		setupFee = plan.SetupFee
	}

	extraCount := 0
	extraCost := 0.0
	usage, err := s.repo.FindUsage(ctx, businessID, year, month)
	if err != nil {
		return nil, err
	}
	if usage != nil {
		extraCount = usage.FinesExtra
		extraCost = usage.ExtraFineCost
	}

	subtotal := plan.MonthlyPrice + setupFee + extraCost
	tax := math.Round(subtotal * s.vatPercent / 100)

	inv := &domain.BusinessInvoice{
		BusinessID:      businessID,
		InvoiceNumber:   businessInvoiceNumber(businessID, periodStart),
		PeriodStart:     periodStart,
		PeriodEnd:       periodEnd,
		PlanFee:         plan.MonthlyPrice,
		SetupFee:        setupFee,
		ExtraFinesCount: extraCount,
		ExtraFinesCost:  extraCost,
		Subtotal:        subtotal,
		Tax:             tax,
		Total:           subtotal + tax,
	}
	if err := s.repo.SaveInvoice(ctx, inv); err != nil {
		return nil, err
	}
	zap.L().Info("business invoice issued",
		zap.String("business_id", businessID.String()),
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.Float64("total", inv.Total))
	return inv, nil
}

func (s *Service) GetInvoices(ctx context.Context, businessID, requesterID uuid.UUID, role domain.Role) ([]domain.BusinessInvoice, error) {
	account, err := s.repo.FindAccountByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if err := s.authorize(ctx, account, requesterID, role); err != nil {
		return nil, err
	}
	return s.repo.FindInvoices(ctx, businessID)
}

// StartCheckout opens a Stripe checkout session for the account's plan
// subscription.
func (s *Service) StartCheckout(ctx context.Context, businessID, requesterID uuid.UUID, role domain.Role, successURL, cancelURL string) (string, error) {
	account, err := s.repo.FindAccountByID(ctx, businessID)
	if err != nil {
		return "", err
	}
	if account == nil {
		return "", ErrAccountNotFound
	}
	if err := s.authorize(ctx, account, requesterID, role); err != nil {
		return "", err
	}
	plan, err := s.repo.FindPlanByID(ctx, account.PlanID)
	if err != nil {
		return "", err
	}
	if plan == nil {
		return "", ErrPlanNotFound
	}
	url, err := s.stripe.CreateCheckoutSession(plan.StripePriceID, account.StripeCustomerID, successURL, cancelURL)
	if err != nil {
		zap.L().Error("can't create checkout session", zap.Error(err))
		return "", err
	}
	return url, nil
}

// ReconcileSubscription applies a Stripe subscription event to the matching
// account. Replayed events write the same values again, leaving state
// unchanged; events for unknown customers are ignored.
func (s *Service) ReconcileSubscription(ctx context.Context, customerID, subscriptionID, status string) error {
	account, err := s.repo.FindAccountByCustomerID(ctx, customerID)
	if err != nil {
		return err
	}
	if account == nil {
		zap.L().Info("subscription event for unknown customer", zap.String("customer_id", customerID))
		return nil
	}
	if subscriptionID == "" {
		subscriptionID = account.SubscriptionID
	}
	zap.L().Info("subscription reconciled",
		zap.String("business_id", account.ID.String()),
		zap.String("status", status))
	return s.repo.UpdateSubscription(ctx, account.ID, subscriptionID, status)
}
