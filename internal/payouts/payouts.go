package payouts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/otr-legal/otr-backend/internal/config"
	"github.com/otr-legal/otr-backend/internal/domain"
	"github.com/otr-legal/otr-backend/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var processingPayouts sync.Map

// PaymentRepo is the slice of the payment repository the dispatcher needs.
type PaymentRepo interface {
	FindPayoutsPending(ctx context.Context, limit int) ([]domain.Payment, error)
	ClaimPayout(ctx context.Context, id uuid.UUID) (bool, error)
	CompletePayout(ctx context.Context, id uuid.UUID, at time.Time) error
	FailPayout(ctx context.Context, id uuid.UUID) error
}

type LawyerRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Lawyer, error)
}

// Request is the transfer order sent to the bank transfer API.
type Request struct {
	Reference     string  `json:"reference"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	AccountNumber string  `json:"accountNumber"`
	RoutingNumber string  `json:"routingNumber"`
	AccountHolder string  `json:"accountHolder"`
}

type Response struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

type Service struct {
	url         string
	paymentRepo PaymentRepo
	lawyerRepo  LawyerRepo
	client      clients.HTTPClientI
	limit       int
	workerPool  WorkerPoolI
	interval    time.Duration
}

func New(cfg *config.Config, paymentRepo PaymentRepo, lawyerRepo LawyerRepo, client clients.HTTPClientI) *Service {
	return &Service{
		url:         cfg.PayoutAddress,
		paymentRepo: paymentRepo,
		lawyerRepo:  lawyerRepo,
		client:      client,
		limit:       100,
		workerPool:  NewWorkerPool(5),
		interval:    time.Minute,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Payout dispatcher started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping payout dispatcher")
			return
		case <-ticker.C:
			s.processPayouts(ctx)
		}
	}
}

func (s *Service) processPayouts(ctx context.Context) {
	payments, err := s.paymentRepo.FindPayoutsPending(ctx, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch pending payouts", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, payment := range payments {
		payment := payment

		if _, loaded := processingPayouts.LoadOrStore(payment.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingPayouts.Delete(payment.ID)
				return s.handlePayout(ctx, payment)
			})
			if err != nil {
				processingPayouts.Delete(payment.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing payouts", zap.Error(err))
	}
}

func (s *Service) handlePayout(ctx context.Context, payment domain.Payment) error {
	if payment.LawyerID == nil {
		zap.L().Warn("Completed payment has no lawyer, skipping payout", zap.String("paymentID", payment.ID.String()))
		return nil
	}

	lawyer, err := s.lawyerRepo.FindByID(ctx, *payment.LawyerID)
	if err != nil {
		return fmt.Errorf("failed to load lawyer %s: %w", payment.LawyerID, err)
	}
	if lawyer == nil || lawyer.BankAccountNumber == "" || lawyer.BankRoutingNumber == "" {
		zap.L().Warn("Lawyer has no bank details, payout failed", zap.String("paymentID", payment.ID.String()))
		if err := s.paymentRepo.FailPayout(ctx, payment.ID); err != nil {
			return fmt.Errorf("failed to mark payout %s failed: %w", payment.ID, err)
		}
		return nil
	}

	claimed, err := s.paymentRepo.ClaimPayout(ctx, payment.ID)
	if err != nil {
		return fmt.Errorf("failed to claim payout %s: %w", payment.ID, err)
	}
	if !claimed {
		return nil
	}

	if err := s.transfer(ctx, payment, lawyer); err != nil {
		if failErr := s.paymentRepo.FailPayout(ctx, payment.ID); failErr != nil {
			zap.L().Error("Failed to mark payout failed", zap.Error(failErr))
		}
		return err
	}

	if err := s.paymentRepo.CompletePayout(ctx, payment.ID, time.Now()); err != nil {
		return fmt.Errorf("failed to complete payout %s: %w", payment.ID, err)
	}
	zap.L().Info("Payout transferred",
		zap.String("paymentID", payment.ID.String()),
		zap.Float64("amount", payment.PayoutAmount))
	return nil
}

func (s *Service) transfer(ctx context.Context, payment domain.Payment, lawyer *domain.Lawyer) error {
	body, err := json.Marshal(Request{
		Reference:     payment.TransactionID,
		Amount:        payment.PayoutAmount,
		Currency:      payment.Currency,
		AccountNumber: lawyer.BankAccountNumber,
		RoutingNumber: lawyer.BankRoutingNumber,
		AccountHolder: lawyer.BankAccountHolder,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal transfer request: %w", err)
	}

	url := s.url + "/api/transfers"
	var statusCode int
	var respBody []byte
	var respHeaders http.Header

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, respHeaders, err = s.client.Post(url, nil, body)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("transfer %s failed after %d retries: %w", payment.TransactionID, maxRetries, err)
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				s.handleRateLimit(payment, respHeaders, attempt)
				if attempt < maxRetries {
					continue
				}
				return fmt.Errorf("transfer %s rate limited after %d retries", payment.TransactionID, maxRetries)
			case http.StatusOK, http.StatusCreated:
				return s.checkTransfer(payment, respBody)
			default:
				zap.L().Error("Unexpected status code from transfer API",
					zap.Int("status", statusCode),
					zap.String("reference", payment.TransactionID))
				return fmt.Errorf("unexpected status code %d", statusCode)
			}
		}
	}
	return nil
}

func (s *Service) checkTransfer(payment domain.Payment, respBody []byte) error {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse transfer response: %w", err)
	}
	if response.Reference != payment.TransactionID {
		return fmt.Errorf("transfer reference mismatch: expected %s, got %s", payment.TransactionID, response.Reference)
	}
	if response.Status != "accepted" && response.Status != "completed" {
		return fmt.Errorf("transfer %s rejected with status %s", payment.TransactionID, response.Status)
	}
	return nil
}

func (s *Service) handleRateLimit(payment domain.Payment, headers http.Header, attempt int) {
	retryAfter := retryInterval * time.Duration(attempt)
	if v := headers.Get("Retry-After"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn("Transfer API rate limited",
		zap.String("reference", payment.TransactionID),
		zap.Duration("retryAfter", retryAfter))
	time.Sleep(retryAfter)
}
