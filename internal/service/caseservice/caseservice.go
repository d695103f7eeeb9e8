package caseservice

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/otr-legal/otr-backend/internal/domain"
	"github.com/otr-legal/otr-backend/internal/pg"
	"github.com/otr-legal/otr-backend/internal/service/matchservice"
)

type Repo interface {
	Save(ctx context.Context, c *domain.Case) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Case, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Case, error)
	FindByLawyerID(ctx context.Context, lawyerID uuid.UUID) ([]domain.Case, error)
	List(ctx context.Context, limit, offset int) ([]domain.Case, int, error)
	UpdateStatus(ctx context.Context, caseID uuid.UUID, status domain.CaseStatus, note string, actorID uuid.UUID) error
	Timeline(ctx context.Context, caseID uuid.UUID) ([]domain.TimelineEntry, error)
	SetCourtDate(ctx context.Context, caseID uuid.UUID, courtDate time.Time) error
	SetOutcome(ctx context.Context, caseID uuid.UUID, outcome domain.OutcomeType, finalFine *float64, finalPoints *int, notes string) error
	SetRating(ctx context.Context, caseID uuid.UUID, rating int, review string, at time.Time) (bool, error)
	AddDocument(ctx context.Context, doc *domain.CaseDocument) error
	Documents(ctx context.Context, caseID uuid.UUID) ([]domain.CaseDocument, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ConsumeQuota(ctx context.Context, userID uuid.UUID) (bool, error)
	ResetQuota(ctx context.Context, userID uuid.UUID, nextReset time.Time) error
}

type LawyerRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Lawyer, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Lawyer, error)
	ReleaseSlot(ctx context.Context, lawyerID uuid.UUID) error
	UpdateStatistics(ctx context.Context, lawyer *domain.Lawyer) error
	UpdateRating(ctx context.Context, lawyerID uuid.UUID, average float64, count int) error
}

type Matcher interface {
	Match(ctx context.Context, c *domain.Case) (*domain.Lawyer, float64, error)
	Reassign(ctx context.Context, c *domain.Case, lawyerID, actorID uuid.UUID) (*domain.Lawyer, float64, error)
}

type Service struct {
	repo       Repo
	userRepo   UserRepo
	lawyerRepo LawyerRepo
	matcher    Matcher
	txManager  pg.TXManager
}

func New(repo Repo, userRepo UserRepo, lawyerRepo LawyerRepo, matcher Matcher, txManager pg.TXManager) *Service {
	return &Service{
		repo:       repo,
		userRepo:   userRepo,
		lawyerRepo: lawyerRepo,
		matcher:    matcher,
		txManager:  txManager,
	}
}

var (
	ErrCaseNotFound         = errors.New("case not found")
	ErrQuotaExceeded        = errors.New("monthly case quota exceeded")
	ErrInvalidViolationType = errors.New("invalid violation type")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrNotAllowed           = errors.New("not allowed")
	ErrAlreadyRated         = errors.New("case already rated")
	ErrCaseNotFinished      = errors.New("case not finished")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
)

// Flat representation fees quoted at submission time.
const (
	BasePrice     = 249.0
	DUIPrice      = 499.0
	RecklessPrice = 349.0
	CDLPrice      = 299.0
)

// QuotePrice returns the flat fee for a case. DUI and reckless driving carry
// their own rates; a CDL holder pays the commercial rate for everything else.
func QuotePrice(violation domain.ViolationType, isCDLDriver bool) float64 {
	switch violation {
	case domain.ViolationDUI:
		return DUIPrice
	case domain.ViolationReckless:
		return RecklessPrice
	}
	if isCDLDriver {
		return CDLPrice
	}
	return BasePrice
}

var caseSeq atomic.Uint32

func newCaseNumber(now time.Time) string {
	return fmt.Sprintf("OTR-%d-%04d", now.UnixMilli(), caseSeq.Add(1)%10000)
}

// Create submits a new case: the quota is consumed, the price quoted and the
// case stored in pending status, then matching runs. Having no eligible lawyer
// leaves the case pending for manual assignment; a persistence failure during
// assignment surfaces to the caller with the case kept.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, c *domain.Case) (*domain.Case, error) {
	if !c.ViolationType.Valid() {
		return nil, ErrInvalidViolationType
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotAllowed
	}

	now := time.Now()
	if user.QuotaResetAt != nil && !now.Before(*user.QuotaResetAt) {
		if err := s.userRepo.ResetQuota(ctx, userID, now.AddDate(0, 1, 0)); err != nil {
			return nil, err
		}
	}
	ok, err := s.userRepo.ConsumeQuota(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		zap.L().Info("case quota exceeded", zap.String("user_id", userID.String()))
		return nil, ErrQuotaExceeded
	}

	c.UserID = userID
	c.CaseNumber = newCaseNumber(now)
	c.Status = domain.CasePending
	c.QuotedPrice = QuotePrice(c.ViolationType, c.IsCDLDriver)
	c.PaymentStatus = domain.CasePaymentPending

	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}

	lawyer, score, err := s.matcher.Match(ctx, c)
	if errors.Is(err, matchservice.ErrNoLawyerAvailable) {
		zap.L().Warn("no lawyer matched, case left pending",
			zap.String("case_id", c.ID.String()))
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	c.LawyerID = &lawyer.ID
	c.AssignmentScore = &score
	c.Status = domain.CaseAssigned
	return c, nil
}

func (s *Service) GetCase(ctx context.Context, caseID, requesterID uuid.UUID, role domain.Role) (*domain.Case, error) {
	c, err := s.repo.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCaseNotFound
	}
	if err := s.authorize(ctx, c, requesterID, role); err != nil {
		return nil, err
	}
	return c, nil
}

// authorize allows the case owner, the assigned lawyer and admins.
func (s *Service) authorize(ctx context.Context, c *domain.Case, requesterID uuid.UUID, role domain.Role) error {
	if role == domain.RoleAdmin {
		return nil
	}
	if c.UserID == requesterID {
		return nil
	}
	if role == domain.RoleLawyer && c.LawyerID != nil {
		lawyer, err := s.lawyerRepo.FindByUserID(ctx, requesterID)
		if err != nil {
			return err
		}
		if lawyer != nil && lawyer.ID == *c.LawyerID {
			return nil
		}
	}
	return ErrNotAllowed
}

func (s *Service) GetUserCases(ctx context.Context, userID uuid.UUID) ([]domain.Case, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *Service) GetLawyerCases(ctx context.Context, lawyerUserID uuid.UUID) ([]domain.Case, error) {
	lawyer, err := s.lawyerRepo.FindByUserID(ctx, lawyerUserID)
	if err != nil {
		return nil, err
	}
	if lawyer == nil {
		return nil, ErrNotAllowed
	}
	return s.repo.FindByLawyerID(ctx, lawyer.ID)
}

func (s *Service) ListCases(ctx context.Context, limit, offset int) ([]domain.Case, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// UpdateStatus moves a case along the lifecycle. Transitions outside the
// closed table are rejected regardless of who asks.
func (s *Service) UpdateStatus(ctx context.Context, caseID uuid.UUID, status domain.CaseStatus, note string, requesterID uuid.UUID, role domain.Role) (*domain.Case, error) {
	c, err := s.repo.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCaseNotFound
	}
	if err := s.authorize(ctx, c, requesterID, role); err != nil {
		return nil, err
	}
	if !domain.CanTransition(c.Status, status) {
		zap.L().Info("rejected status transition",
			zap.String("case_id", caseID.String()),
			zap.String("from", string(c.Status)),
			zap.String("to", string(status)))
		return nil, ErrInvalidTransition
	}
	if err := s.repo.UpdateStatus(ctx, caseID, status, note, requesterID); err != nil {
		return nil, err
	}
	c.Status = status
	return c, nil
}

func (s *Service) ScheduleCourtDate(ctx context.Context, caseID uuid.UUID, courtDate time.Time, requesterID uuid.UUID, role domain.Role) (*domain.Case, error) {
	c, err := s.repo.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCaseNotFound
	}
	if err := s.authorize(ctx, c, requesterID, role); err != nil {
		return nil, err
	}
	if !domain.CanTransition(c.Status, domain.CaseCourtScheduled) {
		return nil, ErrInvalidTransition
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.SetCourtDate(ctx, caseID, courtDate); err != nil {
			return err
		}
		note := fmt.Sprintf("Court date scheduled for %s", courtDate.Format("2006-01-02"))
		return s.repo.UpdateStatus(ctx, caseID, domain.CaseCourtScheduled, note, requesterID)
	})
	if err != nil {
		return nil, err
	}
	c.Status = domain.CaseCourtScheduled
	c.CourtDate = &courtDate
	return c, nil
}

func outcomeStatus(outcome domain.OutcomeType) (domain.CaseStatus, bool) {
	switch outcome {
	case domain.OutcomeDismissed:
		return domain.CaseDismissed, true
	case domain.OutcomeReduced:
		return domain.CaseReduced, true
	case domain.OutcomeGuilty:
		return domain.CaseLost, true
	}
	return "", false
}

// RecordOutcome finishes a case: the outcome is stored, the terminal status
// entered, the lawyer's slot released and their statistics recomputed.
func (s *Service) RecordOutcome(ctx context.Context, caseID uuid.UUID, outcome domain.OutcomeType, finalFine *float64, finalPoints *int, notes string, requesterID uuid.UUID, role domain.Role) (*domain.Case, error) {
	status, ok := outcomeStatus(outcome)
	if !ok {
		return nil, ErrInvalidTransition
	}
	c, err := s.repo.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCaseNotFound
	}
	if err := s.authorize(ctx, c, requesterID, role); err != nil {
		return nil, err
	}
	if !domain.CanTransition(c.Status, status) {
		return nil, ErrInvalidTransition
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.SetOutcome(ctx, caseID, outcome, finalFine, finalPoints, notes); err != nil {
			return err
		}
		note := fmt.Sprintf("Case resolved: %s", outcome)
		if err := s.repo.UpdateStatus(ctx, caseID, status, note, requesterID); err != nil {
			return err
		}
		if c.LawyerID == nil {
			return nil
		}
		if err := s.lawyerRepo.ReleaseSlot(ctx, *c.LawyerID); err != nil {
			return err
		}
		return s.updateLawyerStatistics(ctx, *c.LawyerID, outcome)
	})
	if err != nil {
		return nil, err
	}
	c.Status = status
	c.OutcomeType = outcome
	return c, nil
}

func (s *Service) updateLawyerStatistics(ctx context.Context, lawyerID uuid.UUID, outcome domain.OutcomeType) error {
	lawyer, err := s.lawyerRepo.FindByID(ctx, lawyerID)
	if err != nil {
		return err
	}
	if lawyer == nil {
		return nil
	}
	lawyer.TotalCases++
	switch outcome {
	case domain.OutcomeDismissed:
		lawyer.CasesDismissed++
	case domain.OutcomeReduced:
		lawyer.CasesReduced++
	}
	lawyer.CalculateSuccessRate()
	return s.lawyerRepo.UpdateStatistics(ctx, lawyer)
}

func (s *Service) CloseCase(ctx context.Context, caseID, requesterID uuid.UUID, role domain.Role) (*domain.Case, error) {
	return s.UpdateStatus(ctx, caseID, domain.CaseClosed, "Case closed", requesterID, role)
}

// RateLawyer records the client's one-time rating and folds it into the
// lawyer's running average.
func (s *Service) RateLawyer(ctx context.Context, caseID, userID uuid.UUID, rating int, review string) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	c, err := s.repo.FindByID(ctx, caseID)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrCaseNotFound
	}
	if c.UserID != userID {
		return ErrNotAllowed
	}
	if !c.Status.Terminal() {
		return ErrCaseNotFinished
	}
	if c.LawyerID == nil {
		return ErrNotAllowed
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.repo.SetRating(ctx, caseID, rating, review, time.Now())
		if err != nil {
			return err
		}
		if !ok {
			return ErrAlreadyRated
		}
		lawyer, err := s.lawyerRepo.FindByID(ctx, *c.LawyerID)
		if err != nil {
			return err
		}
		if lawyer == nil {
			return nil
		}
		newCount := lawyer.RatingCount + 1
		newAverage := (lawyer.RatingAverage*float64(lawyer.RatingCount) + float64(rating)) / float64(newCount)
		return s.lawyerRepo.UpdateRating(ctx, lawyer.ID, newAverage, newCount)
	})
}

func (s *Service) Reassign(ctx context.Context, caseID, lawyerID, actorID uuid.UUID) (*domain.Case, error) {
	c, err := s.repo.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCaseNotFound
	}
	if c.Status != domain.CasePending && c.Status != domain.CaseAssigned {
		return nil, ErrInvalidTransition
	}
	lawyer, score, err := s.matcher.Reassign(ctx, c, lawyerID, actorID)
	if err != nil {
		return nil, err
	}
	c.LawyerID = &lawyer.ID
	c.AssignmentScore = &score
	c.Status = domain.CaseAssigned
	return c, nil
}

func (s *Service) GetTimeline(ctx context.Context, caseID, requesterID uuid.UUID, role domain.Role) ([]domain.TimelineEntry, error) {
	c, err := s.repo.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCaseNotFound
	}
	if err := s.authorize(ctx, c, requesterID, role); err != nil {
		return nil, err
	}
	return s.repo.Timeline(ctx, caseID)
}

func (s *Service) AddDocument(ctx context.Context, caseID, requesterID uuid.UUID, role domain.Role, name, docType, url string) (*domain.CaseDocument, error) {
	c, err := s.repo.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCaseNotFound
	}
	if err := s.authorize(ctx, c, requesterID, role); err != nil {
		return nil, err
	}
	doc := &domain.CaseDocument{
		CaseID:     caseID,
		Name:       name,
		Type:       docType,
		URL:        url,
		UploadedBy: requesterID,
	}
	if err := s.repo.AddDocument(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Service) GetDocuments(ctx context.Context, caseID, requesterID uuid.UUID, role domain.Role) ([]domain.CaseDocument, error) {
	c, err := s.repo.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCaseNotFound
	}
	if err := s.authorize(ctx, c, requesterID, role); err != nil {
		return nil, err
	}
	return s.repo.Documents(ctx, caseID)
}
