package lawyerservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/otr-legal/otr-backend/internal/domain"
	"github.com/otr-legal/otr-backend/internal/pg"
	lawyerrepo "github.com/otr-legal/otr-backend/internal/repo/lawyer-repo"
)

type Repo interface {
	Save(ctx context.Context, lawyer *domain.Lawyer) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Lawyer, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Lawyer, error)
	FindByLicense(ctx context.Context, licenseNumber string) (*domain.Lawyer, error)
	UpdateProfile(ctx context.Context, lawyer *domain.Lawyer) error
	SetAvailability(ctx context.Context, lawyerID uuid.UUID, isAvailable bool) error
	Approve(ctx context.Context, lawyerID, approvedBy uuid.UUID, at time.Time) error
	Reject(ctx context.Context, lawyerID uuid.UUID, reason string) error
	FindPending(ctx context.Context) ([]domain.Lawyer, error)
	Search(ctx context.Context, state, specialization string, minRating float64, sortBy lawyerrepo.SearchSort, limit int) ([]domain.Lawyer, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateRole(ctx context.Context, userID uuid.UUID, role domain.Role) error
}

type Service struct {
	repo      Repo
	userRepo  UserRepo
	txManager pg.TXManager
}

func New(repo Repo, userRepo UserRepo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		userRepo:  userRepo,
		txManager: txManager,
	}
}

var (
	ErrLicenseTaken      = errors.New("license number already registered")
	ErrAlreadyRegistered = errors.New("user already has a lawyer profile")
	ErrLawyerNotFound    = errors.New("lawyer not found")
)

const defaultMaxCases = 10

// Register creates a lawyer profile for an existing user and promotes the
// user's role. The profile stays unapproved until an admin reviews it.
func (s *Service) Register(ctx context.Context, userID uuid.UUID, lawyer *domain.Lawyer) (*domain.Lawyer, error) {
	existing, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyRegistered
	}
	byLicense, err := s.repo.FindByLicense(ctx, lawyer.LicenseNumber)
	if err != nil {
		return nil, err
	}
	if byLicense != nil {
		zap.L().Info("license already registered", zap.String("license", lawyer.LicenseNumber))
		return nil, ErrLicenseTaken
	}

	lawyer.UserID = userID
	if lawyer.MaxCases <= 0 {
		lawyer.MaxCases = defaultMaxCases
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.Save(ctx, lawyer); err != nil {
			return err
		}
		return s.userRepo.UpdateRole(ctx, userID, domain.RoleLawyer)
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("lawyer registered", zap.String("lawyer_id", lawyer.ID.String()))
	return lawyer, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lawyer, error) {
	lawyer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lawyer == nil {
		return nil, ErrLawyerNotFound
	}
	return lawyer, nil
}

func (s *Service) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Lawyer, error) {
	lawyer, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if lawyer == nil {
		return nil, ErrLawyerNotFound
	}
	return lawyer, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, update *domain.Lawyer) (*domain.Lawyer, error) {
	lawyer, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if lawyer == nil {
		return nil, ErrLawyerNotFound
	}

	lawyer.BarAssociation = update.BarAssociation
	lawyer.YearsOfExperience = update.YearsOfExperience
	lawyer.Specializations = update.Specializations
	lawyer.Jurisdictions = update.Jurisdictions
	lawyer.Bio = update.Bio
	if update.MaxCases > 0 {
		lawyer.MaxCases = update.MaxCases
	}
	if update.BankAccountNumber != "" {
		lawyer.BankAccountNumber = update.BankAccountNumber
		lawyer.BankRoutingNumber = update.BankRoutingNumber
		lawyer.BankAccountHolder = update.BankAccountHolder
	}

	if err := s.repo.UpdateProfile(ctx, lawyer); err != nil {
		return nil, err
	}
	return lawyer, nil
}

func (s *Service) SetAvailability(ctx context.Context, userID uuid.UUID, isAvailable bool) error {
	lawyer, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if lawyer == nil {
		return ErrLawyerNotFound
	}
	return s.repo.SetAvailability(ctx, lawyer.ID, isAvailable)
}

func (s *Service) Search(ctx context.Context, state, specialization string, minRating float64, sortBy string, limit int) ([]domain.Lawyer, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.Search(ctx, state, specialization, minRating, lawyerrepo.SearchSort(sortBy), limit)
}

func (s *Service) Approve(ctx context.Context, lawyerID, approvedBy uuid.UUID) error {
	lawyer, err := s.repo.FindByID(ctx, lawyerID)
	if err != nil {
		return err
	}
	if lawyer == nil {
		return ErrLawyerNotFound
	}
	zap.L().Info("lawyer approved", zap.String("lawyer_id", lawyerID.String()))
	return s.repo.Approve(ctx, lawyerID, approvedBy, time.Now())
}

func (s *Service) Reject(ctx context.Context, lawyerID uuid.UUID, reason string) error {
	lawyer, err := s.repo.FindByID(ctx, lawyerID)
	if err != nil {
		return err
	}
	if lawyer == nil {
		return ErrLawyerNotFound
	}
	zap.L().Info("lawyer rejected", zap.String("lawyer_id", lawyerID.String()), zap.String("reason", reason))
	return s.repo.Reject(ctx, lawyerID, reason)
}

func (s *Service) GetPending(ctx context.Context) ([]domain.Lawyer, error) {
	return s.repo.FindPending(ctx)
}
