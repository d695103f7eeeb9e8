package adminservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/otr-legal/otr-backend/internal/domain"
)

type UserRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateRole(ctx context.Context, userID uuid.UUID, role domain.Role) error
	UpdateQuotaLimit(ctx context.Context, userID uuid.UUID, casesPerMonth int) error
	List(ctx context.Context, limit, offset int) ([]domain.User, int, error)
}

type FineRepo interface {
	Save(ctx context.Context, f *domain.FineType) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.FineType, error)
	Search(ctx context.Context, category, name string) ([]domain.FineType, error)
	Update(ctx context.Context, f *domain.FineType) error
	Deactivate(ctx context.Context, id uuid.UUID) (bool, error)
}

type Service struct {
	userRepo UserRepo
	fineRepo FineRepo
}

func New(userRepo UserRepo, fineRepo FineRepo) *Service {
	return &Service{
		userRepo: userRepo,
		fineRepo: fineRepo,
	}
}

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrFineTypeNotFound = errors.New("fine type not found")
	ErrUnknownRole      = errors.New("unknown role")
)

func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int, error) {
	return s.userRepo.List(ctx, limit, offset)
}

func (s *Service) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) SetUserRole(ctx context.Context, userID uuid.UUID, role domain.Role) error {
	switch role {
	case domain.RoleUser, domain.RoleLawyer, domain.RoleAdmin, domain.RoleBusinessSupport:
	default:
		return ErrUnknownRole
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	zap.L().Info("user role changed",
		zap.String("user_id", userID.String()),
		zap.String("role", string(role)))
	return s.userRepo.UpdateRole(ctx, userID, role)
}

func (s *Service) SetUserQuota(ctx context.Context, userID uuid.UUID, casesPerMonth int) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.UpdateQuotaLimit(ctx, userID, casesPerMonth)
}

func (s *Service) CreateFineType(ctx context.Context, f *domain.FineType) (*domain.FineType, error) {
	f.IsActive = true
	if err := s.fineRepo.Save(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) SearchFineTypes(ctx context.Context, category, name string) ([]domain.FineType, error) {
	return s.fineRepo.Search(ctx, category, name)
}

func (s *Service) UpdateFineType(ctx context.Context, f *domain.FineType) (*domain.FineType, error) {
	existing, err := s.fineRepo.FindByID(ctx, f.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrFineTypeNotFound
	}
	if err := s.fineRepo.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) DeactivateFineType(ctx context.Context, id uuid.UUID) error {
	ok, err := s.fineRepo.Deactivate(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrFineTypeNotFound
	}
	return nil
}
