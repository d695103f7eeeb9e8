package messageservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/otr-legal/otr-backend/internal/domain"
)

type Repo interface {
	Save(ctx context.Context, m *domain.Message) error
	FindByCaseID(ctx context.Context, caseID uuid.UUID) ([]domain.Message, error)
	MarkRead(ctx context.Context, caseID, readerID uuid.UUID, at time.Time) error
	CountUnread(ctx context.Context, receiverID uuid.UUID) (int, error)
}

type CaseRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Case, error)
}

type LawyerRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Lawyer, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Lawyer, error)
}

type Service struct {
	repo       Repo
	caseRepo   CaseRepo
	lawyerRepo LawyerRepo
}

func New(repo Repo, caseRepo CaseRepo, lawyerRepo LawyerRepo) *Service {
	return &Service{
		repo:       repo,
		caseRepo:   caseRepo,
		lawyerRepo: lawyerRepo,
	}
}

var (
	ErrCaseNotFound   = errors.New("case not found")
	ErrNotParticipant = errors.New("not a case participant")
	ErrNoRecipient    = errors.New("case has no assigned lawyer")
	ErrEmptyContent   = errors.New("message content is empty")
)

// participants resolves the two user ids allowed to talk within a case: the
// client and the assigned lawyer.
func (s *Service) participants(ctx context.Context, c *domain.Case) (client, lawyerUser uuid.UUID, err error) {
	if c.LawyerID == nil {
		return uuid.Nil, uuid.Nil, ErrNoRecipient
	}
	lawyer, err := s.lawyerRepo.FindByID(ctx, *c.LawyerID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if lawyer == nil {
		return uuid.Nil, uuid.Nil, ErrNoRecipient
	}
	return c.UserID, lawyer.UserID, nil
}

// Send delivers a message to the other participant of the case.
func (s *Service) Send(ctx context.Context, caseID, senderID uuid.UUID, content string) (*domain.Message, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	c, err := s.caseRepo.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCaseNotFound
	}
	client, lawyerUser, err := s.participants(ctx, c)
	if err != nil {
		return nil, err
	}

	var receiverID uuid.UUID
	switch senderID {
	case client:
		receiverID = lawyerUser
	case lawyerUser:
		receiverID = client
	default:
		return nil, ErrNotParticipant
	}

	m := &domain.Message{
		CaseID:     caseID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}
	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// GetThread returns the case conversation and marks the reader's incoming
// messages as read.
func (s *Service) GetThread(ctx context.Context, caseID, readerID uuid.UUID, role domain.Role) ([]domain.Message, error) {
	c, err := s.caseRepo.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCaseNotFound
	}
	if role != domain.RoleAdmin {
		client, lawyerUser, err := s.participants(ctx, c)
		if err != nil && !errors.Is(err, ErrNoRecipient) {
			return nil, err
		}
		if readerID != client && readerID != lawyerUser && readerID != c.UserID {
			return nil, ErrNotParticipant
		}
		if err := s.repo.MarkRead(ctx, caseID, readerID, time.Now()); err != nil {
			return nil, err
		}
	}
	return s.repo.FindByCaseID(ctx, caseID)
}

func (s *Service) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.CountUnread(ctx, userID)
}
