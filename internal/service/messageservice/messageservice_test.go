package messageservice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/otr-legal/otr-backend/internal/domain"
)

type mocks struct {
	repo       *MockRepo
	caseRepo   *MockCaseRepo
	lawyerRepo *MockLawyerRepo
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:       NewMockRepo(ctrl),
		caseRepo:   NewMockCaseRepo(ctrl),
		lawyerRepo: NewMockLawyerRepo(ctrl),
	}
	service := New(m.repo, m.caseRepo, m.lawyerRepo)
	defer ctrl.Finish()
	return service, m
}

type fixture struct {
	caseID       uuid.UUID
	clientID     uuid.UUID
	lawyerID     uuid.UUID
	lawyerUserID uuid.UUID
}

func newFixture() fixture {
	return fixture{
		caseID:       uuid.New(),
		clientID:     uuid.New(),
		lawyerID:     uuid.New(),
		lawyerUserID: uuid.New(),
	}
}

func (f fixture) assignedCase() *domain.Case {
	lawyerID := f.lawyerID
	return &domain.Case{ID: f.caseID, UserID: f.clientID, LawyerID: &lawyerID}
}

func (f fixture) lawyer() *domain.Lawyer {
	return &domain.Lawyer{ID: f.lawyerID, UserID: f.lawyerUserID}
}

func TestSend(t *testing.T) {
	f := newFixture()

	t.Run("Client message goes to the lawyer", func(t *testing.T) {
		service, m := NewMock(t)
		m.caseRepo.EXPECT().FindByID(gomock.Any(), f.caseID).Return(f.assignedCase(), nil)
		m.lawyerRepo.EXPECT().FindByID(gomock.Any(), f.lawyerID).Return(f.lawyer(), nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, msg *domain.Message) error {
				assert.Equal(t, f.clientID, msg.SenderID)
				assert.Equal(t, f.lawyerUserID, msg.ReceiverID)
				return nil
			})

		got, err := service.Send(context.Background(), f.caseID, f.clientID, "when is the hearing?")
		assert.NoError(t, err)
		assert.Equal(t, "when is the hearing?", got.Content)
	})

	t.Run("Lawyer message goes to the client", func(t *testing.T) {
		service, m := NewMock(t)
		m.caseRepo.EXPECT().FindByID(gomock.Any(), f.caseID).Return(f.assignedCase(), nil)
		m.lawyerRepo.EXPECT().FindByID(gomock.Any(), f.lawyerID).Return(f.lawyer(), nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, msg *domain.Message) error {
				assert.Equal(t, f.clientID, msg.ReceiverID)
				return nil
			})

		_, err := service.Send(context.Background(), f.caseID, f.lawyerUserID, "filed the motion today")
		assert.NoError(t, err)
	})

	t.Run("Empty content rejected", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.Send(context.Background(), f.caseID, f.clientID, "")
		assert.ErrorIs(t, err, ErrEmptyContent)
	})

	t.Run("Unknown case", func(t *testing.T) {
		service, m := NewMock(t)
		m.caseRepo.EXPECT().FindByID(gomock.Any(), f.caseID).Return(nil, nil)

		_, err := service.Send(context.Background(), f.caseID, f.clientID, "hello")
		assert.ErrorIs(t, err, ErrCaseNotFound)
	})

	t.Run("Unassigned case has no recipient", func(t *testing.T) {
		service, m := NewMock(t)
		m.caseRepo.EXPECT().FindByID(gomock.Any(), f.caseID).
			Return(&domain.Case{ID: f.caseID, UserID: f.clientID}, nil)

		_, err := service.Send(context.Background(), f.caseID, f.clientID, "hello")
		assert.ErrorIs(t, err, ErrNoRecipient)
	})

	t.Run("Outsider cannot post", func(t *testing.T) {
		service, m := NewMock(t)
		m.caseRepo.EXPECT().FindByID(gomock.Any(), f.caseID).Return(f.assignedCase(), nil)
		m.lawyerRepo.EXPECT().FindByID(gomock.Any(), f.lawyerID).Return(f.lawyer(), nil)

		_, err := service.Send(context.Background(), f.caseID, uuid.New(), "let me in")
		assert.ErrorIs(t, err, ErrNotParticipant)
	})
}

func TestGetThread(t *testing.T) {
	f := newFixture()
	thread := []domain.Message{
		{CaseID: f.caseID, SenderID: f.clientID, Content: "first"},
		{CaseID: f.caseID, SenderID: f.lawyerUserID, Content: "second"},
	}

	t.Run("Participant reads and clears unread", func(t *testing.T) {
		service, m := NewMock(t)
		m.caseRepo.EXPECT().FindByID(gomock.Any(), f.caseID).Return(f.assignedCase(), nil)
		m.lawyerRepo.EXPECT().FindByID(gomock.Any(), f.lawyerID).Return(f.lawyer(), nil)
		m.repo.EXPECT().MarkRead(gomock.Any(), f.caseID, f.clientID, gomock.Any()).Return(nil)
		m.repo.EXPECT().FindByCaseID(gomock.Any(), f.caseID).Return(thread, nil)

		got, err := service.GetThread(context.Background(), f.caseID, f.clientID, domain.RoleUser)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("Admin reads without marking", func(t *testing.T) {
		service, m := NewMock(t)
		m.caseRepo.EXPECT().FindByID(gomock.Any(), f.caseID).Return(f.assignedCase(), nil)
		m.repo.EXPECT().FindByCaseID(gomock.Any(), f.caseID).Return(thread, nil)

		got, err := service.GetThread(context.Background(), f.caseID, uuid.New(), domain.RoleAdmin)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("Owner can read before assignment", func(t *testing.T) {
		service, m := NewMock(t)
		m.caseRepo.EXPECT().FindByID(gomock.Any(), f.caseID).
			Return(&domain.Case{ID: f.caseID, UserID: f.clientID}, nil)
		m.repo.EXPECT().MarkRead(gomock.Any(), f.caseID, f.clientID, gomock.Any()).Return(nil)
		m.repo.EXPECT().FindByCaseID(gomock.Any(), f.caseID).Return(nil, nil)

		_, err := service.GetThread(context.Background(), f.caseID, f.clientID, domain.RoleUser)
		assert.NoError(t, err)
	})

	t.Run("Outsider denied", func(t *testing.T) {
		service, m := NewMock(t)
		m.caseRepo.EXPECT().FindByID(gomock.Any(), f.caseID).Return(f.assignedCase(), nil)
		m.lawyerRepo.EXPECT().FindByID(gomock.Any(), f.lawyerID).Return(f.lawyer(), nil)

		_, err := service.GetThread(context.Background(), f.caseID, uuid.New(), domain.RoleUser)
		assert.ErrorIs(t, err, ErrNotParticipant)
	})

	t.Run("Unknown case", func(t *testing.T) {
		service, m := NewMock(t)
		m.caseRepo.EXPECT().FindByID(gomock.Any(), f.caseID).Return(nil, nil)

		_, err := service.GetThread(context.Background(), f.caseID, f.clientID, domain.RoleUser)
		assert.ErrorIs(t, err, ErrCaseNotFound)
	})
}

func TestUnreadCount(t *testing.T) {
	service, m := NewMock(t)
	userID := uuid.New()
	m.repo.EXPECT().CountUnread(gomock.Any(), userID).Return(3, nil)

	count, err := service.UnreadCount(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}
