package caseservice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/otr-legal/otr-backend/internal/domain"
	"github.com/otr-legal/otr-backend/internal/pg"
	"github.com/otr-legal/otr-backend/internal/service/matchservice"
)

type mocks struct {
	repo       *MockRepo
	userRepo   *MockUserRepo
	lawyerRepo *MockLawyerRepo
	matcher    *MockMatcher
	txManager  *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:       NewMockRepo(ctrl),
		userRepo:   NewMockUserRepo(ctrl),
		lawyerRepo: NewMockLawyerRepo(ctrl),
		matcher:    NewMockMatcher(ctrl),
		txManager:  pg.NewMockTXManager(ctrl),
	}
	service := New(m.repo, m.userRepo, m.lawyerRepo, m.matcher, m.txManager)
	defer ctrl.Finish()
	return service, m
}

func passThroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
}

func TestQuotePrice(t *testing.T) {
	tests := []struct {
		name      string
		violation domain.ViolationType
		cdl       bool
		expected  float64
	}{
		{"Base price for speeding", domain.ViolationSpeeding, false, 249},
		{"DUI premium", domain.ViolationDUI, false, 499},
		{"Reckless driving premium", domain.ViolationReckless, false, 349},
		{"CDL holder pays the commercial rate", domain.ViolationSpeeding, true, 299},
		{"DUI premium wins over CDL rate", domain.ViolationDUI, true, 499},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, QuotePrice(tt.violation, tt.cdl))
		})
	}
}

func TestCreate(t *testing.T) {
	userID := uuid.New()
	future := time.Now().AddDate(0, 1, 0)
	activeUser := &domain.User{ID: userID, QuotaResetAt: &future}

	newCase := func() *domain.Case {
		return &domain.Case{
			ID:            uuid.New(),
			State:         "CA",
			ViolationType: domain.ViolationSpeeding,
		}
	}

	t.Run("Case is created and matched", func(t *testing.T) {
		service, m := NewMock(t)
		c := newCase()
		lawyer := &domain.Lawyer{ID: uuid.New()}

		m.userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(activeUser, nil)
		m.userRepo.EXPECT().ConsumeQuota(gomock.Any(), userID).Return(true, nil)
		m.repo.EXPECT().Save(gomock.Any(), c).Return(nil)
		m.matcher.EXPECT().Match(gomock.Any(), c).Return(lawyer, 75.0, nil)

		created, err := service.Create(context.Background(), userID, c)
		assert.NoError(t, err)
		assert.Equal(t, domain.CaseAssigned, created.Status)
		assert.Equal(t, lawyer.ID, *created.LawyerID)
		assert.Equal(t, 249.0, created.QuotedPrice)
		assert.True(t, strings.HasPrefix(created.CaseNumber, "OTR-"))
	})

	t.Run("No eligible lawyer leaves the case pending", func(t *testing.T) {
		service, m := NewMock(t)
		c := newCase()

		m.userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(activeUser, nil)
		m.userRepo.EXPECT().ConsumeQuota(gomock.Any(), userID).Return(true, nil)
		m.repo.EXPECT().Save(gomock.Any(), c).Return(nil)
		m.matcher.EXPECT().Match(gomock.Any(), c).Return(nil, 0.0, matchservice.ErrNoLawyerAvailable)

		created, err := service.Create(context.Background(), userID, c)
		assert.NoError(t, err)
		assert.Equal(t, domain.CasePending, created.Status)
		assert.Nil(t, created.LawyerID)
	})

	t.Run("Assignment persistence failure surfaces", func(t *testing.T) {
		service, m := NewMock(t)
		c := newCase()

		m.userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(activeUser, nil)
		m.userRepo.EXPECT().ConsumeQuota(gomock.Any(), userID).Return(true, nil)
		m.repo.EXPECT().Save(gomock.Any(), c).Return(nil)
		m.matcher.EXPECT().Match(gomock.Any(), c).Return(nil, 0.0, errors.New("claim slot: connection refused"))

		_, err := service.Create(context.Background(), userID, c)
		assert.EqualError(t, err, "claim slot: connection refused")
	})

	t.Run("Quota exceeded", func(t *testing.T) {
		service, m := NewMock(t)

		m.userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(activeUser, nil)
		m.userRepo.EXPECT().ConsumeQuota(gomock.Any(), userID).Return(false, nil)

		_, err := service.Create(context.Background(), userID, newCase())
		assert.ErrorIs(t, err, ErrQuotaExceeded)
	})

	t.Run("Elapsed quota window is reset before consuming", func(t *testing.T) {
		service, m := NewMock(t)
		c := newCase()
		past := time.Now().Add(-time.Hour)
		staleUser := &domain.User{ID: userID, QuotaResetAt: &past}

		m.userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(staleUser, nil)
		m.userRepo.EXPECT().ResetQuota(gomock.Any(), userID, gomock.Any()).Return(nil)
		m.userRepo.EXPECT().ConsumeQuota(gomock.Any(), userID).Return(true, nil)
		m.repo.EXPECT().Save(gomock.Any(), c).Return(nil)
		m.matcher.EXPECT().Match(gomock.Any(), c).Return(nil, 0.0, matchservice.ErrNoLawyerAvailable)

		_, err := service.Create(context.Background(), userID, c)
		assert.NoError(t, err)
	})

	t.Run("Invalid violation type", func(t *testing.T) {
		service, _ := NewMock(t)

		c := newCase()
		c.ViolationType = domain.ViolationType("jaywalking")
		_, err := service.Create(context.Background(), userID, c)
		assert.ErrorIs(t, err, ErrInvalidViolationType)
	})

	t.Run("CDL driver gets the commercial rate", func(t *testing.T) {
		service, m := NewMock(t)
		c := newCase()
		c.IsCDLDriver = true

		m.userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(activeUser, nil)
		m.userRepo.EXPECT().ConsumeQuota(gomock.Any(), userID).Return(true, nil)
		m.repo.EXPECT().Save(gomock.Any(), c).Return(nil)
		m.matcher.EXPECT().Match(gomock.Any(), c).Return(nil, 0.0, matchservice.ErrNoLawyerAvailable)

		created, err := service.Create(context.Background(), userID, c)
		assert.NoError(t, err)
		assert.Equal(t, 299.0, created.QuotedPrice)
	})
}

func TestGetCase(t *testing.T) {
	caseID := uuid.New()
	ownerID := uuid.New()
	strangerID := uuid.New()
	c := &domain.Case{ID: caseID, UserID: ownerID}

	t.Run("Owner can read the case", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), caseID).Return(c, nil)

		got, err := service.GetCase(context.Background(), caseID, ownerID, domain.RoleUser)
		assert.NoError(t, err)
		assert.Equal(t, caseID, got.ID)
	})

	t.Run("Admin can read any case", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), caseID).Return(c, nil)

		_, err := service.GetCase(context.Background(), caseID, strangerID, domain.RoleAdmin)
		assert.NoError(t, err)
	})

	t.Run("Assigned lawyer can read the case", func(t *testing.T) {
		service, m := NewMock(t)
		lawyerID := uuid.New()
		lawyerUserID := uuid.New()
		assigned := &domain.Case{ID: caseID, UserID: ownerID, LawyerID: &lawyerID}

		m.repo.EXPECT().FindByID(gomock.Any(), caseID).Return(assigned, nil)
		m.lawyerRepo.EXPECT().FindByUserID(gomock.Any(), lawyerUserID).
			Return(&domain.Lawyer{ID: lawyerID}, nil)

		_, err := service.GetCase(context.Background(), caseID, lawyerUserID, domain.RoleLawyer)
		assert.NoError(t, err)
	})

	t.Run("Stranger is rejected", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), caseID).Return(c, nil)

		_, err := service.GetCase(context.Background(), caseID, strangerID, domain.RoleUser)
		assert.ErrorIs(t, err, ErrNotAllowed)
	})

	t.Run("Unknown case", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), caseID).Return(nil, nil)

		_, err := service.GetCase(context.Background(), caseID, ownerID, domain.RoleUser)
		assert.ErrorIs(t, err, ErrCaseNotFound)
	})
}

func TestUpdateStatus(t *testing.T) {
	caseID := uuid.New()
	ownerID := uuid.New()

	tests := []struct {
		name        string
		current     domain.CaseStatus
		target      domain.CaseStatus
		expectedErr error
	}{
		{"Assigned moves to in progress", domain.CaseAssigned, domain.CaseInProgress, nil},
		{"Pending cannot jump to in progress", domain.CasePending, domain.CaseInProgress, ErrInvalidTransition},
		{"Closed cannot move", domain.CaseClosed, domain.CaseAssigned, ErrInvalidTransition},
		{"In progress cannot go back to pending", domain.CaseInProgress, domain.CasePending, ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			c := &domain.Case{ID: caseID, UserID: ownerID, Status: tt.current}

			m.repo.EXPECT().FindByID(gomock.Any(), caseID).Return(c, nil)
			if tt.expectedErr == nil {
				m.repo.EXPECT().UpdateStatus(gomock.Any(), caseID, tt.target, "note", ownerID).Return(nil)
			}

			updated, err := service.UpdateStatus(context.Background(), caseID, tt.target, "note", ownerID, domain.RoleUser)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.target, updated.Status)
			}
		})
	}
}

func TestRecordOutcome(t *testing.T) {
	caseID := uuid.New()
	ownerID := uuid.New()
	lawyerID := uuid.New()

	t.Run("Dismissed outcome updates lawyer statistics", func(t *testing.T) {
		service, m := NewMock(t)
		passThroughTx(m.txManager)
		c := &domain.Case{ID: caseID, UserID: ownerID, LawyerID: &lawyerID, Status: domain.CaseCourtScheduled}
		lawyer := &domain.Lawyer{ID: lawyerID, TotalCases: 9, CasesDismissed: 4}

		m.repo.EXPECT().FindByID(gomock.Any(), caseID).Return(c, nil)
		m.repo.EXPECT().SetOutcome(gomock.Any(), caseID, domain.OutcomeDismissed, nil, nil, "won it").Return(nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), caseID, domain.CaseDismissed, gomock.Any(), ownerID).Return(nil)
		m.lawyerRepo.EXPECT().ReleaseSlot(gomock.Any(), lawyerID).Return(nil)
		m.lawyerRepo.EXPECT().FindByID(gomock.Any(), lawyerID).Return(lawyer, nil)
		m.lawyerRepo.EXPECT().UpdateStatistics(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l *domain.Lawyer) error {
				assert.Equal(t, 10, l.TotalCases)
				assert.Equal(t, 5, l.CasesDismissed)
				assert.Equal(t, 50, l.SuccessRate)
				return nil
			})

		updated, err := service.RecordOutcome(context.Background(), caseID, domain.OutcomeDismissed, nil, nil, "won it", ownerID, domain.RoleUser)
		assert.NoError(t, err)
		assert.Equal(t, domain.CaseDismissed, updated.Status)
	})

	t.Run("Guilty outcome moves the case to lost", func(t *testing.T) {
		service, m := NewMock(t)
		passThroughTx(m.txManager)
		fine := 150.0
		points := 2
		c := &domain.Case{ID: caseID, UserID: ownerID, Status: domain.CaseCourtScheduled}

		m.repo.EXPECT().FindByID(gomock.Any(), caseID).Return(c, nil)
		m.repo.EXPECT().SetOutcome(gomock.Any(), caseID, domain.OutcomeGuilty, &fine, &points, "").Return(nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), caseID, domain.CaseLost, gomock.Any(), ownerID).Return(nil)

		updated, err := service.RecordOutcome(context.Background(), caseID, domain.OutcomeGuilty, &fine, &points, "", ownerID, domain.RoleUser)
		assert.NoError(t, err)
		assert.Equal(t, domain.CaseLost, updated.Status)
	})

	t.Run("Outcome on a pending case is rejected", func(t *testing.T) {
		service, m := NewMock(t)
		c := &domain.Case{ID: caseID, UserID: ownerID, Status: domain.CasePending}

		m.repo.EXPECT().FindByID(gomock.Any(), caseID).Return(c, nil)

		_, err := service.RecordOutcome(context.Background(), caseID, domain.OutcomeDismissed, nil, nil, "", ownerID, domain.RoleUser)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("Unknown outcome is rejected", func(t *testing.T) {
		service, _ := NewMock(t)

		_, err := service.RecordOutcome(context.Background(), caseID, domain.OutcomeType("settled"), nil, nil, "", ownerID, domain.RoleUser)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestRateLawyer(t *testing.T) {
	caseID := uuid.New()
	ownerID := uuid.New()
	lawyerID := uuid.New()
	finished := func() *domain.Case {
		return &domain.Case{ID: caseID, UserID: ownerID, LawyerID: &lawyerID, Status: domain.CaseDismissed}
	}

	t.Run("Rating folds into the running average", func(t *testing.T) {
		service, m := NewMock(t)
		passThroughTx(m.txManager)

		m.repo.EXPECT().FindByID(gomock.Any(), caseID).Return(finished(), nil)
		m.repo.EXPECT().SetRating(gomock.Any(), caseID, 5, "great", gomock.Any()).Return(true, nil)
		m.lawyerRepo.EXPECT().FindByID(gomock.Any(), lawyerID).
			Return(&domain.Lawyer{ID: lawyerID, RatingAverage: 4.0, RatingCount: 3}, nil)
		m.lawyerRepo.EXPECT().UpdateRating(gomock.Any(), lawyerID, 4.25, 4).Return(nil)

		err := service.RateLawyer(context.Background(), caseID, ownerID, 5, "great")
		assert.NoError(t, err)
	})

	t.Run("Second rating is rejected", func(t *testing.T) {
		service, m := NewMock(t)
		passThroughTx(m.txManager)

		m.repo.EXPECT().FindByID(gomock.Any(), caseID).Return(finished(), nil)
		m.repo.EXPECT().SetRating(gomock.Any(), caseID, 4, "", gomock.Any()).Return(false, nil)

		err := service.RateLawyer(context.Background(), caseID, ownerID, 4, "")
		assert.ErrorIs(t, err, ErrAlreadyRated)
	})

	t.Run("Unfinished case cannot be rated", func(t *testing.T) {
		service, m := NewMock(t)
		c := finished()
		c.Status = domain.CaseInProgress

		m.repo.EXPECT().FindByID(gomock.Any(), caseID).Return(c, nil)

		err := service.RateLawyer(context.Background(), caseID, ownerID, 4, "")
		assert.ErrorIs(t, err, ErrCaseNotFinished)
	})

	t.Run("Only the owner can rate", func(t *testing.T) {
		service, m := NewMock(t)

		m.repo.EXPECT().FindByID(gomock.Any(), caseID).Return(finished(), nil)

		err := service.RateLawyer(context.Background(), caseID, uuid.New(), 4, "")
		assert.ErrorIs(t, err, ErrNotAllowed)
	})

	t.Run("Rating out of range", func(t *testing.T) {
		service, _ := NewMock(t)

		assert.ErrorIs(t, service.RateLawyer(context.Background(), caseID, ownerID, 0, ""), ErrInvalidRating)
		assert.ErrorIs(t, service.RateLawyer(context.Background(), caseID, ownerID, 6, ""), ErrInvalidRating)
	})
}

func TestScheduleCourtDate(t *testing.T) {
	caseID := uuid.New()
	ownerID := uuid.New()
	courtDate := time.Now().AddDate(0, 0, 14)

	t.Run("Court date set from in progress", func(t *testing.T) {
		service, m := NewMock(t)
		passThroughTx(m.txManager)
		c := &domain.Case{ID: caseID, UserID: ownerID, Status: domain.CaseInProgress}

		m.repo.EXPECT().FindByID(gomock.Any(), caseID).Return(c, nil)
		m.repo.EXPECT().SetCourtDate(gomock.Any(), caseID, courtDate).Return(nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), caseID, domain.CaseCourtScheduled, gomock.Any(), ownerID).Return(nil)

		updated, err := service.ScheduleCourtDate(context.Background(), caseID, courtDate, ownerID, domain.RoleUser)
		assert.NoError(t, err)
		assert.Equal(t, domain.CaseCourtScheduled, updated.Status)
		assert.Equal(t, courtDate, *updated.CourtDate)
	})

	t.Run("Pending case cannot schedule court", func(t *testing.T) {
		service, m := NewMock(t)
		c := &domain.Case{ID: caseID, UserID: ownerID, Status: domain.CasePending}

		m.repo.EXPECT().FindByID(gomock.Any(), caseID).Return(c, nil)

		_, err := service.ScheduleCourtDate(context.Background(), caseID, courtDate, ownerID, domain.RoleUser)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestReassign(t *testing.T) {
	caseID := uuid.New()
	actorID := uuid.New()
	newLawyerID := uuid.New()

	t.Run("Assigned case can be reassigned", func(t *testing.T) {
		service, m := NewMock(t)
		c := &domain.Case{ID: caseID, Status: domain.CaseAssigned}
		lawyer := &domain.Lawyer{ID: newLawyerID}

		m.repo.EXPECT().FindByID(gomock.Any(), caseID).Return(c, nil)
		m.matcher.EXPECT().Reassign(gomock.Any(), c, newLawyerID, actorID).Return(lawyer, 60.0, nil)

		updated, err := service.Reassign(context.Background(), caseID, newLawyerID, actorID)
		assert.NoError(t, err)
		assert.Equal(t, newLawyerID, *updated.LawyerID)
		assert.Equal(t, domain.CaseAssigned, updated.Status)
	})

	t.Run("Finished case cannot be reassigned", func(t *testing.T) {
		service, m := NewMock(t)
		c := &domain.Case{ID: caseID, Status: domain.CaseDismissed}

		m.repo.EXPECT().FindByID(gomock.Any(), caseID).Return(c, nil)

		_, err := service.Reassign(context.Background(), caseID, newLawyerID, actorID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}
