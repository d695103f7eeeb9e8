package lawyerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/otr-legal/otr-backend/internal/domain"
	"github.com/otr-legal/otr-backend/internal/pg"
	lawyerrepo "github.com/otr-legal/otr-backend/internal/repo/lawyer-repo"
)

type mocks struct {
	repo      *MockRepo
	userRepo  *MockUserRepo
	txManager *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:      NewMockRepo(ctrl),
		userRepo:  NewMockUserRepo(ctrl),
		txManager: pg.NewMockTXManager(ctrl),
	}
	service := New(m.repo, m.userRepo, m.txManager)
	defer ctrl.Finish()
	return service, m
}

func passThroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
}

func TestRegister(t *testing.T) {
	userID := uuid.New()
	profile := func() *domain.Lawyer {
		return &domain.Lawyer{
			LicenseNumber:   "CA-12345",
			BarAssociation:  "California Bar",
			Specializations: []string{string(domain.ViolationSpeeding)},
			Jurisdictions:   []domain.Jurisdiction{{State: "CA"}},
		}
	}

	tests := []struct {
		name        string
		lawyer      *domain.Lawyer
		prepareMock func(m *mocks, lawyer *domain.Lawyer)
		wantErr     error
		check       func(t *testing.T, lawyer *domain.Lawyer)
	}{
		{
			name:   "Register new lawyer",
			lawyer: profile(),
			prepareMock: func(m *mocks, lawyer *domain.Lawyer) {
				m.repo.EXPECT().FindByUserID(gomock.Any(), userID).Return(nil, nil)
				m.repo.EXPECT().FindByLicense(gomock.Any(), "CA-12345").Return(nil, nil)
				passThroughTx(m.txManager)
				m.repo.EXPECT().Save(gomock.Any(), lawyer).Return(nil)
				m.userRepo.EXPECT().UpdateRole(gomock.Any(), userID, domain.RoleLawyer).Return(nil)
			},
			check: func(t *testing.T, lawyer *domain.Lawyer) {
				assert.Equal(t, userID, lawyer.UserID)
				assert.Equal(t, defaultMaxCases, lawyer.MaxCases)
			},
		},
		{
			name: "Explicit capacity kept",
			lawyer: func() *domain.Lawyer {
				l := profile()
				l.MaxCases = 3
				return l
			}(),
			prepareMock: func(m *mocks, lawyer *domain.Lawyer) {
				m.repo.EXPECT().FindByUserID(gomock.Any(), userID).Return(nil, nil)
				m.repo.EXPECT().FindByLicense(gomock.Any(), "CA-12345").Return(nil, nil)
				passThroughTx(m.txManager)
				m.repo.EXPECT().Save(gomock.Any(), lawyer).Return(nil)
				m.userRepo.EXPECT().UpdateRole(gomock.Any(), userID, domain.RoleLawyer).Return(nil)
			},
			check: func(t *testing.T, lawyer *domain.Lawyer) {
				assert.Equal(t, 3, lawyer.MaxCases)
			},
		},
		{
			name:   "User already has a profile",
			lawyer: profile(),
			prepareMock: func(m *mocks, lawyer *domain.Lawyer) {
				m.repo.EXPECT().FindByUserID(gomock.Any(), userID).Return(&domain.Lawyer{ID: uuid.New()}, nil)
			},
			wantErr: ErrAlreadyRegistered,
		},
		{
			name:   "License already registered",
			lawyer: profile(),
			prepareMock: func(m *mocks, lawyer *domain.Lawyer) {
				m.repo.EXPECT().FindByUserID(gomock.Any(), userID).Return(nil, nil)
				m.repo.EXPECT().FindByLicense(gomock.Any(), "CA-12345").Return(&domain.Lawyer{ID: uuid.New()}, nil)
			},
			wantErr: ErrLicenseTaken,
		},
		{
			name:   "Role update failure rolls back",
			lawyer: profile(),
			prepareMock: func(m *mocks, lawyer *domain.Lawyer) {
				m.repo.EXPECT().FindByUserID(gomock.Any(), userID).Return(nil, nil)
				m.repo.EXPECT().FindByLicense(gomock.Any(), "CA-12345").Return(nil, nil)
				passThroughTx(m.txManager)
				m.repo.EXPECT().Save(gomock.Any(), lawyer).Return(nil)
				m.userRepo.EXPECT().UpdateRole(gomock.Any(), userID, domain.RoleLawyer).Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m, tt.lawyer)

			got, err := service.Register(context.Background(), userID, tt.lawyer)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestGetByID(t *testing.T) {
	lawyerID := uuid.New()

	t.Run("Found", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), lawyerID).Return(&domain.Lawyer{ID: lawyerID}, nil)

		got, err := service.GetByID(context.Background(), lawyerID)
		assert.NoError(t, err)
		assert.Equal(t, lawyerID, got.ID)
	})

	t.Run("Not found", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), lawyerID).Return(nil, nil)

		got, err := service.GetByID(context.Background(), lawyerID)
		assert.ErrorIs(t, err, ErrLawyerNotFound)
		assert.Nil(t, got)
	})
}

func TestUpdateProfile(t *testing.T) {
	userID := uuid.New()
	lawyerID := uuid.New()

	stored := func() *domain.Lawyer {
		return &domain.Lawyer{
			ID:                lawyerID,
			UserID:            userID,
			MaxCases:          10,
			Bio:               "old bio",
			BankAccountNumber: "000111222",
			BankRoutingNumber: "021000021",
			BankAccountHolder: "Jamie Reyes",
		}
	}

	t.Run("Updates profile fields", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByUserID(gomock.Any(), userID).Return(stored(), nil)
		m.repo.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(nil)

		got, err := service.UpdateProfile(context.Background(), userID, &domain.Lawyer{
			Bio:               "new bio",
			YearsOfExperience: 12,
			Jurisdictions:     []domain.Jurisdiction{{State: "CA"}, {State: "NV"}},
		})
		assert.NoError(t, err)
		assert.Equal(t, "new bio", got.Bio)
		assert.Equal(t, 12, got.YearsOfExperience)
		assert.Len(t, got.Jurisdictions, 2)
		assert.Equal(t, 10, got.MaxCases)
	})

	t.Run("Empty bank details keep stored ones", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByUserID(gomock.Any(), userID).Return(stored(), nil)
		m.repo.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(nil)

		got, err := service.UpdateProfile(context.Background(), userID, &domain.Lawyer{Bio: "x"})
		assert.NoError(t, err)
		assert.Equal(t, "000111222", got.BankAccountNumber)
		assert.Equal(t, "Jamie Reyes", got.BankAccountHolder)
	})

	t.Run("New bank details replace stored ones", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByUserID(gomock.Any(), userID).Return(stored(), nil)
		m.repo.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(nil)

		got, err := service.UpdateProfile(context.Background(), userID, &domain.Lawyer{
			BankAccountNumber: "999888777",
			BankRoutingNumber: "121000248",
			BankAccountHolder: "J. Reyes Esq.",
		})
		assert.NoError(t, err)
		assert.Equal(t, "999888777", got.BankAccountNumber)
		assert.Equal(t, "121000248", got.BankRoutingNumber)
	})

	t.Run("No profile", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByUserID(gomock.Any(), userID).Return(nil, nil)

		got, err := service.UpdateProfile(context.Background(), userID, &domain.Lawyer{})
		assert.ErrorIs(t, err, ErrLawyerNotFound)
		assert.Nil(t, got)
	})
}

func TestSetAvailability(t *testing.T) {
	userID := uuid.New()
	lawyerID := uuid.New()

	t.Run("Toggles availability", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByUserID(gomock.Any(), userID).Return(&domain.Lawyer{ID: lawyerID}, nil)
		m.repo.EXPECT().SetAvailability(gomock.Any(), lawyerID, false).Return(nil)

		err := service.SetAvailability(context.Background(), userID, false)
		assert.NoError(t, err)
	})

	t.Run("No profile", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByUserID(gomock.Any(), userID).Return(nil, nil)

		err := service.SetAvailability(context.Background(), userID, true)
		assert.ErrorIs(t, err, ErrLawyerNotFound)
	})
}

func TestSearch(t *testing.T) {
	results := []domain.Lawyer{{ID: uuid.New()}}

	t.Run("Passes filters through", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().
			Search(gomock.Any(), "CA", string(domain.ViolationDUI), 4.0, lawyerrepo.SortByRating, 10).
			Return(results, nil)

		got, err := service.Search(context.Background(), "CA", string(domain.ViolationDUI), 4.0, string(lawyerrepo.SortByRating), 10)
		assert.NoError(t, err)
		assert.Equal(t, results, got)
	})

	t.Run("Clamps invalid limit to default", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().
			Search(gomock.Any(), "", "", 0.0, lawyerrepo.SearchSort(""), 20).
			Return(results, nil)

		got, err := service.Search(context.Background(), "", "", 0, "", 500)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestApprove(t *testing.T) {
	lawyerID := uuid.New()
	adminID := uuid.New()

	t.Run("Approves pending lawyer", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), lawyerID).Return(&domain.Lawyer{ID: lawyerID}, nil)
		m.repo.EXPECT().Approve(gomock.Any(), lawyerID, adminID, gomock.Any()).Return(nil)

		err := service.Approve(context.Background(), lawyerID, adminID)
		assert.NoError(t, err)
	})

	t.Run("Unknown lawyer", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), lawyerID).Return(nil, nil)

		err := service.Approve(context.Background(), lawyerID, adminID)
		assert.ErrorIs(t, err, ErrLawyerNotFound)
	})
}

func TestReject(t *testing.T) {
	lawyerID := uuid.New()

	t.Run("Rejects with reason", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), lawyerID).Return(&domain.Lawyer{ID: lawyerID}, nil)
		m.repo.EXPECT().Reject(gomock.Any(), lawyerID, "incomplete license records").Return(nil)

		err := service.Reject(context.Background(), lawyerID, "incomplete license records")
		assert.NoError(t, err)
	})

	t.Run("Unknown lawyer", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), lawyerID).Return(nil, nil)

		err := service.Reject(context.Background(), lawyerID, "whatever")
		assert.ErrorIs(t, err, ErrLawyerNotFound)
	})
}

func TestGetPending(t *testing.T) {
	service, m := NewMock(t)
	pending := []domain.Lawyer{{ID: uuid.New()}, {ID: uuid.New()}}
	m.repo.EXPECT().FindPending(gomock.Any()).Return(pending, nil)

	got, err := service.GetPending(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}
