package matchservice

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/otr-legal/otr-backend/internal/domain"
	"github.com/otr-legal/otr-backend/internal/pg"
)

type LawyerRepo interface {
	FindEligible(ctx context.Context, state string, specialization string) ([]domain.Lawyer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Lawyer, error)
	ClaimSlot(ctx context.Context, lawyerID uuid.UUID) (bool, error)
	ReleaseSlot(ctx context.Context, lawyerID uuid.UUID) error
}

type CaseRepo interface {
	SetAssignment(ctx context.Context, caseID, lawyerID uuid.UUID, score float64, note string, actorID uuid.UUID) error
}

type Service struct {
	lawyerRepo LawyerRepo
	caseRepo   CaseRepo
	txManager  pg.TXManager
}

func New(lawyerRepo LawyerRepo, caseRepo CaseRepo, txManager pg.TXManager) *Service {
	return &Service{
		lawyerRepo: lawyerRepo,
		caseRepo:   caseRepo,
		txManager:  txManager,
	}
}

var (
	ErrNoLawyerAvailable = errors.New("no lawyer available")
	ErrLawyerNotEligible = errors.New("lawyer not eligible")
)

// Score rates how well a lawyer fits a case, on a 0..110 scale.
// Specialization match dominates, then track record, then light load.
func Score(lawyer *domain.Lawyer, c *domain.Case) float64 {
	score := 0.0

	if lawyer.HasSpecialization(c.ViolationType) {
		score += 40
	}
	score += float64(lawyer.SuccessRate) / 100 * 30

	experience := float64(lawyer.YearsOfExperience) / 20 * 15
	if experience > 15 {
		experience = 15
	}
	score += experience

	score += lawyer.RatingAverage / 5 * 10

	if lawyer.MaxCases > 0 {
		score += (1 - float64(lawyer.CurrentCases)/float64(lawyer.MaxCases)) * 5
	}

	if c.IsCDLDriver && lawyer.HasSpecialization(domain.ViolationCDL) {
		score += 10
	}

	return score
}

type candidate struct {
	lawyer domain.Lawyer
	score  float64
}

// Match picks the best-scoring eligible lawyer and assigns the case to them.
// Candidates are tried in score order; a lawyer whose last slot was taken by a
// concurrent assignment is skipped and the next one tried.
func (s *Service) Match(ctx context.Context, c *domain.Case) (*domain.Lawyer, float64, error) {
	lawyers, err := s.lawyerRepo.FindEligible(ctx, c.State, string(c.ViolationType))
	if err != nil {
		return nil, 0, err
	}
	if len(lawyers) == 0 {
		// Fallback pool: any lawyer covering the state. Specialization still
		// influences the score, so specialists are preferred when present.
		lawyers, err = s.lawyerRepo.FindEligible(ctx, c.State, "")
		if err != nil {
			return nil, 0, err
		}
	}
	if len(lawyers) == 0 {
		zap.L().Info("no eligible lawyers", zap.String("state", c.State), zap.String("violation", string(c.ViolationType)))
		return nil, 0, ErrNoLawyerAvailable
	}

	candidates := make([]candidate, 0, len(lawyers))
	for _, lawyer := range lawyers {
		candidates = append(candidates, candidate{lawyer: lawyer, score: Score(&lawyer, c)})
	}
	// Stable sort keeps the repository's rating order as the tie-break.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	for _, cand := range candidates {
		lawyer := cand.lawyer
		var assigned bool
		err := s.txManager.Begin(ctx, func(ctx context.Context) error {
			ok, err := s.lawyerRepo.ClaimSlot(ctx, lawyer.ID)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			assigned = true
			note := fmt.Sprintf("Case assigned to lawyer (match score %.1f)", cand.score)
			return s.caseRepo.SetAssignment(ctx, c.ID, lawyer.ID, cand.score, note, c.UserID)
		})
		if err != nil {
			return nil, 0, err
		}
		if assigned {
			zap.L().Info("case assigned",
				zap.String("case_id", c.ID.String()),
				zap.String("lawyer_id", lawyer.ID.String()),
				zap.Float64("score", cand.score))
			return &lawyer, cand.score, nil
		}
	}

	return nil, 0, ErrNoLawyerAvailable
}

// Reassign moves a case to a specific lawyer, releasing the previous one's
// slot. The case stays in assigned status.
func (s *Service) Reassign(ctx context.Context, c *domain.Case, lawyerID, actorID uuid.UUID) (*domain.Lawyer, float64, error) {
	lawyer, err := s.lawyerRepo.FindByID(ctx, lawyerID)
	if err != nil {
		return nil, 0, err
	}
	if lawyer == nil || !lawyer.IsApproved || !lawyer.CoversState(c.State) {
		return nil, 0, ErrLawyerNotEligible
	}

	score := Score(lawyer, c)
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.lawyerRepo.ClaimSlot(ctx, lawyer.ID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNoLawyerAvailable
		}
		if c.LawyerID != nil {
			if err := s.lawyerRepo.ReleaseSlot(ctx, *c.LawyerID); err != nil {
				return err
			}
		}
		note := "Case reassigned to a different lawyer"
		return s.caseRepo.SetAssignment(ctx, c.ID, lawyer.ID, score, note, actorID)
	})
	if err != nil {
		return nil, 0, err
	}
	return lawyer, score, nil
}
