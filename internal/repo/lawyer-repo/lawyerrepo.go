package lawyerrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/otr-legal/otr-backend/internal/domain"
	"github.com/otr-legal/otr-backend/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const lawyerColumns = `id, user_id, license_number, bar_association, years_of_experience,
		specializations, jurisdictions, bio, rating_average, rating_count,
		total_cases, cases_won, cases_dismissed, cases_reduced, success_rate,
		is_available, max_cases, current_cases,
		bank_account_number, bank_routing_number, bank_account_holder,
		is_approved, approved_by, approved_at, rejection_reason, created_at`

func scanLawyer(row pg.RowScanner) (*domain.Lawyer, error) {
	var l domain.Lawyer
	err := row.Scan(&l.ID, &l.UserID, &l.LicenseNumber, &l.BarAssociation, &l.YearsOfExperience,
		&l.Specializations, &l.Jurisdictions, &l.Bio, &l.RatingAverage, &l.RatingCount,
		&l.TotalCases, &l.CasesWon, &l.CasesDismissed, &l.CasesReduced, &l.SuccessRate,
		&l.IsAvailable, &l.MaxCases, &l.CurrentCases,
		&l.BankAccountNumber, &l.BankRoutingNumber, &l.BankAccountHolder,
		&l.IsApproved, &l.ApprovedBy, &l.ApprovedAt, &l.RejectionReason, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *Repository) Save(ctx context.Context, lawyer *domain.Lawyer) error {
	query := `
        INSERT INTO lawyers (user_id, license_number, bar_association, years_of_experience,
            specializations, jurisdictions, bio, max_cases)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, lawyer.UserID, lawyer.LicenseNumber, lawyer.BarAssociation,
		lawyer.YearsOfExperience, lawyer.Specializations, lawyer.Jurisdictions, lawyer.Bio,
		lawyer.MaxCases).
		Scan(&lawyer.ID, &lawyer.CreatedAt)
	if err != nil {
		zap.L().Error("can't save lawyer", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Lawyer, error) {
	query := `
        SELECT ` + lawyerColumns + `
        FROM lawyers
        WHERE id = $1
    `
	lawyer, err := scanLawyer(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find lawyer", zap.Error(err))
		return nil, err
	}
	return lawyer, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Lawyer, error) {
	query := `
        SELECT ` + lawyerColumns + `
        FROM lawyers
        WHERE user_id = $1
    `
	lawyer, err := scanLawyer(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find lawyer by user", zap.Error(err))
		return nil, err
	}
	return lawyer, nil
}

func (r *Repository) FindByLicense(ctx context.Context, licenseNumber string) (*domain.Lawyer, error) {
	query := `
        SELECT ` + lawyerColumns + `
        FROM lawyers
        WHERE license_number = $1
    `
	lawyer, err := scanLawyer(r.db.QueryRow(ctx, query, licenseNumber))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find lawyer by license", zap.Error(err))
		return nil, err
	}
	return lawyer, nil
}

// FindEligible returns approved, available lawyers covering the state with
// free capacity, ordered so equal match scores resolve deterministically.
// An empty specialization skips that filter (the fallback pool).
func (r *Repository) FindEligible(ctx context.Context, state string, specialization string) ([]domain.Lawyer, error) {
	query := `
        SELECT ` + lawyerColumns + `
        FROM lawyers
        WHERE is_approved = TRUE
          AND is_available = TRUE
          AND current_cases < max_cases
          AND EXISTS (
              SELECT 1 FROM jsonb_array_elements(jurisdictions) AS j
              WHERE j->>'state' = $1
          )
          AND ($2 = '' OR specializations @> ARRAY[$2])
        ORDER BY rating_average DESC, created_at ASC
    `
	rows, err := r.db.Query(ctx, query, state, specialization)
	if err != nil {
		zap.L().Error("can't query eligible lawyers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var lawyers []domain.Lawyer
	for rows.Next() {
		lawyer, err := scanLawyer(rows)
		if err != nil {
			zap.L().Error("can't scan lawyer row", zap.Error(err))
			return nil, err
		}
		lawyers = append(lawyers, *lawyer)
	}
	return lawyers, nil
}

// ClaimSlot increments current_cases only while capacity remains, so two
// concurrent assignments cannot both win the last slot.
func (r *Repository) ClaimSlot(ctx context.Context, lawyerID uuid.UUID) (bool, error) {
	query := `
        UPDATE lawyers
        SET current_cases = current_cases + 1
        WHERE id = $1 AND current_cases < max_cases
    `
	tag, err := r.db.Exec(ctx, query, lawyerID)
	if err != nil {
		zap.L().Error("can't claim lawyer slot", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) ReleaseSlot(ctx context.Context, lawyerID uuid.UUID) error {
	query := `
        UPDATE lawyers
        SET current_cases = current_cases - 1
        WHERE id = $1 AND current_cases > 0
    `
	_, err := r.db.Exec(ctx, query, lawyerID)
	if err != nil {
		zap.L().Error("can't release lawyer slot", zap.Error(err))
	}
	return err
}

func (r *Repository) UpdateProfile(ctx context.Context, lawyer *domain.Lawyer) error {
	query := `
        UPDATE lawyers
        SET bar_association = $1, years_of_experience = $2, specializations = $3,
            jurisdictions = $4, bio = $5, max_cases = $6,
            bank_account_number = $7, bank_routing_number = $8, bank_account_holder = $9
        WHERE id = $10
    `
	_, err := r.db.Exec(ctx, query, lawyer.BarAssociation, lawyer.YearsOfExperience,
		lawyer.Specializations, lawyer.Jurisdictions, lawyer.Bio, lawyer.MaxCases,
		lawyer.BankAccountNumber, lawyer.BankRoutingNumber, lawyer.BankAccountHolder,
		lawyer.ID)
	if err != nil {
		zap.L().Error("can't update lawyer profile", zap.Error(err))
	}
	return err
}

func (r *Repository) SetAvailability(ctx context.Context, lawyerID uuid.UUID, isAvailable bool) error {
	query := `
        UPDATE lawyers
        SET is_available = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, isAvailable, lawyerID)
	if err != nil {
		zap.L().Error("can't set lawyer availability", zap.Error(err))
	}
	return err
}

func (r *Repository) UpdateStatistics(ctx context.Context, lawyer *domain.Lawyer) error {
	query := `
        UPDATE lawyers
        SET total_cases = $1, cases_won = $2, cases_dismissed = $3, cases_reduced = $4,
            success_rate = $5
        WHERE id = $6
    `
	_, err := r.db.Exec(ctx, query, lawyer.TotalCases, lawyer.CasesWon, lawyer.CasesDismissed,
		lawyer.CasesReduced, lawyer.SuccessRate, lawyer.ID)
	if err != nil {
		zap.L().Error("can't update lawyer statistics", zap.Error(err))
	}
	return err
}

func (r *Repository) UpdateRating(ctx context.Context, lawyerID uuid.UUID, average float64, count int) error {
	query := `
        UPDATE lawyers
        SET rating_average = $1, rating_count = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, average, count, lawyerID)
	if err != nil {
		zap.L().Error("can't update lawyer rating", zap.Error(err))
	}
	return err
}

func (r *Repository) Approve(ctx context.Context, lawyerID, approvedBy uuid.UUID, at time.Time) error {
	query := `
        UPDATE lawyers
        SET is_approved = TRUE, approved_by = $1, approved_at = $2, rejection_reason = ''
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, approvedBy, at, lawyerID)
	if err != nil {
		zap.L().Error("can't approve lawyer", zap.Error(err))
	}
	return err
}

func (r *Repository) Reject(ctx context.Context, lawyerID uuid.UUID, reason string) error {
	query := `
        UPDATE lawyers
        SET is_approved = FALSE, rejection_reason = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, reason, lawyerID)
	if err != nil {
		zap.L().Error("can't reject lawyer", zap.Error(err))
	}
	return err
}

func (r *Repository) FindPending(ctx context.Context) ([]domain.Lawyer, error) {
	query := `
        SELECT ` + lawyerColumns + `
        FROM lawyers
        WHERE is_approved = FALSE AND rejection_reason = ''
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't query pending lawyers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var lawyers []domain.Lawyer
	for rows.Next() {
		lawyer, err := scanLawyer(rows)
		if err != nil {
			zap.L().Error("can't scan lawyer row", zap.Error(err))
			return nil, err
		}
		lawyers = append(lawyers, *lawyer)
	}
	return lawyers, nil
}

// SearchSort names the supported public search orderings.
type SearchSort string

const (
	SortByRating     SearchSort = "rating"
	SortByExperience SearchSort = "experience"
	SortBySuccess    SearchSort = "success"
)

func (r *Repository) Search(ctx context.Context, state, specialization string, minRating float64, sortBy SearchSort, limit int) ([]domain.Lawyer, error) {
	order := "rating_average DESC"
	switch sortBy {
	case SortByExperience:
		order = "years_of_experience DESC"
	case SortBySuccess:
		order = "success_rate DESC"
	}

	query := `
        SELECT ` + lawyerColumns + `
        FROM lawyers
        WHERE is_approved = TRUE
          AND ($1 = '' OR EXISTS (
              SELECT 1 FROM jsonb_array_elements(jurisdictions) AS j
              WHERE j->>'state' = $1
          ))
          AND ($2 = '' OR specializations @> ARRAY[$2])
          AND rating_average >= $3
        ORDER BY ` + order + `
        LIMIT $4
    `
	rows, err := r.db.Query(ctx, query, state, specialization, minRating, limit)
	if err != nil {
		zap.L().Error("can't search lawyers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var lawyers []domain.Lawyer
	for rows.Next() {
		lawyer, err := scanLawyer(rows)
		if err != nil {
			zap.L().Error("can't scan lawyer row", zap.Error(err))
			return nil, err
		}
		lawyers = append(lawyers, *lawyer)
	}
	return lawyers, nil
}
