package caserepo

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

const caseColumns = `id, case_number, user_id, lawyer_id, violation_type, ticket_number,
		issue_date, street, city, state, county, court_name, court_address,
		fine_amount, points, ticket_image, is_cdl_driver, license_number, license_state,
		status, court_date, outcome_type, final_fine, final_points, outcome_notes,
		quoted_price, actual_price, refund_amount,
		payment_status, payment_id, paid_at, assignment_score,
		rating_value, rating_review, rated_at, created_at`

func scanCase(row pg.RowScanner) (*domain.Case, error) {
	var c domain.Case
	err := row.Scan(&c.ID, &c.CaseNumber, &c.UserID, &c.LawyerID, &c.ViolationType, &c.TicketNumber,
		&c.IssueDate, &c.Street, &c.City, &c.State, &c.County, &c.CourtName, &c.CourtAddress,
		&c.FineAmount, &c.Points, &c.TicketImage, &c.IsCDLDriver, &c.LicenseNumber, &c.LicenseState,
		&c.Status, &c.CourtDate, &c.OutcomeType, &c.FinalFine, &c.FinalPoints, &c.OutcomeNotes,
		&c.QuotedPrice, &c.ActualPrice, &c.RefundAmount,
		&c.PaymentStatus, &c.PaymentID, &c.PaidAt, &c.AssignmentScore,
		&c.RatingValue, &c.RatingReview, &c.RatedAt, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Save(ctx context.Context, c *domain.Case) error {
	query := `
        INSERT INTO cases (case_number, user_id, violation_type, ticket_number, issue_date,
            street, city, state, county, court_name, court_address,
            fine_amount, points, ticket_image, is_cdl_driver, license_number, license_state,
            status, quoted_price)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
        RETURNING id, created_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query, c.CaseNumber, c.UserID, c.ViolationType, c.TicketNumber,
			c.IssueDate, c.Street, c.City, c.State, c.County, c.CourtName, c.CourtAddress,
			c.FineAmount, c.Points, c.TicketImage, c.IsCDLDriver, c.LicenseNumber, c.LicenseState,
			c.Status, c.QuotedPrice).
			Scan(&c.ID, &c.CreatedAt)
		if err != nil {
			zap.L().Error("can't save case", zap.Error(err))
			return err
		}
		return r.appendTimeline(ctx, c.ID, c.Status, "Case submitted successfully", c.UserID)
	})
	return err
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Case, error) {
	query := `
        SELECT ` + caseColumns + `
        FROM cases
        WHERE id = $1
    `
	c, err := scanCase(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find case", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Case, error) {
	return r.findAll(ctx, `WHERE user_id = $1`, userID)
}

func (r *Repository) FindByLawyerID(ctx context.Context, lawyerID uuid.UUID) ([]domain.Case, error) {
	return r.findAll(ctx, `WHERE lawyer_id = $1`, lawyerID)
}

func (r *Repository) findAll(ctx context.Context, where string, args ...any) ([]domain.Case, error) {
	query := `
        SELECT ` + caseColumns + `
        FROM cases
        ` + where + `
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't query cases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var cases []domain.Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			zap.L().Error("can't scan case row", zap.Error(err))
			return nil, err
		}
		cases = append(cases, *c)
	}
	return cases, nil
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]domain.Case, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM cases`).Scan(&total); err != nil {
		zap.L().Error("can't count cases", zap.Error(err))
		return nil, 0, err
	}
	query := `
        SELECT ` + caseColumns + `
        FROM cases
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("can't query cases", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var cases []domain.Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			zap.L().Error("can't scan case row", zap.Error(err))
			return nil, 0, err
		}
		cases = append(cases, *c)
	}
	return cases, total, nil
}

// SetAssignment stores the matched lawyer, score and assigned status together
// with the timeline entry in one transaction.
func (r *Repository) SetAssignment(ctx context.Context, caseID, lawyerID uuid.UUID, score float64, note string, actorID uuid.UUID) error {
	query := `
        UPDATE cases
        SET lawyer_id = $1, assignment_score = $2, status = $3
        WHERE id = $4
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, query, lawyerID, score, domain.CaseAssigned, caseID); err != nil {
			zap.L().Error("can't set case assignment", zap.Error(err))
			return err
		}
		return r.appendTimeline(ctx, caseID, domain.CaseAssigned, note, actorID)
	})
}

// UpdateStatus appends the timeline entry and moves the case status in one
// transaction, keeping the status equal to the newest entry.
func (r *Repository) UpdateStatus(ctx context.Context, caseID uuid.UUID, status domain.CaseStatus, note string, actorID uuid.UUID) error {
	query := `
        UPDATE cases
        SET status = $1
        WHERE id = $2
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, query, status, caseID); err != nil {
			zap.L().Error("can't update case status", zap.Error(err))
			return err
		}
		return r.appendTimeline(ctx, caseID, status, note, actorID)
	})
}

func (r *Repository) appendTimeline(ctx context.Context, caseID uuid.UUID, status domain.CaseStatus, note string, actorID uuid.UUID) error {
	query := `
        INSERT INTO case_timeline (case_id, status, note, actor_id)
        VALUES ($1, $2, $3, $4)
    `
	if _, err := r.db.Exec(ctx, query, caseID, status, note, actorID); err != nil {
		zap.L().Error("can't append timeline entry", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Timeline(ctx context.Context, caseID uuid.UUID) ([]domain.TimelineEntry, error) {
	query := `
        SELECT id, case_id, status, note, actor_id, created_at
        FROM case_timeline
        WHERE case_id = $1
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, caseID)
	if err != nil {
		zap.L().Error("can't query timeline", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.TimelineEntry
	for rows.Next() {
		var e domain.TimelineEntry
		if err := rows.Scan(&e.ID, &e.CaseID, &e.Status, &e.Note, &e.ActorID, &e.CreatedAt); err != nil {
			zap.L().Error("can't scan timeline row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *Repository) SetCourtDate(ctx context.Context, caseID uuid.UUID, courtDate time.Time) error {
	query := `
        UPDATE cases
        SET court_date = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, courtDate, caseID)
	if err != nil {
		zap.L().Error("can't set court date", zap.Error(err))
	}
	return err
}

func (r *Repository) SetOutcome(ctx context.Context, caseID uuid.UUID, outcome domain.OutcomeType, finalFine *float64, finalPoints *int, notes string) error {
	query := `
        UPDATE cases
        SET outcome_type = $1, final_fine = $2, final_points = $3, outcome_notes = $4
        WHERE id = $5
    `
	_, err := r.db.Exec(ctx, query, outcome, finalFine, finalPoints, notes, caseID)
	if err != nil {
		zap.L().Error("can't set case outcome", zap.Error(err))
	}
	return err
}

// SetRating records the client rating only when none exists yet.
func (r *Repository) SetRating(ctx context.Context, caseID uuid.UUID, rating int, review string, at time.Time) (bool, error) {
	query := `
        UPDATE cases
        SET rating_value = $1, rating_review = $2, rated_at = $3
        WHERE id = $4 AND rating_value IS NULL
    `
	tag, err := r.db.Exec(ctx, query, rating, review, at, caseID)
	if err != nil {
		zap.L().Error("can't set case rating", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) MarkPaid(ctx context.Context, caseID, paymentID uuid.UUID, actualPrice float64, paidAt time.Time) error {
	query := `
        UPDATE cases
        SET payment_status = $1, payment_id = $2, paid_at = $3, actual_price = $4
        WHERE id = $5
    `
	_, err := r.db.Exec(ctx, query, domain.CasePaymentPaid, paymentID, paidAt, actualPrice, caseID)
	if err != nil {
		zap.L().Error("can't mark case paid", zap.Error(err))
	}
	return err
}

func (r *Repository) MarkRefunded(ctx context.Context, caseID uuid.UUID, refundAmount float64) error {
	query := `
        UPDATE cases
        SET payment_status = $1, refund_amount = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, domain.CasePaymentRefunded, refundAmount, caseID)
	if err != nil {
		zap.L().Error("can't mark case refunded", zap.Error(err))
	}
	return err
}

func (r *Repository) AddDocument(ctx context.Context, doc *domain.CaseDocument) error {
	query := `
        INSERT INTO case_documents (case_id, name, type, url, uploaded_by)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, uploaded_at
    `
	err := r.db.QueryRow(ctx, query, doc.CaseID, doc.Name, doc.Type, doc.URL, doc.UploadedBy).
		Scan(&doc.ID, &doc.UploadedAt)
	if err != nil {
		zap.L().Error("can't add case document", zap.Error(err))
	}
	return err
}

func (r *Repository) Documents(ctx context.Context, caseID uuid.UUID) ([]domain.CaseDocument, error) {
	query := `
        SELECT id, case_id, name, type, url, uploaded_by, uploaded_at
        FROM case_documents
        WHERE case_id = $1
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, caseID)
	if err != nil {
		zap.L().Error("can't query case documents", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var docs []domain.CaseDocument
	for rows.Next() {
		var d domain.CaseDocument
		if err := rows.Scan(&d.ID, &d.CaseID, &d.Name, &d.Type, &d.URL, &d.UploadedBy, &d.UploadedAt); err != nil {
			zap.L().Error("can't scan document row", zap.Error(err))
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, nil
}
