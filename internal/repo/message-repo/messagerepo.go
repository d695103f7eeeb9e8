package messagerepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/otr-legal/otr-backend/internal/domain"
	"github.com/otr-legal/otr-backend/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Save(ctx context.Context, m *domain.Message) error {
	query := `
        INSERT INTO messages (case_id, sender_id, receiver_id, content)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, m.CaseID, m.SenderID, m.ReceiverID, m.Content).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		zap.L().Error("can't save message", zap.Error(err))
	}
	return err
}

func (r *Repository) FindByCaseID(ctx context.Context, caseID uuid.UUID) ([]domain.Message, error) {
	query := `
        SELECT id, case_id, sender_id, receiver_id, content, is_read, read_at, created_at
        FROM messages
        WHERE case_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, caseID)
	if err != nil {
		zap.L().Error("can't query messages", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.CaseID, &m.SenderID, &m.ReceiverID, &m.Content,
			&m.IsRead, &m.ReadAt, &m.CreatedAt); err != nil {
			zap.L().Error("can't scan message row", zap.Error(err))
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, nil
}

// MarkRead marks every unread message addressed to the reader within the case.
func (r *Repository) MarkRead(ctx context.Context, caseID, readerID uuid.UUID, at time.Time) error {
	query := `
        UPDATE messages
        SET is_read = TRUE, read_at = $1
        WHERE case_id = $2 AND receiver_id = $3 AND is_read = FALSE
    `
	_, err := r.db.Exec(ctx, query, at, caseID, readerID)
	if err != nil {
		zap.L().Error("can't mark messages read", zap.Error(err))
	}
	return err
}

func (r *Repository) CountUnread(ctx context.Context, receiverID uuid.UUID) (int, error) {
	query := `
        SELECT count(*)
        FROM messages
        WHERE receiver_id = $1 AND is_read = FALSE
    `
	var count int
	if err := r.db.QueryRow(ctx, query, receiverID).Scan(&count); err != nil {
		zap.L().Error("can't count unread messages", zap.Error(err))
		return 0, err
	}
	return count, nil
}
