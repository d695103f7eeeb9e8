package messagerepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/otr-legal/otr-backend/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	m := &domain.Message{
		CaseID:     uuid.New(),
		SenderID:   uuid.New(),
		ReceiverID: uuid.New(),
		Content:    "When is my hearing?",
	}

	t.Run("Message saved", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO messages").
			WithArgs(m.CaseID, m.SenderID, m.ReceiverID, m.Content).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(uuid.New(), time.Now()))

		err := repo.Save(context.Background(), m)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, m.ID)
	})

	t.Run("Insert fails", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO messages").
			WillReturnError(errors.New("db error"))

		err := repo.Save(context.Background(), m)
		assert.Error(t, err)
	})
}

func TestRepository_FindByCaseID(t *testing.T) {
	repo, mock := NewMock(t)
	caseID := uuid.New()
	senderID := uuid.New()
	receiverID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM messages").
		WithArgs(caseID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "case_id", "sender_id", "receiver_id", "content", "is_read", "read_at", "created_at"}).
			AddRow(uuid.New(), caseID, senderID, receiverID, "hello", false, nil, now).
			AddRow(uuid.New(), caseID, receiverID, senderID, "hi", true, &now, now))

	messages, err := repo.FindByCaseID(context.Background(), caseID)
	assert.NoError(t, err)
	assert.Len(t, messages, 2)
	assert.False(t, messages[0].IsRead)
	assert.True(t, messages[1].IsRead)
}

func TestRepository_MarkRead(t *testing.T) {
	repo, mock := NewMock(t)
	caseID := uuid.New()
	readerID := uuid.New()
	now := time.Now()

	mock.ExpectExec("UPDATE messages").
		WithArgs(now, caseID, readerID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	err := repo.MarkRead(context.Background(), caseID, readerID, now)
	assert.NoError(t, err)
}

func TestRepository_CountUnread(t *testing.T) {
	repo, mock := NewMock(t)
	receiverID := uuid.New()

	t.Run("Unread counted", func(t *testing.T) {
		mock.ExpectQuery("SELECT count").
			WithArgs(receiverID).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

		count, err := repo.CountUnread(context.Background(), receiverID)
		assert.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT count").
			WithArgs(receiverID).
			WillReturnError(errors.New("db error"))

		count, err := repo.CountUnread(context.Background(), receiverID)
		assert.Error(t, err)
		assert.Zero(t, count)
	})
}
