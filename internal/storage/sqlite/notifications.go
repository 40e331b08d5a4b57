package sqlite

import (
	"context"

	"festhub/gen/model"
	"festhub/gen/table"
	"festhub/internal/domain"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
)

func (s *Storage) Append(ctx context.Context, notif domain.Notification) error {
	_, err := table.Notifications.
		INSERT(table.Notifications.AllColumns).
		MODEL(convertNotificationFromDomain(notif)).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	return nil
}

func (s *Storage) ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error) {
	var notifs []model.Notifications
	err := table.Notifications.
		SELECT(table.Notifications.AllColumns).
		WHERE(table.Notifications.UserID.EQ(sqlite.UUID(userID))).
		ORDER_BY(table.Notifications.CreatedAt.DESC()).
		LIMIT(int64(limit)).
		QueryContext(ctx, s.db, &notifs)
	if err != nil {
		return nil, err
	}
	return convertNotificationsToDomain(notifs)
}

func (s *Storage) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	var dest struct {
		Count int64
	}
	err := table.Notifications.
		SELECT(sqlite.COUNT(table.Notifications.ID).AS("count")).
		WHERE(
			table.Notifications.UserID.EQ(sqlite.UUID(userID)).
				AND(table.Notifications.Read.IS_FALSE()),
		).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return 0, err
	}
	return int(dest.Count), nil
}

// MarkRead is a no-op success for already-read or missing notifications.
func (s *Storage) MarkRead(ctx context.Context, id uuid.UUID) error {
	_, err := table.Notifications.
		UPDATE(table.Notifications.Read).
		SET(true).
		WHERE(table.Notifications.ID.EQ(sqlite.UUID(id))).
		ExecContext(ctx, s.db)
	return err
}

// MarkAllRead flips every unread row in one statement. Rows appended
// after the statement's snapshot stay unread.
func (s *Storage) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	_, err := table.Notifications.
		UPDATE(table.Notifications.Read).
		SET(true).
		WHERE(
			table.Notifications.UserID.EQ(sqlite.UUID(userID)).
				AND(table.Notifications.Read.IS_FALSE()),
		).
		ExecContext(ctx, s.db)
	return err
}

// Delete is a no-op success for a missing id.
func (s *Storage) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := table.Notifications.
		DELETE().
		WHERE(table.Notifications.ID.EQ(sqlite.UUID(id))).
		ExecContext(ctx, s.db)
	return err
}

func (s *Storage) DeleteAll(ctx context.Context, userID uuid.UUID) error {
	_, err := table.Notifications.
		DELETE().
		WHERE(table.Notifications.UserID.EQ(sqlite.UUID(userID))).
		ExecContext(ctx, s.db)
	return err
}
