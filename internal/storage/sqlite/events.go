package sqlite

import (
	"context"
	"errors"

	"festhub/gen/model"
	"festhub/gen/table"
	"festhub/internal/domain"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
)

func (s *Storage) ListEvents(ctx context.Context) ([]domain.Event, error) {
	var events []model.Events
	err := table.Events.
		SELECT(table.Events.AllColumns).
		ORDER_BY(table.Events.EventDate.ASC()).
		QueryContext(ctx, s.db, &events)
	if err != nil {
		return nil, err
	}
	return convertEventsToDomain(events)
}

func (s *Storage) ListFeatured(ctx context.Context, limit int) ([]domain.Event, error) {
	var events []model.Events
	err := table.Events.
		SELECT(table.Events.AllColumns).
		WHERE(table.Events.Featured.IS_TRUE()).
		ORDER_BY(table.Events.EventDate.ASC()).
		LIMIT(int64(limit)).
		QueryContext(ctx, s.db, &events)
	if err != nil {
		return nil, err
	}
	return convertEventsToDomain(events)
}

func (s *Storage) ListEventsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	exprs := make([]sqlite.Expression, 0, len(ids))
	for _, id := range ids {
		exprs = append(exprs, sqlite.UUID(id))
	}
	var events []model.Events
	err := table.Events.
		SELECT(table.Events.AllColumns).
		WHERE(table.Events.ID.IN(exprs...)).
		ORDER_BY(table.Events.EventDate.ASC()).
		QueryContext(ctx, s.db, &events)
	if err != nil {
		return nil, err
	}
	return convertEventsToDomain(events)
}

func (s *Storage) GetEvent(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	var event model.Events
	err := table.Events.
		SELECT(table.Events.AllColumns).
		WHERE(table.Events.ID.EQ(sqlite.UUID(id))).
		QueryContext(ctx, s.db, &event)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Event{}, domain.ErrNotFound
		}
		return domain.Event{}, err
	}
	return convertEventToDomain(event)
}
