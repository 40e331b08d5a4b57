package sqlite

import (
	"context"
	"time"

	"festhub/gen/model"
	"festhub/gen/table"
	"festhub/internal/domain"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
)

func (s *Storage) CreateRegistration(ctx context.Context, userID uuid.UUID, reg domain.Registration, notif domain.Notification) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Authoritative uniqueness check: the registered-set containment
	// check in the service can race with a concurrent Register for the
	// same pair, this one cannot.
	var existing []model.Registrations
	err = table.Registrations.
		SELECT(table.Registrations.ID).
		WHERE(
			table.Registrations.EventID.EQ(sqlite.UUID(reg.EventID)).
				AND(table.Registrations.Email.EQ(sqlite.String(reg.Email))).
				AND(table.Registrations.Status.EQ(sqlite.String(string(domain.RegistrationActive)))),
		).
		QueryContext(ctx, tx, &existing)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return domain.ErrAlreadyRegistered
	}

	_, err = table.Registrations.
		INSERT(table.Registrations.AllColumns).
		MODEL(convertRegistrationFromDomain(reg)).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}

	_, err = table.UserEvents.
		INSERT(table.UserEvents.AllColumns).
		MODEL(model.UserEvents{
			UserID:  userID.String(),
			EventID: reg.EventID.String(),
		}).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}

	res, err := table.Events.
		UPDATE(table.Events.RegistrationsCount).
		SET(table.Events.RegistrationsCount.ADD(sqlite.Int32(1))).
		WHERE(table.Events.ID.EQ(sqlite.UUID(reg.EventID))).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	_, err = table.Notifications.
		INSERT(table.Notifications.AllColumns).
		MODEL(convertNotificationFromDomain(notif)).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Storage) CancelRegistration(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, email string, cancelledAt time.Time, notif domain.Notification) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	res, err := table.UserEvents.
		DELETE().
		WHERE(
			table.UserEvents.UserID.EQ(sqlite.UUID(userID)).
				AND(table.UserEvents.EventID.EQ(sqlite.UUID(eventID))),
		).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotRegistered
	}

	// The counter never goes below zero.
	_, err = table.Events.
		UPDATE(table.Events.RegistrationsCount).
		SET(table.Events.RegistrationsCount.SUB(sqlite.Int32(1))).
		WHERE(
			table.Events.ID.EQ(sqlite.UUID(eventID)).
				AND(table.Events.RegistrationsCount.GT(sqlite.Int32(0))),
		).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}

	// Every matching active row flips in one statement.
	_, err = table.Registrations.
		UPDATE(table.Registrations.Status, table.Registrations.CancelledAt).
		SET(string(domain.RegistrationCancelled), cancelledAt).
		WHERE(
			table.Registrations.EventID.EQ(sqlite.UUID(eventID)).
				AND(table.Registrations.Email.EQ(sqlite.String(email))).
				AND(table.Registrations.Status.EQ(sqlite.String(string(domain.RegistrationActive)))),
		).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}

	_, err = table.Notifications.
		INSERT(table.Notifications.AllColumns).
		MODEL(convertNotificationFromDomain(notif)).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}

	return tx.Commit()
}
