package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/portfolio/internal/database"
	"github.com/deppfellow/portfolio/internal/model"
	"github.com/deppfellow/portfolio/internal/repository"
)

const notifyTimeout = 10 * time.Second

// Notifier delivers contact form messages to the site owner.
type Notifier interface {
	SendContactNotification(ctx context.Context, to, name, fromEmail, message string) error
}

// ContactService records contact form submissions.
type ContactService struct {
	db       database.Provider
	table    *repository.Table[model.ContactMessage]
	notifier Notifier
	notifyTo string
	logger   *zerolog.Logger
}

// NewContactService builds the service. notifier may be nil, in which case
// submissions are only stored.
func NewContactService(
	db database.Provider,
	table *repository.Table[model.ContactMessage],
	notifier Notifier,
	notifyTo string,
	logger *zerolog.Logger,
) *ContactService {
	return &ContactService{
		db:       db,
		table:    table,
		notifier: notifier,
		notifyTo: notifyTo,
		logger:   logger,
	}
}

// Submit persists msg and then notifies the owner. A failed notification
// is logged and does not fail the submission.
func (s *ContactService) Submit(ctx context.Context, msg model.ContactMessage) (int64, error) {
	id, err := withConn(ctx, s.db, func(conn *sql.Conn) (int64, error) {
		return s.table.Insert(ctx, conn, msg)
	})
	if err != nil {
		return 0, err
	}

	if s.notifier != nil {
		// The message is already stored; a client disconnect must not cut
		// the notification short.
		notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()

		if err := s.notifier.SendContactNotification(notifyCtx, s.notifyTo, msg.Name, msg.Email, msg.Message); err != nil {
			s.loggerFor(ctx).Error().
				Err(err).
				Int64("contact_id", id).
				Msg("failed to send contact notification")
		}
	}

	return id, nil
}

// loggerFor prefers the request-scoped logger carried by ctx.
func (s *ContactService) loggerFor(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return s.logger
}
