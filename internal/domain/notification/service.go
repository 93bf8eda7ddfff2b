package notification

import (
	"context"
	"time"

	"go.uber.org/zap"

	"prodboard/internal/pkg/logx"
)

type Service struct {
	repo Repository
	hub  *Hub
	log  logx.Logger
}

func NewService(repo Repository, hub *Hub, log logx.Logger) *Service {
	return &Service{repo: repo, hub: hub, log: log}
}

// Notify persists a notification and pushes it to the user's open
// dashboard socket. A push failure never fails the caller.
func (s *Service) Notify(ctx context.Context, userID int64, typ Type, title, message string) {
	n := &Notification{
		UserID:    userID,
		Type:      typ,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		s.log.Error("failed to persist notification",
			zap.Int64("user_id", userID),
			zap.String("type", string(typ)),
			zap.Error(err),
		)
		return
	}

	s.hub.Push(userID, &WSEvent{Type: string(typ), Payload: n})
}

func (s *Service) ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]*Notification, error) {
	return s.repo.ListByUser(ctx, userID, unreadOnly)
}

func (s *Service) MarkRead(ctx context.Context, userID, id int64) error {
	return s.repo.MarkRead(ctx, userID, id)
}

func (s *Service) MarkAllRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllRead(ctx, userID)
}
