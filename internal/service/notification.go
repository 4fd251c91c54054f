package service

import (
	"context"
	"fmt"

	domainauth "github.com/wisherr/wisherr-ui/internal/domain/auth"
	"github.com/wisherr/wisherr-ui/internal/domain/model"
	"github.com/wisherr/wisherr-ui/internal/ports"
)

// NotificationServiceOptions groups dependencies for NotificationService.
type NotificationServiceOptions struct {
	API ports.NotificationAPI
}

// NotificationService proxies user notification queries to the backend.
type NotificationService struct {
	api ports.NotificationAPI
}

// NewNotificationService constructs a new NotificationService.
func NewNotificationService(opts NotificationServiceOptions) *NotificationService {
	return &NotificationService{api: opts.API}
}

// List returns the session user's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, sess domainauth.Session) ([]model.Notification, error) {
	notifications, err := s.api.ListNotifications(ctx, sess.Token)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

// UnreadCount returns the unread badge counter.
func (s *NotificationService) UnreadCount(ctx context.Context, sess domainauth.Session) (model.NotificationCount, error) {
	count, err := s.api.NotificationCount(ctx, sess.Token)
	if err != nil {
		return model.NotificationCount{}, fmt.Errorf("notification count: %w", err)
	}
	return count, nil
}

// MarkRead marks the given notifications as read. An empty id list is a
// no-op, not an error.
func (s *NotificationService) MarkRead(ctx context.Context, sess domainauth.Session, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	if err := s.api.MarkNotificationsRead(ctx, sess.Token, ids); err != nil {
		return fmt.Errorf("mark notifications read: %w", err)
	}
	return nil
}

// MarkAllRead clears the unread state for every notification.
func (s *NotificationService) MarkAllRead(ctx context.Context, sess domainauth.Session) error {
	if err := s.api.MarkAllNotificationsRead(ctx, sess.Token); err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return nil
}
