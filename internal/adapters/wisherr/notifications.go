package wisherr

import (
	"context"

	"github.com/wisherr/wisherr-ui/internal/domain/model"
)

// ListNotifications returns the token's user's notifications, newest first.
func (c *Client) ListNotifications(ctx context.Context, token string) ([]model.Notification, error) {
	var notifs []model.Notification
	if err := c.get(ctx, token, "/notifications", &notifs); err != nil {
		return nil, err
	}
	return notifs, nil
}

// NotificationCount returns the unread badge count.
func (c *Client) NotificationCount(ctx context.Context, token string) (model.NotificationCount, error) {
	var count model.NotificationCount
	if err := c.get(ctx, token, "/notifications/count", &count); err != nil {
		return model.NotificationCount{}, err
	}
	return count, nil
}

// MarkNotificationsRead marks the given notifications read.
func (c *Client) MarkNotificationsRead(ctx context.Context, token string, ids []int64) error {
	body := map[string][]int64{"ids": ids}
	return c.post(ctx, token, "/notifications/mark-read", body, nil)
}

// MarkAllNotificationsRead marks every notification read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context, token string) error {
	return c.post(ctx, token, "/notifications/mark-all-read", nil, nil)
}
