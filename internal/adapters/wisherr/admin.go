package wisherr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/wisherr/wisherr-ui/internal/domain/model"
)

// AdminListUsers returns all users, including soft-deleted ones.
func (c *Client) AdminListUsers(ctx context.Context, token string) ([]model.AdminUser, error) {
	var users []model.AdminUser
	if err := c.get(ctx, token, "/admin/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AdminCreateUser creates a user account.
func (c *Client) AdminCreateUser(ctx context.Context, token string, in model.AdminUserInput) (model.AdminUser, error) {
	var user model.AdminUser
	if err := c.post(ctx, token, "/admin/users", in, &user); err != nil {
		return model.AdminUser{}, err
	}
	return user, nil
}

// AdminUpdateUser updates a user account.
func (c *Client) AdminUpdateUser(ctx context.Context, token string, userID int64, in model.AdminUserInput) (model.AdminUser, error) {
	var user model.AdminUser
	if err := c.put(ctx, token, fmt.Sprintf("/admin/users/%d", userID), in, &user); err != nil {
		return model.AdminUser{}, err
	}
	return user, nil
}

// AdminDeleteUser soft-deletes a user account.
func (c *Client) AdminDeleteUser(ctx context.Context, token string, userID int64) error {
	return c.delete(ctx, token, fmt.Sprintf("/admin/users/%d", userID))
}

// AdminGetConfig returns every site configuration entry.
func (c *Client) AdminGetConfig(ctx context.Context, token string) ([]model.ConfigEntry, error) {
	var entries []model.ConfigEntry
	if err := c.get(ctx, token, "/admin/config", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// AdminUpdateConfig sets one configuration key.
func (c *Client) AdminUpdateConfig(ctx context.Context, token string, entry model.ConfigEntry) error {
	return c.put(ctx, token, "/admin/config", entry, nil)
}

// AdminListLogs returns a page of activity logs.
func (c *Client) AdminListLogs(ctx context.Context, token string, limit, offset int) ([]model.ActivityLog, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	path := "/admin/logs"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var logs []model.ActivityLog
	if err := c.get(ctx, token, path, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// AdminStats returns the aggregate instance counters.
func (c *Client) AdminStats(ctx context.Context, token string) (model.SiteStats, error) {
	var stats model.SiteStats
	if err := c.get(ctx, token, "/admin/stats", &stats); err != nil {
		return model.SiteStats{}, err
	}
	return stats, nil
}
