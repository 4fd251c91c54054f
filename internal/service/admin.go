package service

import (
	"context"
	"fmt"

	domainauth "github.com/wisherr/wisherr-ui/internal/domain/auth"
	"github.com/wisherr/wisherr-ui/internal/domain/model"
	apperrors "github.com/wisherr/wisherr-ui/internal/errors"
	"github.com/wisherr/wisherr-ui/internal/ports"
)

// AdminServiceOptions groups dependencies for AdminService.
type AdminServiceOptions struct {
	API ports.AdminAPI
}

// AdminService proxies instance administration to the backend. Every method
// re-checks the admin flag even though routing already guards these paths:
// the service must be safe to call from any future surface.
type AdminService struct {
	api ports.AdminAPI
}

// NewAdminService constructs a new AdminService.
func NewAdminService(opts AdminServiceOptions) *AdminService {
	return &AdminService{api: opts.API}
}

func requireAdmin(sess domainauth.Session) error {
	if !sess.IsAdmin() {
		return apperrors.Forbidden("admin access required")
	}
	return nil
}

// ListUsers returns every user account.
func (s *AdminService) ListUsers(ctx context.Context, sess domainauth.Session) ([]model.AdminUser, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}

	users, err := s.api.AdminListUsers(ctx, sess.Token)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// CreateUser creates a user account.
func (s *AdminService) CreateUser(ctx context.Context, sess domainauth.Session, in model.AdminUserInput) (model.AdminUser, error) {
	if err := requireAdmin(sess); err != nil {
		return model.AdminUser{}, err
	}
	if in.Username == "" {
		return model.AdminUser{}, apperrors.ValidationField("username", "username is required")
	}

	user, err := s.api.AdminCreateUser(ctx, sess.Token, in)
	if err != nil {
		return model.AdminUser{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// UpdateUser updates a user account.
func (s *AdminService) UpdateUser(ctx context.Context, sess domainauth.Session, userID int64, in model.AdminUserInput) (model.AdminUser, error) {
	if err := requireAdmin(sess); err != nil {
		return model.AdminUser{}, err
	}

	user, err := s.api.AdminUpdateUser(ctx, sess.Token, userID, in)
	if err != nil {
		return model.AdminUser{}, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// DeleteUser soft-deletes a user account. Admins cannot delete themselves;
// the instance must always keep a live administrator.
func (s *AdminService) DeleteUser(ctx context.Context, sess domainauth.Session, userID int64) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	if userID == sess.User.ID {
		return apperrors.Conflict("cannot delete your own account")
	}

	if err := s.api.AdminDeleteUser(ctx, sess.Token, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// GetConfig returns every site configuration entry.
func (s *AdminService) GetConfig(ctx context.Context, sess domainauth.Session) ([]model.ConfigEntry, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}

	entries, err := s.api.AdminGetConfig(ctx, sess.Token)
	if err != nil {
		return nil, fmt.Errorf("get config: %w", err)
	}
	return entries, nil
}

// UpdateConfig sets one configuration key.
func (s *AdminService) UpdateConfig(ctx context.Context, sess domainauth.Session, entry model.ConfigEntry) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	if entry.Key == "" {
		return apperrors.ValidationField("key", "key is required")
	}

	if err := s.api.AdminUpdateConfig(ctx, sess.Token, entry); err != nil {
		return fmt.Errorf("update config: %w", err)
	}
	return nil
}

// ListLogs returns a page of activity logs.
func (s *AdminService) ListLogs(ctx context.Context, sess domainauth.Session, limit, offset int) ([]model.ActivityLog, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	logs, err := s.api.AdminListLogs(ctx, sess.Token, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	return logs, nil
}

// Stats returns the aggregate instance counters.
func (s *AdminService) Stats(ctx context.Context, sess domainauth.Session) (model.SiteStats, error) {
	if err := requireAdmin(sess); err != nil {
		return model.SiteStats{}, err
	}

	stats, err := s.api.AdminStats(ctx, sess.Token)
	if err != nil {
		return model.SiteStats{}, fmt.Errorf("admin stats: %w", err)
	}
	return stats, nil
}
