package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/wisherr/wisherr-ui/internal/domain/auth"
	"github.com/wisherr/wisherr-ui/internal/domain/model"
	apperrors "github.com/wisherr/wisherr-ui/internal/errors"
)

// stubAdminAPI counts backend calls so tests can assert the guard short
// circuits before the API is touched.
type stubAdminAPI struct {
	calls int
}

func (s *stubAdminAPI) AdminListUsers(ctx context.Context, token string) ([]model.AdminUser, error) {
	s.calls++
	return []model.AdminUser{{ID: 1, Username: "root", IsAdmin: true}}, nil
}

func (s *stubAdminAPI) AdminCreateUser(ctx context.Context, token string, in model.AdminUserInput) (model.AdminUser, error) {
	s.calls++
	return model.AdminUser{ID: 2, Username: in.Username}, nil
}

func (s *stubAdminAPI) AdminUpdateUser(ctx context.Context, token string, userID int64, in model.AdminUserInput) (model.AdminUser, error) {
	s.calls++
	return model.AdminUser{ID: userID}, nil
}

func (s *stubAdminAPI) AdminDeleteUser(ctx context.Context, token string, userID int64) error {
	s.calls++
	return nil
}

func (s *stubAdminAPI) AdminGetConfig(ctx context.Context, token string) ([]model.ConfigEntry, error) {
	s.calls++
	return nil, nil
}

func (s *stubAdminAPI) AdminUpdateConfig(ctx context.Context, token string, entry model.ConfigEntry) error {
	s.calls++
	return nil
}

func (s *stubAdminAPI) AdminListLogs(ctx context.Context, token string, limit, offset int) ([]model.ActivityLog, error) {
	s.calls++
	return nil, nil
}

func (s *stubAdminAPI) AdminStats(ctx context.Context, token string) (model.SiteStats, error) {
	s.calls++
	return model.SiteStats{Users: 3}, nil
}

func adminSession(t *testing.T) domainauth.Session {
	t.Helper()
	return sessionFor(t, domainauth.User{ID: 99, Username: "root", IsAdmin: true})
}

func TestAdminService_NonAdminIsForbiddenEverywhere(t *testing.T) {
	api := &stubAdminAPI{}
	service := NewAdminService(AdminServiceOptions{API: api})
	sess := sessionFor(t, domainauth.User{ID: 10, Username: "alice"})
	ctx := context.Background()

	_, err := service.ListUsers(ctx, sess)
	assert.True(t, apperrors.IsForbidden(err))

	_, err = service.CreateUser(ctx, sess, model.AdminUserInput{Username: "bob"})
	assert.True(t, apperrors.IsForbidden(err))

	_, err = service.UpdateUser(ctx, sess, 2, model.AdminUserInput{})
	assert.True(t, apperrors.IsForbidden(err))

	err = service.DeleteUser(ctx, sess, 2)
	assert.True(t, apperrors.IsForbidden(err))

	_, err = service.GetConfig(ctx, sess)
	assert.True(t, apperrors.IsForbidden(err))

	err = service.UpdateConfig(ctx, sess, model.ConfigEntry{Key: "site_title"})
	assert.True(t, apperrors.IsForbidden(err))

	_, err = service.ListLogs(ctx, sess, 10, 0)
	assert.True(t, apperrors.IsForbidden(err))

	_, err = service.Stats(ctx, sess)
	assert.True(t, apperrors.IsForbidden(err))

	assert.Zero(t, api.calls, "backend must not be called for non-admins")
}

func TestAdminService_AdminPassesThrough(t *testing.T) {
	api := &stubAdminAPI{}
	service := NewAdminService(AdminServiceOptions{API: api})
	sess := adminSession(t)

	users, err := service.ListUsers(context.Background(), sess)
	require.NoError(t, err)
	require.Len(t, users, 1)

	stats, err := service.Stats(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Users)
	assert.Equal(t, 2, api.calls)
}

func TestAdminService_DeleteUser_RejectsSelf(t *testing.T) {
	api := &stubAdminAPI{}
	service := NewAdminService(AdminServiceOptions{API: api})
	sess := adminSession(t)

	err := service.DeleteUser(context.Background(), sess, sess.User.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Zero(t, api.calls)

	require.NoError(t, service.DeleteUser(context.Background(), sess, 42))
	assert.Equal(t, 1, api.calls)
}

func TestAdminService_ListLogs_NormalizesPaging(t *testing.T) {
	var gotLimit, gotOffset int
	api := &pagingAdminAPI{onLogs: func(limit, offset int) {
		gotLimit, gotOffset = limit, offset
	}}
	service := NewAdminService(AdminServiceOptions{API: api})

	_, err := service.ListLogs(context.Background(), adminSession(t), 0, -5)
	require.NoError(t, err)
	assert.Equal(t, 50, gotLimit)
	assert.Equal(t, 0, gotOffset)
}

type pagingAdminAPI struct {
	stubAdminAPI
	onLogs func(limit, offset int)
}

func (p *pagingAdminAPI) AdminListLogs(ctx context.Context, token string, limit, offset int) ([]model.ActivityLog, error) {
	p.onLogs(limit, offset)
	return nil, nil
}
