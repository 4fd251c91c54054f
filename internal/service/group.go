package service

import (
	"context"
	"fmt"

	domainauth "github.com/wisherr/wisherr-ui/internal/domain/auth"
	"github.com/wisherr/wisherr-ui/internal/domain/model"
	apperrors "github.com/wisherr/wisherr-ui/internal/errors"
	"github.com/wisherr/wisherr-ui/internal/ports"
)

// GroupServiceOptions groups dependencies for GroupService.
type GroupServiceOptions struct {
	API ports.GroupAPI
}

// GroupService proxies sharing-group management to the backend.
type GroupService struct {
	api ports.GroupAPI
}

// NewGroupService constructs a new GroupService.
func NewGroupService(opts GroupServiceOptions) *GroupService {
	return &GroupService{api: opts.API}
}

// List returns the session user's groups.
func (s *GroupService) List(ctx context.Context, sess domainauth.Session) ([]model.Group, error) {
	groups, err := s.api.ListGroups(ctx, sess.Token)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

// Create creates a group owned by the session user.
func (s *GroupService) Create(ctx context.Context, sess domainauth.Session, in model.GroupInput) (model.Group, error) {
	if in.Name == "" {
		return model.Group{}, apperrors.ValidationField("name", "name is required")
	}

	group, err := s.api.CreateGroup(ctx, sess.Token, in)
	if err != nil {
		return model.Group{}, fmt.Errorf("create group: %w", err)
	}
	return group, nil
}

// Update updates a group.
func (s *GroupService) Update(ctx context.Context, sess domainauth.Session, groupID int64, in model.GroupInput) (model.Group, error) {
	if in.Name == "" {
		return model.Group{}, apperrors.ValidationField("name", "name is required")
	}

	group, err := s.api.UpdateGroup(ctx, sess.Token, groupID, in)
	if err != nil {
		return model.Group{}, fmt.Errorf("update group: %w", err)
	}
	return group, nil
}

// Delete removes a group.
func (s *GroupService) Delete(ctx context.Context, sess domainauth.Session, groupID int64) error {
	if err := s.api.DeleteGroup(ctx, sess.Token, groupID); err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	return nil
}

// Members returns a group's membership.
func (s *GroupService) Members(ctx context.Context, sess domainauth.Session, groupID int64) ([]model.GroupMember, error) {
	members, err := s.api.ListGroupMembers(ctx, sess.Token, groupID)
	if err != nil {
		return nil, fmt.Errorf("list group members: %w", err)
	}
	return members, nil
}

// AddMember adds a user to a group by username.
func (s *GroupService) AddMember(ctx context.Context, sess domainauth.Session, groupID int64, username string) error {
	if username == "" {
		return apperrors.ValidationField("username", "username is required")
	}

	if err := s.api.AddGroupMember(ctx, sess.Token, groupID, username); err != nil {
		return fmt.Errorf("add group member: %w", err)
	}
	return nil
}

// RemoveMember removes a user from a group.
func (s *GroupService) RemoveMember(ctx context.Context, sess domainauth.Session, groupID, memberID int64) error {
	if err := s.api.RemoveGroupMember(ctx, sess.Token, groupID, memberID); err != nil {
		return fmt.Errorf("remove group member: %w", err)
	}
	return nil
}
