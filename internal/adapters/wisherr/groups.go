package wisherr

import (
	"context"
	"fmt"

	"github.com/wisherr/wisherr-ui/internal/domain/model"
)

// ListGroups returns the groups visible to the token's user.
func (c *Client) ListGroups(ctx context.Context, token string) ([]model.Group, error) {
	var groups []model.Group
	if err := c.get(ctx, token, "/groups", &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// CreateGroup creates a group owned by the token's user.
func (c *Client) CreateGroup(ctx context.Context, token string, in model.GroupInput) (model.Group, error) {
	var group model.Group
	if err := c.post(ctx, token, "/groups", in, &group); err != nil {
		return model.Group{}, err
	}
	return group, nil
}

// UpdateGroup updates a group's name or description.
func (c *Client) UpdateGroup(ctx context.Context, token string, groupID int64, in model.GroupInput) (model.Group, error) {
	var group model.Group
	if err := c.put(ctx, token, fmt.Sprintf("/groups/%d", groupID), in, &group); err != nil {
		return model.Group{}, err
	}
	return group, nil
}

// DeleteGroup removes a group.
func (c *Client) DeleteGroup(ctx context.Context, token string, groupID int64) error {
	return c.delete(ctx, token, fmt.Sprintf("/groups/%d", groupID))
}

// ListGroupMembers returns the members of a group.
func (c *Client) ListGroupMembers(ctx context.Context, token string, groupID int64) ([]model.GroupMember, error) {
	var members []model.GroupMember
	if err := c.get(ctx, token, fmt.Sprintf("/groups/%d/members", groupID), &members); err != nil {
		return nil, err
	}
	return members, nil
}

// AddGroupMember adds a user to a group by username.
func (c *Client) AddGroupMember(ctx context.Context, token string, groupID int64, username string) error {
	body := map[string]string{"username": username}
	return c.post(ctx, token, fmt.Sprintf("/groups/%d/members", groupID), body, nil)
}

// RemoveGroupMember removes a membership row.
func (c *Client) RemoveGroupMember(ctx context.Context, token string, groupID, memberID int64) error {
	return c.delete(ctx, token, fmt.Sprintf("/groups/%d/members/%d", groupID, memberID))
}
