// repository/group_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/sickmonk1434-ops/Xpense-Share/models"
)

// GroupRepository handles database operations for groups and memberships
type GroupRepository struct {
	DB *sql.DB
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository() *GroupRepository {
	return &GroupRepository{
		DB: GetDB(),
	}
}

// CreateGroup saves a group and its creator membership atomically
func (r *GroupRepository) CreateGroup(group *models.Group) error {
	return ExecBatch([]Statement{
		{
			SQL:  "INSERT INTO groups (id, name, icon_url, created_by) VALUES ($1, $2, $3, $4)",
			Args: []interface{}{group.ID, group.Name, nullable(group.IconURL), group.CreatedBy},
		},
		{
			SQL:  "INSERT INTO group_members (group_id, user_id) VALUES ($1, $2)",
			Args: []interface{}{group.ID, group.CreatedBy},
		},
	})
}

// GetGroupByID retrieves a group by its ID
func (r *GroupRepository) GetGroupByID(groupID string) (*models.Group, error) {
	var group models.Group
	var iconURL sql.NullString

	err := r.DB.QueryRow(
		"SELECT id, name, icon_url, created_by, created_at FROM groups WHERE id = $1",
		groupID,
	).Scan(&group.ID, &group.Name, &iconURL, &group.CreatedBy, &group.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %v", err)
	}

	group.IconURL = iconURL.String
	return &group, nil
}

// ListGroupsForUser retrieves all groups the user belongs to, newest first
func (r *GroupRepository) ListGroupsForUser(userID string) ([]models.Group, error) {
	rows, err := r.DB.Query(
		`SELECT g.id, g.name, g.icon_url, g.created_by, g.created_at,
                (SELECT COUNT(*) FROM group_members WHERE group_id = g.id) AS member_count
         FROM groups g
         JOIN group_members gm ON gm.group_id = g.id
         WHERE gm.user_id = $1
         ORDER BY g.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %v", err)
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		var group models.Group
		var iconURL sql.NullString
		if err := rows.Scan(&group.ID, &group.Name, &iconURL, &group.CreatedBy,
			&group.CreatedAt, &group.MemberCount); err != nil {
			return nil, fmt.Errorf("failed to scan group: %v", err)
		}
		group.IconURL = iconURL.String
		groups = append(groups, group)
	}
	return groups, rows.Err()
}

// GetGroupMembers retrieves the member profiles of a group
func (r *GroupRepository) GetGroupMembers(groupID string) ([]models.Profile, error) {
	rows, err := r.DB.Query(
		`SELECT p.id, p.email, p.full_name, p.avatar_url, p.subscription_tier,
                p.max_groups, p.max_members_per_group
         FROM profiles p
         JOIN group_members gm ON gm.user_id = p.id
         WHERE gm.group_id = $1
         ORDER BY gm.joined_at ASC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %v", err)
	}
	defer rows.Close()

	var members []models.Profile
	for rows.Next() {
		var profile models.Profile
		var email, fullName, avatarURL sql.NullString
		if err := rows.Scan(&profile.ID, &email, &fullName, &avatarURL,
			&profile.SubscriptionTier, &profile.MaxGroups, &profile.MaxMembersPerGroup); err != nil {
			return nil, fmt.Errorf("failed to scan member: %v", err)
		}
		profile.Email = email.String
		profile.FullName = fullName.String
		profile.AvatarURL = avatarURL.String
		members = append(members, profile)
	}
	return members, rows.Err()
}

// RenameGroup updates a group's name
func (r *GroupRepository) RenameGroup(groupID, name string) error {
	_, err := r.DB.Exec("UPDATE groups SET name = $2 WHERE id = $1", groupID, name)
	if err != nil {
		return fmt.Errorf("failed to rename group: %v", err)
	}
	return nil
}

// DeleteGroup removes a group; memberships, expenses, settlements and
// invitations cascade at the store level.
func (r *GroupRepository) DeleteGroup(groupID string) error {
	_, err := r.DB.Exec("DELETE FROM groups WHERE id = $1", groupID)
	if err != nil {
		return fmt.Errorf("failed to delete group: %v", err)
	}
	return nil
}

// RemoveMember deletes a membership row
func (r *GroupRepository) RemoveMember(groupID, userID string) error {
	_, err := r.DB.Exec(
		"DELETE FROM group_members WHERE group_id = $1 AND user_id = $2",
		groupID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove member: %v", err)
	}
	return nil
}

// IsMember reports whether the user belongs to the group
func (r *GroupRepository) IsMember(groupID, userID string) (bool, error) {
	var count int
	err := r.DB.QueryRow(
		"SELECT COUNT(*) FROM group_members WHERE group_id = $1 AND user_id = $2",
		groupID, userID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check membership: %v", err)
	}
	return count > 0, nil
}

// CountMembers counts the group's current members
func (r *GroupRepository) CountMembers(groupID string) (int, error) {
	var count int
	err := r.DB.QueryRow(
		"SELECT COUNT(*) FROM group_members WHERE group_id = $1",
		groupID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count members: %v", err)
	}
	return count, nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
