package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const contactGroupColumns = `g.id, g.company_id, g.name, g.description,
    (SELECT COUNT(*) FROM contacts c WHERE c.group_id = g.id)::int AS contact_count,
    g.created_at, g.updated_at`

const sqlCreateContactGroup = `
WITH g AS (
    INSERT INTO contact_groups (company_id, name, description)
    VALUES ($1, $2, $3)
    RETURNING *
)
SELECT g.id, g.company_id, g.name, g.description, 0 AS contact_count, g.created_at, g.updated_at FROM g`

func (s *Store) CreateContactGroup(ctx context.Context, companyID uuid.UUID, name string, description *string) (ContactGroup, error) {
	var group ContactGroup
	err := s.db.GetContext(ctx, &group, sqlCreateContactGroup, companyID, name, description)
	if err != nil {
		s.logger.Error(ctx, "failed to create contact group", err)
		return ContactGroup{}, fmt.Errorf("failed to create contact group: %w", err)
	}
	return group, nil
}

const sqlGetContactGroupByID = `SELECT ` + contactGroupColumns + ` FROM contact_groups g WHERE g.id = $1`

// GetContactGroupByID retrieves a group with its member count
func (s *Store) GetContactGroupByID(ctx context.Context, id uuid.UUID) (ContactGroup, error) {
	var group ContactGroup
	err := s.db.GetContext(ctx, &group, sqlGetContactGroupByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ContactGroup{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get contact group by id", err)
		return ContactGroup{}, fmt.Errorf("failed to get contact group by id: %w", err)
	}
	return group, nil
}

const sqlListContactGroups = `
SELECT ` + contactGroupColumns + `
FROM contact_groups g
WHERE $1::uuid IS NULL OR g.company_id = $1
ORDER BY g.name`

func (s *Store) ListContactGroups(ctx context.Context, companyID *uuid.UUID) ([]ContactGroup, error) {
	groups := []ContactGroup{}
	if err := s.db.SelectContext(ctx, &groups, sqlListContactGroups, companyID); err != nil {
		s.logger.Error(ctx, "failed to list contact groups", err)
		return nil, fmt.Errorf("failed to list contact groups: %w", err)
	}
	return groups, nil
}

const sqlUpdateContactGroup = `
UPDATE contact_groups
SET name = COALESCE($2, name),
    description = COALESCE($3, description),
    updated_at = NOW()
WHERE id = $1`

func (s *Store) UpdateContactGroup(ctx context.Context, id uuid.UUID, name, description *string) (ContactGroup, error) {
	res, err := s.db.ExecContext(ctx, sqlUpdateContactGroup, id, name, description)
	if err != nil {
		s.logger.Error(ctx, "failed to update contact group", err)
		return ContactGroup{}, fmt.Errorf("failed to update contact group: %w", err)
	}
	if err := expectAffected(res); err != nil {
		return ContactGroup{}, err
	}
	return s.GetContactGroupByID(ctx, id)
}

const sqlDeleteContactGroup = `DELETE FROM contact_groups WHERE id = $1`

// DeleteContactGroup removes a group; its contacts stay, ungrouped
func (s *Store) DeleteContactGroup(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteContactGroup, id)
	if err != nil {
		s.logger.Error(ctx, "failed to delete contact group", err)
		return fmt.Errorf("failed to delete contact group: %w", err)
	}
	return expectAffected(res)
}
