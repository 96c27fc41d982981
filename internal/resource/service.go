// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package resource

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
)

const (
	defaultLimit  = 10
	defaultOffset = 0
)

// Service enforces the business rules the store does not: required
// fields, the status enum, positive ids, existence before update and
// delete. It is the only layer that produces ValidationError and
// NotFoundError.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// CreateInput is the caller-supplied portion of a new resource.
type CreateInput struct {
	Name        string
	Description *string
	Type        string
	Status      Status
	Metadata    datatypes.JSON
}

// ListResult carries one page of resources plus pagination metadata.
type ListResult struct {
	Data       []Resource
	Total      int64
	Page       int
	TotalPages int
	Limit      int
}

// Stats aggregates occurrence counts across the whole table.
type Stats struct {
	Total    int64          `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
	ByType   map[string]int `json:"byType"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Resource, error) {
	if in.Name == "" || in.Type == "" {
		return nil, validationErrorf("Name and type are required fields")
	}
	if in.Status != "" && !in.Status.Valid() {
		return nil, validationErrorf("Invalid status. Must be one of: %s, %s, %s",
			StatusActive, StatusInactive, StatusPending)
	}

	r := &Resource{
		Name:        in.Name,
		Description: in.Description,
		Type:        in.Type,
		Status:      in.Status,
		Metadata:    in.Metadata,
	}
	if r.Status == "" {
		r.Status = StatusActive
	}

	if err := s.store.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}
	return r, nil
}

func (s *Service) List(ctx context.Context, f Filters) (*ListResult, error) {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Offset < 0 {
		f.Offset = defaultOffset
	}

	rows, total, err := s.store.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}

	totalPages := int((total + int64(f.Limit) - 1) / int64(f.Limit))

	return &ListResult{
		Data:       rows,
		Total:      total,
		Page:       f.Offset/f.Limit + 1,
		TotalPages: totalPages,
		Limit:      f.Limit,
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*Resource, error) {
	if id <= 0 {
		return nil, validationErrorf("Valid resource ID is required")
	}

	r, err := s.store.GetByID(ctx, uint(id))
	if err != nil {
		return nil, fmt.Errorf("fetch resource %d: %w", id, err)
	}
	if r == nil {
		return nil, notFoundErrorf("Resource not found")
	}
	return r, nil
}

func (s *Service) Update(ctx context.Context, id int, u Updates) (*Resource, error) {
	if id <= 0 {
		return nil, validationErrorf("Valid resource ID is required")
	}

	// Existence is probed up front so an unknown id comes back as
	// not-found rather than a failed write. This is not atomic with a
	// concurrent delete; the store's conditional UPDATE reports zero
	// rows in that window and we translate it to not-found as well.
	exists, err := s.store.Exists(ctx, uint(id))
	if err != nil {
		return nil, fmt.Errorf("check resource %d: %w", id, err)
	}
	if !exists {
		return nil, notFoundErrorf("Resource not found")
	}

	if u.Status != nil && !u.Status.Valid() {
		return nil, validationErrorf("Invalid status. Must be one of: %s, %s, %s",
			StatusActive, StatusInactive, StatusPending)
	}

	r, err := s.store.Update(ctx, uint(id), u)
	if err != nil {
		return nil, fmt.Errorf("update resource %d: %w", id, err)
	}
	if r == nil {
		return nil, notFoundErrorf("Resource not found")
	}
	return r, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return validationErrorf("Valid resource ID is required")
	}

	exists, err := s.store.Exists(ctx, uint(id))
	if err != nil {
		return fmt.Errorf("check resource %d: %w", id, err)
	}
	if !exists {
		return notFoundErrorf("Resource not found")
	}

	deleted, err := s.store.Delete(ctx, uint(id))
	if err != nil {
		return fmt.Errorf("delete resource %d: %w", id, err)
	}
	if !deleted {
		return notFoundErrorf("Resource not found")
	}
	return nil
}

// Stats loads every row and counts occurrences in memory. Counting
// could be pushed into the store, but the in-memory walk is what the
// endpoint has always reported, quirks included: any status or type
// value that shows up in a row is counted, known to the enum or not.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	rows, total, err := s.store.List(ctx, Filters{})
	if err != nil {
		return nil, fmt.Errorf("fetch resource statistics: %w", err)
	}

	stats := &Stats{
		Total:    total,
		ByStatus: map[string]int{},
		ByType:   map[string]int{},
	}
	for _, r := range rows {
		stats.ByStatus[string(r.Status)]++
		stats.ByType[r.Type]++
	}
	return stats, nil
}
