// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package resource

import (
	"context"

	"gorm.io/datatypes"
)

// Filters narrows a List call. The zero value of each field means "no
// filter". Type and Name are case-insensitive substring matches, Status
// is an exact match. Limit <= 0 means unlimited, Offset <= 0 means none.
type Filters struct {
	Type   string
	Status string
	Name   string
	Limit  int
	Offset int
}

// Updates is a partial write. Nil pointer fields are left untouched;
// Metadata is replaced wholesale when non-nil.
type Updates struct {
	Name        *string
	Description *string
	Type        *string
	Status      *Status
	Metadata    datatypes.JSON
}

// Store is the query layer over the resources table. It performs no
// validation: absence is reported as a nil record or a false flag, not
// an error, and only store-level failures come back as errors.
type Store interface {
	Create(ctx context.Context, r *Resource) error

	// List returns the matching rows ordered by created_at descending,
	// plus the total count of matches before Limit/Offset are applied.
	List(ctx context.Context, f Filters) ([]Resource, int64, error)

	// GetByID returns (nil, nil) when no record exists.
	GetByID(ctx context.Context, id uint) (*Resource, error)

	// Update applies only the supplied fields and refreshes updated_at.
	// Returns (nil, nil) when no record exists.
	Update(ctx context.Context, id uint, u Updates) (*Resource, error)

	// Delete reports whether a row was actually removed.
	Delete(ctx context.Context, id uint) (bool, error)

	Exists(ctx context.Context, id uint) (bool, error)
}
