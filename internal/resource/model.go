// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package resource

import (
	"time"

	"gorm.io/datatypes"
)

// Status is the lifecycle state of a resource. The store defaults it to
// active; anything outside the three enumerated values is rejected by
// the service before it reaches the store.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusPending  Status = "pending"
)

// Valid reports whether s is one of the enumerated statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusPending:
		return true
	}
	return false
}

// Resource is the single managed entity: a named, typed record with an
// opaque metadata document and store-managed timestamps.
type Resource struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"index;not null" json:"name"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	Type        string         `gorm:"index;not null" json:"type"`
	Status      Status         `gorm:"index;not null;default:active" json:"status"`
	Metadata    datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (Resource) TableName() string {
	return "resources"
}
