// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package resource

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Ensure GormStore implements Store.
var _ Store = (*GormStore)(nil)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db}
}

func (s *GormStore) Create(ctx context.Context, r *Resource) error {
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *GormStore) List(ctx context.Context, f Filters) ([]Resource, int64, error) {
	q := s.db.WithContext(ctx).Model(&Resource{})

	if f.Type != "" {
		q = q.Where("type ILIKE ?", "%"+f.Type+"%")
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Name != "" {
		q = q.Where("name ILIKE ?", "%"+f.Name+"%")
	}

	// Total is counted before the window is applied so callers can
	// paginate.
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Order("created_at DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	var rows []Resource
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *GormStore) GetByID(ctx context.Context, id uint) (*Resource, error) {
	var r Resource
	err := s.db.WithContext(ctx).First(&r, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *GormStore) Update(ctx context.Context, id uint, u Updates) (*Resource, error) {
	fields := map[string]interface{}{}
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.Type != nil {
		fields["type"] = *u.Type
	}
	if u.Status != nil {
		fields["status"] = *u.Status
	}
	if u.Metadata != nil {
		fields["metadata"] = u.Metadata
	}
	// An empty update still refreshes the timestamp, matching the
	// behaviour of applying a no-op write.
	if len(fields) == 0 {
		fields["updated_at"] = time.Now()
	}

	// Single conditional UPDATE: zero affected rows means the record
	// is gone, so a delete racing this write surfaces as not-found
	// rather than a spurious store failure.
	res := s.db.WithContext(ctx).Model(&Resource{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return s.GetByID(ctx, id)
}

func (s *GormStore) Delete(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&Resource{})
	return res.RowsAffected > 0, res.Error
}

func (s *GormStore) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&Resource{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}
