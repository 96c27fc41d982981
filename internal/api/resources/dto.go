// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package resources

import (
	"gorm.io/datatypes"

	"resourced/internal/resource"
)

// CreateResourceRequest is the POST /resources body.
type CreateResourceRequest struct {
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Type        string          `json:"type"`
	Status      resource.Status `json:"status"`
	Metadata    datatypes.JSON  `json:"metadata"`
}

// UpdateResourceRequest is the PUT /resources/:id body. Absent fields
// stay nil and leave the stored value untouched.
type UpdateResourceRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Type        *string          `json:"type"`
	Status      *resource.Status `json:"status"`
	Metadata    datatypes.JSON   `json:"metadata"`
}

func (r UpdateResourceRequest) updates() resource.Updates {
	return resource.Updates{
		Name:        r.Name,
		Description: r.Description,
		Type:        r.Type,
		Status:      r.Status,
		Metadata:    r.Metadata,
	}
}
