// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package db

import (
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"resourced/internal/resource"
)

// Seed wipes the resources table and loads a small inventory of sample
// infrastructure records. Development only.
func Seed(db *gorm.DB) error {
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&resource.Resource{}).Error; err != nil {
		return fmt.Errorf("clear resources table: %w", err)
	}

	records := seedResources()
	if err := db.Create(&records).Error; err != nil {
		return fmt.Errorf("insert seed resources: %w", err)
	}
	return nil
}

func seedResources() []resource.Resource {
	return []resource.Resource{
		{
			Name:        "Database Server",
			Description: strPtr("Primary PostgreSQL database server for production environment"),
			Type:        "database",
			Status:      resource.StatusActive,
			Metadata:    datatypes.JSON(`{"version":"13.4","location":"us-east-1","cpu":"4 cores","memory":"16GB"}`),
		},
		{
			Name:        "Web Application Server",
			Description: strPtr("Application server running the main web application"),
			Type:        "server",
			Status:      resource.StatusActive,
			Metadata:    datatypes.JSON(`{"port":3000,"environment":"production"}`),
		},
		{
			Name:        "Redis Cache",
			Description: strPtr("Redis server for caching frequently accessed data"),
			Type:        "cache",
			Status:      resource.StatusActive,
			Metadata:    datatypes.JSON(`{"version":"6.2","maxMemory":"2GB","evictionPolicy":"allkeys-lru"}`),
		},
		{
			Name:        "Load Balancer",
			Description: strPtr("NGINX load balancer for distributing incoming requests"),
			Type:        "networking",
			Status:      resource.StatusActive,
			Metadata:    datatypes.JSON(`{"maxConnections":1000,"algorithm":"round-robin","healthCheck":true}`),
		},
		{
			Name:        "Backup Storage",
			Description: strPtr("S3 bucket for storing application backups"),
			Type:        "storage",
			Status:      resource.StatusActive,
			Metadata:    datatypes.JSON(`{"size":"500GB","encryption":"AES-256","retentionDays":30}`),
		},
		{
			Name:        "Development Environment",
			Description: strPtr("Staging environment for testing new features"),
			Type:        "environment",
			Status:      resource.StatusPending,
			Metadata:    datatypes.JSON(`{"branch":"develop","autoDeployment":true,"testCoverage":"85%"}`),
		},
		{
			Name:        "Legacy API Server",
			Description: strPtr("Old API server that needs to be decommissioned"),
			Type:        "server",
			Status:      resource.StatusInactive,
			Metadata:    datatypes.JSON(`{"version":"1.0","deprecatedSince":"2024-01-01","replacedBy":"Web Application Server"}`),
		},
	}
}

func strPtr(s string) *string { return &s }
