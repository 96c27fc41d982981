// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"resourced/internal/api/resources"
	"resourced/internal/resource"
)

// IMPORTANT:
// /resources/stats shares a prefix with /resources/:id. A matcher that
// tried the parameterized route first would hand "stats" to the id
// parser and turn every stats call into a 400. echo prefers static
// segments over params, but the stats route is still registered first
// so the intent survives a router swap.
func New(svc *resource.Service) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(RequestLogger())

	h := resources.NewHandler(svc)

	e.GET("/", info)

	e.GET("/resources/stats", h.Stats)
	e.POST("/resources", h.Create)
	e.GET("/resources", h.List)
	e.GET("/resources/:id", h.GetByID)
	e.PUT("/resources/:id", h.Update)
	e.DELETE("/resources/:id", h.Delete)

	return e
}

// info answers GET / with a small service description.
func info(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"name":        "Resource Management API",
		"version":     "1.0.0",
		"description": "CRUD service for resource records with filtering, pagination and statistics",
		"endpoints": map[string]string{
			"resources":  "/resources",
			"statistics": "/resources/stats",
		},
		"status": "running",
	})
}
