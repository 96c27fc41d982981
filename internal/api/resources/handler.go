// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package resources

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"resourced/internal/envelope"
	"resourced/internal/resource"
)

type Handler struct {
	svc *resource.Service
}

func NewHandler(svc *resource.Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /resources.
func (h *Handler) Create(c echo.Context) error {
	var req CreateResourceRequest
	if err := c.Bind(&req); err != nil {
		return envelope.Error(c, http.StatusBadRequest, "Invalid request body")
	}

	r, err := h.svc.Create(c.Request().Context(), resource.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Status:      req.Status,
		Metadata:    req.Metadata,
	})
	if err != nil {
		// Create failures that are not validation errors still map to
		// 400 on this endpoint.
		return respondError(c, err, http.StatusBadRequest)
	}

	return envelope.OK(c, http.StatusCreated, "Resource created successfully", r)
}

// List handles GET /resources with optional type/status/name filters
// and page/limit pagination.
func (h *Handler) List(c echo.Context) error {
	page := intQueryParam(c, "page", 1)
	limit := intQueryParam(c, "limit", 10)

	result, err := h.svc.List(c.Request().Context(), resource.Filters{
		Type:   c.QueryParam("type"),
		Status: c.QueryParam("status"),
		Name:   c.QueryParam("name"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		return respondError(c, err, http.StatusInternalServerError)
	}

	return envelope.Paginated(c, "Resources retrieved successfully", result.Data, envelope.Pagination{
		Total:      result.Total,
		Page:       result.Page,
		TotalPages: result.TotalPages,
		Limit:      result.Limit,
	})
}

// GetByID handles GET /resources/:id.
func (h *Handler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return envelope.Error(c, http.StatusBadRequest, "Invalid resource ID")
	}

	r, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, http.StatusInternalServerError)
	}

	return envelope.OK(c, http.StatusOK, "Resource retrieved successfully", r)
}

// Update handles PUT /resources/:id.
func (h *Handler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return envelope.Error(c, http.StatusBadRequest, "Invalid resource ID")
	}

	var req UpdateResourceRequest
	if err := c.Bind(&req); err != nil {
		return envelope.Error(c, http.StatusBadRequest, "Invalid request body")
	}

	r, err := h.svc.Update(c.Request().Context(), id, req.updates())
	if err != nil {
		return respondError(c, err, http.StatusBadRequest)
	}

	return envelope.OK(c, http.StatusOK, "Resource updated successfully", r)
}

// Delete handles DELETE /resources/:id.
func (h *Handler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return envelope.Error(c, http.StatusBadRequest, "Invalid resource ID")
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err, http.StatusInternalServerError)
	}

	return envelope.OK(c, http.StatusOK, "Resource deleted successfully", nil)
}

// Stats handles GET /resources/stats.
func (h *Handler) Stats(c echo.Context) error {
	stats, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return respondError(c, err, http.StatusInternalServerError)
	}

	return envelope.OK(c, http.StatusOK, "Resource statistics retrieved successfully", stats)
}

// pathID parses the :id segment. Non-numeric values are rejected here,
// before the service sees them.
func pathID(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}

func intQueryParam(c echo.Context, name string, fallback int) int {
	v := c.QueryParam(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// respondError maps a service error onto the HTTP surface: validation
// to 400, not-found to 404, anything else to the endpoint's fallback
// status with the error logged.
func respondError(c echo.Context, err error, fallback int) error {
	if resource.IsValidation(err) {
		return envelope.Error(c, http.StatusBadRequest, err.Error())
	}
	if resource.IsNotFound(err) {
		return envelope.Error(c, http.StatusNotFound, err.Error())
	}

	zap.L().Error("resource request failed",
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return envelope.Error(c, fallback, err.Error())
}
