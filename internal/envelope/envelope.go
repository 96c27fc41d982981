// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package envelope shapes every API response into the uniform
// {success, message, data, pagination} document.
package envelope

import (
	"github.com/labstack/echo/v4"
)

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
	Limit      int   `json:"limit"`
}

type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// OK writes a success envelope with the given status and payload.
// Pass nil data for operations with no payload (delete).
func OK(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Paginated writes a success envelope with list data and page metadata.
func Paginated(c echo.Context, message string, data interface{}, p Pagination) error {
	return c.JSON(200, Response{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: &p,
	})
}

// Error writes a failure envelope. The message is echoed to the caller
// verbatim, so the layers below keep theirs presentable.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, Response{
		Success: false,
		Message: message,
	})
}
