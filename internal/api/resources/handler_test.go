// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package resources_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"resourced/internal/api/resources"
	"resourced/internal/envelope"
	"resourced/internal/resource"
)

//
// MockStore (same pattern as the service tests)
//

type MockStore struct {
	data   map[uint]resource.Resource
	nextID uint
	clock  time.Time
}

func NewMockStore() *MockStore {
	return &MockStore{
		data:  map[uint]resource.Resource{},
		clock: time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC),
	}
}

func (m *MockStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *MockStore) Create(_ context.Context, r *resource.Resource) error {
	m.nextID++
	r.ID = m.nextID
	ts := m.tick()
	r.CreatedAt = ts
	r.UpdatedAt = ts
	m.data[r.ID] = *r
	return nil
}

func (m *MockStore) List(_ context.Context, f resource.Filters) ([]resource.Resource, int64, error) {
	var matched []resource.Resource
	for _, r := range m.data {
		if f.Type != "" && !strings.Contains(strings.ToLower(r.Type), strings.ToLower(f.Type)) {
			continue
		}
		if f.Status != "" && string(r.Status) != f.Status {
			continue
		}
		if f.Name != "" && !strings.Contains(strings.ToLower(r.Name), strings.ToLower(f.Name)) {
			continue
		}
		matched = append(matched, r)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if f.Offset > 0 {
		if f.Offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[f.Offset:]
		}
	}
	if f.Limit > 0 && len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}
	return matched, total, nil
}

func (m *MockStore) GetByID(_ context.Context, id uint) (*resource.Resource, error) {
	r, ok := m.data[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (m *MockStore) Update(_ context.Context, id uint, u resource.Updates) (*resource.Resource, error) {
	r, ok := m.data[id]
	if !ok {
		return nil, nil
	}
	if u.Name != nil {
		r.Name = *u.Name
	}
	if u.Description != nil {
		r.Description = u.Description
	}
	if u.Type != nil {
		r.Type = *u.Type
	}
	if u.Status != nil {
		r.Status = *u.Status
	}
	if u.Metadata != nil {
		r.Metadata = u.Metadata
	}
	r.UpdatedAt = m.tick()
	m.data[id] = r
	return &r, nil
}

func (m *MockStore) Delete(_ context.Context, id uint) (bool, error) {
	_, ok := m.data[id]
	delete(m.data, id)
	return ok, nil
}

func (m *MockStore) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := m.data[id]
	return ok, nil
}

//
// Helpers
//

func newHandler() (*resources.Handler, *MockStore) {
	store := NewMockStore()
	return resources.NewHandler(resource.NewService(store)), store
}

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope.Response {
	t.Helper()
	var env envelope.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, rec.Body.String())
	}
	return env
}

func seedResource(t *testing.T, store *MockStore, name, typ string, status resource.Status) uint {
	t.Helper()
	r := &resource.Resource{Name: name, Type: typ, Status: status}
	if err := store.Create(context.Background(), r); err != nil {
		t.Fatalf("seed %q: %v", name, err)
	}
	return r.ID
}

//
// Create
//

func TestCreate_DefaultsStatus(t *testing.T) {
	h, _ := newHandler()

	c, rec := newContext("POST", "/resources", `{"name":"X","type":"server"}`)
	if err := h.Create(c); err != nil {
		t.Fatal(err)
	}

	if rec.Code != 201 {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	env := decodeEnvelope(t, rec)
	if !env.Success {
		t.Fatalf("expected success envelope, got %+v", env)
	}

	data := env.Data.(map[string]interface{})
	if data["status"] != "active" {
		t.Fatalf("expected default status active, got %v", data["status"])
	}
	if data["created_at"] != data["updated_at"] {
		t.Fatalf("created_at and updated_at should match on creation: %v vs %v",
			data["created_at"], data["updated_at"])
	}
}

func TestCreate_MissingFields(t *testing.T) {
	h, store := newHandler()

	c, rec := newContext("POST", "/resources", `{"name":"X"}`)
	if err := h.Create(c); err != nil {
		t.Fatal(err)
	}

	if rec.Code != 400 {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Success {
		t.Fatal("expected failure envelope")
	}
	if len(store.data) != 0 {
		t.Fatal("invalid create must not persist a row")
	}
}

func TestCreate_InvalidBody(t *testing.T) {
	h, _ := newHandler()

	c, rec := newContext("POST", "/resources", `{"name":`)
	if err := h.Create(c); err != nil {
		t.Fatal(err)
	}

	if rec.Code != 400 {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

//
// GetByID
//

func TestGetByID_NonNumericID(t *testing.T) {
	h, _ := newHandler()

	c, rec := newContext("GET", "/resources/abc", "")
	c.SetPath("/resources/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.GetByID(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != 400 {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != "Invalid resource ID" {
		t.Fatalf("unexpected message %q", env.Message)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	h, _ := newHandler()

	c, rec := newContext("GET", "/resources/9999999", "")
	c.SetPath("/resources/:id")
	c.SetParamNames("id")
	c.SetParamValues("9999999")

	if err := h.GetByID(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != 404 {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

//
// Update
//

func TestUpdate_BogusStatus(t *testing.T) {
	h, store := newHandler()
	id := seedResource(t, store, "X", "server", resource.StatusActive)

	c, rec := newContext("PUT", "/resources/1", `{"status":"bogus"}`)
	c.SetPath("/resources/:id")
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Update(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != 400 {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if store.data[id].Status != resource.StatusActive {
		t.Fatal("rejected update must not change the row")
	}
}

func TestUpdate_PartialFields(t *testing.T) {
	h, store := newHandler()
	id := seedResource(t, store, "X", "server", resource.StatusActive)

	c, rec := newContext("PUT", "/resources/1", `{"name":"Renamed"}`)
	c.SetPath("/resources/:id")
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Update(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	got := store.data[id]
	if got.Name != "Renamed" || got.Type != "server" || got.Status != resource.StatusActive {
		t.Fatalf("partial update applied wrong fields: %+v", got)
	}
}

//
// Delete
//

func TestDelete_Twice(t *testing.T) {
	h, store := newHandler()
	seedResource(t, store, "X", "server", resource.StatusActive)

	del := func() *httptest.ResponseRecorder {
		c, rec := newContext("DELETE", "/resources/1", "")
		c.SetPath("/resources/:id")
		c.SetParamNames("id")
		c.SetParamValues("1")
		if err := h.Delete(c); err != nil {
			t.Fatal(err)
		}
		return rec
	}

	if rec := del(); rec.Code != 200 {
		t.Fatalf("first delete: expected 200, got %d", rec.Code)
	}
	if rec := del(); rec.Code != 404 {
		t.Fatalf("second delete: expected 404, got %d", rec.Code)
	}
}

//
// List
//

func TestList_PaginationEnvelope(t *testing.T) {
	h, store := newHandler()
	for i := 0; i < 7; i++ {
		seedResource(t, store, "X", "server", resource.StatusActive)
	}

	c, rec := newContext("GET", "/resources?page=2&limit=5", "")
	if err := h.List(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	env := decodeEnvelope(t, rec)
	if env.Pagination == nil {
		t.Fatal("expected pagination metadata")
	}
	if env.Pagination.Total != 7 || env.Pagination.Page != 2 ||
		env.Pagination.TotalPages != 2 || env.Pagination.Limit != 5 {
		t.Fatalf("unexpected pagination: %+v", env.Pagination)
	}

	data := env.Data.([]interface{})
	if len(data) != 2 {
		t.Fatalf("page 2 of 7 with limit 5 should hold 2 rows, got %d", len(data))
	}
}

func TestList_DefaultsWhenParamsAbsent(t *testing.T) {
	h, store := newHandler()
	for i := 0; i < 12; i++ {
		seedResource(t, store, "X", "server", resource.StatusActive)
	}

	c, rec := newContext("GET", "/resources", "")
	if err := h.List(c); err != nil {
		t.Fatal(err)
	}

	env := decodeEnvelope(t, rec)
	if env.Pagination.Page != 1 || env.Pagination.Limit != 10 {
		t.Fatalf("expected page=1 limit=10 defaults, got %+v", env.Pagination)
	}
	if len(env.Data.([]interface{})) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(env.Data.([]interface{})))
	}
}

//
// Stats
//

func TestStats(t *testing.T) {
	h, store := newHandler()
	seedResource(t, store, "a", "server", resource.StatusActive)
	seedResource(t, store, "b", "server", resource.StatusActive)
	seedResource(t, store, "c", "database", resource.StatusActive)
	seedResource(t, store, "d", "cache", resource.StatusInactive)
	seedResource(t, store, "e", "server", resource.StatusPending)

	c, rec := newContext("GET", "/resources/stats", "")
	if err := h.Stats(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	env := decodeEnvelope(t, rec)
	data := env.Data.(map[string]interface{})
	if data["total"].(float64) != 5 {
		t.Fatalf("expected total=5, got %v", data["total"])
	}
	byStatus := data["byStatus"].(map[string]interface{})
	if byStatus["active"].(float64) != 3 || byStatus["inactive"].(float64) != 1 || byStatus["pending"].(float64) != 1 {
		t.Fatalf("unexpected byStatus: %v", byStatus)
	}
}
