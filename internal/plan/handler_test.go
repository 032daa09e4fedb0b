package plan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func setupTestRouter() (*gin.Engine, *InMemoryRepository) {
	gin.SetMode(gin.TestMode)

	repo := NewInMemoryRepository()
	logger := logrus.New()
	handler := NewHandler(NewService(repo, logger), logger)

	r := gin.New()
	r.POST("/api/plans", handler.CreatePlan)
	r.GET("/api/plans", handler.ListPlans)
	r.GET("/api/plans/:id", handler.GetPlan)
	return r, repo
}

func postPlan(t *testing.T, r *gin.Engine, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()

	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/plans", bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validPlanBody() map[string]any {
	return map[string]any{
		"type":  "カフェ",
		"seats": 20,
		"atv":   800,
		"hours": "10:00-20:00",
		"area":  "駅近",
	}
}

func TestCreatePlanReturnsFullResult(t *testing.T) {
	r, _ := setupTestRouter()

	w := postPlan(t, r, validPlanBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}

	if got["id"] == nil {
		t.Fatal("expected assigned id")
	}
	if got["monthly_sales"].(float64) != 864000 {
		t.Fatalf("expected monthly_sales 864000, got %v", got["monthly_sales"])
	}
	if got["payback_months"].(float64) != 24 {
		t.Fatalf("expected payback_months 24, got %v", got["payback_months"])
	}

	// derived-only fields are present on create
	for _, key := range []string{
		"catch_copy", "target_audience", "menu_examples", "sns_strategy",
		"staff_count", "peak_operation", "initial_investment", "opening_cost",
		"funding_methods", "seat_occupancy_rate",
	} {
		if _, ok := got[key]; !ok {
			t.Fatalf("expected derived field %q in create response", key)
		}
	}
}

func TestCreatePlanValidation(t *testing.T) {
	r, _ := setupTestRouter()

	cases := []struct {
		name string
		body map[string]any
	}{
		{"empty type", map[string]any{"type": "", "seats": 20, "atv": 800, "hours": "x", "area": "駅近"}},
		{"empty area", map[string]any{"type": "カフェ", "seats": 20, "atv": 800, "hours": "x", "area": ""}},
		{"zero seats", map[string]any{"type": "カフェ", "seats": 0, "atv": 800, "hours": "x", "area": "駅近"}},
		{"negative atv", map[string]any{"type": "カフェ", "seats": 20, "atv": -1, "hours": "x", "area": "駅近"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postPlan(t, r, tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", w.Code)
			}
		})
	}
}

func TestGetPlanRoundTripPersistedFieldsOnly(t *testing.T) {
	r, _ := setupTestRouter()

	w := postPlan(t, r, validPlanBody())
	var created map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	id := int64(created["id"].(float64))

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/plans/%d", id), nil)
	wGet := httptest.NewRecorder()
	r.ServeHTTP(wGet, req)

	if wGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", wGet.Code)
	}

	var fetched map[string]any
	if err := json.Unmarshal(wGet.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}

	// persisted fields round-trip
	for _, key := range []string{
		"type", "seats", "atv", "hours", "area",
		"turnover", "daily_guests", "monthly_sales", "cogs_rate", "cogs",
		"gross_profit", "labor_cost", "fixed_cost", "op_income",
		"payback_months", "concept", "action",
	} {
		if fetched[key] != created[key] {
			t.Fatalf("field %q changed on round-trip: created %v, fetched %v",
				key, created[key], fetched[key])
		}
	}

	// derived-only fields are NOT recomputed on fetch
	for _, key := range []string{"catch_copy", "menu_examples", "funding_methods", "staff_count"} {
		if _, ok := fetched[key]; ok {
			t.Fatalf("derived field %q must not appear in fetch response", key)
		}
	}
}

func TestGetPlanNotFound(t *testing.T) {
	r, _ := setupTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/plans/999", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestGetPlanInvalidID(t *testing.T) {
	r, _ := setupTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/plans/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestListPlansNewestFirstWithDefaultLimit(t *testing.T) {
	r, _ := setupTestRouter()

	for i := 0; i < 12; i++ {
		body := validPlanBody()
		body["seats"] = 10 + i
		if w := postPlan(t, r, body); w.Code != http.StatusCreated {
			t.Fatalf("seed create failed: %d", w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/plans", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var plans []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &plans); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(plans) != 10 {
		t.Fatalf("expected default limit of 10, got %d", len(plans))
	}
	// newest first: the last created plan had seats=21
	if plans[0]["seats"].(float64) != 21 {
		t.Fatalf("expected newest plan first (seats=21), got %v", plans[0]["seats"])
	}

	req = httptest.NewRequest(http.MethodGet, "/api/plans?skip=10&limit=5", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if err := json.Unmarshal(w.Body.Bytes(), &plans); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("expected 2 remaining plans, got %d", len(plans))
	}
}
