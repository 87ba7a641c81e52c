package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/michellecaii/Mood-tracker/internal/config"
	"github.com/michellecaii/Mood-tracker/internal/database"
	"github.com/michellecaii/Mood-tracker/internal/insight"
	"github.com/michellecaii/Mood-tracker/internal/store"

	"github.com/gin-gonic/gin"
)

// stubGenerator returns a canned insight without any network call.
type stubGenerator struct {
	result insight.Result
}

func (s stubGenerator) Generate(_ context.Context, _, _ string) insight.Result {
	return s.result
}

func newTestAPI(t *testing.T, gen insight.Generator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Init(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("init database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	st := store.New(db)
	r := gin.New()
	api := r.Group("/api")

	entryHandler := NewEntryHandler(st, gen)
	api.POST("/entries", entryHandler.CreateEntry)
	api.GET("/entries", entryHandler.ListEntries)
	api.GET("/entries/:id", entryHandler.GetEntry)
	api.DELETE("/entries/:id", entryHandler.DeleteEntry)

	patternsHandler := NewPatternsHandler(st, 7, 6)
	api.GET("/themes", patternsHandler.GetThemes)
	api.GET("/patterns", patternsHandler.GetPatterns)

	return r
}

func defaultStub() stubGenerator {
	return stubGenerator{result: insight.Result{
		Summary: "A thoughtful entry.",
		Themes:  []string{"Reflection", "Growth"},
	}}
}

type entryPayload struct {
	ID         uint   `json:"id"`
	Date       string `json:"date"`
	Emotion    string `json:"emotion"`
	Reflection string `json:"reflection"`
	Insights   *struct {
		Summary string   `json:"summary"`
		Themes  []string `json:"themes"`
	} `json:"insights"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEntry(t *testing.T, w *httptest.ResponseRecorder) entryPayload {
	t.Helper()
	var resp struct {
		Data struct {
			Entry entryPayload `json:"entry"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v (%s)", err, w.Body.String())
	}
	return resp.Data.Entry
}

func TestCreateAndGetEntry_RoundTrip(t *testing.T) {
	r := newTestAPI(t, defaultStub())

	w := doJSON(t, r, http.MethodPost, "/api/entries", map[string]string{
		"emotion":    "Calm",
		"reflection": "text",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("POST /api/entries status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
	created := decodeEntry(t, w)
	if created.ID == 0 {
		t.Fatal("created entry has no id")
	}

	w = doJSON(t, r, http.MethodGet, "/api/entries/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/entries/1 status = %d, want 200", w.Code)
	}
	fetched := decodeEntry(t, w)

	if fetched.Emotion != "Calm" || fetched.Reflection != "text" {
		t.Errorf("fetched entry = %+v, want same emotion and reflection", fetched)
	}
	if fetched.Insights == nil {
		t.Fatal("fetched entry has null insights, want the generated insight")
	}
	if fetched.Insights.Summary == "" {
		t.Error("insight summary is empty")
	}
	if len(fetched.Insights.Themes) > 5 {
		t.Errorf("insight has %d themes, want <= 5", len(fetched.Insights.Themes))
	}
}

func TestCreateEntry_FallbackInsightIsStored(t *testing.T) {
	// generator behaves as if no API key is configured
	r := newTestAPI(t, stubGenerator{result: insight.FallbackNoKey()})

	w := doJSON(t, r, http.MethodPost, "/api/entries", map[string]string{
		"reflection": "no key today",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("POST status = %d, want 200", w.Code)
	}
	entry := decodeEntry(t, w)

	if entry.Insights == nil {
		t.Fatal("insights = nil, want fallback insight")
	}
	if entry.Insights.Summary != insight.FallbackNoKey().Summary {
		t.Errorf("summary = %q, want fixed fallback", entry.Insights.Summary)
	}
	if len(entry.Insights.Themes) != 3 {
		t.Errorf("themes = %v, want the 3 fixed fallback themes", entry.Insights.Themes)
	}
}

func TestCreateEntry_Validation(t *testing.T) {
	r := newTestAPI(t, defaultStub())

	testCases := []map[string]string{
		{},
		{"reflection": ""},
		{"reflection": "   "},
		{"emotion": "Calm"},
	}
	for _, body := range testCases {
		w := doJSON(t, r, http.MethodPost, "/api/entries", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("POST %v status = %d, want 400", body, w.Code)
		}
	}
}

func TestGetEntry_BadIDAndNotFound(t *testing.T) {
	r := newTestAPI(t, defaultStub())

	w := doJSON(t, r, http.MethodGet, "/api/entries/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("GET /api/entries/abc status = %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/entries/9999", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("GET /api/entries/9999 status = %d, want 404", w.Code)
	}
}

func TestListEntries_FiltersAndValidation(t *testing.T) {
	r := newTestAPI(t, defaultStub())
	doJSON(t, r, http.MethodPost, "/api/entries", map[string]string{"reflection": "one"})
	doJSON(t, r, http.MethodPost, "/api/entries", map[string]string{"reflection": "two"})

	w := doJSON(t, r, http.MethodGet, "/api/entries", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/entries status = %d, want 200", w.Code)
	}
	var resp struct {
		Data struct {
			Entries []entryPayload `json:"entries"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data.Entries) != 2 {
		t.Errorf("listed %d entries, want 2", len(resp.Data.Entries))
	}
	for _, e := range resp.Data.Entries {
		if e.Insights == nil {
			t.Errorf("entry %d has null insights, want embedded insight", e.ID)
		}
	}

	if w := doJSON(t, r, http.MethodGet, "/api/entries?days=abc", nil); w.Code != http.StatusBadRequest {
		t.Errorf("GET ?days=abc status = %d, want 400", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/api/entries?date=03-10-2026", nil); w.Code != http.StatusBadRequest {
		t.Errorf("GET ?date=03-10-2026 status = %d, want 400", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/api/entries?days=7", nil); w.Code != http.StatusOK {
		t.Errorf("GET ?days=7 status = %d, want 200", w.Code)
	}
}

func TestDeleteEntry_RemovesEntry(t *testing.T) {
	r := newTestAPI(t, defaultStub())
	doJSON(t, r, http.MethodPost, "/api/entries", map[string]string{"reflection": "to delete"})

	if w := doJSON(t, r, http.MethodDelete, "/api/entries/1", nil); w.Code != http.StatusOK {
		t.Fatalf("DELETE status = %d, want 200", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/api/entries/1", nil); w.Code != http.StatusNotFound {
		t.Errorf("GET after delete status = %d, want 404", w.Code)
	}
}

func TestGetThemes_RanksStubThemes(t *testing.T) {
	r := newTestAPI(t, defaultStub())
	doJSON(t, r, http.MethodPost, "/api/entries", map[string]string{"reflection": "one"})
	doJSON(t, r, http.MethodPost, "/api/entries", map[string]string{"reflection": "two"})

	w := doJSON(t, r, http.MethodGet, "/api/themes", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/themes status = %d, want 200", w.Code)
	}
	var resp struct {
		Data struct {
			Themes []struct {
				Name  string `json:"name"`
				Count int    `json:"count"`
			} `json:"themes"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data.Themes) != 2 {
		t.Fatalf("got %d themes, want 2", len(resp.Data.Themes))
	}
	// stub attaches Reflection and Growth to both entries
	if resp.Data.Themes[0].Count != 2 {
		t.Errorf("top theme count = %d, want 2", resp.Data.Themes[0].Count)
	}
}

func TestGetPatterns_SingleEntrySpansDay(t *testing.T) {
	r := newTestAPI(t, defaultStub())
	doJSON(t, r, http.MethodPost, "/api/entries", map[string]string{
		"emotion":    "Happy",
		"reflection": "good morning",
	})

	w := doJSON(t, r, http.MethodGet, "/api/patterns", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/patterns status = %d, want 200", w.Code)
	}
	var resp struct {
		Data struct {
			Days []struct {
				Date     string `json:"date"`
				DaysAgo  int    `json:"days_ago"`
				Segments []struct {
					EntryID uint    `json:"entry_id"`
					Left    float64 `json:"left"`
					Width   float64 `json:"width"`
					Color   string  `json:"color"`
				} `json:"segments"`
			} `json:"days"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data.Days) != 1 {
		t.Fatalf("got %d days, want 1", len(resp.Data.Days))
	}
	day := resp.Data.Days[0]
	if day.DaysAgo != 0 {
		t.Errorf("days_ago = %d, want 0", day.DaysAgo)
	}
	if len(day.Segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(day.Segments))
	}
	seg := day.Segments[0]
	if seg.Left != 0 || seg.Width != 100 {
		t.Errorf("segment = (left=%v, width=%v), want (0, 100)", seg.Left, seg.Width)
	}
	if seg.Color == "" {
		t.Error("segment color is empty")
	}
}
