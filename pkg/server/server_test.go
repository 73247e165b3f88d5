package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/cache"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/export"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}
	return New(Options{
		Logger:           log.New(io.Discard),
		Cache:            fc,
		DefaultLength:    250,
		DefaultAlgorithm: "modulo",
	})
}

func do(t *testing.T, s *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := do(t, testServer(t), http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("response has no request id")
	}
}

func TestListScales(t *testing.T) {
	rec := do(t, testServer(t), http.MethodGet, "/api/v1/scales", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp scaleListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Catalog) == 0 {
		t.Error("catalog list is empty")
	}
	if resp.Aliases["sin"] != "s" {
		t.Errorf("aliases missing sin -> s: %v", resp.Aliases)
	}
}

func TestGetScale(t *testing.T) {
	rec := do(t, testServer(t), http.MethodGet, "/api/v1/scales/c", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	doc, err := export.ReadJSON(rec.Body)
	if err != nil {
		t.Fatalf("decode document: %v", err)
	}
	if doc.Name != "C" || len(doc.TickMarks) == 0 {
		t.Errorf("document = %q with %d ticks", doc.Name, len(doc.TickMarks))
	}
}

func TestGetScaleUnknown(t *testing.T) {
	rec := do(t, testServer(t), http.MethodGet, "/api/v1/scales/bogus", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Error.Code != "UNKNOWN_SCALE" {
		t.Errorf("error code = %q, want UNKNOWN_SCALE", body.Error.Code)
	}
}

func TestGenerateByName(t *testing.T) {
	body := []byte(`{"name": "a", "length": 300, "algorithm": "legacy"}`)
	rec := do(t, testServer(t), http.MethodPost, "/api/v1/generate", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	doc, err := export.ReadJSON(rec.Body)
	if err != nil {
		t.Fatalf("decode document: %v", err)
	}
	if doc.ScaleLengthInPoints != 300 {
		t.Errorf("length = %g, want 300", doc.ScaleLengthInPoints)
	}
}

func TestGenerateInlineDefinition(t *testing.T) {
	body := []byte(`{
		"definition": {
			"name": "custom",
			"func": {"kind": "log"},
			"beginValue": 1,
			"endValue": 10,
			"subsections": [
				{"startValue": 1, "tickIntervals": [1, 0.5, 0.1, 0.05], "labelLevels": ["major"]}
			]
		},
		"length": 250
	}`)
	rec := do(t, testServer(t), http.MethodPost, "/api/v1/generate", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	doc, err := export.ReadJSON(rec.Body)
	if err != nil {
		t.Fatalf("decode document: %v", err)
	}
	if doc.Name != "custom" || len(doc.TickMarks) == 0 {
		t.Errorf("document = %q with %d ticks", doc.Name, len(doc.TickMarks))
	}
}

func TestGenerateRejectsAmbiguousBody(t *testing.T) {
	for _, body := range []string{`{}`, `{"name": "c", "definition": {"name": "x"}}`} {
		rec := do(t, testServer(t), http.MethodPost, "/api/v1/generate", []byte(body))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestGenerateRejectsBadAlgorithm(t *testing.T) {
	rec := do(t, testServer(t), http.MethodPost, "/api/v1/generate",
		[]byte(`{"name": "c", "algorithm": "quantum"}`))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Error.Code != "UNKNOWN_ALGORITHM" {
		t.Errorf("error code = %q, want UNKNOWN_ALGORITHM", body.Error.Code)
	}
}

func TestGetScaleServedFromCache(t *testing.T) {
	s := testServer(t)
	first := do(t, s, http.MethodGet, "/api/v1/scales/c", nil)
	second := do(t, s, http.MethodGet, "/api/v1/scales/c", nil)
	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("statuses = %d, %d", first.Code, second.Code)
	}
	if !bytes.Equal(first.Body.Bytes(), second.Body.Bytes()) {
		t.Error("cached response differs from generated response")
	}
}
