package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/cleanfood/backend/config"
	"github.com/cleanfood/backend/internal/domain"
	"github.com/cleanfood/backend/internal/infrastructure/cache"
	"github.com/cleanfood/backend/internal/infrastructure/classifier"
	"github.com/cleanfood/backend/internal/taxonomy"
	"github.com/cleanfood/backend/internal/usecase"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setupTestRouter wires a full router with the real analysis pipeline
func setupTestRouter() *gin.Engine {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		Classifier: config.ClassifierConfig{Mode: config.ClassifierLocal},
	}

	analysisService := usecase.NewAnalysisService(
		cache.NewMemoryCache(),
		classifier.NewLocal(),
		taxonomy.Default(),
		usecase.AnalysisServiceConfig{},
	)

	handler := NewHandler(analysisService, taxonomy.Default())
	return SetupRouter(cfg, handler)
}

func postCheck(t *testing.T, router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/analysis/check", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router := setupTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status = %q, want healthy", body["status"])
	}
}

func TestCheckEndpoint(t *testing.T) {
	router := setupTestRouter()

	t.Run("flags avoided additive", func(t *testing.T) {
		w := postCheck(t, router, map[string]interface{}{
			"ingredients": "water, BHT, salt",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}

		var result domain.AnalysisResult
		if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if result.IsClean {
			t.Error("isClean = true, want false")
		}
		if result.Verdict != domain.VerdictNotClean {
			t.Errorf("verdict = %q, want not_clean", result.Verdict)
		}
		if len(result.Hits) != 1 || result.Hits[0] != "BHT" {
			t.Errorf("hits = %v, want [BHT]", result.Hits)
		}
	})

	t.Run("reports diet conflict on clean product", func(t *testing.T) {
		w := postCheck(t, router, map[string]interface{}{
			"ingredients": "honey, oats",
			"preferences": map[string]interface{}{"diet": "vegan"},
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}

		var result domain.AnalysisResult
		if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if result.Verdict != domain.VerdictCleanButConflicts {
			t.Errorf("verdict = %q, want clean_but_conflicts", result.Verdict)
		}
		if len(result.DietHits) != 1 || result.DietHits[0] != "honey" {
			t.Errorf("dietHits = %v, want [honey]", result.DietHits)
		}
	})

	t.Run("rejects missing ingredients", func(t *testing.T) {
		w := postCheck(t, router, map[string]interface{}{})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/analysis/check", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestGuideEndpoints(t *testing.T) {
	router := setupTestRouter()

	t.Run("guide listing returns all sections", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/guide", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var body struct {
			Sections []taxonomy.Section `json:"sections"`
			Entries  int                `json:"entries"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(body.Sections) != 6 {
			t.Errorf("sections = %d, want 6", len(body.Sections))
		}
		if body.Entries == 0 {
			t.Error("entries = 0, want > 0")
		}
	})

	t.Run("lookup resolves synonym", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/guide/lookup?name=e320", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var match taxonomy.Match
		if err := json.Unmarshal(w.Body.Bytes(), &match); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if match.Item.Slug != "bha" {
			t.Errorf("slug = %q, want bha", match.Item.Slug)
		}
	})

	t.Run("lookup misses on unknown name", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/guide/lookup?name=organic+tomatoes", nil))
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})

	t.Run("lookup requires name parameter", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/guide/lookup", nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}
