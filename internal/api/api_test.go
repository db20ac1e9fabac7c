package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/JustJay7/court-registry/internal/auth"
	"github.com/JustJay7/court-registry/internal/cache"
	"github.com/JustJay7/court-registry/internal/casenumber"
	"github.com/JustJay7/court-registry/internal/config"
	"github.com/JustJay7/court-registry/internal/database"
	"github.com/JustJay7/court-registry/internal/registry"
	"github.com/JustJay7/court-registry/pkg/logger"
)

type fixedMinter struct{ number string }

func (m fixedMinter) Mint(string) string { return m.number }

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Token   string          `json:"token"`
	Count   int             `json:"count"`
}

type options struct {
	minter      casenumber.Minter
	requireAuth bool
}

func newRouter(t *testing.T, opts options) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Initialize(database.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if opts.minter == nil {
		opts.minter = casenumber.NewGenerator()
	}

	cfg := &config.Config{
		CourtName:   "Test Court",
		RequireAuth: opts.requireAuth,
	}
	log := logger.Nop()
	c := cache.NewCache(100, time.Minute)
	cases := registry.NewCaseStore(db, opts.minter, c, log)
	hearings := registry.NewHearingStore(db, cases, log)
	authService := auth.NewService(db, "test-secret", time.Hour, log)

	router := gin.New()
	SetupRoutes(router, db, cases, hearings, authService, c, log, cfg)
	return router
}

func do(t *testing.T, router http.Handler, method, path string, body interface{}, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

// caseJSON mirrors a case payload as the client sees it.
type caseJSON struct {
	ID         string `json:"id"`
	CaseNumber string `json:"caseNumber"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	Priority   string `json:"priority"`
	Status     string `json:"status"`
	Plaintiff  string `json:"plaintiff"`
	Defendant  string `json:"defendant"`
	FiledDate  string `json:"filedDate"`
	Style      struct {
		Background string `json:"backgroundColor"`
		Border     string `json:"borderColor"`
	} `json:"style"`
}

type hearingJSON struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	CaseID   string   `json:"caseId"`
	Judge    string   `json:"judge"`
	Parties  []string `json:"parties"`
	CaseType string   `json:"caseType"`
	Priority string   `json:"priority"`
	Status   string   `json:"status"`
	Style    struct {
		Background string `json:"backgroundColor"`
		Border     string `json:"borderColor"`
	} `json:"style"`
}

func smithVsJohnson() map[string]interface{} {
	return map[string]interface{}{
		"title":     "Smith vs Johnson",
		"category":  "Civil",
		"plaintiff": "Smith",
		"defendant": "Johnson",
		"priority":  "High",
		"status":    "Pending",
	}
}

func newCase(title, category, priority, status string) map[string]interface{} {
	return map[string]interface{}{
		"title":     title,
		"category":  category,
		"plaintiff": "P " + title,
		"defendant": "D " + title,
		"priority":  priority,
		"status":    status,
	}
}

func createCase(t *testing.T, router http.Handler, body map[string]interface{}) caseJSON {
	t.Helper()
	w, env := do(t, router, http.MethodPost, "/api/cases/create", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[caseJSON](t, env.Data)
}
