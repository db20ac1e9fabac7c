package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hearingBody(title, caseID, start, end string) map[string]interface{} {
	return map[string]interface{}{
		"title":  title,
		"caseId": caseID,
		"start":  start,
		"end":    end,
	}
}

func TestCreateHearingEndpoint(t *testing.T) {
	router := newRouter(t, options{})

	body := hearingBody("Bail Hearing", "CRV/2025/000999", "2025-08-15T10:00:00Z", "2025-08-15T11:00:00Z")
	body["judge"] = "Judge Rao"
	body["parties"] = "State, Doe ,"
	body["caseType"] = "Criminal"

	w, env := do(t, router, http.MethodPost, "/api/hearings/create", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	got := decode[hearingJSON](t, env.Data)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "CRV/2025/000999", got.CaseID)
	assert.Equal(t, []string{"State", "Doe"}, got.Parties)
	assert.Equal(t, "Medium", got.Priority)
	assert.Equal(t, "Scheduled", got.Status)
	assert.Equal(t, "#ed8936", got.Style.Background)
}

func TestCreateHearingValidation(t *testing.T) {
	router := newRouter(t, options{})

	tests := []struct {
		name   string
		body   map[string]interface{}
		errMsg string
	}{
		{"missing title", hearingBody("", "X", "2025-08-15T10:00:00Z", "2025-08-15T11:00:00Z"), "title"},
		{"missing case", hearingBody("T", "", "2025-08-15T10:00:00Z", "2025-08-15T11:00:00Z"), "caseId"},
		{"missing start", map[string]interface{}{"title": "T", "caseId": "X", "end": "2025-08-15T11:00:00Z"}, "start"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := do(t, router, http.MethodPost, "/api/hearings", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, env.Error, tt.errMsg)
		})
	}

	w, env := do(t, router, http.MethodGet, "/api/hearings", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, env.Count)
}

func TestListHearingsFilters(t *testing.T) {
	router := newRouter(t, options{})

	seed := []struct {
		title, judge, caseType, priority, start string
	}{
		{"Late", "Judge Rao", "Civil", "High", "2025-08-17T10:00:00Z"},
		{"Early", "Judge Rao", "Criminal", "Low", "2025-08-15T10:00:00Z"},
		{"Middle", "Judge Iyer", "Civil", "High", "2025-08-16T10:00:00Z"},
	}
	for _, s := range seed {
		body := hearingBody(s.title, "CIV/2025/100000", s.start, s.start)
		body["judge"] = s.judge
		body["caseType"] = s.caseType
		body["priority"] = s.priority
		w, _ := do(t, router, http.MethodPost, "/api/hearings/create", body, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	tests := []struct {
		name   string
		query  string
		titles []string
	}{
		{"ordered by start", "", []string{"Early", "Middle", "Late"}},
		{"judge", "?judge=Judge%20Rao", []string{"Early", "Late"}},
		{"case type", "?caseType=Civil", []string{"Middle", "Late"}},
		{"case type and priority", "?caseType=Civil&priority=High&judge=Judge%20Iyer", []string{"Middle"}},
		{"status", "?status=Completed", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := do(t, router, http.MethodGet, "/api/hearings"+tt.query, nil, "")
			require.Equal(t, http.StatusOK, w.Code)

			got := decode[[]hearingJSON](t, env.Data)
			titles := make([]string, 0, len(got))
			for _, h := range got {
				titles = append(titles, h.Title)
			}
			assert.Equal(t, tt.titles, titles)
		})
	}
}

func TestScheduleHearingForCase(t *testing.T) {
	router := newRouter(t, options{})
	created := createCase(t, router, smithVsJohnson())

	body := map[string]interface{}{
		"start": "2025-12-17T10:00:00Z",
		"end":   "2025-12-17T12:00:00Z",
		"judge": "Judge Rao",
	}
	w, env := do(t, router, http.MethodPost, "/api/cases/"+created.ID+"/hearings", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	got := decode[hearingJSON](t, env.Data)
	assert.Equal(t, created.CaseNumber, got.CaseID)
	assert.Equal(t, "Smith vs Johnson", got.Title)
	assert.Equal(t, []string{"Smith", "Johnson"}, got.Parties)
	assert.Equal(t, "Civil", got.CaseType)

	w, env = do(t, router, http.MethodGet, "/api/cases/"+created.ID+"/hearings", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	listed := decode[[]hearingJSON](t, env.Data)
	require.Len(t, listed, 1)
	assert.Equal(t, got.ID, listed[0].ID)

	w, _ = do(t, router, http.MethodPost, "/api/cases/no-such-id/hearings", body, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateAndDeleteHearing(t *testing.T) {
	router := newRouter(t, options{})

	w, env := do(t, router, http.MethodPost, "/api/hearings/create",
		hearingBody("Arguments", "CIV/2025/100000", "2025-08-15T10:00:00Z", "2025-08-15T11:00:00Z"), "")
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[hearingJSON](t, env.Data)
	path := "/api/hearings/" + created.ID

	update := map[string]interface{}{"status": "Completed", "caseId": "OTHER"}
	w, env = do(t, router, http.MethodPut, path, update, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[hearingJSON](t, env.Data)
	assert.Equal(t, "Completed", updated.Status)
	assert.Equal(t, "CIV/2025/100000", updated.CaseID)
	assert.Equal(t, "#a0aec0", updated.Style.Background)

	w, _ = do(t, router, http.MethodPut, path, map[string]interface{}{"status": "Postponed"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = do(t, router, http.MethodDelete, path, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hearing removed successfully", env.Message)

	w, _ = do(t, router, http.MethodDelete, path, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletingCaseKeepsHearings(t *testing.T) {
	router := newRouter(t, options{})
	created := createCase(t, router, smithVsJohnson())

	w, _ := do(t, router, http.MethodPost, "/api/hearings/create",
		hearingBody("Final", created.CaseNumber, "2025-08-15T10:00:00Z", "2025-08-15T11:00:00Z"), "")
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = do(t, router, http.MethodDelete, "/api/cases/"+created.ID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w, env := do(t, router, http.MethodGet, "/api/hearings", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	listed := decode[[]hearingJSON](t, env.Data)
	require.Len(t, listed, 1)
	assert.Equal(t, created.CaseNumber, listed[0].CaseID)
}
