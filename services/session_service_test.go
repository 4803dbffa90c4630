package services

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"practrac/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type sessionChangeResult struct {
	Success bool  `json:"success"`
	Changes int64 `json:"changes"`
}

func createTestPractice(t *testing.T, db *gorm.DB) models.Practice {
	t.Helper()
	practice := models.Practice{
		Name: "Test Practice", Date: "2026-08-30", Duration: 90,
		Phases: models.PhaseList{
			{ID: 1, Name: "Warm-Up", Duration: 15, Type: "warmup"},
			{ID: 2, Name: "Drills", Duration: 45, Type: "drill"},
			{ID: 3, Name: "Scrimmage", Duration: 30, Type: "scrimmage"},
		},
	}
	require.NoError(t, db.Create(&practice).Error)
	return practice
}

func TestCreateSessionForcesActiveStatus(t *testing.T) {
	app, db := newTestApp(t)
	practice := createTestPractice(t, db)

	resp := doJSON(t, app, http.MethodPost, "/api/practice-sessions", map[string]interface{}{
		"practice_id":   practice.ID,
		"practice_name": practice.Name,
		"start_time":    time.Now().Format(time.RFC3339),
		"notes":         "first scrimmage of the season",
		"status":        "completed", // must be ignored
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var session models.PracticeSession
	decodeBody(t, resp, &session)
	assert.NotZero(t, session.ID)
	assert.Equal(t, models.SessionStatusActive, session.Status)
	assert.Equal(t, practice.ID, session.PracticeID)
	assert.Equal(t, "first scrimmage of the season", session.Notes)
}

func TestGetActiveSessionReturnsNullWhenNoneActive(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/practice-sessions/active", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "null", readBody(t, resp))
}

func TestSessionLifecycle(t *testing.T) {
	app, db := newTestApp(t)
	practice := createTestPractice(t, db)

	resp := doJSON(t, app, http.MethodPost, "/api/practice-sessions", map[string]interface{}{
		"practice_id":   practice.ID,
		"practice_name": practice.Name,
	})
	var created models.PracticeSession
	decodeBody(t, resp, &created)

	// Active session is the one just created
	resp = doJSON(t, app, http.MethodGet, "/api/practice-sessions/active", nil)
	var active models.PracticeSession
	decodeBody(t, resp, &active)
	assert.Equal(t, created.ID, active.ID)
	assert.Equal(t, models.SessionStatusActive, active.Status)

	// Advance to phase 2; update is reflected on re-fetch
	resp = doJSON(t, app, http.MethodPut, "/api/practice-sessions/"+itoa(created.ID), map[string]interface{}{
		"current_phase":         2,
		"phase_start_time":      time.Now().Format(time.RFC3339),
		"phase_timer_seconds":   600,
		"total_elapsed_seconds": 3000,
		"is_paused":             true,
		"notes":                 "moved to scrimmage early",
	})
	var updated sessionChangeResult
	decodeBody(t, resp, &updated)
	assert.True(t, updated.Success)
	assert.Equal(t, int64(1), updated.Changes)

	resp = doJSON(t, app, http.MethodGet, "/api/practice-sessions/active", nil)
	decodeBody(t, resp, &active)
	assert.Equal(t, 2, active.CurrentPhase)
	assert.Equal(t, 600, active.PhaseTimerSeconds)
	assert.Equal(t, 3000, active.TotalElapsedSeconds)
	assert.True(t, active.IsPaused)
	assert.Equal(t, "moved to scrimmage early", active.Notes)
}

func TestCompleteSessionIsTerminalAndIdempotent(t *testing.T) {
	app, db := newTestApp(t)
	practice := createTestPractice(t, db)

	resp := doJSON(t, app, http.MethodPost, "/api/practice-sessions", map[string]interface{}{
		"practice_id": practice.ID, "practice_name": practice.Name,
	})
	var session models.PracticeSession
	decodeBody(t, resp, &session)

	resp = doJSON(t, app, http.MethodDelete, "/api/practice-sessions/"+itoa(session.ID), nil)
	var first sessionChangeResult
	decodeBody(t, resp, &first)
	assert.True(t, first.Success)
	assert.Equal(t, int64(1), first.Changes)

	var row models.PracticeSession
	require.NoError(t, db.First(&row, session.ID).Error)
	assert.Equal(t, models.SessionStatusCompleted, row.Status)
	require.NotNil(t, row.EndTime)

	// Second completion: status stays completed but nothing matches
	resp = doJSON(t, app, http.MethodDelete, "/api/practice-sessions/"+itoa(session.ID), nil)
	var second sessionChangeResult
	decodeBody(t, resp, &second)
	assert.True(t, second.Success)
	assert.Equal(t, int64(0), second.Changes)

	require.NoError(t, db.First(&row, session.ID).Error)
	assert.Equal(t, models.SessionStatusCompleted, row.Status)
}

func TestUpdateUnknownSessionReportsZeroChanges(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPut, "/api/practice-sessions/9999", map[string]interface{}{
		"current_phase": 1,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result sessionChangeResult
	decodeBody(t, resp, &result)
	assert.True(t, result.Success)
	assert.Equal(t, int64(0), result.Changes)
}

func TestGetActiveSessionSurfacesNewestOfMany(t *testing.T) {
	app, db := newTestApp(t)
	practice := createTestPractice(t, db)

	// Creation performs no single-active check, so two actives can coexist
	for range [2]struct{}{} {
		resp := doJSON(t, app, http.MethodPost, "/api/practice-sessions", map[string]interface{}{
			"practice_id": practice.ID, "practice_name": practice.Name,
		})
		resp.Body.Close()
	}

	var sessions []models.PracticeSession
	require.NoError(t, db.Order("id").Find(&sessions).Error)
	require.Len(t, sessions, 2)

	resp := doJSON(t, app, http.MethodGet, "/api/practice-sessions/active", nil)
	var active models.PracticeSession
	decodeBody(t, resp, &active)
	assert.Equal(t, sessions[1].ID, active.ID)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
