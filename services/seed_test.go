package services

import (
	"net/http"
	"testing"

	"practrac/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDemoData(t *testing.T) {
	app, db := newTestApp(t)
	require.NoError(t, SeedDemoData(db))

	var teams []models.Team
	resp := doJSON(t, app, http.MethodGet, "/api/teams", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &teams)
	require.Len(t, teams, 1)
	assert.Equal(t, "Riverside High Volleyball", teams[0].Name)

	var players []models.Player
	resp = doJSON(t, app, http.MethodGet, "/api/players", nil)
	decodeBody(t, resp, &players)
	assert.Len(t, players, 6)

	var drills []models.Drill
	resp = doJSON(t, app, http.MethodGet, "/api/drills", nil)
	decodeBody(t, resp, &drills)
	assert.Len(t, drills, 4)

	var practices []models.Practice
	resp = doJSON(t, app, http.MethodGet, "/api/practices", nil)
	decodeBody(t, resp, &practices)
	require.Len(t, practices, 1)
	assert.Len(t, practices[0].Phases, 4)

	var videos []models.Video
	resp = doJSON(t, app, http.MethodGet, "/api/videos", nil)
	decodeBody(t, resp, &videos)
	assert.Len(t, videos, 8)
}

func TestSeedDemoDataIsIdempotent(t *testing.T) {
	_, db := newTestApp(t)
	require.NoError(t, SeedDemoData(db))
	require.NoError(t, SeedDemoData(db))

	var teamCount, playerCount int64
	db.Model(&models.Team{}).Count(&teamCount)
	db.Model(&models.Player{}).Count(&playerCount)
	assert.Equal(t, int64(1), teamCount)
	assert.Equal(t, int64(6), playerCount)
}

func TestSeedSkipsNonEmptyDatabase(t *testing.T) {
	_, db := newTestApp(t)

	// A pre-existing team means the count check short-circuits the whole seed
	require.NoError(t, db.Create(&models.Team{Name: "Existing Club"}).Error)
	require.NoError(t, SeedDemoData(db))

	var teamCount, drillCount int64
	db.Model(&models.Team{}).Count(&teamCount)
	db.Model(&models.Drill{}).Count(&drillCount)
	assert.Equal(t, int64(1), teamCount)
	assert.Equal(t, int64(0), drillCount)
}
