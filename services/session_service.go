// services/session_service.go
package services

import (
	"errors"
	"time"

	"practrac/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionService owns the practice-session lifecycle (active → completed) plus
// the per-session attendance and player-note records.
type SessionService struct {
	DB *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{DB: db}
}

// GetActiveSession returns the newest session still marked active, or a JSON
// null body when none exists. If more than one row is active (creation does
// not guard against it) only the newest is surfaced.
func (s *SessionService) GetActiveSession(c *fiber.Ctx) error {
	var session models.PracticeSession
	err := s.DB.Where("status = ?", models.SessionStatusActive).
		Order("created_at DESC, id DESC").
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(nil)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(session)
}

type createSessionRequest struct {
	PracticeID   uint       `json:"practice_id"`
	PracticeName string     `json:"practice_name"`
	StartTime    *time.Time `json:"start_time"`
	Notes        string     `json:"notes"`
	// Any status supplied by the caller is ignored: new sessions are active
	Status string `json:"status"`
}

// CreateSession starts a new run of a practice plan. Status is forced to
// active regardless of the request body, and the full persisted row (with its
// generated id) is returned.
func (s *SessionService) CreateSession(c *fiber.Ctx) error {
	var req createSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	start := time.Now()
	if req.StartTime != nil {
		start = *req.StartTime
	}

	session := models.PracticeSession{
		PracticeID:     req.PracticeID,
		PracticeName:   req.PracticeName,
		StartTime:      start,
		PhaseStartTime: &start,
		Notes:          req.Notes,
		Status:         models.SessionStatusActive,
	}
	if err := s.DB.Create(&session).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

type updateSessionRequest struct {
	CurrentPhase        int        `json:"current_phase"`
	PhaseStartTime      *time.Time `json:"phase_start_time"`
	PhaseTimerSeconds   int        `json:"phase_timer_seconds"`
	TotalElapsedSeconds int        `json:"total_elapsed_seconds"`
	IsPaused            bool       `json:"is_paused"`
	Notes               string     `json:"notes"`
}

// UpdateSession overwrites the timer/phase snapshot columns on one session.
// A row count of 0 (unknown id) is reported back as changes, not an error.
func (s *SessionService) UpdateSession(c *fiber.Ctx) error {
	id := c.Params("id")

	var req updateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result := s.DB.Model(&models.PracticeSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"current_phase":         req.CurrentPhase,
			"phase_start_time":      req.PhaseStartTime,
			"phase_timer_seconds":   req.PhaseTimerSeconds,
			"total_elapsed_seconds": req.TotalElapsedSeconds,
			"is_paused":             req.IsPaused,
			"notes":                 req.Notes,
		})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "changes": result.RowsAffected})
}

// CompleteSession marks a session completed and stamps its end time. The
// transition is terminal: a second call matches no active row and reports
// changes=0 while the status stays completed.
func (s *SessionService) CompleteSession(c *fiber.Ctx) error {
	id := c.Params("id")

	result := s.DB.Model(&models.PracticeSession{}).
		Where("id = ? AND status = ?", id, models.SessionStatusActive).
		Updates(map[string]interface{}{
			"status":   models.SessionStatusCompleted,
			"end_time": time.Now(),
		})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "changes": result.RowsAffected})
}

type attendanceRecord struct {
	SessionID uint   `json:"session_id"`
	PlayerID  uint   `json:"player_id"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

// BulkUpsertAttendance applies a batch of attendance upserts keyed by
// (session, player). The batch is best-effort: each upsert commits on its own,
// so a failure partway through leaves earlier writes in place and reports the
// error for the batch as a whole.
func (s *SessionService) BulkUpsertAttendance(c *fiber.Ctx) error {
	var records []attendanceRecord
	if err := c.BodyParser(&records); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "attendance payload must be an array"})
	}

	insertedIds := make([]uint, 0, len(records))
	for _, rec := range records {
		status := rec.Status
		if status == "" {
			status = models.AttendanceStatusPresent
		}
		att := models.Attendance{
			SessionID: rec.SessionID,
			PlayerID:  rec.PlayerID,
			Status:    status,
			Notes:     rec.Notes,
		}
		err := s.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}, {Name: "player_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "notes"}),
		}).Create(&att).Error
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		// On a conflict-update SQLite does not report the row id back, and a
		// backfilled last-insert id can be stale; re-read it either way
		var row models.Attendance
		if err := s.DB.Where("session_id = ? AND player_id = ?", rec.SessionID, rec.PlayerID).
			First(&row).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		insertedIds = append(insertedIds, row.ID)
	}

	return c.JSON(fiber.Map{"success": true, "insertedIds": insertedIds})
}

type playerNoteRequest struct {
	SessionID uint   `json:"session_id"`
	PlayerID  uint   `json:"player_id"`
	Notes     string `json:"notes"`
}

// UpsertPlayerNote inserts or replaces the note for (session, player),
// refreshing updated_at on replace.
func (s *SessionService) UpsertPlayerNote(c *fiber.Ctx) error {
	var req playerNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	note := models.PlayerNote{
		SessionID: req.SessionID,
		PlayerID:  req.PlayerID,
		Notes:     req.Notes,
	}
	err := s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}, {Name: "player_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"notes":      req.Notes,
			"updated_at": time.Now(),
		}),
	}).Create(&note).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var row models.PlayerNote
	if err := s.DB.Where("session_id = ? AND player_id = ?", req.SessionID, req.PlayerID).
		First(&row).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "id": row.ID})
}

// GetPlayerNote returns the note for (session, player), or an empty-notes
// placeholder rather than a 404 when none has been written yet.
func (s *SessionService) GetPlayerNote(c *fiber.Ctx) error {
	sessionID, _ := c.ParamsInt("sessionId")
	playerID, _ := c.ParamsInt("playerId")

	var note models.PlayerNote
	err := s.DB.Where("session_id = ? AND player_id = ?", sessionID, playerID).
		First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(fiber.Map{
				"session_id": sessionID,
				"player_id":  playerID,
				"notes":      "",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(note)
}

// playerNoteHistoryEntry is a note joined with the session it was taken in.
type playerNoteHistoryEntry struct {
	ID               uint      `json:"id"`
	SessionID        uint      `json:"session_id"`
	PlayerID         uint      `json:"player_id"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	SessionName      string    `json:"session_name"`
	SessionStartTime time.Time `json:"session_start_time"`
}

// GetPlayerNoteHistory lists every note ever written for a player, newest
// session first.
func (s *SessionService) GetPlayerNoteHistory(c *fiber.Ctx) error {
	id := c.Params("id")

	var entries []playerNoteHistoryEntry
	err := s.DB.Table("player_notes").
		Select("player_notes.id, player_notes.session_id, player_notes.player_id, player_notes.notes, player_notes.created_at, player_notes.updated_at, practice_sessions.practice_name AS session_name, practice_sessions.start_time AS session_start_time").
		Joins("JOIN practice_sessions ON practice_sessions.id = player_notes.session_id").
		Where("player_notes.player_id = ?", id).
		Order("practice_sessions.start_time DESC").
		Scan(&entries).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if entries == nil {
		entries = []playerNoteHistoryEntry{}
	}
	return c.JSON(entries)
}
