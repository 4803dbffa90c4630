// models/session.go
package models

import "time"

const (
	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"
)

const AttendanceStatusPresent = "present"

// PracticeSession is one execution of a practice plan. The row is a complete
// snapshot of the timer state (current phase, per-phase remainder, total
// elapsed, paused flag) so a page reload loses no progress: the client
// re-fetches the active session and resumes counting from the stored values.
type PracticeSession struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	PracticeID   uint   `json:"practice_id" gorm:"not null;index"`
	PracticeName string `json:"practice_name"`

	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`

	CurrentPhase        int        `json:"current_phase" gorm:"not null;default:0"`
	PhaseStartTime      *time.Time `json:"phase_start_time"`
	PhaseTimerSeconds   int        `json:"phase_timer_seconds" gorm:"not null;default:0"`
	TotalElapsedSeconds int        `json:"total_elapsed_seconds" gorm:"not null;default:0"`
	IsPaused            bool       `json:"is_paused" gorm:"not null;default:false"`

	Notes  string `json:"notes"`
	Status string `json:"status" gorm:"not null;default:'active'"` // active | completed

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Completing the row is terminal; deleting it drops its per-player records
	Attendance  []Attendance `json:"-" gorm:"foreignKey:SessionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	PlayerNotes []PlayerNote `json:"-" gorm:"foreignKey:SessionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// Attendance marks one player's presence at one session. Upserts replace on
// the (session, player) identity.
type Attendance struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	SessionID uint   `json:"session_id" gorm:"not null;uniqueIndex:idx_attendance_session_player"`
	PlayerID  uint   `json:"player_id" gorm:"not null;uniqueIndex:idx_attendance_session_player"`
	Status    string `json:"status" gorm:"not null;default:'present'"`
	Notes     string `json:"notes"`

	Player *Player `json:"-" gorm:"foreignKey:PlayerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// PlayerNote is free-text coach feedback for one player in one session.
type PlayerNote struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	SessionID uint   `json:"session_id" gorm:"not null;uniqueIndex:idx_player_note_session_player"`
	PlayerID  uint   `json:"player_id" gorm:"not null;uniqueIndex:idx_player_note_session_player"`
	Notes     string `json:"notes"`

	Player *Player `json:"-" gorm:"foreignKey:PlayerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
