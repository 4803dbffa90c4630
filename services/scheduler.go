// services/scheduler.go
package services

import (
	"log"
	"time"

	"practrac/models"

	"github.com/go-co-op/gocron/v2"
)

// StartSessionJanitor periodically completes active sessions that were
// abandoned (started longer than maxAge ago and never completed), so the demo
// database does not accumulate stale "active" rows.
func (s *SessionService) StartSessionJanitor(interval, maxAge time.Duration) {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			cutoff := time.Now().Add(-maxAge)

			var stale []models.PracticeSession
			err := s.DB.Where("status = ? AND start_time <= ?", models.SessionStatusActive, cutoff).
				Find(&stale).Error
			if err != nil {
				log.Printf("[Janitor] DB error: %v", err)
				return
			}

			for _, session := range stale {
				now := time.Now()
				session.Status = models.SessionStatusCompleted
				session.EndTime = &now
				if err := s.DB.Save(&session).Error; err != nil {
					log.Printf("[Janitor] Failed to complete stale session %d: %v", session.ID, err)
				} else {
					log.Printf("✅ Auto-completed stale session %d (%s)", session.ID, session.PracticeName)
				}
			}
		}),
	)
}
