// services/seed.go
package services

import (
	"log"
	"time"

	"practrac/models"

	"gorm.io/gorm"
)

// SeedDemoData populates the demo dataset exactly once: if any team exists the
// whole step is a no-op. The decision is a single count at startup; everything
// else runs in one transaction so a half-seeded database is impossible.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Team{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("ℹ️  Database already seeded, skipping demo data")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		team := models.Team{
			Name:     "Riverside High Volleyball",
			Season:   "2025-2026",
			Division: "Division II",
			Coach:    "Coach Martinez",
		}
		if err := tx.Create(&team).Error; err != nil {
			return err
		}

		players := []models.Player{
			{FirstName: "Emma", LastName: "Chen", JerseyNumber: 7, Position: models.PositionSetter, SkillLevel: "advanced", Height: "5'6\"", Year: "senior", TeamID: &team.ID,
				Stats: models.PlayerStats{Kills: 12, Blocks: 3, Aces: 18, Digs: 45, Assists: 156}},
			{FirstName: "Sofia", LastName: "Rodriguez", JerseyNumber: 12, Position: models.PositionOutsideHitter, SkillLevel: "advanced", Height: "5'10\"", Year: "junior", TeamID: &team.ID,
				Stats: models.PlayerStats{Kills: 89, Blocks: 12, Aces: 9, Digs: 34, Assists: 4}},
			{FirstName: "Maya", LastName: "Johnson", JerseyNumber: 4, Position: models.PositionMiddleBlocker, SkillLevel: "intermediate", Height: "6'0\"", Year: "sophomore", TeamID: &team.ID,
				Stats: models.PlayerStats{Kills: 54, Blocks: 41, Aces: 2, Digs: 11, Assists: 1}},
			{FirstName: "Ava", LastName: "Williams", JerseyNumber: 9, Position: models.PositionLibero, SkillLevel: "advanced", Height: "5'4\"", Year: "senior", TeamID: &team.ID,
				Stats: models.PlayerStats{Kills: 1, Blocks: 0, Aces: 11, Digs: 102, Assists: 8}},
			{FirstName: "Isabella", LastName: "Nguyen", JerseyNumber: 15, Position: models.PositionOppositeHitter, SkillLevel: "intermediate", Height: "5'9\"", Year: "junior", TeamID: &team.ID,
				Stats: models.PlayerStats{Kills: 61, Blocks: 19, Aces: 6, Digs: 22, Assists: 3}},
			// Freshman pickup, no recorded stats yet — counters must still read 0
			{FirstName: "Grace", LastName: "Park", JerseyNumber: 2, Position: models.PositionDefensive, SkillLevel: "beginner", Height: "5'5\"", Year: "freshman", TeamID: &team.ID},
		}
		if err := tx.Create(&players).Error; err != nil {
			return err
		}

		drills := []models.Drill{
			{Name: "Butterfly Passing", Category: models.DrillCategoryPassing, Duration: 15, Difficulty: "beginner",
				Description: "Continuous serve-receive rotation building platform control and communication.",
				Equipment:   models.StringList{"balls", "cones"}, Focus: models.StringList{"passing", "communication"},
				MinPlayers: 6, MaxPlayers: 12},
			{Name: "Target Serving", Category: models.DrillCategoryServing, Duration: 10, Difficulty: "intermediate",
				Description: "Serve to numbered court zones, points awarded for accuracy.",
				Equipment:   models.StringList{"balls", "court tape"}, Focus: models.StringList{"serving", "accuracy"},
				MinPlayers: 2, MaxPlayers: 12},
			{Name: "Hitting Lines", Category: models.DrillCategoryHitting, Duration: 20, Difficulty: "intermediate",
				Description: "Approach and attack from outside, middle and right side against a blocker.",
				Equipment:   models.StringList{"balls", "net"}, Focus: models.StringList{"hitting", "timing", "footwork"},
				MinPlayers: 4, MaxPlayers: 12},
			{Name: "Queen of the Court", Category: models.DrillCategoryScrimmage, Duration: 15, Difficulty: "advanced",
				Description: "3v3 winners-stay competitive scrimmage with fast rotations.",
				Equipment:   models.StringList{"balls", "net"}, Focus: models.StringList{"competition", "transition"},
				MinPlayers: 6, MaxPlayers: 12},
		}
		// Created one at a time so each generated id is reliably backfilled;
		// the demo practice plan references them by id below.
		for i := range drills {
			if err := tx.Create(&drills[i]).Error; err != nil {
				return err
			}
		}

		practice := models.Practice{
			Name:     "Tuesday Skills Practice",
			Date:     time.Now().Format("2006-01-02"),
			Duration: 90,
			TeamID:   &team.ID,
			Phases: models.PhaseList{
				{ID: 1, Name: "Warm-Up", Duration: 15, Type: "warmup", Drills: []uint{drills[0].ID}},
				{ID: 2, Name: "Serving Block", Duration: 20, Type: "drill", Drills: []uint{drills[1].ID}},
				{ID: 3, Name: "Attack Work", Duration: 30, Type: "drill", Drills: []uint{drills[2].ID}},
				{ID: 4, Name: "Scrimmage", Duration: 25, Type: "scrimmage", Drills: []uint{drills[3].ID}},
			},
		}
		if err := tx.Create(&practice).Error; err != nil {
			return err
		}

		videos := []models.Video{
			{Title: "Serving Fundamentals", Category: "serving", Duration: "8:42", Thumbnail: "/img/thumbs/serving-fundamentals.jpg", Description: "Float serve toss, contact and follow-through basics.", URL: "https://videos.practrac.example/serving-fundamentals"},
			{Title: "Jump Serve Progression", Category: "serving", Duration: "12:15", Thumbnail: "/img/thumbs/jump-serve-progression.jpg", Description: "Four-step progression from standing float to full jump serve.", URL: "https://videos.practrac.example/jump-serve-progression"},
			{Title: "Platform Passing", Category: "passing", Duration: "6:30", Thumbnail: "/img/thumbs/platform-passing.jpg", Description: "Building a consistent passing platform and angle control.", URL: "https://videos.practrac.example/platform-passing"},
			{Title: "Reading the Hitter", Category: "defense", Duration: "10:05", Thumbnail: "/img/thumbs/reading-the-hitter.jpg", Description: "Defensive positioning keyed off the attacker's approach.", URL: "https://videos.practrac.example/reading-the-hitter"},
			{Title: "Setter Footwork", Category: "setting", Duration: "9:18", Thumbnail: "/img/thumbs/setter-footwork.jpg", Description: "Square-up footwork patterns for in-system and out-of-system sets.", URL: "https://videos.practrac.example/setter-footwork"},
			{Title: "Quick Attack Timing", Category: "hitting", Duration: "7:55", Thumbnail: "/img/thumbs/quick-attack-timing.jpg", Description: "Middle attacker timing with the setter on first-tempo balls.", URL: "https://videos.practrac.example/quick-attack-timing"},
			{Title: "Blocking Footwork", Category: "blocking", Duration: "11:40", Thumbnail: "/img/thumbs/blocking-footwork.jpg", Description: "Swing-block and shuffle-step footwork along the net.", URL: "https://videos.practrac.example/blocking-footwork"},
			{Title: "Team Defense Systems", Category: "defense", Duration: "14:22", Thumbnail: "/img/thumbs/team-defense-systems.jpg", Description: "Perimeter and rotational defense, and when to use each.", URL: "https://videos.practrac.example/team-defense-systems"},
		}
		if err := tx.Create(&videos).Error; err != nil {
			return err
		}

		log.Printf("✅ Seeded demo data: 1 team, %d players, %d drills, 1 practice, %d videos", len(players), len(drills), len(videos))
		return nil
	})
}
