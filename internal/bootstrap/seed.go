package bootstrap

import (
	"anoa.com/askify/internal/entity"
	"anoa.com/askify/pkg/logger"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Question{},
		&entity.Answer{},
		&entity.Notification{},
		&entity.LeaderboardUser{},
	)
}

type seedSet struct {
	model any
	rows  any
	name  string
}

// seedSets numbers the ordered collections so the database reads them back
// in mock order.
func seedSets() []seedSet {
	questions := MockQuestions()
	for i := range questions {
		questions[i].Position = i
	}
	answers := MockAnswers()
	for i := range answers {
		answers[i].Position = i
	}
	notifications := MockNotifications()
	for i := range notifications {
		notifications[i].Position = i
	}

	return []seedSet{
		{&entity.Question{}, questions, "questions"},
		{&entity.Answer{}, answers, "answers"},
		{&entity.Notification{}, notifications, "notifications"},
		{&entity.LeaderboardUser{}, MockLeaderboard(), "leaderboard users"},
	}
}

// SeedMockData loads the mock collections into an empty database. Tables
// that already hold rows are left alone.
func SeedMockData(db *gorm.DB) error {
	for _, seed := range seedSets() {
		var count int64
		if err := db.Model(seed.model).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			logger.Log.Debugf("%s already seeded, skipping", seed.name)
			continue
		}

		if err := db.Create(seed.rows).Error; err != nil {
			return err
		}
		logger.Log.Infof("✅ Seeded %s", seed.name)
	}

	return nil
}
