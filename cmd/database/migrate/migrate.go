package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nourishnet/domain"
	"nourishnet/entities"
)

func Migrate(db *gorm.DB) error {
	// Setup PostgreSQL extensions for UUID generation and geographical calculations
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"cube\";")
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"earthdistance\" CASCADE;")

	models := []interface{}{
		&entities.User{},
		&entities.DeliveryPartnerProfile{},
		&entities.UserFollow{},
		&entities.FoodItem{},
		&entities.Claim{},
		&entities.Conversation{},
		&entities.ConversationParticipant{},
		&entities.ChatMessage{},
		&entities.ChatRequest{},
		&entities.Achievement{},
		&entities.UserAchievement{},
		&entities.CommunityPost{},
		&entities.Report{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating database: %v", err)
			return err
		}
	}

	if err := seedAchievements(db); err != nil {
		log.Fatalf("Error seeding achievements: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

// seedAchievements inserts the badge catalog; reruns leave existing rows alone.
func seedAchievements(db *gorm.DB) error {
	catalog := []entities.Achievement{
		{
			ID:          domain.AchievementFirstShare,
			Title:       "First Share",
			Description: "Shared your first food item with the community.",
			Icon:        "fa-seedling",
		},
		{
			ID:          domain.AchievementCommunityPioneer,
			Title:       "Community Pioneer",
			Description: "Completed your first successful food handover.",
			Icon:        "fa-flag",
		},
		{
			ID:          domain.AchievementGoodSamaritan,
			Title:       "Good Samaritan",
			Description: "Five of your shared items reached a new home.",
			Icon:        "fa-hand-holding-heart",
		},
		{
			ID:          domain.AchievementGenerousGiver,
			Title:       "Generous Giver",
			Description: "Ten of your shared items reached a new home.",
			Icon:        "fa-gift",
		},
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&catalog).Error
}
