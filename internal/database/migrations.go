package database

import (
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/zhubert/ragchat/internal/logger"
)

// Snapshots of the tables as migration 0 created them. Later migrations must
// not edit these; they describe history.
type conversation0 struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    string    `gorm:"size:255;not null;index"`
	Title     string    `gorm:"size:255;not null"`
	CreatedAt time.Time `gorm:"index"`
}

func (conversation0) TableName() string { return "conversations" }

type message0 struct {
	ID             uint   `gorm:"primaryKey"`
	ConversationID uint   `gorm:"not null;index"`
	Content        string `gorm:"type:text;not null"`
	IsUser         bool   `gorm:"not null"`
	CreatedAt      time.Time
}

func (message0) TableName() string { return "messages" }

func GetMigrator(db *gorm.DB) *gormigrate.Gormigrate {
	migrator := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "0",
			Migrate: func(txn *gorm.DB) error {
				return txn.AutoMigrate(&conversation0{}, &message0{})
			},
			Rollback: func(txn *gorm.DB) error {
				return txn.Migrator().DropTable("messages", "conversations")
			},
		},
	})

	migrator.InitSchema(func(txn *gorm.DB) error {
		// Clean database: create the latest schema directly instead of
		// replaying every migration.
		logger.WithComponent("database").Info("clean database detected, running full schema initialization")
		return txn.AutoMigrate(&Conversation{}, &Message{})
	})

	return migrator
}
