package migration

import (
	accountdomain "github.com/munimji/munimji/internal/account/domain"
	agentlogdomain "github.com/munimji/munimji/internal/agentlog/domain"
	journaldomain "github.com/munimji/munimji/internal/journal/domain"
	"gorm.io/gorm"
)

// Run creates or updates the schema for every persisted model. Schema
// changes are additive; dropped columns are left in place.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&accountdomain.Account{},
		&journaldomain.JournalEntry{},
		&journaldomain.JournalLine{},
		&agentlogdomain.AgentLog{},
	)
}
