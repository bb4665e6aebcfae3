package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	InsertEntry(ctx context.Context, db *gorm.DB, entry *JournalEntry) error
	InsertLines(ctx context.Context, db *gorm.DB, lines []JournalLine) error

	// NextEntryNumber allocates the next JV-<year>-NNNNN number. Must be
	// called inside the transaction that inserts the entry.
	NextEntryNumber(ctx context.Context, db *gorm.DB, year int) (string, error)

	// FindByID loads an entry with its lines. ForUpdate takes a row lock
	// so lifecycle guards are evaluated against committed state.
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID, forUpdate bool) (*JournalEntry, error)
	List(ctx context.Context, db *gorm.DB, filter ListEntriesRequest) ([]JournalEntry, error)
	UpdateEntry(ctx context.Context, db *gorm.DB, entry *JournalEntry) error
}
