package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, log *AgentLog) error
	ListBySession(ctx context.Context, db *gorm.DB, sessionID string) ([]AgentLog, error)
	ListByEntry(ctx context.Context, db *gorm.DB, entryID snowflake.ID) ([]AgentLog, error)

	// BacklinkSession stamps the produced entry onto every row of a
	// session. Runs inside the transaction that persists the entry.
	BacklinkSession(ctx context.Context, db *gorm.DB, sessionID string, entryID snowflake.ID) error
}
