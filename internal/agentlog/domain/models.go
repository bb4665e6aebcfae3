package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Stage identifies the pipeline step a log row belongs to.
type Stage string

const (
	StageInput      Stage = "input"
	StageMaker      Stage = "maker"
	StageValidation Stage = "validation"
	StageChecker    Stage = "checker"
	StageComplete   Stage = "complete"
)

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// AgentLog is one append-only telemetry row of an authoring session.
// Rows are written once, never mutated and never deleted by normal
// flow; the entry back-reference is nullable so logs outlive entries.
type AgentLog struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	SessionID string       `gorm:"type:varchar(50);not null;index:idx_agent_logs_session_ts,priority:1" json:"session_id"`
	Timestamp time.Time    `gorm:"not null;index:idx_agent_logs_session_ts,priority:2" json:"timestamp"`
	Stage     Stage        `gorm:"type:varchar(20);not null" json:"stage"`
	Level     Level        `gorm:"type:varchar(10);not null;default:info" json:"level"`
	Message   string       `gorm:"type:text;not null" json:"message"`

	PromptSent       string `gorm:"type:text" json:"prompt_sent,omitempty"`
	ResponseReceived string `gorm:"type:text" json:"response_received,omitempty"`
	InputTokens      *int   `json:"input_tokens,omitempty"`
	OutputTokens     *int   `json:"output_tokens,omitempty"`
	DurationMs       *int   `json:"duration_ms,omitempty"`

	JournalEntryID *snowflake.ID `gorm:"index" json:"journal_entry_id,omitempty"`
}

// TableName sets the database table name.
func (AgentLog) TableName() string { return "agent_logs" }
