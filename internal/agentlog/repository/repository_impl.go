package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/munimji/munimji/internal/agentlog/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, log *domain.AgentLog) error {
	return db.WithContext(ctx).Create(log).Error
}

func (r *repo) ListBySession(ctx context.Context, db *gorm.DB, sessionID string) ([]domain.AgentLog, error) {
	var logs []domain.AgentLog
	err := db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("timestamp asc, id asc").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *repo) ListByEntry(ctx context.Context, db *gorm.DB, entryID snowflake.ID) ([]domain.AgentLog, error) {
	var logs []domain.AgentLog
	err := db.WithContext(ctx).
		Where("journal_entry_id = ?", entryID).
		Order("timestamp asc, id asc").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *repo) BacklinkSession(ctx context.Context, db *gorm.DB, sessionID string, entryID snowflake.ID) error {
	return db.WithContext(ctx).
		Model(&domain.AgentLog{}).
		Where("session_id = ?", sessionID).
		Update("journal_entry_id", entryID).Error
}
