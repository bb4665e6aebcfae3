package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/munimji/munimji/internal/journal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertEntry(ctx context.Context, db *gorm.DB, entry *domain.JournalEntry) error {
	// Lines are inserted separately so the caller controls ordering.
	return db.WithContext(ctx).Omit("Lines").Create(entry).Error
}

func (r *repo) InsertLines(ctx context.Context, db *gorm.DB, lines []domain.JournalLine) error {
	if len(lines) == 0 {
		return nil
	}
	return db.WithContext(ctx).Create(&lines).Error
}

func (r *repo) NextEntryNumber(ctx context.Context, db *gorm.DB, year int) (string, error) {
	prefix := domain.EntryNumberPrefix(year)

	var last string
	err := db.WithContext(ctx).
		Model(&domain.JournalEntry{}).
		Select("entry_number").
		Where("entry_number LIKE ?", prefix+"%").
		Order("entry_number DESC").
		Limit(1).
		Scan(&last).Error
	if err != nil {
		return "", err
	}

	seq := 1
	if last != "" {
		parts := strings.Split(last, "-")
		n, err := strconv.Atoi(parts[len(parts)-1])
		if err != nil {
			return "", fmt.Errorf("malformed entry number %q: %w", last, err)
		}
		seq = n + 1
	}

	return domain.FormatEntryNumber(year, seq), nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID, forUpdate bool) (*domain.JournalEntry, error) {
	stmt := db.WithContext(ctx)
	// sqlite has no SELECT ... FOR UPDATE; its single writer already
	// serializes the transaction.
	if forUpdate && db.Dialector.Name() != "sqlite" {
		stmt = stmt.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var entry domain.JournalEntry
	err := stmt.First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := db.WithContext(ctx).
		Where("journal_entry_id = ?", id).
		Order("id asc").
		Find(&entry.Lines).Error; err != nil {
		return nil, err
	}

	return &entry, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListEntriesRequest) ([]domain.JournalEntry, error) {
	var entries []domain.JournalEntry
	stmt := db.WithContext(ctx).Model(&domain.JournalEntry{}).Preload("Lines")
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		stmt = stmt.Where("transaction_type = ?", filter.Type)
	}
	err := stmt.
		Order("transaction_date desc, created_at desc").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *repo) UpdateEntry(ctx context.Context, db *gorm.DB, entry *domain.JournalEntry) error {
	return db.WithContext(ctx).Omit("Lines").Save(entry).Error
}
