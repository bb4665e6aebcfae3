package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, account *Account) error
	FindByCode(ctx context.Context, db *gorm.DB, code string) (*Account, error)
	List(ctx context.Context, db *gorm.DB, filter ListAccountsRequest) ([]Account, error)
	Update(ctx context.Context, db *gorm.DB, account *Account) error
}
