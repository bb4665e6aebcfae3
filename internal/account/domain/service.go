package domain

import (
	"context"
	"errors"
)

type CreateAccountRequest struct {
	Code           string         `json:"code"`
	Name           string         `json:"name"`
	Type           Type           `json:"type"`
	Subtype        string         `json:"subtype"`
	Classification Classification `json:"classification"`
	Description    string         `json:"description"`
}

type ListAccountsRequest struct {
	OnlyActive bool
	Type       Type
}

type Service interface {
	Create(ctx context.Context, req CreateAccountRequest) (Account, error)
	Get(ctx context.Context, code string) (Account, error)
	List(ctx context.Context, req ListAccountsRequest) ([]Account, error)
	Deactivate(ctx context.Context, code string) (Account, error)
}

var (
	ErrInvalidCode           = errors.New("invalid_code")
	ErrInvalidName           = errors.New("invalid_name")
	ErrInvalidType           = errors.New("invalid_type")
	ErrInvalidClassification = errors.New("invalid_classification")
	ErrCodeExists            = errors.New("code_exists")
	ErrNotFound              = errors.New("not_found")
)
