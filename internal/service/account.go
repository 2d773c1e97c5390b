package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/target/crawl-admin/internal/core"
	"github.com/target/crawl-admin/internal/domain/model"
)

// AccountServiceOptions groups dependencies for AccountService.
type AccountServiceOptions struct {
	API    core.AccountAPI // Required
	Logger *slog.Logger    // Optional
}

// AccountService manages crawl accounts through the backend.
type AccountService struct {
	api    core.AccountAPI
	logger *slog.Logger
}

// NewAccountService constructs a new AccountService.
func NewAccountService(opts AccountServiceOptions) *AccountService {
	if opts.API == nil {
		panic("AccountAPI is required")
	}
	return &AccountService{api: opts.API, logger: opts.Logger}
}

// List returns up to limit accounts starting at offset.
func (s *AccountService) List(ctx context.Context, limit, offset int) ([]model.Account, error) {
	accounts, err := s.api.ListAccounts(ctx, listOptions(limit, offset))
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

// Get returns one account.
func (s *AccountService) Get(ctx context.Context, id int64) (*model.Account, error) {
	a, err := s.api.GetAccount(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get account %d: %w", id, err)
	}
	if a == nil {
		return nil, notFoundf("Account %d not found.", id)
	}
	return a, nil
}

// Create validates and creates an account.
func (s *AccountService) Create(ctx context.Context, req model.AccountRequest) (*model.Account, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}
	a, err := s.api.CreateAccount(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	if s.logger != nil && a != nil {
		s.logger.InfoContext(ctx, "account created", "id", a.ID)
	}
	return a, nil
}

// Update validates and replaces an account.
func (s *AccountService) Update(ctx context.Context, id int64, req model.AccountRequest) (*model.Account, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}
	a, err := s.api.UpdateAccount(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update account %d: %w", id, err)
	}
	return a, nil
}

// Delete removes an account.
func (s *AccountService) Delete(ctx context.Context, id int64) error {
	if err := s.api.DeleteAccount(ctx, id); err != nil {
		return fmt.Errorf("delete account %d: %w", id, err)
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "account deleted", "id", id)
	}
	return nil
}
