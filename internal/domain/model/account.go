package model

import (
	"errors"
	"strings"
)

// Toggle is the 1/0 status flag the backend uses for accounts and proxies.
type Toggle int

const (
	ToggleOff Toggle = 0
	ToggleOn  Toggle = 1
)

// On reports whether the flag is set.
func (t Toggle) On() bool { return t == ToggleOn }

// Account is a crawl account; AccountName holds the login cookie content.
type Account struct {
	ID          int64  `json:"id"`
	AccountName string `json:"account_name"`
	Status      Toggle `json:"status"`
}

// StatusText renders the account status label.
func (a *Account) StatusText() string {
	if a.Status.On() {
		return "Normal"
	}
	return "Disabled"
}

// AccountRequest is the create/update payload for an account.
type AccountRequest struct {
	AccountName string `json:"account_name"`
	Status      Toggle `json:"status"`
}

// Normalize trims string fields.
func (r *AccountRequest) Normalize() {
	r.AccountName = strings.TrimSpace(r.AccountName)
}

// Validate checks the request before it is sent to the backend.
func (r *AccountRequest) Validate() error {
	if r.AccountName == "" {
		return errors.New("account cookie is required")
	}
	if r.Status != ToggleOn && r.Status != ToggleOff {
		return errors.New("status must be 0 or 1")
	}
	return nil
}
