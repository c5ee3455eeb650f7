package domain

import (
	"time"

	"github.com/google/uuid"
)

type Currency string

const (
	CurrencyMZN Currency = "MZN"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyZAR Currency = "ZAR"
)

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyMZN, CurrencyUSD, CurrencyEUR, CurrencyZAR:
		return true
	}
	return false
}

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
)

type Client struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	NUIT      *string
	Address   *string
	Currency  Currency
	Status    ClientStatus
	CreatedAt time.Time
}

// ClientInfo is the read-only projection of a client embedded in a Statement.
// It deliberately carries no fields beyond what statement consumers render.
type ClientInfo struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Phone    string
	Currency Currency
}

func (c *Client) Info() ClientInfo {
	return ClientInfo{
		ID:       c.ID,
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Currency: c.Currency,
	}
}
