package domain

import (
	"context"
	"time"
)

type Campaign struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	StartDate string    `json:"start_date,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Voucher struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Discount  string    `json:"discount,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateCampaignParams struct {
	Name      string
	StartDate string
}

type AddCustomerParams struct {
	Name  string
	Email string
}

type CreateVoucherParams struct {
	Code     string
	Discount string
}

// CampaignService is the persistence collaborator for campaigns. The real
// system backs this with the platform database; this repo only consumes it.
type CampaignService interface {
	Create(ctx context.Context, p CreateCampaignParams) (Campaign, error)
	List(ctx context.Context) ([]Campaign, error)
	GetByName(ctx context.Context, name string) (Campaign, error)
}

type CustomerService interface {
	Add(ctx context.Context, p AddCustomerParams) (Customer, error)
	List(ctx context.Context) ([]Customer, error)
}

type VoucherService interface {
	Create(ctx context.Context, p CreateVoucherParams) (Voucher, error)
	List(ctx context.Context) ([]Voucher, error)
}

type SendTelegramParams struct {
	ChatID   string
	Message  string
	Markdown bool
}

// TelegramSender delivers messages through the configured bot.
type TelegramSender interface {
	SendMessage(ctx context.Context, p SendTelegramParams) error
	Status(ctx context.Context) (string, error)
}

// FallbackResponder produces a conversational reply for input no intent
// matched. Implementations may call an external model; callers must tolerate
// errors and fall back to a static reply.
type FallbackResponder interface {
	Respond(ctx context.Context, message string) (string, error)
}
