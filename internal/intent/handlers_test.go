package intent

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dastudio/da-assistant/internal/adapters/memory"
	"github.com/dastudio/da-assistant/internal/domain"
	"github.com/dastudio/da-assistant/internal/guards"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTelegram struct {
	sent []domain.SendTelegramParams
	err  error
}

func (s *stubTelegram) SendMessage(_ context.Context, p domain.SendTelegramParams) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, p)
	return nil
}

func (s *stubTelegram) Status(context.Context) (string, error) {
	return "The Telegram bot is connected as @testbot.", nil
}

func newTestHandlers(t *testing.T, tg domain.TelegramSender) *Handlers {
	t.Helper()

	handlers, err := NewHandlers(HandlersDependencies{
		Campaigns: memory.NewCampaignStore(),
		Customers: memory.NewCustomerStore(),
		Vouchers:  memory.NewVoucherStore(),
		Telegram:  tg,
		Audit:     guards.NewAuditLogger(zerolog.New(io.Discard)),
	})
	require.NoError(t, err)

	return handlers
}

var manager = domain.User{ID: "u-manager", Roles: []string{domain.RoleManager}}

func TestCreateCampaign_ValidationError(t *testing.T) {
	h := newTestHandlers(t, nil)

	result := h.CreateCampaign(context.Background(), map[string]any{}, manager, nil)

	assert.False(t, result.Success)
	data, ok := result.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, CodeValidationError, data["code"])
}

func TestCreateCampaign_AuthorizationDenied(t *testing.T) {
	h := newTestHandlers(t, nil)
	viewer := domain.User{ID: "u-viewer", Roles: []string{domain.RoleViewer}}

	result := h.CreateCampaign(context.Background(), map[string]any{"name": "Summer Sale"}, viewer, nil)

	assert.False(t, result.Success)
	data, ok := result.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, CodeAuthorizationError, data["code"])
}

func TestCreateCampaign_Success(t *testing.T) {
	h := newTestHandlers(t, nil)

	result := h.CreateCampaign(context.Background(),
		map[string]any{"name": "Summer Sale", "start_date": "2026-10-01"}, manager, nil)

	require.True(t, result.Success, result.Message)

	campaign, ok := result.Data.(domain.Campaign)
	require.True(t, ok)
	assert.Equal(t, "Summer Sale", campaign.Name)
	assert.Equal(t, "draft", campaign.Status)
	assert.NotEmpty(t, campaign.ID)
}

func TestCampaignStatus_NotFound(t *testing.T) {
	h := newTestHandlers(t, nil)

	result := h.CampaignStatus(context.Background(), map[string]any{"name": "Ghost"}, manager, nil)

	assert.False(t, result.Success)
	data, ok := result.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, data["code"])
}

func TestSendTelegram_Success(t *testing.T) {
	tg := &stubTelegram{}
	h := newTestHandlers(t, tg)
	marketer := domain.User{ID: "u-marketing", Roles: []string{domain.RoleMarketing}}

	result := h.SendTelegram(context.Background(), map[string]any{
		"chat_id":  "marketing",
		"message":  "Hello everyone!",
		"markdown": "true",
	}, marketer, nil)

	require.True(t, result.Success, result.Message)
	require.Len(t, tg.sent, 1)
	assert.Equal(t, "marketing", tg.sent[0].ChatID)
	assert.Equal(t, "Hello everyone!", tg.sent[0].Message)
	assert.True(t, tg.sent[0].Markdown)
}

func TestSendTelegram_NotConfigured(t *testing.T) {
	h := newTestHandlers(t, nil)
	admin := domain.User{ID: "u-admin", Roles: []string{domain.RoleAdmin}}

	result := h.SendTelegram(context.Background(), map[string]any{
		"chat_id": "marketing",
		"message": "hi",
	}, admin, nil)

	assert.False(t, result.Success)
	data, ok := result.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, CodeNotConfigured, data["code"])
}

func TestSendTelegram_ServiceFailure(t *testing.T) {
	tg := &stubTelegram{err: errors.New("chat not reachable")}
	h := newTestHandlers(t, tg)
	admin := domain.User{ID: "u-admin", Roles: []string{domain.RoleAdmin}}

	result := h.SendTelegram(context.Background(), map[string]any{
		"chat_id": "marketing",
		"message": "hi",
	}, admin, nil)

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "An error occurred")
}

func TestStatsOverview_CountsAllStores(t *testing.T) {
	h := newTestHandlers(t, nil)

	_ = h.CreateCampaign(context.Background(), map[string]any{"name": "A"}, manager, nil)
	_ = h.AddCustomer(context.Background(), map[string]any{"name": "Jane"}, manager, nil)

	result := h.StatsOverview(context.Background(), nil, manager, nil)

	require.True(t, result.Success)
	data, ok := result.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1, data["campaigns"])
	assert.Equal(t, 1, data["customers"])
	assert.Equal(t, 0, data["vouchers"])
}

func TestFallback_AlwaysFails(t *testing.T) {
	h := newTestHandlers(t, nil)

	result := h.Fallback(context.Background(), map[string]any{"message": "do a backflip"}, manager, nil)

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Message)
}
