package telegram

import (
	"context"
	"fmt"

	"github.com/dastudio/da-assistant/internal/domain"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
)

// Sender implements domain.TelegramSender on top of the Bot API. Chat ids
// are channel/group handles without the leading @.
type Sender struct {
	bot *tgbotapi.BotAPI
}

func NewSender(token string) (*Sender, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connecting telegram bot: %w", err)
	}

	log.Info().Str("bot", bot.Self.UserName).Msg("Telegram bot connected")

	return &Sender{bot: bot}, nil
}

func (s *Sender) SendMessage(_ context.Context, p domain.SendTelegramParams) error {
	msg := tgbotapi.NewMessageToChannel("@"+p.ChatID, p.Message)
	if p.Markdown {
		msg.ParseMode = tgbotapi.ModeMarkdown
	}

	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("sending telegram message to @%s: %w", p.ChatID, err)
	}

	return nil
}

func (s *Sender) Status(_ context.Context) (string, error) {
	return fmt.Sprintf("The Telegram bot is connected as @%s.", s.bot.Self.UserName), nil
}
