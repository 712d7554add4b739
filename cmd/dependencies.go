package main

import (
	"context"
	"fmt"

	"github.com/dastudio/da-assistant/internal/adapters/llm"
	"github.com/dastudio/da-assistant/internal/adapters/memory"
	"github.com/dastudio/da-assistant/internal/adapters/telegram"
	"github.com/dastudio/da-assistant/internal/auth"
	"github.com/dastudio/da-assistant/internal/controllers"
	"github.com/dastudio/da-assistant/internal/domain"
	"github.com/dastudio/da-assistant/internal/guards"
	"github.com/dastudio/da-assistant/internal/intent"
	"github.com/dastudio/da-assistant/internal/server"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
)

// AssistantDependencies contains everything the running service needs
type AssistantDependencies struct {
	Server *grpc.Server
}

// BuildAssistantDependencies creates and wires up all assistant dependencies
func BuildAssistantDependencies(_ context.Context, config *Config) (*AssistantDependencies, error) {
	log.Info().Msg("Building assistant dependencies")

	audit := guards.NewAuditLogger(log.Logger)

	var telegramSender domain.TelegramSender
	if config.TelegramBotToken != "" {
		sender, err := telegram.NewSender(config.TelegramBotToken)
		if err != nil {
			return nil, fmt.Errorf("setting up telegram sender: %w", err)
		}
		telegramSender = sender
	} else {
		log.Warn().Msg("TELEGRAM_BOT_TOKEN not set, telegram intents will report not configured")
	}

	var responder domain.FallbackResponder
	if config.OpenAIAPIKey != "" {
		responder = llm.NewOpenAIResponder(config.OpenAIAPIKey)
	} else {
		log.Warn().Msg("OPENAI_API_KEY not set, fallback replies will be static")
	}

	handlers, err := intent.NewHandlers(intent.HandlersDependencies{
		Campaigns: memory.NewCampaignStore(),
		Customers: memory.NewCustomerStore(),
		Vouchers:  memory.NewVoucherStore(),
		Telegram:  telegramSender,
		Responder: responder,
		Audit:     audit,
	})
	if err != nil {
		return nil, err
	}

	registry := intent.NewRegistry(handlers)

	corpus, err := intent.LoadCorpus()
	if err != nil {
		return nil, err
	}

	classifier := intent.NewClassifier()
	classifier.Train(corpus)

	log.Info().Int("examples", len(corpus)).Int("intents", len(registry.Labels())).Msg("Intent classifier trained")

	recognizer := intent.NewRecognizer(intent.RecognizerDependencies{
		Classifier: classifier,
		Registry:   registry,
	})

	tokens := auth.NewTokenService(auth.TokenServiceDependencies{
		Secret:      config.JWTSecret,
		AccessTTL:   config.AccessTTL(),
		RefreshTTL:  config.RefreshTTL(),
		Credentials: seedCredentials(config),
		Audit:       audit,
	})

	assistantController := controllers.NewAssistantController(controllers.AssistantControllerDependencies{
		Recognizer:  recognizer,
		RateLimiter: guards.NewRateLimiter(audit),
		Audit:       audit,
	})

	authController := controllers.NewAuthController(controllers.AuthControllerDependencies{
		Tokens: tokens,
	})

	grpcServer := server.NewGRPCServer(server.GRPCServerDependencies{
		AssistantController: assistantController,
		AuthController:      authController,
		TokenValidator:      tokens,
		Audit:               audit,
	})

	return &AssistantDependencies{Server: grpcServer}, nil
}

func seedCredentials(config *Config) []auth.Credential {
	credentials := make([]auth.Credential, 0, len(config.Users))

	for _, u := range config.Users {
		userID := u.UserID
		if userID == "" {
			userID = u.Username
		}

		credentials = append(credentials, auth.Credential{
			Username: u.Username,
			Password: u.Password,
			UserID:   userID,
			Roles:    u.Roles,
		})
	}

	return credentials
}

func buildServer(ctx context.Context) (*grpc.Server, string, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, "", err
	}

	deps, err := BuildAssistantDependencies(ctx, config)
	if err != nil {
		return nil, "", err
	}

	return deps.Server, config.GRPCAddress, nil
}
