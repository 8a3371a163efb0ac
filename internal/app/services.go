package app

import (
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"

	"github.com/medisage/medisage_backend/config"
	"github.com/medisage/medisage_backend/internal/ai"
	"github.com/medisage/medisage_backend/internal/service/auth"
	"github.com/medisage/medisage_backend/internal/service/chat"
	"github.com/medisage/medisage_backend/internal/service/clinic"
	"github.com/medisage/medisage_backend/internal/store"
	"github.com/medisage/medisage_backend/pkg/token"
	"github.com/medisage/medisage_backend/pkg/util/password"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideStores,
		ProvideAIGateway,
		ProvideTokenManager,
		ProvideAuthService,
		ProvideClinicService,
		ProvideChatService,
	),
)

func ProvideStores(db *mongo.Database) (*store.UserStore, *store.ClinicStore, *store.ChatStore) {
	return store.NewUserStore(db), store.NewClinicStore(db), store.NewChatStore(db)
}

func ProvideAIGateway(gemini *ai.Gemini) *ai.Gateway {
	return ai.NewGateway(gemini, slog.Default())
}

func ProvideTokenManager(cfg *config.Config) (*token.Manager, error) {
	return token.NewFromCentral(cfg.Authentication.Paseto)
}

func ProvideAuthService(users *store.UserStore, clinics *store.ClinicStore, tokens *token.Manager, cfg *config.Config) auth.Service {
	return auth.New(users, clinics, tokens, password.FromCentral(cfg.Password))
}

func ProvideClinicService(clinics *store.ClinicStore) clinic.Service {
	return clinic.New(clinics)
}

func ProvideChatService(chats *store.ChatStore, clinics *store.ClinicStore, gateway *ai.Gateway) chat.Service {
	return chat.New(chats, clinics, gateway, slog.Default())
}
