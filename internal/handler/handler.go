package handler

import (
	"vocabdrill/internal/middleware"
	"vocabdrill/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler renders the practice screens of a single owner chat
type Handler struct {
	bot         *tele.Bot
	authService *service.AuthService
	controller  *service.ScreenController
	logger      *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	controller *service.ScreenController,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		authService: authService,
		controller:  controller,
		logger:      logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	auth := middleware.AuthMiddleware(h.authService, h.logger)

	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Text messages are passwords or answers
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnLevel, h.handleLevel, auth)
	h.bot.Handle(&btnForward, h.handleForward, auth)
	h.bot.Handle(&btnReverse, h.handleReverse, auth)
	h.bot.Handle(&btnNext, h.handleNext, auth)
	h.bot.Handle(&btnBack, h.handleBack, auth)

	// Generic callback handler for anything the buttons above missed
	h.bot.Handle(tele.OnCallback, h.handleCallback, auth)
}

// Inline keyboard buttons
var (
	btnLevel = tele.Btn{
		Unique: "level",
	}
	btnForward = tele.Btn{
		Unique: "dir_forward",
		Text:   "🇬🇧 → 🇨🇿 Angličtina → Čeština",
	}
	btnReverse = tele.Btn{
		Unique: "dir_reverse",
		Text:   "🇨🇿 → 🇬🇧 Čeština → Angličtina",
	}
	btnNext = tele.Btn{
		Unique: "next",
		Text:   "➡️ Další",
	}
	btnBack = tele.Btn{
		Unique: "back",
		Text:   "◀️ Zpět",
	}
	btnBackToLevels = tele.Btn{
		Unique: "back",
		Text:   "🏠 Zpět na výběr úrovně",
	}
)
