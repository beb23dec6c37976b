package handler

import (
	"errors"

	"vocabdrill/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	msgAskPassword  = "Ahoj! Pro procvičování zadej heslo:"
	msgWrongPass    = "Špatné heslo."
	msgOwnerTaken   = "Procvičování už používá jiný chat."
	msgInternalFail = "Něco se pokazilo. Zkus to prosím znovu."
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	if err := h.authService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send(msgInternalFail)
	}

	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(msgInternalFail)
	}

	if !authorized {
		return c.Send(msgAskPassword)
	}

	text, markup := renderView(h.controller.View())
	return c.Send(text, markup)
}

// authorize treats text from an unauthorized chat as a password attempt
func (h *Handler) authorize(c tele.Context, password string) error {
	userID := c.Sender().ID

	if !h.authService.CheckPassword(password) {
		return c.Send(msgWrongPass)
	}

	if err := h.authService.AuthorizeUser(userID); err != nil {
		if errors.Is(err, service.ErrOwnerTaken) {
			h.logger.Warn("Rejected second chat", zap.Int64("user_id", userID))
			return c.Send(msgOwnerTaken)
		}
		h.logger.Error("Failed to authorize user", zap.Error(err))
		return c.Send(msgInternalFail)
	}

	h.logger.Info("User authorized", zap.Int64("user_id", userID))
	text, markup := renderView(h.controller.View())
	return c.Send("✅ Přístup povolen!\n\n"+text, markup)
}
