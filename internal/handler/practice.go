package handler

import (
	"errors"
	"strings"

	"vocabdrill/internal/domain"
	"vocabdrill/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on the active screen
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	if err := h.authService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return nil
	}

	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(msgInternalFail)
	}
	if !authorized {
		return h.authorize(c, text)
	}

	if h.controller.State() != domain.StatePractice {
		view, markup := renderView(h.controller.View())
		return c.Send(view, markup)
	}

	correct, err := h.controller.Submit(c.Text())
	if err != nil {
		h.logger.Warn("Answer rejected", zap.Error(err))
	} else {
		h.logger.Debug("Answer checked",
			zap.Int64("user_id", userID),
			zap.Bool("correct", correct),
		)
	}

	view, markup := renderView(h.controller.View())
	return c.Send(view, markup)
}

// handleLevel selects the level named in the button data
func (h *Handler) handleLevel(c tele.Context) error {
	data := cleanCallbackData(c.Callback().Data)

	level, err := domain.ParseLevel(data)
	if err != nil {
		h.logger.Warn("Unknown level in callback", zap.String("data", data))
		return c.Respond(&tele.CallbackResponse{Text: "Neznámá úroveň"})
	}

	if err := h.controller.SelectLevel(level); err != nil {
		if errors.Is(err, service.ErrNoWords) {
			return h.show(c, &tele.CallbackResponse{Text: "Žádná slovíčka", ShowAlert: true})
		}
		return h.stale(c, err)
	}
	return h.show(c, nil)
}

func (h *Handler) handleForward(c tele.Context) error {
	return h.chooseDirection(c, domain.Forward)
}

func (h *Handler) handleReverse(c tele.Context) error {
	return h.chooseDirection(c, domain.Reverse)
}

func (h *Handler) chooseDirection(c tele.Context, direction domain.Direction) error {
	if err := h.controller.ChooseDirection(direction); err != nil {
		return h.stale(c, err)
	}
	return h.show(c, nil)
}

// handleNext shows the next pair
func (h *Handler) handleNext(c tele.Context) error {
	if err := h.controller.Next(); err != nil {
		return h.stale(c, err)
	}
	return h.show(c, nil)
}

// handleBack returns to level selection
func (h *Handler) handleBack(c tele.Context) error {
	if err := h.controller.Back(); err != nil {
		return h.stale(c, err)
	}
	return h.show(c, nil)
}

// stale handles a button from an older message whose screen is no longer active
func (h *Handler) stale(c tele.Context, err error) error {
	if !errors.Is(err, service.ErrInvalidTransition) {
		h.logger.Error("Screen action failed", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: msgInternalFail})
	}
	h.logger.Debug("Stale button pressed", zap.Error(err))
	return h.show(c, nil)
}

// show edits the callback's message to the current view, falling back to a new message
func (h *Handler) show(c tele.Context, resp *tele.CallbackResponse) error {
	userID := c.Sender().ID
	text, markup := renderView(h.controller.View())

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	if resp != nil {
		return c.Respond(resp)
	}
	return c.Respond()
}
