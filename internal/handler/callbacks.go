package handler

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Same screen rendered twice, nothing to change
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles callback queries the specific endpoints did not catch
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	unique, data := splitCallback(callback.Unique, callback.Data)
	h.logger.Info("handleCallback: Processing callback",
		zap.String("unique", unique),
		zap.String("data", data),
		zap.String("data_raw", callback.Data),
		zap.Int64("user_id", c.Sender().ID),
	)

	switch unique {
	case btnLevel.Unique:
		callback.Data = data
		return h.handleLevel(c)
	case btnForward.Unique:
		return h.handleForward(c)
	case btnReverse.Unique:
		return h.handleReverse(c)
	case btnNext.Unique:
		return h.handleNext(c)
	case btnBack.Unique:
		return h.handleBack(c)
	}

	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", unique),
	)
	return c.Respond()
}

// splitCallback recovers the button name and payload when telebot could not
// route the callback, in which case the raw data looks like "\funique|payload"
func splitCallback(unique, data string) (string, string) {
	data = cleanCallbackData(data)
	if unique != "" {
		return unique, data
	}
	name, payload, _ := strings.Cut(data, "|")
	return name, payload
}
