package handler

import (
	"fmt"
	"strings"

	"vocabdrill/internal/domain"

	tele "gopkg.in/telebot.v3"
)

const levelsPerRow = 3

// renderView turns a controller snapshot into a message and its keyboard
func renderView(v domain.View) (string, *tele.ReplyMarkup) {
	markup := &tele.ReplyMarkup{}

	switch v.State {
	case domain.StateDirectionSelect:
		text := fmt.Sprintf("📚 Úroveň %s\n\nJakým směrem chceš procvičovat?", v.Level)
		markup.Inline(
			markup.Row(btnForward),
			markup.Row(btnReverse),
			markup.Row(btnBack),
		)
		return text, markup

	case domain.StatePractice:
		var b strings.Builder
		fmt.Fprintf(&b, "📝 %s", v.Prompt)
		switch v.Marker {
		case domain.MarkerSuccess:
			fmt.Fprintf(&b, "\n\n✅ %s", v.Feedback)
		case domain.MarkerFailure:
			fmt.Fprintf(&b, "\n\n❌ %s", v.Feedback)
		default:
			b.WriteString("\n\nNapiš překlad:")
		}
		if v.Attempts > 0 {
			fmt.Fprintf(&b, "\n\nSkóre: %d/%d", v.Correct, v.Attempts)
		}
		markup.Inline(
			markup.Row(btnNext),
			markup.Row(btnBackToLevels),
		)
		return b.String(), markup

	default:
		text := "🎯 Vyber úroveň"
		if v.Error != "" {
			text = "⚠️ " + v.Error + "\n\n" + text
		}
		rows := []tele.Row{}
		row := tele.Row{}
		for _, level := range v.Levels {
			row = append(row, markup.Data(string(level), btnLevel.Unique, string(level)))
			if len(row) == levelsPerRow {
				rows = append(rows, row)
				row = tele.Row{}
			}
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
		markup.Inline(rows...)
		return text, markup
	}
}
