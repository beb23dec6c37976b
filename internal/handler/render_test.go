package handler

import (
	"testing"

	"vocabdrill/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderView_LevelSelect(t *testing.T) {
	text, markup := renderView(domain.View{
		State:  domain.StateLevelSelect,
		Levels: domain.AllLevels(),
	})

	assert.Contains(t, text, "Vyber úroveň")
	require.Len(t, markup.InlineKeyboard, 2)
	assert.Len(t, markup.InlineKeyboard[0], levelsPerRow)
	assert.Equal(t, "A1", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "level", markup.InlineKeyboard[0][0].Unique)
	assert.Equal(t, "C2", markup.InlineKeyboard[1][2].Text)
}

func TestRenderView_LevelSelectWithError(t *testing.T) {
	text, _ := renderView(domain.View{
		State:  domain.StateLevelSelect,
		Levels: []domain.Level{domain.LevelA1},
		Error:  "Pro úroveň A1 nejsou k dispozici žádná slovíčka.",
	})

	assert.Contains(t, text, "⚠️ Pro úroveň A1")
}

func TestRenderView_DirectionSelect(t *testing.T) {
	text, markup := renderView(domain.View{
		State: domain.StateDirectionSelect,
		Level: domain.LevelB1,
	})

	assert.Contains(t, text, "B1")
	require.Len(t, markup.InlineKeyboard, 3)
	assert.Equal(t, btnForward.Unique, markup.InlineKeyboard[0][0].Unique)
	assert.Equal(t, btnReverse.Unique, markup.InlineKeyboard[1][0].Unique)
	assert.Equal(t, btnBack.Unique, markup.InlineKeyboard[2][0].Unique)
}

func TestRenderView_Practice(t *testing.T) {
	tests := []struct {
		name        string
		view        domain.View
		contains    []string
		notContains []string
	}{
		{
			name: "fresh prompt",
			view: domain.View{State: domain.StatePractice, Prompt: "dog"},
			contains: []string{
				"📝 dog",
				"Napiš překlad",
			},
			notContains: []string{"Skóre"},
		},
		{
			name: "success",
			view: domain.View{
				State:    domain.StatePractice,
				Prompt:   "dog",
				Feedback: "Správně!",
				Marker:   domain.MarkerSuccess,
				Correct:  1,
				Attempts: 1,
			},
			contains: []string{"✅ Správně!", "Skóre: 1/1"},
		},
		{
			name: "failure",
			view: domain.View{
				State:    domain.StatePractice,
				Prompt:   "dog",
				Feedback: "Nesprávně. Správná odpověď: pes",
				Marker:   domain.MarkerFailure,
				Attempts: 1,
			},
			contains: []string{"❌ Nesprávně. Správná odpověď: pes", "Skóre: 0/1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, markup := renderView(tt.view)
			for _, s := range tt.contains {
				assert.Contains(t, text, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, text, s)
			}
			require.Len(t, markup.InlineKeyboard, 2)
			assert.Equal(t, btnNext.Unique, markup.InlineKeyboard[0][0].Unique)
		})
	}
}
