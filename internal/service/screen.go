package service

import (
	"errors"
	"fmt"

	"vocabdrill/internal/domain"

	"go.uber.org/zap"
)

var (
	// ErrNoWords is returned when a selected level yields no pairs
	ErrNoWords = errors.New("no words available")
	// ErrInvalidTransition is returned for actions the current screen does not accept
	ErrInvalidTransition = errors.New("action not available on this screen")
)

const (
	msgCorrect   = "Správně!"
	msgIncorrect = "Nesprávně. Správná odpověď: %s"
	msgNoWords   = "Pro úroveň %s nejsou k dispozici žádná slovíčka."
)

// ScreenController owns the level select, direction select and practice
// screens. Frontends call its actions and draw View().
type ScreenController struct {
	words    *WordService
	levels   []domain.Level
	shuffler Shuffler
	logger   *zap.Logger

	state   domain.ScreenState
	level   domain.Level
	pending []domain.WordPair
	session *PracticeSession

	feedback string
	marker   domain.Marker
	errMsg   string
}

// NewScreenController creates a controller on the level select screen
func NewScreenController(
	words *WordService,
	levels []domain.Level,
	shuffler Shuffler,
	logger *zap.Logger,
) *ScreenController {
	return &ScreenController{
		words:    words,
		levels:   levels,
		shuffler: shuffler,
		logger:   logger,
		state:    domain.StateLevelSelect,
	}
}

// State returns the active screen
func (c *ScreenController) State() domain.ScreenState {
	return c.state
}

// SelectLevel loads the level's words and moves to direction select.
// An empty result keeps the level select screen and sets an error message.
func (c *ScreenController) SelectLevel(level domain.Level) error {
	if c.state != domain.StateLevelSelect {
		return c.reject("select_level")
	}

	pairs := c.words.LoadLevel(level)
	if len(pairs) == 0 {
		c.errMsg = fmt.Sprintf(msgNoWords, level)
		c.logger.Info("Level rejected, no words",
			zap.String("level", string(level)),
		)
		return fmt.Errorf("level %s: %w", level, ErrNoWords)
	}

	c.level = level
	c.pending = pairs
	c.errMsg = ""
	c.transition(domain.StateDirectionSelect)
	return nil
}

// ChooseDirection starts practice on the pending pairs
func (c *ScreenController) ChooseDirection(direction domain.Direction) error {
	if c.state != domain.StateDirectionSelect {
		return c.reject("choose_direction")
	}

	session := NewPracticeSession(c.shuffler)
	session.Start(c.pending, direction)
	if _, err := session.Advance(); err != nil {
		return fmt.Errorf("start practice: %w", err)
	}

	c.session = session
	c.clearFeedback()
	c.logger.Info("Practice started",
		zap.String("level", string(c.level)),
		zap.String("direction", direction.String()),
		zap.Int("pairs", session.Len()),
	)
	c.transition(domain.StatePractice)
	return nil
}

// Submit checks an answer against the current pair. It does not advance.
func (c *ScreenController) Submit(answer string) (bool, error) {
	if c.state != domain.StatePractice || c.session == nil {
		return false, c.reject("submit")
	}
	if _, ok := c.session.Current(); !ok {
		return false, c.reject("submit")
	}

	reference := c.session.ReferenceTerm()
	correct := IsCorrect(answer, reference)
	c.session.Record(correct)

	if correct {
		c.feedback = msgCorrect
		c.marker = domain.MarkerSuccess
	} else {
		c.feedback = fmt.Sprintf(msgIncorrect, reference)
		c.marker = domain.MarkerFailure
	}
	return correct, nil
}

// Next shows the following pair and clears the previous feedback
func (c *ScreenController) Next() error {
	if c.state != domain.StatePractice || c.session == nil {
		return c.reject("next")
	}

	if _, err := c.session.Advance(); err != nil {
		return fmt.Errorf("next pair: %w", err)
	}
	c.clearFeedback()
	return nil
}

// Back returns to level select, discarding pending pairs or the session
func (c *ScreenController) Back() error {
	switch c.state {
	case domain.StateDirectionSelect, domain.StatePractice:
		c.pending = nil
		c.session = nil
		c.level = ""
		c.errMsg = ""
		c.clearFeedback()
		c.transition(domain.StateLevelSelect)
		return nil
	default:
		return c.reject("back")
	}
}

// View returns what the active screen should display
func (c *ScreenController) View() domain.View {
	v := domain.View{
		State:  c.state,
		Levels: c.levels,
		Level:  c.level,
		Error:  c.errMsg,
	}

	if c.state == domain.StatePractice && c.session != nil {
		v.Prompt = c.session.PromptTerm()
		v.Feedback = c.feedback
		v.Marker = c.marker
		v.Correct, v.Attempts = c.session.Score()
	}
	return v
}

// Direction returns the practice direction, if a session is running
func (c *ScreenController) Direction() (domain.Direction, bool) {
	if c.session == nil {
		return domain.Forward, false
	}
	return c.session.Direction(), true
}

func (c *ScreenController) transition(to domain.ScreenState) {
	c.logger.Debug("Screen transition",
		zap.String("from", string(c.state)),
		zap.String("to", string(to)),
	)
	c.state = to
}

func (c *ScreenController) reject(action string) error {
	c.logger.Debug("Action rejected",
		zap.String("action", action),
		zap.String("state", string(c.state)),
	)
	return fmt.Errorf("%s in %s: %w", action, c.state, ErrInvalidTransition)
}

func (c *ScreenController) clearFeedback() {
	c.feedback = ""
	c.marker = domain.MarkerNone
}
