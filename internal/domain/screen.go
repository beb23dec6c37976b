package domain

// ScreenState is the active screen of the practice flow
type ScreenState string

const (
	StateLevelSelect     ScreenState = "level_select"
	StateDirectionSelect ScreenState = "direction_select"
	StatePractice        ScreenState = "practice"
)

// Direction selects which term of a pair is shown as the prompt
type Direction int

const (
	// Forward prompts with the source term and expects the target term
	Forward Direction = iota
	// Reverse prompts with the target term and expects the source term
	Reverse
)

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// Label returns the user-facing name of the direction
func (d Direction) Label() string {
	if d == Reverse {
		return "Čeština → Angličtina"
	}
	return "Angličtina → Čeština"
}

// Marker is the visual state of the answer field after a submission
type Marker int

const (
	MarkerNone Marker = iota
	MarkerSuccess
	MarkerFailure
)

// View is a snapshot of everything a frontend needs to draw the current screen
type View struct {
	State    ScreenState
	Levels   []Level
	Level    Level
	Prompt   string
	Feedback string
	Marker   Marker
	Error    string
	Correct  int
	Attempts int
}
