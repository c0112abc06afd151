// Package input turns terminal key events into per-tick ship controls
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit // Esc, Ctrl+C, q

	// Direction, arrows or WASD
	IntentUp
	IntentDown
	IntentLeft
	IntentRight

	IntentFire // space
)

var intentNames = [...]string{
	IntentNone:  "none",
	IntentQuit:  "quit",
	IntentUp:    "up",
	IntentDown:  "down",
	IntentLeft:  "left",
	IntentRight: "right",
	IntentFire:  "fire",
}

func (i IntentType) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}
