package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/orbit/engine"
)

var _ engine.Controls = (*Keyboard)(nil)

func TestKeyTableLookup(t *testing.T) {
	table := DefaultKeyTable()

	tests := []struct {
		key  tcell.Key
		r    rune
		want IntentType
	}{
		{tcell.KeyUp, 0, IntentUp},
		{tcell.KeyDown, 0, IntentDown},
		{tcell.KeyLeft, 0, IntentLeft},
		{tcell.KeyRight, 0, IntentRight},
		{tcell.KeyEscape, 0, IntentQuit},
		{tcell.KeyCtrlC, 0, IntentQuit},
		{tcell.KeyRune, 'q', IntentQuit},
		{tcell.KeyRune, 'w', IntentUp},
		{tcell.KeyRune, 'd', IntentRight},
		{tcell.KeyRune, ' ', IntentFire},
		{tcell.KeyRune, 'x', IntentNone},
		{tcell.KeyF1, 0, IntentNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, table.Lookup(tt.key, tt.r), "key %v rune %q", tt.key, tt.r)
	}
}

func TestPollEmptyQueue(t *testing.T) {
	k := NewKeyboard(KeyboardConfig{})
	assert.Equal(t, engine.ControlInput{}, k.Poll())
}

func TestPollFoldsQueuedEvents(t *testing.T) {
	k := NewKeyboard(KeyboardConfig{})

	k.HandleKey(tcell.KeyUp, 0)
	k.HandleKey(tcell.KeyLeft, 0)
	k.HandleKey(tcell.KeyRune, ' ')
	k.HandleKey(tcell.KeyDown, 0) // overrides up

	assert.Equal(t, engine.ControlInput{Row: 1, Column: -1, Fire: true}, k.Poll())
	assert.Equal(t, engine.ControlInput{}, k.Poll(), "queue drained")
}

func TestQuitFiresOnce(t *testing.T) {
	quits := 0
	k := NewKeyboard(KeyboardConfig{OnQuit: func() { quits++ }})

	assert.True(t, k.HandleKey(tcell.KeyEscape, 0))
	assert.True(t, k.HandleKey(tcell.KeyRune, 'q'))
	assert.Equal(t, 1, quits)
	assert.Equal(t, engine.ControlInput{}, k.Poll(), "quit is not a control")
}

func TestUnboundKeyIgnored(t *testing.T) {
	k := NewKeyboard(KeyboardConfig{})
	assert.False(t, k.HandleKey(tcell.KeyRune, 'z'))
	assert.Equal(t, engine.ControlInput{}, k.Poll())
}

func TestFullQueueDrops(t *testing.T) {
	k := NewKeyboard(KeyboardConfig{Buffer: 2})
	k.HandleKey(tcell.KeyUp, 0)
	k.HandleKey(tcell.KeyUp, 0)
	k.HandleKey(tcell.KeyRune, ' ')

	assert.Equal(t, int64(1), k.Dropped())
	assert.Equal(t, engine.ControlInput{Row: -1}, k.Poll())
}

// scriptedSource returns queued events, then nil
type scriptedSource struct {
	events []tcell.Event
}

func (s *scriptedSource) PollEvent() tcell.Event {
	if len(s.events) == 0 {
		return nil
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

func TestListenReturnsOnClosedSource(t *testing.T) {
	k := NewKeyboard(KeyboardConfig{})
	src := &scriptedSource{events: []tcell.Event{tcell.NewEventResize(80, 24)}}

	done := make(chan struct{})
	go func() {
		k.Listen(src)
		close(done)
	}()
	<-done

	assert.Empty(t, src.events)
	assert.Equal(t, engine.ControlInput{}, k.Poll())
}

func TestIntentString(t *testing.T) {
	assert.Equal(t, "fire", IntentFire.String())
	assert.Equal(t, "unknown", IntentType(200).String())
}
