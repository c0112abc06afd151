package asset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFrames(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)

	assert.Len(t, f.Rocket, 2)
	assert.Len(t, f.Garbage, 6)
	assert.Len(t, f.Explosion, 4)
	assert.NotEmpty(t, f.GameOver)

	for _, frame := range append(append([]string{}, f.Rocket...), f.Garbage...) {
		assert.NotContains(t, frame, "\r")
		assert.Equal(t, frame, trimmed(frame), "trailing whitespace must be stripped")
	}
}

func trimmed(s string) string {
	for len(s) > 0 {
		switch s[len(s)-1] {
		case ' ', '\t', '\n':
			s = s[:len(s)-1]
			continue
		}
		break
	}
	return s
}

func TestLoadNormalisesLineEndings(t *testing.T) {
	fsys := fstest.MapFS{
		"rocket/a.txt":    {Data: []byte(" /\\\r\n|  |\r\n\r\n")},
		"garbage/b.txt":   {Data: []byte("###\n")},
		"explosion/1.txt": {Data: []byte("(_)")},
		"game_over.txt":   {Data: []byte("GAME OVER\n")},
	}

	f, err := Load(fsys)
	require.NoError(t, err)
	assert.Equal(t, " /\\\n|  |", f.Rocket[0])
	assert.Equal(t, "GAME OVER", f.GameOver)
}

func TestLoadFileNameOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"rocket/2.txt":    {Data: []byte("B")},
		"rocket/1.txt":    {Data: []byte("A")},
		"rocket/.hidden":  {Data: []byte("X")},
		"garbage/g.txt":   {Data: []byte("#")},
		"explosion/1.txt": {Data: []byte("*")},
		"game_over.txt":   {Data: []byte("END")},
	}

	f, err := Load(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, f.Rocket)
}

func TestLoadErrors(t *testing.T) {
	base := func() fstest.MapFS {
		return fstest.MapFS{
			"rocket/a.txt":    {Data: []byte("^")},
			"garbage/b.txt":   {Data: []byte("#")},
			"explosion/1.txt": {Data: []byte("*")},
			"game_over.txt":   {Data: []byte("END")},
		}
	}

	tests := []struct {
		name   string
		mutate func(fstest.MapFS)
		want   error
	}{
		{"no rocket dir", func(m fstest.MapFS) { delete(m, "rocket/a.txt") }, ErrMissingFrames},
		{"no banner", func(m fstest.MapFS) { delete(m, "game_over.txt") }, ErrMissingFrames},
		{"blank garbage", func(m fstest.MapFS) { m["garbage/b.txt"] = &fstest.MapFile{Data: []byte("  \n\n")} }, ErrEmptyFrame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := base()
			tt.mutate(m)
			_, err := Load(m)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, text string) {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	}
	write("rocket/r.txt", "A\nAA")
	write("garbage/g.txt", "#")
	write("explosion/e.txt", "*")
	write("game_over.txt", "END")

	f, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "A\nAA", f.Rocket[0])

	_, err = LoadDir(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, ErrMissingFrames)

	_, err = LoadDir(filepath.Join(dir, "game_over.txt"))
	assert.ErrorIs(t, err, ErrMissingFrames)
}

func TestFrameSize(t *testing.T) {
	tests := []struct {
		text       string
		rows, cols int
	}{
		{"*", 1, 1},
		{"abc\nde", 2, 3},
		{"  /\\\n /  \\\n|    |", 3, 6},
		{"°°", 1, 2},
	}
	for _, tt := range tests {
		rows, cols := FrameSize(tt.text)
		assert.Equal(t, tt.rows, rows, tt.text)
		assert.Equal(t, tt.cols, cols, tt.text)
	}
}

func TestDefaultTimeline(t *testing.T) {
	tl, err := DefaultTimeline()
	require.NoError(t, err)

	p, ok := tl.Phrase(1957)
	assert.True(t, ok)
	assert.NotEmpty(t, p)
	_, ok = tl.Phrase(1958)
	assert.False(t, ok)
	assert.Equal(t, 2020, tl.PlasmaGunYear)
}

func TestTimelineDelayBoundaries(t *testing.T) {
	tl, err := ParseTimeline([]byte(`
garbage_delay:
  - {from: 1961, ticks: 20}
  - {from: 1969, ticks: 14}
  - {from: 2020, ticks: 2}
`))
	require.NoError(t, err)

	tests := []struct {
		year  int
		ticks int
		ok    bool
	}{
		{1957, 0, false},
		{1960, 0, false},
		{1961, 20, true},
		{1968, 20, true},
		{1969, 14, true},
		{2019, 14, true},
		{2020, 2, true},
		{2100, 2, true},
	}
	for _, tt := range tests {
		ticks, ok := tl.GarbageDelayTicks(tt.year)
		assert.Equal(t, tt.ok, ok, "year %d", tt.year)
		assert.Equal(t, tt.ticks, ticks, "year %d", tt.year)
	}
}

func TestParseTimelineRejectsBadTable(t *testing.T) {
	_, err := ParseTimeline([]byte("garbage_delay:\n  - {from: 1961, ticks: 0}\n"))
	assert.Error(t, err)

	_, err = ParseTimeline([]byte("garbage_delay:\n  - {from: 1969, ticks: 3}\n  - {from: 1961, ticks: 2}\n"))
	assert.Error(t, err)

	_, err = ParseTimeline([]byte("phrases: [oops"))
	assert.Error(t, err)
}
