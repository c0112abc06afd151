// Package asset loads the text frames and timeline data the game draws from
package asset

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"unicode/utf8"
)

//go:embed frames timeline.yaml
var embedded embed.FS

var (
	// ErrMissingFrames reports an absent frame directory or file
	ErrMissingFrames = errors.New("missing frames")
	// ErrEmptyFrame reports a frame file with no visible content
	ErrEmptyFrame = errors.New("empty frame")
)

// Frame set layout inside an asset tree
const (
	dirRocket    = "rocket"
	dirGarbage   = "garbage"
	dirExplosion = "explosion"
	fileGameOver = "game_over.txt"
)

// Frames holds every pre-loaded text block, each group in file name order
type Frames struct {
	Rocket    []string
	Garbage   []string
	Explosion []string
	GameOver  string
}

// Default returns the frames compiled into the binary
func Default() (*Frames, error) {
	sub, err := fs.Sub(embedded, "frames")
	if err != nil {
		return nil, fmt.Errorf("embedded frames: %w", err)
	}
	return Load(sub)
}

// LoadDir reads frames from an on-disk tree with the embedded layout
func LoadDir(dir string) (*Frames, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingFrames, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrMissingFrames, dir)
	}
	return Load(os.DirFS(dir))
}

// Load reads rocket/, garbage/, explosion/ and game_over.txt from fsys
func Load(fsys fs.FS) (*Frames, error) {
	var f Frames
	var err error

	if f.Rocket, err = loadGroup(fsys, dirRocket); err != nil {
		return nil, err
	}
	if f.Garbage, err = loadGroup(fsys, dirGarbage); err != nil {
		return nil, err
	}
	if f.Explosion, err = loadGroup(fsys, dirExplosion); err != nil {
		return nil, err
	}
	if f.GameOver, err = loadFrame(fsys, fileGameOver); err != nil {
		return nil, err
	}
	return &f, nil
}

func loadGroup(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingFrames, dir, err)
	}

	var frames []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		frame, err := loadFrame(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: %s has no frame files", ErrMissingFrames, dir)
	}
	return frames, nil
}

func loadFrame(fsys fs.FS, name string) (string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrMissingFrames, name, err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimRight(text, " \t\n")
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyFrame, name)
	}
	return text, nil
}

// FrameSize returns the row count and the widest line of a frame, in cells
func FrameSize(text string) (rows, columns int) {
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > columns {
			columns = n
		}
	}
	return len(lines), columns
}
