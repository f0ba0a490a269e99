// Package ui draws the explorer in a terminal with tcell.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Screen is the terminal the renderer draws into and the game reads keys
// from. Only the calls the explorer needs are exposed.
type Screen struct {
	screen tcell.Screen
}

// NewScreen takes over the terminal: black background, hidden cursor.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close gives the terminal back.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent blocks until a key press or resize.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// HasPendingEvent reports whether PollEvent would return immediately.
// Auto-travel stops as soon as this turns true.
func (s *Screen) HasPendingEvent() bool {
	return s.screen.HasPendingEvent()
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show pushes the frame to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent draws one glyph at a screen cell.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Size returns the terminal size in cells.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync redraws every cell, used after a resize.
func (s *Screen) Sync() {
	s.screen.Sync()
}
