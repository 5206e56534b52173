// Package session turns terminal events into board operations and redraws
package session

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-sweeper/audio"
	"github.com/lixenwraith/vi-sweeper/board"
	"github.com/lixenwraith/vi-sweeper/render"
)

// SoundPlayer plays one-shot effects
type SoundPlayer interface {
	Play(audio.SoundType)
	ToggleMute() bool
}

// Session owns the board, the cursor and the frame pipeline for one run
type Session struct {
	board    *board.Board
	renderer render.Renderer
	sounds   SoundPlayer
	keys     *KeyTable
	logger   zerolog.Logger

	cursorRow int
	cursorCol int
}

// Option configures a Session
type Option func(*Session)

// WithSounds attaches a sound player
func WithSounds(p SoundPlayer) Option {
	return func(s *Session) { s.sounds = p }
}

// WithKeyTable replaces the default bindings
func WithKeyTable(kt *KeyTable) Option {
	return func(s *Session) { s.keys = kt }
}

// WithLogger sets the session logger
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// New creates a session with the cursor at the origin
func New(b *board.Board, r render.Renderer, opts ...Option) *Session {
	s := &Session{
		board:    b,
		renderer: r,
		keys:     DefaultKeyTable(),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Cursor returns the cursor position
func (s *Session) Cursor() (row, col int) {
	return s.cursorRow, s.cursorCol
}

// Board exposes the underlying board
func (s *Session) Board() *board.Board {
	return s.board
}

// Render draws the current frame
func (s *Session) Render() {
	s.renderer.Draw(render.View{
		Grid:      s.board.Grid(),
		Stats:     s.board.Stats(),
		Mines:     s.board.MineCount(),
		CursorRow: s.cursorRow,
		CursorCol: s.cursorCol,
	})
}

// HandleEvent processes one terminal event, returning false when the session should end
func (s *Session) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.renderer.Sync()
		s.Render()
		return true
	case *tcell.EventKey:
		intent := s.keys.Lookup(ev)
		if intent == IntentNone {
			return true
		}
		if intent == IntentQuit {
			s.logger.Info().Msg("quit requested")
			return false
		}
		s.apply(intent)
		s.Render()
		return true
	default:
		return true
	}
}

func (s *Session) apply(intent Intent) {
	s.logger.Debug().
		Stringer("intent", intent).
		Int("row", s.cursorRow).
		Int("col", s.cursorCol).
		Msg("intent")

	if intent.IsGated() && !s.board.Stats().IsPlaying {
		s.play(audio.SoundError)
		return
	}

	switch intent {
	case IntentUp:
		s.moveCursor(-1, 0)
	case IntentDown:
		s.moveCursor(1, 0)
	case IntentLeft:
		s.moveCursor(0, -1)
	case IntentRight:
		s.moveCursor(0, 1)
	case IntentReveal:
		s.reveal()
	case IntentFlag:
		s.flag()
	case IntentNewGame:
		s.cursorRow, s.cursorCol = 0, 0
		s.board.SetupBoard()
		s.logger.Info().Msg("new game")
	case IntentReplay:
		s.cursorRow, s.cursorCol = 0, 0
		s.board.ResetBoard()
		s.logger.Info().Msg("replay")
	case IntentToggleMute:
		if s.sounds != nil {
			muted := s.sounds.ToggleMute()
			s.logger.Info().Bool("muted", muted).Msg("audio toggled")
		}
	}
}

// moveCursor steps the cursor, wrapping at every edge
func (s *Session) moveCursor(dRow, dCol int) {
	rows, cols := s.board.Rows(), s.board.Cols()
	s.cursorRow = (s.cursorRow + dRow + rows) % rows
	s.cursorCol = (s.cursorCol + dCol + cols) % cols
}

func (s *Session) reveal() {
	cell, _ := s.board.Cell(s.cursorRow, s.cursorCol)
	if cell.Revealed || cell.Flagged {
		return
	}

	s.board.RevealCell(s.cursorRow, s.cursorCol)
	s.announce(audio.SoundReveal)
}

func (s *Session) flag() {
	cell, _ := s.board.Cell(s.cursorRow, s.cursorCol)
	if cell.Revealed {
		return
	}

	s.board.FlagCell(s.cursorRow, s.cursorCol)
	s.announce(audio.SoundFlag)
}

// announce plays the outcome of an action: the game-ending sound if it ended the game, otherwise fallback
func (s *Session) announce(fallback audio.SoundType) {
	stats := s.board.Stats()
	switch {
	case stats.IsWin:
		s.play(audio.SoundWin)
		s.logger.Info().Int("revealed", stats.Revealed).Int("flagged", stats.Flagged).Msg("game won")
	case stats.IsLost:
		s.play(audio.SoundExplosion)
		s.logger.Info().Int("row", s.cursorRow).Int("col", s.cursorCol).Msg("game lost")
	default:
		s.play(fallback)
	}
}

func (s *Session) play(st audio.SoundType) {
	if s.sounds != nil {
		s.sounds.Play(st)
	}
}
