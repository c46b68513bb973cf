package config

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// SessionConfig holds settings for hosted games.
type SessionConfig struct {
	// DefaultPromotion is the piece a pawn becomes when a move gives no
	// suffix: one of Q, R, B, N (empty means Queen)
	DefaultPromotion string `yaml:"default_promotion"`

	// HistoryLimit caps the moves a game may hold (0 = no limit)
	HistoryLimit int `yaml:"history_limit"`
}

// NewSessionConfig creates a SessionConfig with default values.
func NewSessionConfig() *SessionConfig {
	return &SessionConfig{DefaultPromotion: "Q"}
}

// PromotionKind returns the configured default promotion piece.
func (s SessionConfig) PromotionKind() chess.Kind {
	if s.DefaultPromotion == "" {
		return chess.Queen
	}
	kind, _ := chess.KindFromLetter(strings.ToUpper(s.DefaultPromotion)[0])
	return kind
}

// Validate returns an error if the session settings are inconsistent.
func (s SessionConfig) Validate() error {
	if p := s.DefaultPromotion; p != "" {
		if len(p) != 1 {
			return invalid("default_promotion", p)
		}
		switch kind, _ := chess.KindFromLetter(strings.ToUpper(p)[0]); kind {
		case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
		default:
			return invalid("default_promotion", p)
		}
	}
	if s.HistoryLimit < 0 {
		return invalid("history_limit", s.HistoryLimit)
	}
	return nil
}
