package engine

import (
	"fmt"
	"math"

	"arcadenexus/internal/catalog"
)

// MaxScore bounds a single report so floored values convert to int exactly.
const MaxScore = 1e12

// Per-game XP balance.
const (
	CyberPongXPPerGoal    = 50 // goals are rare
	NeonSnakeXPPerPoint   = 2
	SystemDefenseXPDivide = 10
	DefaultXPDivide       = 5 // void-runner meters and everything else
)

func validateScore(raw float64) error {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return fmt.Errorf("%w: %v is not finite", ErrInvalidScore, raw)
	}
	if raw < 0 {
		return fmt.Errorf("%w: %v is negative", ErrInvalidScore, raw)
	}
	if raw > MaxScore {
		return fmt.Errorf("%w: %v exceeds %v", ErrInvalidScore, raw, MaxScore)
	}
	return nil
}

// FloorScore is the integer score recorded for a raw result.
func FloorScore(raw float64) int {
	return int(math.Floor(raw))
}

// XPForScore returns the XP a single result is worth. There is no cap.
func XPForScore(game catalog.GameID, raw float64) int {
	switch game {
	case catalog.GameCyberPong:
		return int(math.Floor(raw * CyberPongXPPerGoal))
	case catalog.GameNeonSnake:
		return int(math.Floor(raw * NeonSnakeXPPerPoint))
	case catalog.GameSystemDefense:
		return int(math.Floor(raw / SystemDefenseXPDivide))
	case catalog.GameVoidRunner:
		fallthrough
	default:
		return int(math.Floor(raw / DefaultXPDivide))
	}
}
