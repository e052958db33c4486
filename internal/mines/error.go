package mines

import "errors"

var (
	ErrOutOfBounds   = errors.New("cell out of bounds")
	ErrInvalidParams = errors.New("invalid game params")
)

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

// Outcome reports what an action did to the game. Anything other than
// [Applied] and [Detonated] leaves the game untouched.
type Outcome uint8

const (
	Rejected Outcome = iota
	Applied
	Detonated
	AlreadySettled
	AlreadyRevealed
	NotFlagged
	NothingToChord
	GameOver
)

func (o Outcome) String() string {
	switch o {
	case Rejected:
		return "rejected"
	case Applied:
		return "applied"
	case Detonated:
		return "mine detonated"
	case AlreadySettled:
		return "this location has already been revealed or flagged"
	case AlreadyRevealed:
		return "this location has already been revealed"
	case NotFlagged:
		return "this location is not flagged"
	case NothingToChord:
		return "nothing to chord here"
	case GameOver:
		return "the game is over"
	default:
		return "unknown outcome"
	}
}

// Informational reports whether the outcome is a no-op notice for the player.
func (o Outcome) Informational() bool {
	return o != Applied && o != Detonated
}
