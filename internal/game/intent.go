// Package game provides the turn engine and the main game loop.
package game

// Intent is a decoded player input, supplied by the input collaborator.
type Intent int

const (
	// IntentNone is an input that maps to no action.
	IntentNone Intent = iota
	IntentMoveUp
	IntentMoveDown
	IntentMoveLeft
	IntentMoveRight
	// IntentToggleFullscreen is a display-only request; it never advances
	// the simulation.
	IntentToggleFullscreen
	// IntentExit requests the terminal state.
	IntentExit
)

// TurnResult is the outcome of handling one intent.
type TurnResult int

const (
	// DidntTakeTurn means the intent produced no simulation effect.
	DidntTakeTurn TurnResult = iota
	// TookTurn means the player acted and the AI pass ran.
	TookTurn
	// Exit is the terminal state.
	Exit
)

// String returns a human-readable result name.
func (r TurnResult) String() string {
	switch r {
	case DidntTakeTurn:
		return "didnt_take_turn"
	case TookTurn:
		return "took_turn"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}
