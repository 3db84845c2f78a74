// Package game provides the mode coordinator and the main game loop.
package game

// Mode is whose turn it is, or Paused while a modal editor holds the game.
type Mode int

const (
	// ModePlayerTurn is the default mode: the player moves units.
	ModePlayerTurn Mode = iota
	// ModeEnemyTurn hands control to the opposing side.
	ModeEnemyTurn
	// ModePaused suspends turn logic while the editor is open.
	ModePaused
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModePlayerTurn:
		return "player_turn"
	case ModeEnemyTurn:
		return "enemy_turn"
	case ModePaused:
		return "paused"
	default:
		return "unknown"
	}
}
