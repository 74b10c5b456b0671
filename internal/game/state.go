// Package game wires the dungeon engines, the player and the terminal into a
// playable turn loop.
package game

// Phase represents the overall state of a session.
type Phase int

const (
	// PhasePlaying means enemies remain and the player can act.
	PhasePlaying Phase = iota
	// PhaseVictory means every enemy has been defeated.
	PhaseVictory
	// PhaseDefeat means the player has died.
	PhaseDefeat
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}
