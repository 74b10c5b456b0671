// Package combat provides attack definitions and hit/miss/kill resolution.
package combat

import "strconv"

// Combatant is the interface for any unit that can be attacked.
// Both the player and enemies implement this interface.
type Combatant interface {
	Name() string
	IsAlive() bool
	Defense() int

	// TakeDamage applies damage and returns the experience it awards the attacker.
	TakeDamage(amount int) int

	StartTurn()
	EndTurn()
}

// Rect is an on-screen control region in renderer cell coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains returns true if the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty returns true for a zero-area rectangle.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Attack is a weapon or spell a unit can use.
type Attack struct {
	ID       string
	Name     string
	Symbol   rune
	MinRange int // Inclusive Manhattan distance in tiles
	MaxRange int // Inclusive Manhattan distance in tiles
	Damage   int
	Cost     int // Attack points spent when the attack resolves

	// Bounds is the control region assigned by the last layout pass.
	// Empty when the attack is not currently displayed.
	Bounds Rect
}

// InRange returns true if distance lies within the attack's range band.
func (a *Attack) InRange(distance int) bool {
	return a.MinRange <= distance && distance <= a.MaxRange
}

// Outcome is the result of resolving an attack.
type Outcome int

const (
	// OutcomeNone means no attack was resolved.
	OutcomeNone Outcome = iota
	OutcomeMiss
	OutcomeHit
	OutcomeKill
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeMiss:
		return "miss"
	case OutcomeHit:
		return "hit"
	case OutcomeKill:
		return "kill"
	default:
		return "unknown"
	}
}

// Result contains the outcome of resolving a single attack.
type Result struct {
	Outcome    Outcome
	Roll       int
	Defense    int
	Damage     int // Damage dealt (0 on a miss)
	Experience int // Experience awarded to the attacker
	Cost       int // Attack points spent
}

// Message returns a short description for the message log.
func (r Result) Message(attacker, defender string) string {
	roll := " (rolled " + strconv.Itoa(r.Roll) + " vs " + strconv.Itoa(r.Defense) + ")"
	switch r.Outcome {
	case OutcomeMiss:
		return attacker + " misses " + defender + roll
	case OutcomeHit:
		return attacker + " hits " + defender + " for " + strconv.Itoa(r.Damage) + roll
	case OutcomeKill:
		return attacker + " slays " + defender + roll
	default:
		return ""
	}
}

// Resolve applies attack to defender given a precomputed roll.
// The attack hits only when the roll strictly exceeds the defender's defense.
func Resolve(attack *Attack, roll int, defender Combatant) Result {
	if attack == nil || defender == nil {
		return Result{Outcome: OutcomeNone}
	}

	result := Result{
		Roll:    roll,
		Defense: defender.Defense(),
		Cost:    attack.Cost,
	}

	if roll <= result.Defense {
		result.Outcome = OutcomeMiss
		return result
	}

	result.Damage = attack.Damage
	result.Experience = defender.TakeDamage(attack.Damage)
	if defender.IsAlive() {
		result.Outcome = OutcomeHit
	} else {
		result.Outcome = OutcomeKill
	}
	return result
}

// LevelTable holds the cumulative experience needed to leave each level.
// Index 0 is the threshold for level 1.
type LevelTable []int

// Threshold returns the experience needed to advance past level.
// ok is false when level is outside the table.
func (t LevelTable) Threshold(level int) (int, bool) {
	if level < 1 || level > len(t) {
		return 0, false
	}
	return t[level-1], true
}

// Reached returns true if experience meets the threshold for level.
func (t LevelTable) Reached(level, experience int) bool {
	threshold, ok := t.Threshold(level)
	return ok && experience >= threshold
}
