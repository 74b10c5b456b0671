// Package entity provides the units that occupy the dungeon: the player and enemies.
package entity

import "github.com/samdwyer/dungeongrid/internal/combat"

// Target is a combatant with a grid position.
type Target interface {
	combat.Combatant
	Position() (int, int)
}

// Unit holds the state shared by the player and enemies.
type Unit struct {
	Col, Row      int // Grid position in tiles
	HP, MaxHP     int
	DefenseRating int
	Experience    int
	Level         int
	active        bool
}

// Position returns the unit's grid coordinates.
func (u *Unit) Position() (int, int) {
	return u.Col, u.Row
}

// SetPosition moves the unit to the given grid coordinates.
func (u *Unit) SetPosition(col, row int) {
	u.Col = col
	u.Row = row
}

// Distance returns the Manhattan distance in tiles to another positioned unit.
func (u *Unit) Distance(other interface{ Position() (int, int) }) int {
	col, row := other.Position()
	return abs(u.Col-col) + abs(u.Row-row)
}

// IsAlive returns true if the unit has health remaining.
func (u *Unit) IsAlive() bool { return u.HP > 0 }

// Defense returns the value an attack roll must exceed to hit this unit.
func (u *Unit) Defense() int { return u.DefenseRating }

// IsActive returns true between StartTurn and EndTurn.
func (u *Unit) IsActive() bool { return u.active }

// StartTurn marks the unit as the active turn owner.
func (u *Unit) StartTurn() { u.active = true }

// EndTurn marks the unit as inactive.
func (u *Unit) EndTurn() { u.active = false }

// damage subtracts health and reports whether this blow was the killing one.
// Health is not clamped, so overkill leaves it negative.
func (u *Unit) damage(amount int) bool {
	if amount <= 0 || !u.IsAlive() {
		return false
	}
	u.HP -= amount
	return !u.IsAlive()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
