package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeongrid/internal/combat"
	"github.com/samdwyer/dungeongrid/internal/gamedata"
)

// Enemy represents a hostile creature in the dungeon.
type Enemy struct {
	Unit
	Def *gamedata.EnemyDef // nil for enemies created without a definition
}

// Default stats for enemies without a definition.
const (
	defaultEnemyHP      = 10
	defaultEnemyDefense = 5
	defaultEnemyXP      = 1
)

// NewEnemy creates a new enemy from a data-driven definition.
// A nil definition yields a generic enemy with default stats.
func NewEnemy(def *gamedata.EnemyDef, col, row int) *Enemy {
	e := &Enemy{
		Unit: Unit{
			Col:           col,
			Row:           row,
			HP:            defaultEnemyHP,
			MaxHP:         defaultEnemyHP,
			DefenseRating: defaultEnemyDefense,
			Level:         1,
		},
		Def: def,
	}
	if def != nil {
		e.HP = def.HP
		e.MaxHP = def.HP
		e.DefenseRating = def.Defense
	}
	return e
}

// Name returns the enemy's display name.
func (e *Enemy) Name() string {
	if e.Def != nil {
		return e.Def.Name
	}
	return "Enemy"
}

// Symbol returns the display glyph.
func (e *Enemy) Symbol() rune {
	if e.Def != nil {
		return e.Def.GlyphRune()
	}
	return 'e'
}

// Color returns the tcell color for this enemy.
func (e *Enemy) Color() tcell.Color {
	if e.Def != nil {
		return e.Def.TCellColor()
	}
	return tcell.ColorPurple
}

// TakeDamage reduces health and returns the experience awarded to the attacker:
// the kill award for the killing blow, the per-hit award otherwise.
func (e *Enemy) TakeDamage(amount int) int {
	if amount <= 0 || !e.IsAlive() {
		return 0
	}
	killed := e.damage(amount)
	switch {
	case e.Def == nil:
		return defaultEnemyXP
	case killed:
		return e.Def.XPOnKill
	default:
		return e.Def.XPPerHit
	}
}

var _ Target = (*Enemy)(nil)
var _ combat.Combatant = (*Enemy)(nil)
