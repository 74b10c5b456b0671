package entity

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeongrid/internal/combat"
	"github.com/samdwyer/dungeongrid/internal/gamedata"
	"github.com/samdwyer/dungeongrid/internal/telemetry"
)

// State is the player's attack selection state within a turn.
type State int

const (
	// StateIdle means no target and no attack are selected.
	StateIdle State = iota
	// StateTargeting means a target is selected but no attack is chosen yet.
	StateTargeting
	// StateAttacking means an attack is chosen and awaits its roll.
	StateAttacking
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTargeting:
		return "targeting"
	case StateAttacking:
		return "attacking"
	default:
		return "unknown"
	}
}

// Player is the unit controlled by the user.
//
// Within a turn the player moves through Idle -> Targeting -> Attacking and
// back to Idle once FinishAttack resolves. StartTurn and EndTurn return to
// Idle from any state.
type Player struct {
	Unit
	name string

	Speed           int // Movement budget restored at turn start
	MaxAttackPoints int

	movement     int
	attackPoints int
	attacks      []*combat.Attack
	minRange     int
	maxRange     int
	levels       combat.LevelTable

	target   Target
	selected *combat.Attack

	// OnLevelThreshold is called after an attack when accumulated experience
	// meets the current level's threshold. Level advancement itself is left
	// to the hook.
	OnLevelThreshold func(p *Player)
}

// NewPlayer creates a player from its definition at the given grid position.
func NewPlayer(def gamedata.PlayerDef, attacks []*combat.Attack, col, row int) *Player {
	name := def.Name
	if name == "" {
		name = "Player"
	}
	p := &Player{
		Unit: Unit{
			Col:           col,
			Row:           row,
			HP:            def.HP,
			MaxHP:         def.HP,
			DefenseRating: def.Defense,
			Level:         1,
		},
		name:            name,
		Speed:           def.Speed,
		MaxAttackPoints: def.MaxAttackPoints,
		movement:        def.Speed,
		attackPoints:    def.MaxAttackPoints,
		attacks:         attacks,
		minRange:        1,
		maxRange:        1,
		levels:          combat.LevelTable(def.XPToLevel),
	}
	for _, attack := range attacks {
		if attack.MinRange < p.minRange {
			p.minRange = attack.MinRange
		}
		if attack.MaxRange > p.maxRange {
			p.maxRange = attack.MaxRange
		}
	}
	return p
}

// Name returns the player's display name.
func (p *Player) Name() string { return p.name }

// TakeDamage reduces health. Enemies earn no experience.
func (p *Player) TakeDamage(amount int) int {
	p.damage(amount)
	return 0
}

// State returns the current attack selection state.
func (p *Player) State() State {
	switch {
	case p.selected != nil:
		return StateAttacking
	case p.target != nil:
		return StateTargeting
	default:
		return StateIdle
	}
}

// Attacks returns all attacks the player knows.
func (p *Player) Attacks() []*combat.Attack { return p.attacks }

// MinRange returns the smallest minimum range across the player's attacks.
func (p *Player) MinRange() int { return p.minRange }

// MaxRange returns the largest maximum range across the player's attacks.
func (p *Player) MaxRange() int { return p.maxRange }

// AttackPoints returns the current attack point balance.
func (p *Player) AttackPoints() int { return p.attackPoints }

// Movement returns the movement budget left this turn.
func (p *Player) Movement() int { return p.movement }

// Target returns the selected target, or nil.
func (p *Player) Target() Target { return p.target }

// SelectedAttack returns the chosen attack, or nil.
func (p *Player) SelectedAttack() *combat.Attack { return p.selected }

// MoveTo places the player on a new tile with the given movement left.
func (p *Player) MoveTo(col, row, remaining int) {
	p.SetPosition(col, row)
	if remaining < 0 {
		remaining = 0
	}
	p.movement = remaining
}

// SetTarget selects a live target. It fails while an attack is chosen or
// when the player is dead.
func (p *Player) SetTarget(target Target) bool {
	if !p.IsAlive() || target == nil || !target.IsAlive() || p.selected != nil {
		return false
	}
	p.target = target
	return true
}

// ClearTarget drops the selected target and any chosen attack.
func (p *Player) ClearTarget() {
	p.target = nil
	p.selected = nil
}

// DisplayableAttacks returns the attacks whose range band contains the
// distance to the current target.
func (p *Player) DisplayableAttacks() []*combat.Attack {
	if p.target == nil {
		return nil
	}
	distance := p.Distance(p.target)
	var attacks []*combat.Attack
	for _, attack := range p.attacks {
		if attack.InRange(distance) {
			attacks = append(attacks, attack)
		}
	}
	return attacks
}

// LayoutAttacks assigns control regions to the displayable attacks, left to
// right from (x, y), each width by height. Attacks that are not displayable
// lose their region.
func (p *Player) LayoutAttacks(x, y, width, height int) []*combat.Attack {
	for _, attack := range p.attacks {
		attack.Bounds = combat.Rect{}
	}
	displayable := p.DisplayableAttacks()
	for i, attack := range displayable {
		attack.Bounds = combat.Rect{X: x + i*width, Y: y, Width: width, Height: height}
	}
	return displayable
}

// ChooseAttack selects the displayable attack whose control region contains
// the click point.
func (p *Player) ChooseAttack(x, y int) bool {
	for _, attack := range p.DisplayableAttacks() {
		if attack.Bounds.Contains(x, y) {
			return p.SelectAttack(attack)
		}
	}
	return false
}

// SelectAttack chooses an attack directly. The attack must be displayable for
// the current target and affordable with the remaining attack points.
func (p *Player) SelectAttack(attack *combat.Attack) bool {
	if !p.IsAlive() || p.State() != StateTargeting || attack == nil {
		return false
	}
	if attack.Cost > p.attackPoints {
		return false
	}
	if !attack.InRange(p.Distance(p.target)) {
		return false
	}
	p.selected = attack
	return true
}

// StopAttack cancels the chosen attack but keeps the target.
func (p *Player) StopAttack() {
	p.selected = nil
}

// FinishAttack resolves the chosen attack against the target with a
// precomputed roll, spends its cost and returns to Idle.
func (p *Player) FinishAttack(ctx context.Context, roll int) combat.Result {
	if !p.IsAlive() || p.State() != StateAttacking {
		return combat.Result{Outcome: combat.OutcomeNone}
	}

	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.attack")
	defer span.End()

	attack, target := p.selected, p.target
	p.attackPoints -= attack.Cost

	result := combat.Resolve(attack, roll, target)
	p.Experience += result.Experience

	span.SetAttributes(
		attribute.String("attack", attack.ID),
		attribute.String("target", target.Name()),
		attribute.Int("roll", roll),
		attribute.String("outcome", result.Outcome.String()),
		attribute.Int("damage", result.Damage),
		attribute.Int("experience", p.Experience),
		attribute.Int("attack_points", p.attackPoints),
	)

	if p.levels.Reached(p.Level, p.Experience) {
		span.SetAttributes(attribute.Bool("level_threshold", true))
		if p.OnLevelThreshold != nil {
			p.OnLevelThreshold(p)
		}
	}

	p.ClearTarget()
	return result
}

// StartTurn restores attack points and movement and clears any selection.
func (p *Player) StartTurn() {
	p.Unit.StartTurn()
	p.attackPoints = p.MaxAttackPoints
	p.movement = p.Speed
	p.ClearTarget()
}

// EndTurn clears any selection and deactivates the player.
func (p *Player) EndTurn() {
	p.Unit.EndTurn()
	p.ClearTarget()
}

var _ combat.Combatant = (*Player)(nil)
