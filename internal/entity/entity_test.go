package entity

import (
	"context"
	"testing"

	"github.com/samdwyer/dungeongrid/internal/combat"
	"github.com/samdwyer/dungeongrid/internal/gamedata"
)

var goblinDef = &gamedata.EnemyDef{
	ID:       "goblin",
	Name:     "Goblin",
	Glyph:    "g",
	Color:    "#00FF00",
	HP:       8,
	Defense:  5,
	XPPerHit: 1,
	XPOnKill: 5,
}

func newTestPlayer() *Player {
	def := gamedata.PlayerDef{
		Name:            "Hero",
		HP:              20,
		Defense:         4,
		Speed:           5,
		MaxAttackPoints: 2,
		XPToLevel:       []int{5, 20},
	}
	attacks := []*combat.Attack{
		{ID: "sword", Name: "Sword", MinRange: 1, MaxRange: 1, Damage: 8, Cost: 1},
		{ID: "bow", Name: "Bow", MinRange: 2, MaxRange: 5, Damage: 4, Cost: 1},
		{ID: "bomb", Name: "Bomb", MinRange: 1, MaxRange: 3, Damage: 20, Cost: 3},
	}
	p := NewPlayer(def, attacks, 5, 5)
	p.StartTurn()
	return p
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateIdle, "idle"},
		{StateTargeting, "targeting"},
		{StateAttacking, "attacking"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestNewPlayerRanges(t *testing.T) {
	p := newTestPlayer()
	if p.MinRange() != 1 {
		t.Errorf("MinRange() = %d, want 1", p.MinRange())
	}
	if p.MaxRange() != 5 {
		t.Errorf("MaxRange() = %d, want 5", p.MaxRange())
	}

	bare := NewPlayer(gamedata.PlayerDef{HP: 1}, nil, 0, 0)
	if bare.MinRange() != 1 || bare.MaxRange() != 1 {
		t.Errorf("player without attacks range = [%d, %d], want [1, 1]", bare.MinRange(), bare.MaxRange())
	}
	if bare.Name() != "Player" {
		t.Errorf("Name() = %q, want %q", bare.Name(), "Player")
	}
}

func TestEnemyTakeDamage(t *testing.T) {
	e := NewEnemy(goblinDef, 1, 1)

	if xp := e.TakeDamage(3); xp != 1 {
		t.Errorf("TakeDamage(3) = %d xp, want 1", xp)
	}
	if e.HP != 5 {
		t.Errorf("HP = %d, want 5", e.HP)
	}
	if xp := e.TakeDamage(10); xp != 5 {
		t.Errorf("killing TakeDamage(10) = %d xp, want 5", xp)
	}
	if e.IsAlive() {
		t.Error("enemy should be dead")
	}
	if xp := e.TakeDamage(10); xp != 0 {
		t.Errorf("TakeDamage on dead enemy = %d xp, want 0", xp)
	}
	if xp := NewEnemy(nil, 0, 0).TakeDamage(0); xp != 0 {
		t.Errorf("TakeDamage(0) = %d xp, want 0", xp)
	}
}

func TestEnemyDefaults(t *testing.T) {
	e := NewEnemy(nil, 2, 3)
	if e.Name() != "Enemy" || e.Symbol() != 'e' {
		t.Errorf("default enemy = %q/%q, want Enemy/e", e.Name(), e.Symbol())
	}
	if e.HP != defaultEnemyHP || e.Defense() != defaultEnemyDefense {
		t.Errorf("default enemy hp/defense = %d/%d", e.HP, e.Defense())
	}
	if col, row := e.Position(); col != 2 || row != 3 {
		t.Errorf("Position() = (%d, %d), want (2, 3)", col, row)
	}
}

func TestPlayerTurnStateMachine(t *testing.T) {
	p := newTestPlayer()
	goblin := NewEnemy(goblinDef, 6, 5)

	if p.State() != StateIdle {
		t.Fatalf("initial State() = %v, want idle", p.State())
	}

	if !p.SetTarget(goblin) {
		t.Fatal("SetTarget() = false, want true")
	}
	if p.State() != StateTargeting {
		t.Fatalf("State() after SetTarget = %v, want targeting", p.State())
	}

	// Adjacent target: sword and bomb are displayable, bow is not.
	shown := p.LayoutAttacks(10, 20, 3, 1)
	if len(shown) != 2 || shown[0].ID != "sword" || shown[1].ID != "bomb" {
		t.Fatalf("LayoutAttacks() = %v, want sword and bomb", shown)
	}
	if !p.Attacks()[1].Bounds.Empty() {
		t.Error("bow should have no control region")
	}

	if p.ChooseAttack(0, 0) {
		t.Error("ChooseAttack() outside any region should fail")
	}
	if p.State() != StateTargeting {
		t.Errorf("State() after missed click = %v, want targeting", p.State())
	}

	// Bomb costs more than the balance.
	if p.ChooseAttack(13, 20) {
		t.Error("ChooseAttack() on unaffordable attack should fail")
	}

	if !p.ChooseAttack(11, 20) {
		t.Fatal("ChooseAttack() on sword region should succeed")
	}
	if p.State() != StateAttacking || p.SelectedAttack().ID != "sword" {
		t.Fatalf("State() = %v with %v, want attacking with sword", p.State(), p.SelectedAttack())
	}

	p.StopAttack()
	if p.State() != StateTargeting || p.Target() == nil {
		t.Fatalf("StopAttack() should return to targeting and keep target, got %v", p.State())
	}

	if !p.ChooseAttack(10, 20) {
		t.Fatal("ChooseAttack() after StopAttack should succeed")
	}
	result := p.FinishAttack(context.Background(), 10)
	if result.Outcome != combat.OutcomeKill {
		t.Errorf("FinishAttack() outcome = %v, want kill", result.Outcome)
	}
	if goblin.HP > 0 {
		t.Errorf("goblin HP = %d, want <= 0", goblin.HP)
	}
	if p.Experience != 5 {
		t.Errorf("Experience = %d, want 5", p.Experience)
	}
	if p.AttackPoints() != 1 {
		t.Errorf("AttackPoints() = %d, want 1", p.AttackPoints())
	}
	if p.State() != StateIdle || p.Target() != nil {
		t.Errorf("State() after FinishAttack = %v, want idle with no target", p.State())
	}
}

func TestFinishAttackMissStillSpends(t *testing.T) {
	p := newTestPlayer()
	goblin := NewEnemy(goblinDef, 5, 6)

	p.SetTarget(goblin)
	if !p.SelectAttack(p.Attacks()[0]) {
		t.Fatal("SelectAttack(sword) should succeed")
	}

	result := p.FinishAttack(context.Background(), 3)
	if result.Outcome != combat.OutcomeMiss {
		t.Errorf("FinishAttack(3) outcome = %v, want miss", result.Outcome)
	}
	if goblin.HP != 8 {
		t.Errorf("goblin HP = %d, want 8", goblin.HP)
	}
	if p.AttackPoints() != 1 {
		t.Errorf("AttackPoints() = %d, want 1", p.AttackPoints())
	}
	if p.Experience != 0 {
		t.Errorf("Experience = %d, want 0", p.Experience)
	}
	if p.State() != StateIdle {
		t.Errorf("State() = %v, want idle", p.State())
	}
}

func TestFinishAttackWithoutSelection(t *testing.T) {
	p := newTestPlayer()
	if got := p.FinishAttack(context.Background(), 20); got.Outcome != combat.OutcomeNone {
		t.Errorf("FinishAttack() in idle = %v, want none", got.Outcome)
	}
	if p.AttackPoints() != 2 {
		t.Errorf("AttackPoints() = %d, want 2", p.AttackPoints())
	}
}

func TestAttackPointsNeverGoNegative(t *testing.T) {
	p := newTestPlayer()

	for i := 0; i < 3; i++ {
		goblin := NewEnemy(goblinDef, 6, 5)
		p.SetTarget(goblin)
		if p.SelectAttack(p.Attacks()[0]) {
			p.FinishAttack(context.Background(), 1)
		} else {
			p.ClearTarget()
		}
	}

	if p.AttackPoints() != 0 {
		t.Errorf("AttackPoints() = %d, want 0", p.AttackPoints())
	}
}

func TestSelectAttackOutOfBand(t *testing.T) {
	p := newTestPlayer()
	p.SetTarget(NewEnemy(goblinDef, 8, 5)) // distance 3

	if p.SelectAttack(p.Attacks()[0]) {
		t.Error("SelectAttack(sword) at distance 3 should fail")
	}
	if !p.SelectAttack(p.Attacks()[1]) {
		t.Error("SelectAttack(bow) at distance 3 should succeed")
	}
	if p.SetTarget(NewEnemy(goblinDef, 6, 5)) {
		t.Error("SetTarget() while attacking should fail")
	}
}

func TestStartAndEndTurn(t *testing.T) {
	p := newTestPlayer()
	p.MoveTo(6, 5, 2)
	p.SetTarget(NewEnemy(goblinDef, 7, 5))
	p.SelectAttack(p.Attacks()[0])
	p.FinishAttack(context.Background(), 1)

	p.SetTarget(NewEnemy(goblinDef, 7, 5))
	p.EndTurn()
	if p.IsActive() || p.State() != StateIdle {
		t.Errorf("after EndTurn active=%v state=%v, want false idle", p.IsActive(), p.State())
	}

	p.StartTurn()
	if !p.IsActive() {
		t.Error("StartTurn() should activate the player")
	}
	if p.AttackPoints() != p.MaxAttackPoints {
		t.Errorf("AttackPoints() = %d, want %d", p.AttackPoints(), p.MaxAttackPoints)
	}
	if p.Movement() != p.Speed {
		t.Errorf("Movement() = %d, want %d", p.Movement(), p.Speed)
	}
}

func TestLevelThresholdHook(t *testing.T) {
	p := newTestPlayer()
	calls := 0
	p.OnLevelThreshold = func(*Player) { calls++ }

	p.SetTarget(NewEnemy(goblinDef, 6, 5))
	p.SelectAttack(p.Attacks()[0])
	p.FinishAttack(context.Background(), 20)

	if calls != 1 {
		t.Errorf("OnLevelThreshold called %d times, want 1", calls)
	}
	if p.Level != 1 {
		t.Errorf("Level = %d, want 1 (advancement is left to the hook)", p.Level)
	}
}

func TestDeadPlayerCannotAct(t *testing.T) {
	p := newTestPlayer()
	p.TakeDamage(100)

	if p.IsAlive() {
		t.Fatal("player should be dead")
	}
	if p.SetTarget(NewEnemy(goblinDef, 6, 5)) {
		t.Error("dead player should not be able to target")
	}
}

func TestDistance(t *testing.T) {
	p := newTestPlayer()
	e := NewEnemy(nil, 2, 9)
	if got := p.Distance(e); got != 7 {
		t.Errorf("Distance() = %d, want 7", got)
	}
}
