package combat

import "testing"

// mockCombatant is a test implementation of the Combatant interface.
type mockCombatant struct {
	name     string
	hp       int
	defense  int
	xpPerHit int
	xpOnKill int
	turns    int
}

func newMockCombatant(name string, hp, defense int) *mockCombatant {
	return &mockCombatant{
		name:     name,
		hp:       hp,
		defense:  defense,
		xpPerHit: 1,
		xpOnKill: 10,
	}
}

func (m *mockCombatant) Name() string  { return m.name }
func (m *mockCombatant) IsAlive() bool { return m.hp > 0 }
func (m *mockCombatant) Defense() int  { return m.defense }
func (m *mockCombatant) StartTurn()    { m.turns++ }
func (m *mockCombatant) EndTurn()      {}

func (m *mockCombatant) TakeDamage(amount int) int {
	if amount <= 0 || m.hp <= 0 {
		return 0
	}
	m.hp -= amount
	if m.hp <= 0 {
		return m.xpOnKill
	}
	return m.xpPerHit
}

var _ Combatant = (*mockCombatant)(nil)

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected string
	}{
		{OutcomeNone, "none"},
		{OutcomeMiss, "miss"},
		{OutcomeHit, "hit"},
		{OutcomeKill, "kill"},
		{Outcome(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.expected {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.expected)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		hp          int
		defense     int
		damage      int
		roll        int
		wantOutcome Outcome
		wantHP      int
		wantXP      int
	}{
		{"kill", 8, 5, 8, 10, OutcomeKill, 0, 10},
		{"hit", 20, 5, 8, 10, OutcomeHit, 12, 1},
		{"miss below defense", 8, 5, 8, 3, OutcomeMiss, 8, 0},
		{"roll equal to defense misses", 8, 5, 8, 5, OutcomeMiss, 8, 0},
		{"overkill", 3, 0, 50, 1, OutcomeKill, -47, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := newMockCombatant("goblin", tt.hp, tt.defense)
			attack := &Attack{ID: "sword", Damage: tt.damage, Cost: 1, MinRange: 1, MaxRange: 1}

			result := Resolve(attack, tt.roll, target)

			if result.Outcome != tt.wantOutcome {
				t.Errorf("Resolve().Outcome = %v, want %v", result.Outcome, tt.wantOutcome)
			}
			if target.hp != tt.wantHP {
				t.Errorf("target hp = %d, want %d", target.hp, tt.wantHP)
			}
			if result.Experience != tt.wantXP {
				t.Errorf("Resolve().Experience = %d, want %d", result.Experience, tt.wantXP)
			}
			if result.Cost != 1 {
				t.Errorf("Resolve().Cost = %d, want 1", result.Cost)
			}
			if result.Roll != tt.roll || result.Defense != tt.defense {
				t.Errorf("Resolve() roll/defense = %d/%d, want %d/%d", result.Roll, result.Defense, tt.roll, tt.defense)
			}
		})
	}
}

func TestResolveNil(t *testing.T) {
	if got := Resolve(nil, 20, newMockCombatant("x", 1, 0)); got.Outcome != OutcomeNone {
		t.Errorf("Resolve(nil attack).Outcome = %v, want none", got.Outcome)
	}
	if got := Resolve(&Attack{Damage: 1}, 20, nil); got.Outcome != OutcomeNone {
		t.Errorf("Resolve(nil defender).Outcome = %v, want none", got.Outcome)
	}
}

func TestAttackInRange(t *testing.T) {
	bow := &Attack{MinRange: 2, MaxRange: 4}

	tests := []struct {
		distance int
		want     bool
	}{
		{1, false},
		{2, true},
		{3, true},
		{4, true},
		{5, false},
	}

	for _, tt := range tests {
		if got := bow.InRange(tt.distance); got != tt.want {
			t.Errorf("InRange(%d) = %v, want %v", tt.distance, got, tt.want)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 5, Width: 3, Height: 1}

	if !r.Contains(10, 5) || !r.Contains(12, 5) {
		t.Error("Contains() should include points inside the rectangle")
	}
	if r.Contains(13, 5) || r.Contains(10, 6) || r.Contains(9, 5) {
		t.Error("Contains() should exclude points outside the rectangle")
	}
	if (Rect{}).Contains(0, 0) {
		t.Error("empty Rect should contain nothing")
	}
}

func TestLevelTable(t *testing.T) {
	table := LevelTable{10, 25, 50}

	if th, ok := table.Threshold(1); !ok || th != 10 {
		t.Errorf("Threshold(1) = %d, %v; want 10, true", th, ok)
	}
	if _, ok := table.Threshold(4); ok {
		t.Error("Threshold(4) should be out of range")
	}
	if _, ok := table.Threshold(0); ok {
		t.Error("Threshold(0) should be out of range")
	}
	if !table.Reached(2, 25) {
		t.Error("Reached(2, 25) = false, want true")
	}
	if table.Reached(2, 24) {
		t.Error("Reached(2, 24) = true, want false")
	}
}

func TestResultMessage(t *testing.T) {
	r := Result{Outcome: OutcomeHit, Roll: 12, Defense: 4, Damage: 3}
	want := "Hero hits Goblin for 3 (rolled 12 vs 4)"
	if got := r.Message("Hero", "Goblin"); got != want {
		t.Errorf("Message() = %q, want %q", got, want)
	}
	if got := (Result{}).Message("Hero", "Goblin"); got != "" {
		t.Errorf("Message() for none = %q, want empty", got)
	}
}
