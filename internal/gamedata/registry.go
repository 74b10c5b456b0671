package gamedata

import (
	"errors"

	"github.com/samdwyer/dungeongrid/internal/combat"
)

// Intn is the random source used for weighted selection.
// Both *rand.Rand and *dice.Roller satisfy it.
type Intn interface {
	Intn(n int) int
}

// EnemyRegistry holds loaded enemy definitions and provides spawning utilities.
type EnemyRegistry struct {
	enemies     []EnemyDef
	totalWeight int
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
func NewEnemyRegistry(enemies []EnemyDef) *EnemyRegistry {
	totalWeight := 0
	for _, e := range enemies {
		totalWeight += e.SpawnWeight
	}
	return &EnemyRegistry{
		enemies:     enemies,
		totalWeight: totalWeight,
	}
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	return NewEnemyRegistry(enemies), nil
}

// MustLoadEnemyRegistry loads a registry, panicking on error.
func MustLoadEnemyRegistry() *EnemyRegistry {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a random enemy definition using weighted probability.
// Enemies with higher spawnWeight are more likely to be selected.
func (r *EnemyRegistry) SpawnRandom(rng Intn) *EnemyDef {
	if r.totalWeight <= 0 || len(r.enemies) == 0 {
		return nil
	}

	// Roll somewhere in [0, totalWeight)
	roll := rng.Intn(r.totalWeight)

	// Walk the running sum until the roll falls inside an enemy's share
	cumulative := 0
	for i := range r.enemies {
		cumulative += r.enemies[i].SpawnWeight
		if roll < cumulative {
			return &r.enemies[i]
		}
	}

	// Unreachable while totalWeight matches the summed weights
	return &r.enemies[0]
}

// GetByID returns the enemy definition with the given ID, or nil if not found.
func (r *EnemyRegistry) GetByID(id string) *EnemyDef {
	for i := range r.enemies {
		if r.enemies[i].ID == id {
			return &r.enemies[i]
		}
	}
	return nil
}

// Count returns the number of enemy types in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.enemies)
}

// AttackRegistry holds loaded attack definitions keyed by ID.
type AttackRegistry struct {
	attacks map[string]*AttackDef
	all     []AttackDef
}

// NewAttackRegistry creates a registry from loaded attack definitions.
func NewAttackRegistry(attacks []AttackDef) *AttackRegistry {
	registry := &AttackRegistry{
		attacks: make(map[string]*AttackDef),
		all:     attacks,
	}
	for i := range attacks {
		registry.attacks[attacks[i].ID] = &attacks[i]
	}
	return registry
}

// LoadAttackRegistry loads and creates a registry from the embedded attacks.json.
func LoadAttackRegistry() (*AttackRegistry, error) {
	attacks, err := LoadAttacks()
	if err != nil {
		return nil, err
	}
	if len(attacks) == 0 {
		return nil, errors.New("no attacks loaded from attacks.json")
	}
	return NewAttackRegistry(attacks), nil
}

// MustLoadAttackRegistry loads a registry, panicking on error.
func MustLoadAttackRegistry() *AttackRegistry {
	registry, err := LoadAttackRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the attack definition with the given ID, or nil if not found.
func (r *AttackRegistry) GetByID(id string) *AttackDef {
	return r.attacks[id]
}

// Build returns new attacks for a list of IDs.
// Missing IDs are silently skipped.
func (r *AttackRegistry) Build(ids []string) []*combat.Attack {
	result := make([]*combat.Attack, 0, len(ids))
	for _, id := range ids {
		if def := r.attacks[id]; def != nil {
			result = append(result, def.NewAttack())
		}
	}
	return result
}

// Count returns the number of attacks in the registry.
func (r *AttackRegistry) Count() int {
	return len(r.all)
}
