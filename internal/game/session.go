package game

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeongrid/internal/combat"
	"github.com/samdwyer/dungeongrid/internal/dice"
	"github.com/samdwyer/dungeongrid/internal/entity"
	"github.com/samdwyer/dungeongrid/internal/gamedata"
	"github.com/samdwyer/dungeongrid/internal/telemetry"
	"github.com/samdwyer/dungeongrid/internal/world"
)

// Errors returned by Session actions. They leave the session unchanged.
var (
	ErrGameOver      = errors.New("game is over")
	ErrNotMovable    = errors.New("tile is not in movement range")
	ErrAttackPending = errors.New("an attack is selected")
	ErrInvalidTarget = errors.New("no attackable enemy on tile")
	ErrNoTarget      = errors.New("no target selected")
	ErrUnknownAttack = errors.New("unknown attack")
	ErrCannotAttack  = errors.New("attack unavailable for target")
	ErrNoAttack      = errors.New("no attack selected")
)

// Session is the screen-free game state: one dungeon, one player and the
// dice that drive attacks. Game renders it and feeds it input.
type Session struct {
	cfg       Config
	dungeon   *world.Dungeon
	player    *entity.Player
	roller    *dice.Roller
	die       dice.Die
	enemyDefs *gamedata.EnemyRegistry
	attacks   *gamedata.AttackRegistry
	playerDef gamedata.PlayerDef

	turn      int
	message   string
	levelNote string
}

// NewSession loads the embedded data, generates the dungeon for cfg.Seed and
// starts the first turn.
func NewSession(ctx context.Context, cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	dungeon, err := world.NewDungeon(cfg.Geometry(), opts...)
	if err != nil {
		return nil, fmt.Errorf("dungeon: %w", err)
	}

	enemyDefs, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return nil, fmt.Errorf("load enemies: %w", err)
	}
	attacks, err := gamedata.LoadAttackRegistry()
	if err != nil {
		return nil, fmt.Errorf("load attacks: %w", err)
	}
	playerDef, err := gamedata.LoadPlayer()
	if err != nil {
		return nil, fmt.Errorf("load player: %w", err)
	}

	s := &Session{
		cfg:       cfg,
		dungeon:   dungeon,
		die:       dice.D20,
		enemyDefs: enemyDefs,
		attacks:   attacks,
		playerDef: playerDef,
	}
	s.Reset(ctx, cfg.Seed)
	return s, nil
}

// Reset regenerates the dungeon from seed, places a fresh player on the
// entrance and starts the first turn.
func (s *Session) Reset(ctx context.Context, seed int64) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	s.cfg.Seed = seed
	s.roller = dice.NewRoller(seed)
	s.dungeon.Reset(ctx, seed, s.enemyDefs)

	entrance := s.dungeon.Entrance()
	col, row := entrance%s.dungeon.Width, entrance/s.dungeon.Width
	s.player = entity.NewPlayer(s.playerDef, s.attacks.Build(s.playerDef.Attacks), col, row)
	s.player.OnLevelThreshold = s.levelThreshold
	s.dungeon.SetOccupied(entrance, true)

	s.turn = 0
	s.message = fmt.Sprintf("Seed %d: %d enemies lurk in the dungeon.", seed, s.dungeon.AliveEnemyCount())

	span.SetAttributes(
		attribute.Int64("dungeon.seed", seed),
		attribute.Int("dungeon.rooms", len(s.dungeon.Rooms)),
		attribute.Int("dungeon.enemies", len(s.dungeon.Enemies())),
		attribute.Int("player.start_col", col),
		attribute.Int("player.start_row", row),
	)

	s.BeginTurn(ctx)
}

// BeginTurn restores the player's movement and attack points and computes
// the ranges for the new turn.
func (s *Session) BeginTurn(ctx context.Context) {
	s.turn++
	s.player.StartTurn()
	s.refreshRanges()
}

// EndTurn closes the current turn and clears the highlighted ranges.
func (s *Session) EndTurn(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.turn")
	defer span.End()

	span.SetAttributes(
		attribute.Int("turn", s.turn),
		attribute.Int("player.experience", s.player.Experience),
		attribute.Int("player.movement_left", s.player.Movement()),
		attribute.Int("player.attack_points", s.player.AttackPoints()),
		attribute.Int("enemies.alive", s.dungeon.AliveEnemyCount()),
	)

	s.player.EndTurn()
	s.dungeon.ClearMovableTiles()
	s.dungeon.ClearAttackableTiles()
}

// MoveTo walks the player to a tile in the movement range, spending the
// steps taken. Any target is dropped.
func (s *Session) MoveTo(col, row int) error {
	if s.Phase() != PhasePlaying {
		return ErrGameOver
	}
	if s.player.State() == entity.StateAttacking {
		return ErrAttackPending
	}
	to, ok := s.dungeon.IndexOf(col, row)
	if !ok {
		return ErrNotMovable
	}
	left, ok := s.dungeon.IsMovableTile(to)
	if !ok {
		return ErrNotMovable
	}

	from, _ := s.dungeon.IndexOf(s.player.Position())
	s.dungeon.MoveOccupant(from, to)
	s.player.ClearTarget()
	s.player.MoveTo(col, row, left)
	s.refreshRanges()
	return nil
}

// Target selects the enemy on a tile in the attack range.
func (s *Session) Target(col, row int) error {
	if s.Phase() != PhasePlaying {
		return ErrGameOver
	}
	if s.player.State() == entity.StateAttacking {
		return ErrAttackPending
	}
	index, ok := s.dungeon.IndexOf(col, row)
	if !ok || !s.dungeon.IsAttackableTile(index) {
		return ErrInvalidTarget
	}
	enemy, ok := s.dungeon.EnemyAt(index)
	if !ok || !s.player.SetTarget(enemy) {
		return ErrInvalidTarget
	}
	s.message = fmt.Sprintf("Targeting %s (%d HP).", enemy.Name(), enemy.HP)
	return nil
}

// SelectAttack chooses one of the player's attacks by ID for the current target.
func (s *Session) SelectAttack(id string) error {
	if s.player.Target() == nil {
		return ErrNoTarget
	}
	for _, attack := range s.player.Attacks() {
		if attack.ID != id {
			continue
		}
		if !s.player.SelectAttack(attack) {
			return ErrCannotAttack
		}
		return nil
	}
	return ErrUnknownAttack
}

// ChooseAttack selects the attack whose on-screen button contains (x, y).
func (s *Session) ChooseAttack(x, y int) bool {
	return s.player.ChooseAttack(x, y)
}

// CancelAttack steps back one level: from a chosen attack to its target,
// or from a target to nothing.
func (s *Session) CancelAttack() {
	switch s.player.State() {
	case entity.StateAttacking:
		s.player.StopAttack()
	case entity.StateTargeting:
		s.player.ClearTarget()
	}
}

// Attack rolls the die for the chosen attack and resolves it. A killed enemy
// is removed from the dungeon.
func (s *Session) Attack(ctx context.Context) (combat.Result, error) {
	if s.player.State() != entity.StateAttacking {
		return combat.Result{Outcome: combat.OutcomeNone}, ErrNoAttack
	}

	target := s.player.Target()
	index, _ := s.dungeon.IndexOf(target.Position())
	roll := s.die.Roll(s.roller)

	s.levelNote = ""
	result := s.player.FinishAttack(ctx, roll)
	if result.Outcome == combat.OutcomeKill {
		s.dungeon.RemoveEnemy(index)
	}

	s.message = result.Message(s.player.Name(), target.Name()) + s.levelNote
	if s.Phase() == PhaseVictory {
		s.message += " The dungeon is clear!"
	}
	s.refreshRanges()
	return result, nil
}

// Report shows a rejected action in the message line. A nil error leaves
// the message alone.
func (s *Session) Report(err error) {
	if err == nil {
		return
	}
	s.message = fmt.Sprintf("Can't do that: %v.", err)
}

// Phase reports whether play continues.
func (s *Session) Phase() Phase {
	switch {
	case !s.player.IsAlive():
		return PhaseDefeat
	case s.dungeon.AliveEnemyCount() == 0:
		return PhaseVictory
	default:
		return PhasePlaying
	}
}

// Dungeon returns the current dungeon.
func (s *Session) Dungeon() *world.Dungeon { return s.dungeon }

// Player returns the current player.
func (s *Session) Player() *entity.Player { return s.player }

// Turn returns the current turn number, starting at 1.
func (s *Session) Turn() int { return s.turn }

// Seed returns the seed the current dungeon was generated from.
func (s *Session) Seed() int64 { return s.cfg.Seed }

// Message returns the latest status line.
func (s *Session) Message() string { return s.message }

// refreshRanges recomputes movement and attack ranges from the player's tile.
func (s *Session) refreshRanges() {
	origin := s.dungeon.PointAt(s.player.Position())
	s.dungeon.ComputeMovable(origin, s.player.Movement())
	s.dungeon.ComputeAttackable(origin, s.player.MinRange(), s.player.MaxRange())
}

// levelThreshold notes that the player has earned enough experience to
// leave the current level.
func (s *Session) levelThreshold(p *entity.Player) {
	threshold, _ := combat.LevelTable(s.playerDef.XPToLevel).Threshold(p.Level)
	s.levelNote = fmt.Sprintf(" %s has %d XP, enough to leave level %d (%d needed).",
		p.Name(), p.Experience, p.Level, threshold)
}
