package gamedata

import "github.com/samdwyer/dungeongrid/internal/combat"

// AttackDef defines an attack loaded from JSON.
//
// Ranges are inclusive Manhattan distances measured in tiles. A maxRange of 0
// means the attack has no area and never produces attackable tiles.
type AttackDef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	MinRange int    `json:"minRange"`
	MaxRange int    `json:"maxRange"`
	Damage   int    `json:"damage"`
	Cost     int    `json:"cost"` // Attack points consumed
}

// NewAttack returns a fresh combat.Attack built from the definition.
func (a *AttackDef) NewAttack() *combat.Attack {
	symbol := '?'
	if len(a.Symbol) > 0 {
		symbol = rune(a.Symbol[0])
	}
	return &combat.Attack{
		ID:       a.ID,
		Name:     a.Name,
		Symbol:   symbol,
		MinRange: a.MinRange,
		MaxRange: a.MaxRange,
		Damage:   a.Damage,
		Cost:     a.Cost,
	}
}

// AttacksFile represents the structure of attacks.json.
type AttacksFile struct {
	Attacks []AttackDef `json:"attacks"`
}

// LoadAttacks loads attack definitions from the embedded attacks.json file.
func LoadAttacks() ([]AttackDef, error) {
	file, err := Load[AttacksFile]("attacks.json")
	if err != nil {
		return nil, err
	}
	return file.Attacks, nil
}
