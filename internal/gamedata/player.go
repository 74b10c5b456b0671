package gamedata

// PlayerDef defines the starting player loaded from JSON.
type PlayerDef struct {
	Name            string   `json:"name"`
	HP              int      `json:"hp"`
	Defense         int      `json:"defense"`
	Speed           int      `json:"speed"`           // Tiles the player may move per turn
	MaxAttackPoints int      `json:"maxAttackPoints"` // Attack points restored at turn start
	Attacks         []string `json:"attacks"`         // Attack IDs the player starts with
	XPToLevel       []int    `json:"xpToLevel"`       // Experience threshold per level, level 1 first
}

// LoadPlayer loads the player definition from the embedded player.json file.
func LoadPlayer() (PlayerDef, error) {
	return Load[PlayerDef]("player.json")
}

// MustLoadPlayer loads the player definition, panicking on error.
func MustLoadPlayer() PlayerDef {
	return MustLoad[PlayerDef]("player.json")
}
