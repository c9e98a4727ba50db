package room

// Config holds the table rules shared by every room the registry creates.
type Config struct {
	MaxPlayers int
	MinPlayers int
	Ante       int
	BaseStake  int
}

// DefaultConfig returns the standard table rules: six seats, a 10-chip ante
// and a 1000-chip starting stack.
func DefaultConfig() Config {
	return Config{
		MaxPlayers: 6,
		MinPlayers: 2,
		Ante:       10,
		BaseStake:  1000,
	}
}

// withDefaults fills any zero field from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.MaxPlayers == 0 {
		c.MaxPlayers = def.MaxPlayers
	}
	if c.MinPlayers == 0 {
		c.MinPlayers = def.MinPlayers
	}
	if c.Ante == 0 {
		c.Ante = def.Ante
	}
	if c.BaseStake == 0 {
		c.BaseStake = def.BaseStake
	}
	return c
}
