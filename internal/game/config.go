package game

import "github.com/samdwyer/wildrealm/internal/config"

const defaultSightRadius = 8

// Config holds game configuration options.
type Config struct {
	// Seed for world generation. Callers pick a fresh one for zero.
	Seed uint64
	// SightRadius is the explorer's field-of-view radius in tiles. Values
	// below 1 mean defaultSightRadius.
	SightRadius int
	// MapGen tunes the generators. Nil means config.Default().
	MapGen *config.MapGen
}

func (c Config) mapGen() *config.MapGen {
	if c.MapGen == nil {
		return config.Default()
	}
	return c.MapGen
}
