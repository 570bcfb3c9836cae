package config

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownEnemyKind = errors.New("config: unknown enemy kind")

// StatsFor returns the live stats block of an enemy kind.
func (c *AIConfig) StatsFor(kind string) (*EnemyStats, error) {
	switch strings.ToLower(kind) {
	case "archer":
		return &c.Archer.Stats, nil
	case "mage":
		return &c.Mage.Stats, nil
	case "grunt":
		return &c.Grunt.Stats, nil
	case "boss":
		return &c.Boss.Stats, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEnemyKind, kind)
}
