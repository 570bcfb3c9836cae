package arena

import (
	"fmt"
	"io"
	"sort"

	"github.com/automoto/doomerang-ai/components"
	"github.com/automoto/doomerang-ai/shared/enemyai"
	"github.com/automoto/doomerang-ai/tags"
)

// Summary is the outcome of a run.
type Summary struct {
	Level            string
	Difficulty       string
	Seconds          float64
	Ticks            int
	Spawned          map[enemyai.Kind]int
	Kills            map[enemyai.Kind]int
	ProjectilesFired int
	ProjectileErrors int
	PlayerHits       int
	PlayerDamage     int
	PlayerDeaths     int
	Sounds           map[string]int
	Enemies          []EnemyStatus
}

func (a *Arena) Summary() Summary {
	s := Summary{
		Level:      a.level.Name,
		Difficulty: a.difficulty.String(),
		Seconds:    a.Now(),
		Spawned:    map[enemyai.Kind]int{},
		Kills:      map[enemyai.Kind]int{},
		Sounds:     map[string]int{},
		Enemies:    a.Status(),
	}
	if m := a.Match(); m != nil {
		s.Ticks = m.Ticks
		for k, n := range m.Spawned {
			s.Spawned[k] = n
		}
		for k, n := range m.Kills {
			s.Kills[k] = n
		}
		s.ProjectilesFired = m.ProjectilesFired
		s.ProjectileErrors = m.ProjectileErrors
		s.PlayerHits = m.PlayerHits
	}
	if entry, ok := tags.Player.First(a.ecs.World); ok {
		player := components.Player.Get(entry)
		s.PlayerDamage = player.DamageTaken
		s.PlayerDeaths = player.Deaths
	}
	if entry, ok := components.Audio.First(a.ecs.World); ok {
		for event, n := range components.Audio.Get(entry).Played {
			s.Sounds[event] = n
		}
	}
	return s
}

// TotalKills sums kills across kinds.
func (s Summary) TotalKills() int {
	total := 0
	for _, n := range s.Kills {
		total += n
	}
	return total
}

// WriteText prints a human readable report.
func (s Summary) WriteText(w io.Writer) error {
	pr := func(format string, args ...any) error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	}
	if err := pr("arena %q (%s): %.2fs, %d ticks\n", s.Level, s.Difficulty, s.Seconds, s.Ticks); err != nil {
		return err
	}
	for _, k := range enemyai.Kinds {
		if s.Spawned[k] == 0 {
			continue
		}
		if err := pr("  %-7s spawned %d, killed %d\n", k, s.Spawned[k], s.Kills[k]); err != nil {
			return err
		}
	}
	if err := pr("  projectiles fired %d (failed %d)\n", s.ProjectilesFired, s.ProjectileErrors); err != nil {
		return err
	}
	if err := pr("  player hit %d times, %d damage, %d deaths\n", s.PlayerHits, s.PlayerDamage, s.PlayerDeaths); err != nil {
		return err
	}
	for _, e := range s.Enemies {
		status := "alive"
		if e.Dead {
			status = "dead"
		}
		if err := pr("  %-12s %-6s %4d/%-4d (%.0f, %.0f) %s %s\n",
			e.Name, e.Kind, e.Health, e.MaxHealth, e.Position.X, e.Position.Y, status, e.State); err != nil {
			return err
		}
	}

	events := make([]string, 0, len(s.Sounds))
	for event := range s.Sounds {
		events = append(events, event)
	}
	sort.Strings(events)
	for _, event := range events {
		if err := pr("  sfx %-18s x%d\n", event, s.Sounds[event]); err != nil {
			return err
		}
	}
	return nil
}
