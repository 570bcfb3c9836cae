package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

var (
	ErrNoLevels      = errors.New("leveldata: no .tmx files found")
	ErrNoPlayerSpawn = errors.New("leveldata: no PlayerSpawn object")
)

// Tile layers whose tiles are solid.
var solidLayers = map[string]bool{"solids": true, "wg-tiles": true}

// LoadArena parses a TMX file. It takes an fs.FS so callers can pass an
// embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &ArenaData{
		Name:        strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		PatrolPaths: make(map[string][]Point),
		MapWidth:    levelMap.Width * levelMap.TileWidth,
		MapHeight:   levelMap.Height * levelMap.TileHeight,
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if !solidLayers[layer.Name] {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			runStart := -1
			for x := 0; x <= levelMap.Width; x++ {
				solid := x < levelMap.Width && !layer.Tiles[y*levelMap.Width+x].IsNil()
				switch {
				case solid && runStart < 0:
					runStart = x
				case !solid && runStart >= 0:
					data.SolidRects = append(data.SolidRects, SolidRect{
						X: float64(runStart) * tileW,
						Y: float64(y) * tileH,
						W: float64(x-runStart) * tileW,
						H: tileH,
					})
					runStart = -1
				}
			}
		}
	}

	foundPlayer := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				data.PlayerSpawn = SpawnPoint{X: o.X, Y: o.Y}
				foundPlayer = true
			}
		case "EnemySpawn":
			for _, o := range og.Objects {
				kind := o.Properties.GetString("kind")
				if kind == "" {
					kind = o.Properties.GetString("enemyType")
				}
				data.EnemySpawns = append(data.EnemySpawns, EnemySpawn{
					X:    o.X,
					Y:    o.Y,
					Kind: kind,
					Name: o.Name,
				})
			}
		case "PatrolPaths":
			for _, o := range og.Objects {
				if len(o.PolyLines) == 0 {
					continue
				}
				polyline := o.PolyLines[0]
				if polyline.Points == nil || len(*polyline.Points) < 2 {
					continue
				}
				points := make([]Point, len(*polyline.Points))
				for i, p := range *polyline.Points {
					points[i] = Point{X: o.X + p.X, Y: o.Y + p.Y}
				}
				data.PatrolPaths[o.Name] = points
			}
		case "DeadZones":
			for _, o := range og.Objects {
				data.DeadZones = append(data.DeadZones, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		}
	}
	if !foundPlayer {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoPlayerSpawn)
	}

	// Left to right for a stable spawn order.
	sort.SliceStable(data.EnemySpawns, func(i, j int) bool {
		return data.EnemySpawns[i].X < data.EnemySpawns[j].X
	})

	return data, nil
}

// LoadAllArenas loads every .tmx file in dir and returns them keyed by stem
// name plus the sorted names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*ArenaData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", dir, ErrNoLevels)
	}

	arenas := make(map[string]*ArenaData, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		data, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
