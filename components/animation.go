package components

import "github.com/yohamta/donburi"

// AnimationData records the triggers an enemy fired. The arena has no
// sprites; the viewer prints Current next to the collider.
type AnimationData struct {
	Current string
	Since   float64
	Counts  map[string]int
}

func (a *AnimationData) SetTrigger(name string, now float64) {
	if a.Counts == nil {
		a.Counts = make(map[string]int)
	}
	a.Counts[name]++
	a.Current = name
	a.Since = now
}

var Animation = donburi.NewComponentType[AnimationData]()
