package systems

import (
	"encoding/json"

	"github.com/automoto/doomerang-ai/logger"
	"github.com/quasilyte/gdata"
)

// Profile is what the arena CLI remembers between runs.
type Profile struct {
	Level      string  `json:"level"`
	Difficulty string  `json:"difficulty"`
	Seconds    float64 `json:"seconds"`
	LastKills  int     `json:"lastKills"`
	BestKills  int     `json:"bestKills"`
	Runs       int     `json:"runs"`
}

// Record folds the result of a finished run into the profile.
func (p *Profile) Record(kills int) {
	p.Runs++
	p.LastKills = kills
	if kills > p.BestKills {
		p.BestKills = kills
	}
}

const profileKey = "profile"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for profile storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "doomerang-ai",
	})
	if err != nil {
		logger.Log.WithError(err).Warn("could not initialize persistence")
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadProfile loads the profile from disk. A nil profile with a nil error
// means nothing was saved yet or persistence is unavailable.
func LoadProfile() (*Profile, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(profileKey)
	if err != nil {
		logger.Log.WithError(err).Warn("could not load profile")
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}
	return decodeProfile(data)
}

// SaveProfile saves the profile to disk
func SaveProfile(p *Profile) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		logger.Log.WithError(err).Warn("could not serialize profile")
		return err
	}

	if err := gdataManager.SaveItem(profileKey, data); err != nil {
		logger.Log.WithError(err).Warn("could not save profile")
		return err
	}
	return nil
}

func decodeProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		logger.Log.WithError(err).Warn("could not parse saved profile")
		return nil, err
	}
	return &p, nil
}
