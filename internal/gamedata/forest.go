package gamedata

import "errors"

// Span is an inclusive integer range.
type Span struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ForestDef tunes the exploration events.
type ForestDef struct {
	Treasure Span     `json:"treasure"` // Gold found in a chest
	Spring   Span     `json:"spring"`   // HP restored by a healing spring
	Flavor   []string `json:"flavor"`   // Messages for an uneventful walk
}

// LoadForest loads the forest tuning from the embedded forest.json file.
func LoadForest() (*ForestDef, error) {
	def, err := Load[ForestDef]("forest.json")
	if err != nil {
		return nil, err
	}
	if len(def.Flavor) == 0 {
		return nil, errors.New("no flavor messages in forest.json")
	}
	return &def, nil
}

// MustLoadForest loads the forest tuning, panicking on error.
func MustLoadForest() *ForestDef {
	def, err := LoadForest()
	if err != nil {
		panic(err)
	}
	return def
}
