package gamedata

import (
	"sync"

	"github.com/samdwyer/dungeongen/internal/world"
)

// DefaultTheme is used whenever a requested theme has no table.
const DefaultTheme = "standard"

// FeatureWeight is the probability of one feature kind being chosen for a
// placement. Weights are listed in ascending CellType order; the feature
// generator samples them cumulatively in that order.
type FeatureWeight struct {
	Kind   world.CellType `json:"kind"`
	Weight float64        `json:"weight"`
}

// Theme groups the dressing for one dungeon flavor.
type Theme struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	RoomDescriptions []string        `json:"roomDescriptions"`
	Features         []FeatureWeight `json:"features"`
}

// Themes is the decoded form of themes.json.
type Themes struct {
	Themes       []Theme                `json:"themes"`
	ShapeClauses map[world.Shape]string `json:"shapeClauses"`
}

// LoadThemes decodes the embedded theme table.
func LoadThemes() (*Themes, error) {
	t, err := Load[Themes]("themes.json")
	if err != nil {
		return nil, err
	}
	return &t, nil
}

var defaultThemes = sync.OnceValue(func() *Themes {
	return MustLoad[*Themes]("themes.json")
})

// DefaultThemes returns the embedded theme table, decoded once.
func DefaultThemes() *Themes {
	return defaultThemes()
}

// Lookup returns the theme with the given id, falling back to the standard
// theme. It returns nil only if the table has neither.
func (t *Themes) Lookup(id string) *Theme {
	var fallback *Theme
	for i := range t.Themes {
		switch t.Themes[i].ID {
		case id:
			return &t.Themes[i]
		case DefaultTheme:
			fallback = &t.Themes[i]
		}
	}
	return fallback
}

// IDs lists theme ids in table order.
func (t *Themes) IDs() []string {
	ids := make([]string, len(t.Themes))
	for i, th := range t.Themes {
		ids[i] = th.ID
	}
	return ids
}

// ShapeClause is the sentence appended to a room description for rooms of the
// given shape. Rectangular rooms get none.
func (t *Themes) ShapeClause(shape world.Shape) string {
	return t.ShapeClauses[shape]
}
