package gamedata

import (
	"sync"

	"github.com/samdwyer/dungeongen/internal/world"
)

// FlavorText is the decoded form of features.json: a few interchangeable
// descriptions per feature kind.
type FlavorText struct {
	Fallback     string                      `json:"fallback"`
	Descriptions map[world.CellType][]string `json:"descriptions"`
}

var defaultFlavor = sync.OnceValue(func() *FlavorText {
	return MustLoad[*FlavorText]("features.json")
})

// DefaultFlavorText returns the embedded flavor table, decoded once.
func DefaultFlavorText() *FlavorText {
	return defaultFlavor()
}

// Options returns the descriptions for kind, or nil when it has none.
func (f *FlavorText) Options(kind world.CellType) []string {
	return f.Descriptions[kind]
}
