package viewer

// Mode is what the viewer overlays on the map.
type Mode int

const (
	// ModeMap shows the map with the status line only.
	ModeMap Mode = iota
	// ModeLegend adds a key of the cell kinds on screen.
	ModeLegend
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeMap:
		return "map"
	case ModeLegend:
		return "legend"
	default:
		return "unknown"
	}
}
