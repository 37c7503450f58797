// Package gamedata holds the embedded lookup tables used to dress a generated
// map: per-theme room descriptions and feature weights, feature flavor text,
// and the glyph and color of every cell type.
package gamedata

import "embed"

// dataFS embeds all JSON tables from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
