// Package gamedata provides the floor's data sources: the tile roster, image
// sequences per category and the colour theme.
package gamedata

import "embed"

// dataFS embeds the default roster and theme at build time.
//
//go:embed *.json
var dataFS embed.FS
