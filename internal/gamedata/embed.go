// Package gamedata loads battle scenarios: grid size, the player roster and
// enemy placements.
package gamedata

import "embed"

// dataFS embeds the default scenarios at build time.
//
//go:embed *.json
var dataFS embed.FS
