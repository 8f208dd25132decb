// Package gamedata provides the embedded word list and tile palette and the
// helpers for loading them.
package gamedata

import "embed"

// dataFS embeds the JSON data files at build time.
//
//go:embed words.json palette.json
var dataFS embed.FS
