// Package gamedata provides the embedded game definitions (enemy templates,
// shop catalog, forest tuning) and utilities for loading them.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
