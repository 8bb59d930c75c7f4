// Package script provides the embedded narrative data and utilities for loading it.
package script

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
