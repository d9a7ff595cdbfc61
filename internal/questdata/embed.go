// Package questdata provides the embedded fragment catalog and
// utilities for loading it.
package questdata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
