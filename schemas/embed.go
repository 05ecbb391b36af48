// Package schemas embeds the JSON Schemas of the documents the CLI reads and writes.
package schemas

import "embed"

// Files holds every *.schema.json in this directory.
//
//go:embed *.schema.json
var Files embed.FS
