package tiles

import "embed"

// tilesetFS embeds the tileset definition at build time.
//
//go:embed tileset.json
var tilesetFS embed.FS
