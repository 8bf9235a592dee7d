package main

import (
	"strings"

	"github.com/lamyinia/riichi-engine/internal/tile"
)

func mpszJoin(tiles []tile.Tile) string {
	parts := make([]string, len(tiles))
	for i, t := range tiles {
		parts[i] = t.MPSZ()
	}
	return strings.Join(parts, " ")
}
