package mahjong

import (
	"crypto/sha256"
	"encoding/hex"
	"math/rand"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/lamyinia/riichi-engine/internal/tile"
)

// Wind is a seat/round wind, distinct from tile.TypeEast..TypeNorth (which
// index the 34-type tile space) so seat bookkeeping reads naturally.
type Wind int

const (
	WindEast Wind = iota
	WindSouth
	WindWest
	WindNorth
)

func (w Wind) String() string {
	switch w {
	case WindEast:
		return "east"
	case WindSouth:
		return "south"
	case WindWest:
		return "west"
	case WindNorth:
		return "north"
	default:
		return "unknown"
	}
}

// Next returns the following wind in rotation order.
func (w Wind) Next() Wind { return (w + 1) % 4 }

// Type returns the tile type (TypeEast..TypeNorth) this wind corresponds to.
func (w Wind) Type() int { return tile.TypeEast + int(w) }

// Wang is the 14-tile dead wall: 4 kan replacement tiles and 5+5 dora/ura
// dora indicators, revealed incrementally as the round progresses.
type Wang struct {
	KanTiles          [4]tile.Tile
	kanIndex          int
	DoraIndicators    [5]tile.Tile
	doraIndex         int
	UraDoraIndicators [5]tile.Tile
	uraDoraIndex      int
}

// DeckManager owns the shuffled wall and dead wall for one round. The RNG
// is seeded explicitly by the caller (NewDeckManager's seed parameter)
// rather than from wall-clock time, so replays and tests are deterministic.
type DeckManager struct {
	wall      []tile.Tile
	wallIndex int
	wang      Wang
	remain34  [tile.NumTypes]int
	rng       *rand.Rand

	wallDigest string
	salt       string
}

// NewDeckManager builds a deck manager whose shuffle is fully determined by
// seed.
func NewDeckManager(seed int64) *DeckManager {
	return &DeckManager{
		wall: make([]tile.Tile, 0, tile.Count),
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// InitRound reshuffles a fresh 136-tile wall and re-deals the dead wall.
func (dm *DeckManager) InitRound() {
	deck := make([]tile.Tile, tile.Count)
	for i := range deck {
		deck[i] = tile.Tile(i)
	}
	dm.rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	dm.salt = randomPrintableSalt()
	dm.wallDigest = commitWall(deck, dm.salt)

	dm.wall = dm.wall[:0]
	dm.wallIndex = 0
	dm.wang = Wang{}
	for i := range dm.remain34 {
		dm.remain34[i] = 4
	}

	deadStart := len(deck) - 14
	dm.wall = append(dm.wall, deck[:deadStart]...)
	dead := deck[deadStart:]
	copy(dm.wang.KanTiles[:], dead[0:4])
	copy(dm.wang.DoraIndicators[:], dead[4:9])
	copy(dm.wang.UraDoraIndicators[:], dead[9:14])
}

// Draw takes the next live-wall tile. ok is false once the live wall (all
// but the 14 dead-wall tiles) is exhausted.
func (dm *DeckManager) Draw() (t tile.Tile, ok bool) {
	if dm.wallIndex >= len(dm.wall) {
		return 0, false
	}
	t = dm.wall[dm.wallIndex]
	dm.wallIndex++
	dm.remain34[t.Type()]--
	return t, true
}

// Haitei reports whether the tile just drawn via Draw was the last live
// tile (i.e. the wall is now exhausted).
func (dm *DeckManager) Haitei() bool { return dm.wallIndex >= len(dm.wall) }

// RemainingLive returns how many tiles are left to draw from the live wall.
func (dm *DeckManager) RemainingLive() int { return len(dm.wall) - dm.wallIndex }

// DrawKanTile draws the next dead-wall replacement tile (a kan draw).
func (dm *DeckManager) DrawKanTile() (t tile.Tile, ok bool) {
	if dm.wang.kanIndex >= 4 {
		return 0, false
	}
	t = dm.wang.KanTiles[dm.wang.kanIndex]
	dm.wang.kanIndex++
	dm.remain34[t.Type()]--
	return t, true
}

// CanKan reports whether a kan replacement tile remains.
func (dm *DeckManager) CanKan() bool { return dm.wang.kanIndex < 4 }

// RevealDoraIndicator flips the next dora indicator.
func (dm *DeckManager) RevealDoraIndicator() (t tile.Tile, ok bool) {
	if dm.wang.doraIndex >= 5 {
		return 0, false
	}
	t = dm.wang.DoraIndicators[dm.wang.doraIndex]
	dm.wang.doraIndex++
	return t, true
}

// RevealUraDoraIndicators flips every remaining ura dora indicator at once
// (done on a riichi win).
func (dm *DeckManager) RevealUraDoraIndicators() []tile.Tile {
	for dm.wang.uraDoraIndex < dm.wang.doraIndex {
		dm.wang.uraDoraIndex++
	}
	return dm.wang.UraDoraIndicators[:dm.wang.uraDoraIndex]
}

// DoraIndicators returns the indicators revealed so far.
func (dm *DeckManager) DoraIndicators() []tile.Tile {
	return dm.wang.DoraIndicators[:dm.wang.doraIndex]
}

// WallDigest is the SHA-256 commitment over this round's full 136-tile
// shuffle order, published at InitRound before any tile is dealt (spec.md
// §6's secure wall commitment).
func (dm *DeckManager) WallDigest() string { return dm.wallDigest }

// Salt is the commitment's salt, meant to be withheld until round end so
// a third party can later recompute WallDigest and confirm the wall was
// not altered mid-round.
func (dm *DeckManager) Salt() string { return dm.salt }

// randomPrintableSalt draws 16 printable ASCII characters (0x21-0x7e) from
// uuid's CSPRNG-backed random source.
func randomPrintableSalt() string {
	raw := uuid.New()
	out := make([]byte, len(raw))
	for i, b := range raw {
		out[i] = byte(int(b)%94) + 33
	}
	return string(out)
}

// commitWall hashes the comma-joined tile-id wall order together with salt,
// matching the original env's `",".join(map(str, wall))` csv encoding.
func commitWall(deck []tile.Tile, salt string) string {
	parts := make([]string, len(deck))
	for i, t := range deck {
		parts[i] = strconv.Itoa(int(t))
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, ",") + salt))
	return hex.EncodeToString(sum[:])
}

// Situation is the per-round table state shared by every seat.
type Situation struct {
	DealerSeat   int
	Honba        int
	RoundWind    Wind
	RoundNumber  int
	RiichiSticks int
}

// RoundEndKind classifies how a round concluded.
type RoundEndKind string

const (
	RoundEndTsumo          RoundEndKind = "tsumo"
	RoundEndRon            RoundEndKind = "ron"
	RoundEndDrawExhaustive RoundEndKind = "draw_exhaustive"
	RoundEndDrawAbortive   RoundEndKind = "draw_abortive"
)

// HuClaim records one winning claim resolved at round end; the winning
// tile is always the tile that was drawn or discarded to complete the hand.
type HuClaim struct {
	WinnerSeat int
	HasLoser   bool
	LoserSeat  int
	WinTile    tile.Tile
}
