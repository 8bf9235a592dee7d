package score_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lamyinia/riichi-engine/internal/score"
)

func TestBasePointsMangan(t *testing.T) {
	assert.Equal(t, 2000, score.BasePoints(5, 30, score.Ruleset{}))
	assert.Equal(t, 2000, score.BasePoints(4, 40, score.Ruleset{})) // 40fu4han = 2560 capped to mangan
}

func TestBasePointsHanemanBaimanYakuman(t *testing.T) {
	assert.Equal(t, 3000, score.BasePoints(6, 30, score.Ruleset{}))
	assert.Equal(t, 4000, score.BasePoints(8, 30, score.Ruleset{}))
	assert.Equal(t, 6000, score.BasePoints(11, 30, score.Ruleset{}))
	assert.Equal(t, 8000, score.BasePoints(13, 30, score.Ruleset{}))
}

func TestKiriageMangan(t *testing.T) {
	base := score.BasePoints(4, 30, score.Ruleset{KiriageMangan: true}) // 30*2^6 = 1920
	assert.Equal(t, 2000, base)
	assert.Equal(t, 1920, score.BasePoints(4, 30, score.Ruleset{}))
}

func TestRonNonDealer30fu3han(t *testing.T) {
	base := score.BasePoints(3, 30, score.Ruleset{})
	p := score.Ron(base, false, 0)
	assert.Equal(t, 3900, p.Total)
}

func TestRonDealer30fu4han(t *testing.T) {
	base := score.BasePoints(4, 30, score.Ruleset{})
	p := score.Ron(base, true, 0)
	assert.Equal(t, 11600, p.Total)
}

func TestTsumoNonDealer30fu4han(t *testing.T) {
	base := score.BasePoints(4, 30, score.Ruleset{})
	p := score.Tsumo(base, false, 0)
	assert.Equal(t, 2000, p.NonDealerPays)
	assert.Equal(t, 3900, p.DealerPays)
	assert.Equal(t, 7900, p.Total)
}

func TestHonbaAddsFlatAmount(t *testing.T) {
	base := score.BasePoints(3, 30, score.Ruleset{})
	p := score.Ron(base, false, 2)
	assert.Equal(t, 3900+600, p.Total)
}
