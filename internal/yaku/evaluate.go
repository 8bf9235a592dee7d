package yaku

import "github.com/lamyinia/riichi-engine/internal/hand"

// Hit is one satisfied yaku and the han it contributes.
type Hit struct {
	ID  ID
	Han int
}

// Result is the outcome of evaluating one candidate decomposition.
type Result struct {
	Hits     []Hit
	Han      int
	Fu       int
	Yakuman  bool
	YakumanUnits int
}

var ordinaryRegistry = []check{
	{MenzenTsumo, checkMenzenTsumo},
	{DoubleRiichi, checkDoubleRiichi},
	{Riichi, checkRiichi},
	{Ippatsu, checkIppatsu},
	{Pinfu, checkPinfu},
	{Iipeiko, checkIipeiko},
	{Ryanpeiko, checkRyanpeiko},
	{YakuhaiRoundEast, checkYakuhaiRound(27)},
	{YakuhaiRoundSouth, checkYakuhaiRound(28)},
	{YakuhaiRoundWest, checkYakuhaiRound(29)},
	{YakuhaiRoundNorth, checkYakuhaiRound(30)},
	{YakuhaiSeatEast, checkYakuhaiSeat(27)},
	{YakuhaiSeatSouth, checkYakuhaiSeat(28)},
	{YakuhaiSeatWest, checkYakuhaiSeat(29)},
	{YakuhaiSeatNorth, checkYakuhaiSeat(30)},
	{YakuhaiHaku, checkYakuhaiDragon(31)},
	{YakuhaiHatsu, checkYakuhaiDragon(32)},
	{YakuhaiChun, checkYakuhaiDragon(33)},
	{Tanyao, checkTanyao},
	{SanshokuDoujun, checkSanshokuDoujun},
	{Ittsu, checkIttsu},
	{Chanta, checkChanta},
	{Junchan, checkJunchan},
	{Honroutou, checkHonroutou},
	{Honitsu, checkHonitsu},
	{Chinitsu, checkChinitsu},
	{Toitoi, checkToitoi},
	{Sanankou, checkSanankou},
	{Sankantsu, checkSankantsu},
	{Shousangen, checkShousangen},
	{Haitei, checkHaitei},
	{Houtei, checkHoutei},
	{Rinshan, checkRinshan},
	{Chankan, checkChankan},
}

// Evaluate scores one candidate decomposition. Ryanpeiko and Iipeiko are
// mutually exclusive by construction (checkIipeiko only fires on exactly
// one duplicated run); toitoi and chiitoitsu never coexist since they come
// from different Shape values.
func Evaluate(c Context) Result {
	if ym, units, hits := evaluateYakuman(c); units > 0 {
		_ = ym
		return Result{Hits: hits, Yakuman: true, YakumanUnits: units, Fu: 0}
	}

	var hits []Hit
	han := 0
	if c.Decomp.Shape == hand.Chiitoitsu {
		hits = append(hits, Hit{Chiitoitsu, 2})
		han += 2
	}
	for _, e := range ordinaryRegistry {
		if h, ok := e.fn(c); ok {
			hits = append(hits, Hit{e.id, h})
			han += h
		}
	}
	if len(hits) == 0 {
		return Result{}
	}
	han += doraHan(c, &hits)
	return Result{Hits: hits, Han: han, Fu: Fu(c)}
}

func doraHan(c Context, hits *[]Hit) int {
	n := 0
	if d := c.doraHits(c.DoraIndicators); d > 0 {
		*hits = append(*hits, Hit{Dora, d})
		n += d
	}
	if c.RedFiveCount > 0 {
		*hits = append(*hits, Hit{AkaDora, c.RedFiveCount})
		n += c.RedFiveCount
	}
	if (c.Situation.Riichi || c.Situation.DoubleRiichi) && len(c.UraIndicators) > 0 {
		if u := c.doraHits(c.UraIndicators); u > 0 {
			*hits = append(*hits, Hit{UraDora, u})
			n += u
		}
	}
	return n
}

func evaluateYakuman(c Context) (bool, int, []Hit) {
	var hits []Hit
	units := 0

	if h, id, ok := checkKokushiKokushi13(c); ok {
		hits = append(hits, Hit{id, h})
		units += id.YakumanUnits()
	}
	if h, id, ok := checkSuuankouSuuankouTanki(c); ok {
		hits = append(hits, Hit{id, h})
		units += id.YakumanUnits()
	}
	if h, ok := checkDaisangen(c); ok {
		hits = append(hits, Hit{Daisangen, h})
		units += Daisangen.YakumanUnits()
	}
	if h, ok := checkShousuushi(c); ok {
		hits = append(hits, Hit{Shousuushi, h})
		units += Shousuushi.YakumanUnits()
	}
	if h, ok := checkDaisuushi(c); ok {
		hits = append(hits, Hit{Daisuushi, h})
		units += Daisuushi.YakumanUnits()
	}
	if h, ok := checkTsuuiisou(c); ok {
		hits = append(hits, Hit{Tsuuiisou, h})
		units += Tsuuiisou.YakumanUnits()
	}
	if h, ok := checkChinroutou(c); ok {
		hits = append(hits, Hit{Chinroutou, h})
		units += Chinroutou.YakumanUnits()
	}
	if h, ok := checkRyuuiisou(c); ok {
		hits = append(hits, Hit{Ryuuiisou, h})
		units += Ryuuiisou.YakumanUnits()
	}
	if h, ok := checkSuukantsu(c); ok {
		hits = append(hits, Hit{Suukantsu, h})
		units += Suukantsu.YakumanUnits()
	}
	if h, id, ok := checkChuurenJunsei(c); ok {
		hits = append(hits, Hit{id, h})
		units += id.YakumanUnits()
	}
	return units > 0, units, hits
}
