// Package score implements the fu/han scoring and payment tables (C4).
package score

// Ruleset is the subset of table configuration that affects payment
// amounts: everything else (hand length, starting score, etc.) lives in
// internal/config.Ruleset.
type Ruleset struct {
	KiriageMangan bool // 4han30fu/3han60fu round up to mangan
}

// Payment is the settlement for one win.
type Payment struct {
	// Ron: the single discarder pays Total. Tsumo: DealerPays is what the
	// dealer pays when a non-dealer wins (0 when the winner is the dealer),
	// NonDealerPays is what each non-dealer payer pays (on a dealer tsumo,
	// what each of the 3 others pays).
	Total         int
	DealerPays    int
	NonDealerPays int
}

func roundUpTo100(n int) int {
	if n%100 == 0 {
		return n
	}
	return (n/100 + 1) * 100
}

// BasePoints computes the base point value from han and fu, applying the
// mangan-and-above fixed tables. Kokushi/yakuman callers should use
// YakumanBasePoints instead; fu is meaningless there.
func BasePoints(han, fu int, rules Ruleset) int {
	if han >= 13 {
		return 8000
	}
	if han >= 11 {
		return 6000
	}
	if han >= 8 {
		return 4000
	}
	if han >= 6 {
		return 3000
	}
	if han == 5 {
		return 2000
	}
	base := fu << (2 + han)
	if base > 2000 {
		return 2000
	}
	if rules.KiriageMangan && base >= 1920 {
		return 2000
	}
	return base
}

// YakumanBasePoints returns the base points for a yakuman worth units
// yakuman (2 for a double yakuman, etc).
func YakumanBasePoints(units int) int {
	return 8000 * units
}

// Ron computes the payment a ron winner receives from the discarder.
func Ron(base int, isDealer bool, honba int) Payment {
	mult := 4
	if isDealer {
		mult = 6
	}
	total := roundUpTo100(base*mult) + honba*300
	return Payment{Total: total}
}

// Tsumo computes each payer's share of a tsumo win.
func Tsumo(base int, isDealer bool, honba int) Payment {
	if isDealer {
		each := roundUpTo100(base*2) + honba*100
		return Payment{Total: each * 3, NonDealerPays: each}
	}
	dealerShare := roundUpTo100(base*2) + honba*100
	otherShare := roundUpTo100(base) + honba*100
	return Payment{Total: dealerShare + otherShare*2, DealerPays: dealerShare, NonDealerPays: otherShare}
}
