package receipts

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	roundDollarBonus   = 50
	quarterBonus       = 25
	pairBonus          = 5
	overTenBonus       = 5
	oddDayBonus        = 6
	afternoonBonus     = 10
	afternoonOpenMins  = 14 * 60
	afternoonCloseMins = 16 * 60
)

// CalculatePoints scores a receipt. Each rule is additive and independent;
// a field that fails to parse contributes zero to its rule and never aborts
// the computation, so the result is defined for any decoded receipt.
func CalculatePoints(r Receipt) int64 {
	var points int64

	points += retailerPoints(r.Retailer)
	points += totalPoints(r.Total)
	points += int64(len(r.Items)/2) * pairBonus

	for _, it := range r.Items {
		points += descriptionPoints(it)
	}

	points += datePoints(r.PurchaseDate)
	points += timePoints(r.PurchaseTime)

	return points
}

// One point per Unicode letter or digit in the retailer name.
func retailerPoints(retailer string) int64 {
	var n int64
	for _, c := range retailer {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			n++
		}
	}
	return n
}

func totalPoints(total string) int64 {
	var points int64

	if strings.HasSuffix(total, ".00") {
		points += roundDollarBonus
	}

	cents, ok := parseCents(total)
	if !ok {
		return points
	}

	if cents%25 == 0 {
		points += quarterBonus
	}
	if cents > 1000 {
		points += overTenBonus
	}

	return points
}

// descriptionPoints awards ceil(price * 0.2) when the trimmed description
// is non-empty and its rune count is a multiple of 3. Computed in cents:
// ceil(cents / 500) == (cents + 499) / 500.
func descriptionPoints(it Item) int64 {
	desc := strings.TrimSpace(it.ShortDescription)
	if desc == "" || utf8.RuneCountInString(desc)%3 != 0 {
		return 0
	}

	cents, ok := parseCents(it.Price)
	if !ok {
		return 0
	}

	return (cents + 499) / 500
}

func datePoints(purchaseDate string) int64 {
	d, err := time.Parse("2006-01-02", purchaseDate)
	if err != nil {
		return 0
	}
	if d.Day()%2 == 1 {
		return oddDayBonus
	}
	return 0
}

// Strictly between 14:00 and 16:00, exclusive on both ends.
func timePoints(purchaseTime string) int64 {
	t, err := time.Parse("15:04", purchaseTime)
	if err != nil {
		return 0
	}

	mins := t.Hour()*60 + t.Minute()
	if mins > afternoonOpenMins && mins < afternoonCloseMins {
		return afternoonBonus
	}
	return 0
}
