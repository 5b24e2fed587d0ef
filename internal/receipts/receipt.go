package receipts

import (
	"math"
	"strconv"
	"strings"
)

type Item struct {
	ShortDescription string `json:"shortDescription"`
	Price            string `json:"price"`
}

type Receipt struct {
	Retailer     string `json:"retailer"`
	PurchaseDate string `json:"purchaseDate"`
	PurchaseTime string `json:"purchaseTime"`
	Items        []Item `json:"items"`
	Total        string `json:"total"`
}

// parseCents converts a decimal money string like "12.25" into integer
// cents. At most two fraction digits, no sign. Anything else reports
// ok == false so the caller's rule is skipped instead of scoring on a
// misread amount.
func parseCents(s string) (int64, bool) {
	dollars, frac, hasFrac := strings.Cut(s, ".")
	if dollars == "" || strings.HasPrefix(dollars, "-") || strings.HasPrefix(dollars, "+") {
		return 0, false
	}

	d, err := strconv.ParseInt(dollars, 10, 64)
	if err != nil {
		return 0, false
	}
	if d > (math.MaxInt64-99)/100 {
		return 0, false
	}

	cents := d * 100
	if !hasFrac {
		return cents, true
	}
	if len(frac) == 0 || len(frac) > 2 {
		return 0, false
	}

	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil || f < 0 {
		return 0, false
	}
	if len(frac) == 1 {
		f *= 10
	}

	return cents + f, true
}
