package receipt

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// descriptionRate is the multiplier applied to an item price when the
// trimmed description length is a multiple of three.
var descriptionRate = decimal.RequireFromString("0.2")

// Score computes the reward points earned by a receipt as the sum of the
// fixed rule contributions. It is pure and deterministic.
//
// The receipt must already have passed Validate; behavior on unvalidated
// input is undefined.
func Score(r *Receipt) int64 {
	var points int64

	// One point for every alphanumeric character in the retailer name.
	for _, ch := range r.Retailer {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) {
			points++
		}
	}

	// 6 points if the day in the purchase date is odd.
	day, _ := strconv.Atoi(r.PurchaseDate[len(r.PurchaseDate)-2:])
	if day%2 == 1 {
		points += 6
	}

	// 10 points if the purchase time is 2:00pm or later and before 4:00pm.
	hour, _ := strconv.Atoi(strings.SplitN(r.PurchaseTime, ":", 2)[0])
	if hour >= 14 && hour < 16 {
		points += 10
	}

	// 5 points for every two items on the receipt.
	points += int64(len(r.Items)/2) * 5

	// If the trimmed length of the item description is a multiple of 3,
	// the item earns 20% of its price rounded up to the nearest integer.
	// Decimal arithmetic here: binary floats can carry a value like
	// 6.49*0.2 across the integer boundary before the ceiling is taken.
	for _, item := range r.Items {
		description := strings.TrimSpace(item.ShortDescription)
		if len(description)%3 == 0 {
			price, _ := decimal.NewFromString(item.Price)
			points += price.Mul(descriptionRate).Ceil().IntPart()
		}
	}

	// 50 points if the total is a round dollar amount, and 25 points if
	// the total is a multiple of 0.25. A round dollar amount earns both.
	cents, _ := strconv.Atoi(r.Total[strings.LastIndex(r.Total, ".")+1:])
	if cents == 0 {
		points += 50
	}
	if cents%25 == 0 {
		points += 25
	}

	return points
}
