// Package receipt defines the submitted receipt document together with the
// format grammar it must satisfy and the reward-points scoring rules.
package receipt

// Item is a single purchased item on a receipt
type Item struct {
	ShortDescription string `json:"shortDescription"`
	Price            string `json:"price"` // Decimal string with exactly two fraction digits
}

// Receipt is the purchase document submitted for scoring
type Receipt struct {
	Retailer     string `json:"retailer"`
	PurchaseDate string `json:"purchaseDate"` // YYYY-MM-DD
	PurchaseTime string `json:"purchaseTime"` // 24-hour HH:MM
	Items        []Item `json:"items"`
	Total        string `json:"total"` // Decimal string with exactly two fraction digits
}
