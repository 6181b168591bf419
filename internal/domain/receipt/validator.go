package receipt

import (
	"fmt"
	"regexp"
	"time"
)

var (
	retailerPattern    = regexp.MustCompile(`^[\w\s\-&]+$`)
	descriptionPattern = regexp.MustCompile(`^[\w\s\-]+$`)
	pricePattern       = regexp.MustCompile(`^\d+\.\d{2}$`)
	// Hour accepts the one- or two-digit form ("9:00" and "09:00").
	timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)
)

// ValidationError indicates a submitted receipt violates the format grammar
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}

// Is implements the errors.Is interface for ValidationError
func (e ValidationError) Is(target error) bool {
	t, ok := target.(ValidationError)
	if !ok {
		return false
	}
	// If the target Reason is empty, consider it a match for any ValidationError
	if t.Reason == "" {
		return true
	}
	return e.Reason == t.Reason
}

// Validate checks a submitted receipt against the format grammar.
// It fails closed: the first violation found is reported and no further
// checks run. A nil return means the receipt is safe to pass to Score.
func Validate(r *Receipt) error {
	if !retailerPattern.MatchString(r.Retailer) {
		return ValidationError{Reason: "invalid retailer format"}
	}

	if _, err := time.Parse("2006-01-02", r.PurchaseDate); err != nil {
		return ValidationError{Reason: "invalid purchaseDate format, expected YYYY-MM-DD"}
	}

	if !timePattern.MatchString(r.PurchaseTime) {
		return ValidationError{Reason: "invalid purchaseTime format, expected HH:MM"}
	}

	if len(r.Items) == 0 {
		return ValidationError{Reason: "receipt must have at least one item"}
	}

	for _, item := range r.Items {
		if !descriptionPattern.MatchString(item.ShortDescription) {
			return ValidationError{Reason: fmt.Sprintf("invalid item description: %s", item.ShortDescription)}
		}
		if !pricePattern.MatchString(item.Price) {
			return ValidationError{Reason: fmt.Sprintf("invalid item price: %s", item.Price)}
		}
	}

	if !pricePattern.MatchString(r.Total) {
		return ValidationError{Reason: "invalid total amount format"}
	}

	return nil
}
