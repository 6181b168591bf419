package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Entry records the points awarded to a processed receipt.
// Entries are written once under a freshly generated identifier and are
// never mutated afterwards.
type Entry struct {
	ID        uuid.UUID `json:"id" bson:"id"`
	Points    int64     `json:"points" bson:"points"` // Always >= 0
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
