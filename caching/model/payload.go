package model

import (
	"time"
)

// Payload is a generated interleaved output keyed by the canonical hash of
// its inputs. Rows are insert-only: identical inputs always map to the
// same ID, so a payload is never mutated after creation.
type Payload struct {
	ID        string    `json:"id"`
	InputHash string    `json:"input_hash"`
	List1     []string  `json:"list1"`
	List2     []string  `json:"list2"`
	Output    string    `json:"output"`
	CreatedAt time.Time `json:"created_at"`
}
