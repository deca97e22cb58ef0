package model

import (
	"time"
)

// TransformCacheEntry maps an input string to its transformed output.
// The transform is pure, so an entry is stable forever once written.
type TransformCacheEntry struct {
	ID                string    `json:"id"`
	InputString       string    `json:"input_string"`
	TransformedString string    `json:"transformed_string"`
	CreatedAt         time.Time `json:"created_at"`
}
