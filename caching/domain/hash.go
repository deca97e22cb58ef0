package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// canonicalInputs fixes the serialization order of the two lists. Field
// order and element order are both significant: swapping two elements, or
// moving an element between lists, must change the hash.
type canonicalInputs struct {
	List1 []string `json:"list1"`
	List2 []string `json:"list2"`
}

// CanonicalHash computes the deterministic identifier for a pair of
// ordered string lists: SHA-256 over the canonical JSON encoding, rendered
// as 64 lowercase hex characters. Identical inputs always produce the
// identical hash, which is what makes payload creation idempotent.
func CanonicalHash(list1, list2 []string) string {
	canonical, err := json.Marshal(canonicalInputs{List1: list1, List2: list2})
	if err != nil {
		// Marshalling two string slices cannot fail.
		panic(err)
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])
}
