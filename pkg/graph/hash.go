package graph

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash computes a SHA-256 content hash of the snapshot.
// Returns the full 64-character hex string. Two snapshots with identical
// node and edge arrays (same order, same fields) produce the same hash,
// so it doubles as a cheap change detector for the broadcaster.
func (g Graph) Hash() string {
	data, _ := json.Marshal(g)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
