package utils

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/sdejt/planaula-backend/internal/normalization"
)

// OwnerKey derives the stable per-teacher namespace key from the normalized
// teacher name and school. Same teacher, same school, same key.
func OwnerKey(teacher, school string) string {
	identity := normalization.Normalize(teacher) + "|" + normalization.Normalize(school)
	sum := sha256.Sum256([]byte(identity))
	return hex.EncodeToString(sum[:16])
}
