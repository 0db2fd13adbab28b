// Package gravatar derives deterministic avatar URLs from email addresses.
package gravatar

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	size     = 200
	rating   = "pg"
	fallback = "mm"
)

// URL returns the Gravatar URL for the given email. The address is
// normalized (trimmed, lowercased) before hashing per the Gravatar spec.
func URL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=%d&r=%s&d=%s",
		hex.EncodeToString(sum[:]), size, rating, fallback)
}
