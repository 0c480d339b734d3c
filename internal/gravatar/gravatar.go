// Package gravatar computes deterministic avatar URLs from email addresses.
package gravatar

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"strings"
)

const baseURL = "https://www.gravatar.com/avatar/"

// URL returns the gravatar URL for email: 200px, PG-rated, with the
// "mystery man" default for addresses without a gravatar. The hash input is
// the trimmed, lowercased address per the gravatar spec, so the result is
// stable for a given email.
func URL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))

	q := url.Values{}
	q.Set("s", "200")
	q.Set("r", "pg")
	q.Set("d", "mm")

	return baseURL + hex.EncodeToString(sum[:]) + "?" + q.Encode()
}
