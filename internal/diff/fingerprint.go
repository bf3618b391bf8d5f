package diff

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"
)

// fingerprintLen is the number of hex characters kept from the digest.
// 64 bits is plenty for a single-user cache keyed by a few hundred diffs.
const fingerprintLen = 16

// Fingerprint returns a stable digest of the diff text. Normalization drops
// lines that vary between otherwise identical changes ("index ..." headers
// and "@@ ... @@" hunk markers), strips surrounding whitespace, and sorts the
// remaining lines so that reordering file sections does not change the hash.
func Fingerprint(raw string) string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(line, "index ") || strings.HasPrefix(line, "@@") {
			continue
		}
		stripped := strings.TrimSpace(line)
		if stripped != "" {
			lines = append(lines, stripped)
		}
	}
	sort.Strings(lines)

	h := sha256.Sum256([]byte(strings.Join(lines, "\n")))
	return fmt.Sprintf("%x", h)[:fingerprintLen]
}
