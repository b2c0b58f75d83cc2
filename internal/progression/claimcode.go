package progression

import (
	"crypto/sha256"
	"encoding/base32"
	"sort"
	"strings"
)

// DefaultClaimCodePrefix is prepended to every team claim code.
const DefaultClaimCodePrefix = "MC-"

const (
	teamHashLen        = 10
	participantHashLen = 6
)

var claimEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// ShortHash returns the first n base32 characters of the SHA-256 digest of s.
func ShortHash(s string, n int) string {
	sum := sha256.Sum256([]byte(s))
	encoded := claimEncoding.EncodeToString(sum[:])
	if n > len(encoded) {
		n = len(encoded)
	}
	return encoded[:n]
}

// TeamClaimCode derives the team-level completion code. Badges are sorted before
// hashing so the code does not depend on resolution order. Empty badge slots are ignored.
func TeamClaimCode(prefix, teamID string, badges []string) string {
	earned := make([]string, 0, len(badges))
	for _, b := range badges {
		if b != "" {
			earned = append(earned, b)
		}
	}
	sort.Strings(earned)
	// NUL separators keep ("ab","c") and ("a","bc") distinct.
	material := teamID + "\x00" + strings.Join(earned, "\x00")
	return prefix + ShortHash(material, teamHashLen)
}

// ParticipantClaimCode derives a participant's code from the team code.
func ParticipantClaimCode(teamClaimCode, participantID string) string {
	return teamClaimCode + "-" + ShortHash(participantID, participantHashLen)
}
