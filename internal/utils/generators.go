package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func randomBase36(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36))))
		if err != nil {
			// crypto/rand failing means something much worse than an
			// ugly reference; fall back to the clock.
			idx = big.NewInt(time.Now().UnixNano() % int64(len(base36)))
		}
		sb.WriteByte(base36[idx.Int64()])
	}
	return sb.String()
}

// GenerateBookingReference returns a reference like BKG-1732115234567-A1B2C3.
// Uniqueness relies on millisecond timestamp plus six random characters and
// is not re-checked against the database.
func GenerateBookingReference() string {
	return fmt.Sprintf("BKG-%d-%s", time.Now().UnixMilli(), randomBase36(6))
}

// GenerateEventID returns an id like event-1732115234567-a1b2c3d4e.
// Booking events use string ids so the same key format can come from the
// client or the server.
func GenerateEventID() string {
	return GeneratePrefixedID("event")
}

// GeneratePrefixedID returns <prefix>-<millis>-<9 random base36 chars>.
func GeneratePrefixedID(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), strings.ToLower(randomBase36(9)))
}
