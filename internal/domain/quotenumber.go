package domain

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// quoteNumberPrefix identifies quote numbers issued by this service.
const quoteNumberPrefix = "MH"

// quoteNumberSuffixRange bounds the random suffix: [0, 1000).
const quoteNumberSuffixRange = 1000

// NewQuoteNumber produces a display identifier of the form MH-YYYYMMDD-NNN,
// where NNN is a zero-padded random number. Three random digits per day make
// collisions possible; the record store's own id is the uniqueness guarantee,
// this is only what humans quote back on the phone.
func NewQuoteNumber(now time.Time) string {
	return fmt.Sprintf("%s-%s-%03d",
		quoteNumberPrefix,
		now.Format("20060102"),
		rand.IntN(quoteNumberSuffixRange),
	)
}
