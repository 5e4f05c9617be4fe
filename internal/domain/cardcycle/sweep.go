package cardcycle

// Sweep is the monthly maintenance pass over a single card. It clears the
// minimum-paid flag once a new billing month starts, and for cards that sat
// debt-free across one or more cycle boundaries it advances the due date
// until it is no longer in the past.
//
// Running it twice with the same now yields the same card, which lets the
// caller gate it loosely.

import (
	"time"

	"github.com/ailefin/finance-backend/internal/domain/models"
)

// SweepCard returns the card after the monthly maintenance pass. now is the
// sweep time, injected so the month comparison is deterministic in tests.
//
// A qualifying minimum payment sets the flag and rolls the due date into the
// following month in the same step, so the flag always describes the cycle
// that ends at the previous due date. It is stale, and cleared, only once the
// calendar has reached the month of the rolled due date. Clearing on a bare
// month mismatch would wipe a flag set minutes earlier.
func SweepCard(card models.Card, now time.Time) models.Card {
	if card.MinPaymentDoneThisMonth && !now.Before(startOfMonth(card.DueDate)) {
		card.MinPaymentDoneThisMonth = false
	}

	// catch-up for untouched debt-free cards: keep advancing so a second
	// sweep in the same month has nothing left to do
	for card.TotalDebt == 0 && card.DueDate.Before(now) {
		card.DueDate = NextDueDate(card.DueDate)
		card.MinPaymentDoneThisMonth = false
	}

	return card
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
