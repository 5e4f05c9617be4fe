// Package cardcycle holds the billing-cycle state machine for credit cards:
// debt accrual against the configured limit, payment application with the
// due-date rollover rules, and the monthly flag sweep. Every function takes
// the card pre-state and returns the post-state without touching storage, so
// the cycle rules stay testable on their own.
package cardcycle

import (
	"fmt"
	"math"
	"time"

	"github.com/ailefin/finance-backend/internal/domain/models"
)

// InsufficientLimitError rejects an accrual that would push debt above the
// card limit. It carries the remaining limit so callers can report it.
type InsufficientLimitError struct {
	AvailableLimit float64
	Currency       string
}

func (e *InsufficientLimitError) Error() string {
	return fmt.Sprintf("insufficient card limit, available limit: %.2f %s", e.AvailableLimit, e.Currency)
}

// Accrue increases the card debt by amount. Cards with a configured limit
// reject amounts above the available limit and come back unchanged.
func Accrue(card models.Card, amount float64) (models.Card, error) {
	if available := card.AvailableLimit(); available != nil && amount > *available {
		return card, &InsufficientLimitError{
			AvailableLimit: *available,
			Currency:       card.Currency,
		}
	}

	card.TotalDebt += amount
	return card, nil
}

// PaymentEvent carries the facts about one posted payment that the rollover
// rules depend on.
type PaymentEvent struct {
	Amount           float64
	PaymentDate      time.Time
	IsMinimumPayment bool
}

// ApplyPayment reduces the card debt by the payment amount, floored at zero
// (overpayment is absorbed, never carried as credit), then applies the
// due-date rollover rules:
//
//   - debt reaches zero: the due date always advances one month
//   - debt stays positive but an on-time minimum payment covered at least the
//     card's minimum: the due date advances and the monthly flag is set
//   - anything else (late, partial, sub-minimum): no change
//
// The cycle only advances once its obligation is demonstrably met, so the due
// date cannot drift forward and mask delinquency.
func ApplyPayment(card models.Card, payment PaymentEvent) models.Card {
	card.TotalDebt = math.Max(0, card.TotalDebt-payment.Amount)

	if card.TotalDebt == 0 {
		card.DueDate = NextDueDate(card.DueDate)
		return card
	}

	onTime := !payment.PaymentDate.After(card.DueDate)
	if payment.IsMinimumPayment && onTime && payment.Amount >= card.MinimumPayment {
		card.DueDate = NextDueDate(card.DueDate)
		card.MinPaymentDoneThisMonth = true
	}

	return card
}

// NextDueDate returns the same day one month later, clamped to the last day
// of the target month (Jan 31 -> Feb 28/29), never overflowing into the month
// after.
func NextDueDate(dueDate time.Time) time.Time {
	year, month, day := dueDate.Date()

	firstOfNext := time.Date(year, month+1, 1, dueDate.Hour(), dueDate.Minute(), dueDate.Second(), dueDate.Nanosecond(), dueDate.Location())
	lastDay := daysIn(firstOfNext.Year(), firstOfNext.Month())
	if day > lastDay {
		day = lastDay
	}

	return time.Date(firstOfNext.Year(), firstOfNext.Month(), day, dueDate.Hour(), dueDate.Minute(), dueDate.Second(), dueDate.Nanosecond(), dueDate.Location())
}

func daysIn(year int, month time.Month) int {
	// day 0 of the following month normalizes to this month's last day
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
