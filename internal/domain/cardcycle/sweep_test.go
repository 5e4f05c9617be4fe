package cardcycle

import (
	"testing"
	"time"

	"github.com/ailefin/finance-backend/internal/domain/models"
)

func TestSweepCard(t *testing.T) {
	now := date(2024, time.April, 3)

	t.Run("clears a flag from the previous cycle", func(t *testing.T) {
		// minimum was paid in March, which rolled the due date to April
		card := models.Card{
			TotalDebt:               75,
			DueDate:                 date(2024, time.April, 15),
			MinPaymentDoneThisMonth: true,
		}

		got := SweepCard(card, now)
		if got.MinPaymentDoneThisMonth {
			t.Error("flag should be cleared once the due date's month begins")
		}
		if !got.DueDate.Equal(card.DueDate) {
			t.Errorf("DueDate = %v, want unchanged %v", got.DueDate, card.DueDate)
		}
	})

	t.Run("keeps a flag set within the current cycle", func(t *testing.T) {
		// minimum paid moments ago: due date already rolled into next month
		card := models.Card{
			TotalDebt:               75,
			DueDate:                 date(2024, time.May, 15),
			MinPaymentDoneThisMonth: true,
		}

		got := SweepCard(card, now)
		if !got.MinPaymentDoneThisMonth {
			t.Error("flag cleared mid-cycle")
		}
	})

	t.Run("advances untouched debt-free cards past the boundary", func(t *testing.T) {
		card := models.Card{
			TotalDebt: 0,
			DueDate:   date(2024, time.January, 10),
		}

		got := SweepCard(card, now)
		if want := date(2024, time.April, 10); !got.DueDate.Equal(want) {
			t.Errorf("DueDate = %v, want %v", got.DueDate, want)
		}
		if got.MinPaymentDoneThisMonth {
			t.Error("flag should be cleared by the catch-up advance")
		}
	})

	t.Run("leaves overdue cards with debt alone", func(t *testing.T) {
		card := models.Card{
			TotalDebt: 140,
			DueDate:   date(2024, time.February, 10),
		}

		got := SweepCard(card, now)
		if !got.DueDate.Equal(card.DueDate) {
			t.Errorf("DueDate = %v, want unchanged %v", got.DueDate, card.DueDate)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		cards := []models.Card{
			{TotalDebt: 0, DueDate: date(2023, time.November, 30)},
			{TotalDebt: 75, DueDate: date(2024, time.April, 15), MinPaymentDoneThisMonth: true},
			{TotalDebt: 75, DueDate: date(2024, time.May, 15), MinPaymentDoneThisMonth: true},
			{TotalDebt: 140, DueDate: date(2024, time.February, 10)},
		}

		for i, card := range cards {
			once := SweepCard(card, now)
			twice := SweepCard(once, now)
			if once != twice {
				t.Errorf("card %d: second sweep changed state: %+v vs %+v", i, once, twice)
			}
		}
	})
}
