package cardcycle

import (
	"errors"
	"testing"
	"time"

	"github.com/ailefin/finance-backend/internal/domain/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func limitCard(limit, debt float64) models.Card {
	return models.Card{
		CardLimit: &limit,
		TotalDebt: debt,
		Currency:  "TRY",
	}
}

func TestAccrue(t *testing.T) {
	t.Run("increases debt within the limit", func(t *testing.T) {
		card, err := Accrue(limitCard(1000, 200), 300)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if card.TotalDebt != 500 {
			t.Errorf("TotalDebt = %v, want 500", card.TotalDebt)
		}
	})

	t.Run("rejects amounts above the available limit", func(t *testing.T) {
		card, err := Accrue(limitCard(1000, 950), 100)

		var insufficientErr *InsufficientLimitError
		if !errors.As(err, &insufficientErr) {
			t.Fatalf("expected InsufficientLimitError, got %v", err)
		}
		if insufficientErr.AvailableLimit != 50 {
			t.Errorf("AvailableLimit = %v, want 50", insufficientErr.AvailableLimit)
		}
		if insufficientErr.Currency != "TRY" {
			t.Errorf("Currency = %q, want TRY", insufficientErr.Currency)
		}
		if card.TotalDebt != 950 {
			t.Errorf("card mutated on rejection: TotalDebt = %v, want 950", card.TotalDebt)
		}
	})

	t.Run("allows spending exactly the available limit", func(t *testing.T) {
		card, err := Accrue(limitCard(1000, 950), 50)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if card.TotalDebt != 1000 {
			t.Errorf("TotalDebt = %v, want 1000", card.TotalDebt)
		}
	})

	t.Run("cards without a limit accept any amount", func(t *testing.T) {
		card, err := Accrue(models.Card{TotalDebt: 5000}, 100000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if card.TotalDebt != 105000 {
			t.Errorf("TotalDebt = %v, want 105000", card.TotalDebt)
		}
	})
}

func TestApplyPayment(t *testing.T) {
	// card with debt 100, due 2024-03-15, minimum 20
	base := models.Card{
		TotalDebt:      100,
		MinimumPayment: 20,
		DueDate:        date(2024, time.March, 15),
	}

	tests := []struct {
		name      string
		card      models.Card
		payment   PaymentEvent
		wantDebt  float64
		wantDue   time.Time
		wantFlag  bool
	}{
		{
			name:     "full payoff always rolls the due date",
			card:     base,
			payment:  PaymentEvent{Amount: 100, PaymentDate: date(2024, time.March, 20), IsMinimumPayment: false},
			wantDebt: 0,
			wantDue:  date(2024, time.April, 15),
			wantFlag: false,
		},
		{
			name:     "overpayment floors debt at zero and rolls",
			card:     base,
			payment:  PaymentEvent{Amount: 250, PaymentDate: date(2024, time.March, 10)},
			wantDebt: 0,
			wantDue:  date(2024, time.April, 15),
			wantFlag: false,
		},
		{
			name:     "on-time qualifying minimum payment rolls and sets flag",
			card:     base,
			payment:  PaymentEvent{Amount: 25, PaymentDate: date(2024, time.March, 10), IsMinimumPayment: true},
			wantDebt: 75,
			wantDue:  date(2024, time.April, 15),
			wantFlag: true,
		},
		{
			name:     "payment on the due date itself still counts",
			card:     base,
			payment:  PaymentEvent{Amount: 20, PaymentDate: date(2024, time.March, 15), IsMinimumPayment: true},
			wantDebt: 80,
			wantDue:  date(2024, time.April, 15),
			wantFlag: true,
		},
		{
			name:     "late minimum payment does not roll",
			card:     base,
			payment:  PaymentEvent{Amount: 25, PaymentDate: date(2024, time.March, 20), IsMinimumPayment: true},
			wantDebt: 75,
			wantDue:  date(2024, time.March, 15),
			wantFlag: false,
		},
		{
			name:     "underpayment does not roll",
			card:     base,
			payment:  PaymentEvent{Amount: 10, PaymentDate: date(2024, time.March, 10), IsMinimumPayment: true},
			wantDebt: 90,
			wantDue:  date(2024, time.March, 15),
			wantFlag: false,
		},
		{
			name:     "qualifying amount without the minimum flag does not roll",
			card:     base,
			payment:  PaymentEvent{Amount: 25, PaymentDate: date(2024, time.March, 10), IsMinimumPayment: false},
			wantDebt: 75,
			wantDue:  date(2024, time.March, 15),
			wantFlag: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyPayment(tt.card, tt.payment)
			if got.TotalDebt != tt.wantDebt {
				t.Errorf("TotalDebt = %v, want %v", got.TotalDebt, tt.wantDebt)
			}
			if !got.DueDate.Equal(tt.wantDue) {
				t.Errorf("DueDate = %v, want %v", got.DueDate, tt.wantDue)
			}
			if got.MinPaymentDoneThisMonth != tt.wantFlag {
				t.Errorf("MinPaymentDoneThisMonth = %v, want %v", got.MinPaymentDoneThisMonth, tt.wantFlag)
			}
			if got.TotalDebt < 0 {
				t.Errorf("debt went negative: %v", got.TotalDebt)
			}
		})
	}
}

func TestNextDueDate(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"plain month", date(2024, time.March, 15), date(2024, time.April, 15)},
		{"clamps jan 31 to leap february", date(2024, time.January, 31), date(2024, time.February, 29)},
		{"clamps jan 31 to plain february", date(2023, time.January, 31), date(2023, time.February, 28)},
		{"clamps 31st to a 30-day month", date(2024, time.March, 31), date(2024, time.April, 30)},
		{"december rolls into next year", date(2024, time.December, 20), date(2025, time.January, 20)},
		{"first of month stays first", date(2024, time.May, 1), date(2024, time.June, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextDueDate(tt.in); !got.Equal(tt.want) {
				t.Errorf("NextDueDate(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
