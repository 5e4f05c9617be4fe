package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/domain/usecase"
	presentationProtocols "github.com/ailefin/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockFindCards struct {
	cards []models.Card
	err   error
}

func (m *mockFindCards) Find(_ primitive.ObjectID) ([]models.Card, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.cards, nil
}

type mockUpdateCard struct {
	updated []*models.Card
}

func (m *mockUpdateCard) Update(card *models.Card) (*models.Card, error) {
	m.updated = append(m.updated, card)
	return card, nil
}

type mockSweepGate struct {
	allow    bool
	acquired []string
}

func (m *mockSweepGate) Acquire(_ primitive.ObjectID, month string) (bool, error) {
	m.acquired = append(m.acquired, month)
	return m.allow, nil
}

type mockFindTransactions struct {
	transactions []models.Transaction
}

func (m *mockFindTransactions) Find(filters *usecase.FindTransactionsInputRepository) ([]models.Transaction, int64, error) {
	var page []models.Transaction
	for _, tx := range m.transactions {
		if int(tx.Date.Month()) == filters.Month && tx.Date.Year() == filters.Year {
			page = append(page, tx)
		}
	}
	return page, int64(len(page)), nil
}

type mockFindFamilyMembers struct {
	members []models.FamilyMember
}

func (m *mockFindFamilyMembers) Find(_ primitive.ObjectID) ([]models.FamilyMember, error) {
	return m.members, nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func dashboardRequest(userId primitive.ObjectID) presentationProtocols.HttpRequest {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("UserId", userId.Hex())
	return presentationProtocols.HttpRequest{
		Body:      req.Body,
		Header:    req.Header,
		UrlParams: req.URL.Query(),
		Req:       req,
	}
}

func TestGetDashboard(t *testing.T) {
	userId := primitive.NewObjectID()
	now := time.Date(2024, time.May, 3, 8, 0, 0, 0, time.UTC)
	clock := fixedClock{now: now}

	paidOffOverdue := models.Card{
		Id:        primitive.NewObjectID(),
		UserId:    userId,
		Name:      "Settled Card",
		TotalDebt: 0,
		DueDate:   time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
		Version:   1,
	}

	t.Run("first load of the month sweeps overdue paid-off cards forward", func(t *testing.T) {
		updates := &mockUpdateCard{}
		gate := &mockSweepGate{allow: true}
		controller := NewGetDashboardController(
			&mockFindCards{cards: []models.Card{paidOffOverdue}},
			updates,
			gate,
			&mockFindTransactions{},
			&mockFindFamilyMembers{},
			clock,
		)

		response := controller.Handle(dashboardRequest(userId))
		if response.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", response.StatusCode, http.StatusOK)
		}

		if len(gate.acquired) != 1 || gate.acquired[0] != "2024-05" {
			t.Fatalf("gate acquired with %v, want [2024-05]", gate.acquired)
		}
		if len(updates.updated) != 1 {
			t.Fatalf("card updates = %d, want 1", len(updates.updated))
		}
		want := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)
		if !updates.updated[0].DueDate.Equal(want) {
			t.Errorf("swept DueDate = %v, want %v", updates.updated[0].DueDate, want)
		}
	})

	t.Run("later loads in the same month leave cards alone", func(t *testing.T) {
		updates := &mockUpdateCard{}
		controller := NewGetDashboardController(
			&mockFindCards{cards: []models.Card{paidOffOverdue}},
			updates,
			&mockSweepGate{allow: false},
			&mockFindTransactions{},
			&mockFindFamilyMembers{},
			clock,
		)

		response := controller.Handle(dashboardRequest(userId))
		if response.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", response.StatusCode, http.StatusOK)
		}
		if len(updates.updated) != 0 {
			t.Errorf("card updates = %d, want 0 when the gate denies", len(updates.updated))
		}
	})

	t.Run("a failed card fetch does not consume the month's sweep slot", func(t *testing.T) {
		gate := &mockSweepGate{allow: true}
		controller := NewGetDashboardController(
			&mockFindCards{err: errors.New("connection reset")},
			&mockUpdateCard{},
			gate,
			&mockFindTransactions{},
			&mockFindFamilyMembers{},
			clock,
		)

		controller.Handle(dashboardRequest(userId))
		if len(gate.acquired) != 0 {
			t.Errorf("gate acquired with %v, want none when the card fetch fails", gate.acquired)
		}
	})

	t.Run("cards already in cycle are not rewritten", func(t *testing.T) {
		current := paidOffOverdue
		current.DueDate = time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)

		updates := &mockUpdateCard{}
		controller := NewGetDashboardController(
			&mockFindCards{cards: []models.Card{current}},
			updates,
			&mockSweepGate{allow: true},
			&mockFindTransactions{},
			&mockFindFamilyMembers{},
			clock,
		)

		controller.Handle(dashboardRequest(userId))
		if len(updates.updated) != 0 {
			t.Errorf("card updates = %d, want 0 for an up-to-date card", len(updates.updated))
		}
	})

	t.Run("summarizes the month's totals and breakdowns", func(t *testing.T) {
		memberId := primitive.NewObjectID()
		transactions := []models.Transaction{
			{Type: models.TransactionTypeIncome, Category: "salary", Amount: 1000, Date: now},
			{Type: models.TransactionTypeExpense, Category: "groceries", Amount: 200, Date: now, FamilyMemberId: &memberId},
			{Type: models.TransactionTypeExpense, Category: "groceries", Amount: 100, Date: now},
			{Type: models.TransactionTypeExpense, Category: "fuel", Amount: 50, Date: now.AddDate(0, -1, 0)},
		}

		controller := NewGetDashboardController(
			&mockFindCards{},
			&mockUpdateCard{},
			&mockSweepGate{},
			&mockFindTransactions{transactions: transactions},
			&mockFindFamilyMembers{members: []models.FamilyMember{{Id: memberId, Name: "Ayse"}}},
			clock,
		)

		response := controller.Handle(dashboardRequest(userId))
		if response.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", response.StatusCode, http.StatusOK)
		}

		var body GetDashboardResponse
		decodeBody(t, response, &body)

		if body.TotalIncome != 1000 || body.TotalExpense != 300 || body.NetBalance != 700 {
			t.Errorf("totals = %+v, want income 1000 expense 300 net 700", body)
		}
		if body.Categories["groceries"] != 300 {
			t.Errorf("groceries = %v, want 300", body.Categories["groceries"])
		}
		if body.FamilyMembers["Ayse"] != 200 {
			t.Errorf("family member total = %v, want 200", body.FamilyMembers["Ayse"])
		}
		if len(body.ChartData) != 6 {
			t.Fatalf("chart points = %d, want 6", len(body.ChartData))
		}
		last := body.ChartData[5]
		if last.Month != "2024-05" || last.TotalExpense != 300 {
			t.Errorf("last chart point = %+v, want 2024-05 with expense 300", last)
		}
		if body.ChartData[4].TotalExpense != 50 {
			t.Errorf("april expense = %v, want 50", body.ChartData[4].TotalExpense)
		}
	})
}

func decodeBody(t *testing.T, response *presentationProtocols.HttpResponse, out any) {
	t.Helper()
	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		t.Fatal(err)
	}
}
