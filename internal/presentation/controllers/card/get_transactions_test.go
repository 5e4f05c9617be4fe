package card

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ailefin/finance-backend/internal/domain/models"
	presentationProtocols "github.com/ailefin/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockFindCardById struct {
	card *models.Card
}

func (m *mockFindCardById) Find(cardId primitive.ObjectID, userId primitive.ObjectID) (*models.Card, error) {
	if m.card == nil || m.card.Id != cardId || m.card.UserId != userId {
		return nil, nil
	}
	return m.card, nil
}

type mockFindTransactionsByCardId struct {
	transactions []models.Transaction
	calls        int
}

func (m *mockFindTransactionsByCardId) FindByCardId(_ primitive.ObjectID, _ primitive.ObjectID) ([]models.Transaction, error) {
	m.calls++
	return m.transactions, nil
}

func cardTransactionsRequest(cardId string, userId primitive.ObjectID) presentationProtocols.HttpRequest {
	req := httptest.NewRequest(http.MethodGet, "/card/"+cardId+"/transactions", nil)
	req.SetPathValue("cardId", cardId)
	req.Header.Set("UserId", userId.Hex())
	return presentationProtocols.HttpRequest{
		Body:      req.Body,
		Header:    req.Header,
		UrlParams: req.URL.Query(),
		Req:       req,
	}
}

func TestGetCardTransactions(t *testing.T) {
	userId := primitive.NewObjectID()
	cardId := primitive.NewObjectID()

	card := &models.Card{
		Id:       cardId,
		UserId:   userId,
		Name:     "main card",
		IsActive: true,
	}

	transactions := []models.Transaction{
		{
			Id:            primitive.NewObjectID(),
			UserId:        userId,
			Type:          models.TransactionTypeExpense,
			Category:      "groceries",
			Amount:        120,
			Date:          time.Date(2024, time.May, 12, 0, 0, 0, 0, time.UTC),
			PaymentMethod: "CARD",
			CardId:        &cardId,
		},
		{
			Id:            primitive.NewObjectID(),
			UserId:        userId,
			Type:          models.TransactionTypeExpense,
			Category:      models.CardPaymentCategory,
			Amount:        50,
			Date:          time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC),
			PaymentMethod: "CARD",
			CardId:        &cardId,
		},
	}

	controller := NewGetCardTransactionsController(
		&mockFindCardById{card: card},
		&mockFindTransactionsByCardId{transactions: transactions},
	)
	response := controller.Handle(cardTransactionsRequest(cardId.Hex(), userId))

	if response.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", response.StatusCode, http.StatusOK)
	}

	var body struct {
		Transactions []models.Transaction `json:"transactions"`
	}
	if err := json.NewDecoder(response.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}

	if len(body.Transactions) != 2 {
		t.Fatalf("transactions = %d, want 2", len(body.Transactions))
	}
	if body.Transactions[0].Category != "groceries" {
		t.Errorf("first category = %q, want %q", body.Transactions[0].Category, "groceries")
	}
	if body.Transactions[1].Category != models.CardPaymentCategory {
		t.Errorf("second category = %q, want %q", body.Transactions[1].Category, models.CardPaymentCategory)
	}
}

func TestGetCardTransactionsCardNotFound(t *testing.T) {
	userId := primitive.NewObjectID()
	findTransactions := &mockFindTransactionsByCardId{}

	controller := NewGetCardTransactionsController(
		&mockFindCardById{},
		findTransactions,
	)
	response := controller.Handle(cardTransactionsRequest(primitive.NewObjectID().Hex(), userId))

	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", response.StatusCode, http.StatusNotFound)
	}
	if findTransactions.calls != 0 {
		t.Errorf("transaction lookups = %d, want 0", findTransactions.calls)
	}
}
