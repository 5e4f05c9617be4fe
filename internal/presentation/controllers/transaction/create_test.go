package transaction

import (
	"bytes"
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

type mockFindCardById struct {
	findFn func(cardId, userId primitive.ObjectID) (*models.Card, error)
}

func (m *mockFindCardById) Find(cardId, userId primitive.ObjectID) (*models.Card, error) {
	return m.findFn(cardId, userId)
}

type mockUpdateCard struct {
	updateFn func(card *models.Card) (*models.Card, error)
	updated  []*models.Card
}

func (m *mockUpdateCard) Update(card *models.Card) (*models.Card, error) {
	m.updated = append(m.updated, card)
	if m.updateFn != nil {
		return m.updateFn(card)
	}
	return card, nil
}

type mockCreateTransaction struct {
	createErr error
	created   []*models.Transaction
}

func (m *mockCreateTransaction) Create(transaction *models.Transaction) (*models.Transaction, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	transaction.Id = primitive.NewObjectID()
	m.created = append(m.created, transaction)
	return transaction, nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func createRequest(t *testing.T, userId primitive.ObjectID, body map[string]any) presentationProtocols.HttpRequest {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/transaction", bytes.NewReader(raw))
	req.Header.Set("UserId", userId.Hex())

	return presentationProtocols.HttpRequest{
		Body:      req.Body,
		Header:    req.Header,
		UrlParams: req.URL.Query(),
		Req:       req,
	}
}

func TestCreateTransaction(t *testing.T) {
	userId := primitive.NewObjectID()
	cardId := primitive.NewObjectID()
	clock := fixedClock{now: time.Date(2024, time.June, 5, 9, 0, 0, 0, time.UTC)}

	limit := 500.0
	baseCard := func() models.Card {
		return models.Card{
			Id:        cardId,
			UserId:    userId,
			Name:      "Main Card",
			CardLimit: &limit,
			TotalDebt: 450,
			Currency:  "TRY",
			IsActive:  true,
			Version:   2,
		}
	}

	t.Run("card expense accrues onto the card debt", func(t *testing.T) {
		card := baseCard()
		findCard := &mockFindCardById{findFn: func(_, _ primitive.ObjectID) (*models.Card, error) { return &card, nil }}
		updates := &mockUpdateCard{}
		transactions := &mockCreateTransaction{}

		controller := NewCreateTransactionController(transactions, findCard, updates, clock)
		response := controller.Handle(createRequest(t, userId, map[string]any{
			"type":     "EXPENSE",
			"category": "groceries",
			"amount":   30,
			"cardId":   cardId.Hex(),
		}))

		if response.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want %d", response.StatusCode, http.StatusCreated)
		}
		if len(updates.updated) != 1 || updates.updated[0].TotalDebt != 480 {
			t.Fatalf("card update = %+v, want TotalDebt 480", updates.updated)
		}
		if len(transactions.created) != 1 {
			t.Fatalf("transactions created = %d, want 1", len(transactions.created))
		}
		created := transactions.created[0]
		if created.PaymentMethod != "CARD" {
			t.Errorf("PaymentMethod = %s, want CARD for a card expense", created.PaymentMethod)
		}
		if created.CardId == nil || *created.CardId != cardId {
			t.Error("transaction must reference the charged card")
		}
	})

	t.Run("rejects an expense beyond the available limit and persists nothing", func(t *testing.T) {
		card := baseCard()
		findCard := &mockFindCardById{findFn: func(_, _ primitive.ObjectID) (*models.Card, error) { return &card, nil }}
		updates := &mockUpdateCard{}
		transactions := &mockCreateTransaction{}

		controller := NewCreateTransactionController(transactions, findCard, updates, clock)
		response := controller.Handle(createRequest(t, userId, map[string]any{
			"type":     "EXPENSE",
			"category": "electronics",
			"amount":   60,
			"cardId":   cardId.Hex(),
		}))

		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", response.StatusCode, http.StatusBadRequest)
		}
		if len(updates.updated) != 0 {
			t.Error("card must stay untouched on a rejected expense")
		}
		if len(transactions.created) != 0 {
			t.Error("no transaction may be written on a rejected expense")
		}

		var body InsufficientLimitResponse
		if err := json.NewDecoder(response.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		if body.AvailableLimit != 50 || body.Currency != "TRY" {
			t.Errorf("body = %+v, want availableLimit 50 TRY", body)
		}
	})

	t.Run("income on a card never touches the debt", func(t *testing.T) {
		card := baseCard()
		findCard := &mockFindCardById{findFn: func(_, _ primitive.ObjectID) (*models.Card, error) { return &card, nil }}
		updates := &mockUpdateCard{}
		transactions := &mockCreateTransaction{}

		controller := NewCreateTransactionController(transactions, findCard, updates, clock)
		response := controller.Handle(createRequest(t, userId, map[string]any{
			"type":     "INCOME",
			"category": "refund",
			"amount":   30,
			"cardId":   cardId.Hex(),
		}))

		if response.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want %d", response.StatusCode, http.StatusCreated)
		}
		if len(updates.updated) != 0 {
			t.Error("income must not accrue card debt")
		}
	})

	t.Run("unknown card yields 404", func(t *testing.T) {
		findCard := &mockFindCardById{findFn: func(_, _ primitive.ObjectID) (*models.Card, error) { return nil, nil }}
		controller := NewCreateTransactionController(&mockCreateTransaction{}, findCard, &mockUpdateCard{}, clock)

		response := controller.Handle(createRequest(t, userId, map[string]any{
			"type":     "EXPENSE",
			"category": "groceries",
			"amount":   10,
			"cardId":   cardId.Hex(),
		}))
		if response.StatusCode != http.StatusNotFound {
			t.Fatalf("status = %d, want %d", response.StatusCode, http.StatusNotFound)
		}
	})

	t.Run("rolls back the accrual when the transaction insert fails", func(t *testing.T) {
		card := baseCard()
		findCard := &mockFindCardById{findFn: func(_, _ primitive.ObjectID) (*models.Card, error) { return &card, nil }}
		updates := &mockUpdateCard{}
		transactions := &mockCreateTransaction{createErr: errFakeInsert}

		controller := NewCreateTransactionController(transactions, findCard, updates, clock)
		response := controller.Handle(createRequest(t, userId, map[string]any{
			"type":     "EXPENSE",
			"category": "groceries",
			"amount":   30,
			"cardId":   cardId.Hex(),
		}))

		if response.StatusCode != http.StatusInternalServerError {
			t.Fatalf("status = %d, want %d", response.StatusCode, http.StatusInternalServerError)
		}
		if len(updates.updated) != 2 {
			t.Fatalf("card updates = %d, want accrual plus compensation", len(updates.updated))
		}
		if updates.updated[1].TotalDebt != 450 {
			t.Errorf("compensated debt = %v, want 450", updates.updated[1].TotalDebt)
		}
	})

	t.Run("retries the card update once on a version conflict", func(t *testing.T) {
		card := baseCard()
		findCard := &mockFindCardById{findFn: func(_, _ primitive.ObjectID) (*models.Card, error) {
			copy := card
			return &copy, nil
		}}
		conflicts := 0
		updates := &mockUpdateCard{updateFn: func(c *models.Card) (*models.Card, error) {
			if conflicts == 0 {
				conflicts++
				return nil, usecase.ErrVersionConflict
			}
			return c, nil
		}}
		transactions := &mockCreateTransaction{}

		controller := NewCreateTransactionController(transactions, findCard, updates, clock)
		response := controller.Handle(createRequest(t, userId, map[string]any{
			"type":     "EXPENSE",
			"category": "groceries",
			"amount":   30,
			"cardId":   cardId.Hex(),
		}))

		if response.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want %d", response.StatusCode, http.StatusCreated)
		}
		if len(updates.updated) != 2 {
			t.Errorf("update attempts = %d, want 2", len(updates.updated))
		}
		if len(transactions.created) != 1 {
			t.Errorf("transactions created = %d, want exactly 1", len(transactions.created))
		}
	})
}

var errFakeInsert = errors.New("insert failed")
