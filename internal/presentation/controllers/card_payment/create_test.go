package card_payment

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/domain/usecase"
	presentationProtocols "github.com/ailefin/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ---- mock implementations ----

type mockFindCardById struct {
	findFn func(cardId, userId primitive.ObjectID) (*models.Card, error)
}

func (m *mockFindCardById) Find(cardId, userId primitive.ObjectID) (*models.Card, error) {
	return m.findFn(cardId, userId)
}

type mockCreatePayment struct {
	created []*models.CardPayment
}

func (m *mockCreatePayment) Create(payment *models.CardPayment) (*models.CardPayment, error) {
	payment.Id = primitive.NewObjectID()
	m.created = append(m.created, payment)
	return payment, nil
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
	created []*models.Transaction
}

func (m *mockCreateTransaction) Create(transaction *models.Transaction) (*models.Transaction, error) {
	transaction.Id = primitive.NewObjectID()
	m.created = append(m.created, transaction)
	return transaction, nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// ---- helpers ----

func paymentRequest(t *testing.T, cardId, userId primitive.ObjectID, body map[string]any) presentationProtocols.HttpRequest {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/card/"+cardId.Hex()+"/payments", bytes.NewReader(raw))
	req.SetPathValue("cardId", cardId.Hex())
	req.Header.Set("UserId", userId.Hex())

	return presentationProtocols.HttpRequest{
		Body:      req.Body,
		Header:    req.Header,
		UrlParams: req.URL.Query(),
		Req:       req,
	}
}

func decodeResponse(t *testing.T, response *presentationProtocols.HttpResponse, out any) {
	t.Helper()
	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("decoding %s: %v", raw, err)
	}
}

func testCard(cardId, userId primitive.ObjectID) models.Card {
	return models.Card{
		Id:             cardId,
		UserId:         userId,
		Name:           "Main Card",
		TotalDebt:      100,
		MinimumPayment: 20,
		DueDate:        time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		Currency:       "TRY",
		IsActive:       true,
		Version:        3,
	}
}

// ---- tests ----

func TestCreateCardPayment(t *testing.T) {
	cardId := primitive.NewObjectID()
	userId := primitive.NewObjectID()
	clock := fixedClock{now: time.Date(2024, time.March, 12, 10, 0, 0, 0, time.UTC)}

	t.Run("records payment, rolls due date and mirrors a transaction", func(t *testing.T) {
		card := testCard(cardId, userId)
		findCard := &mockFindCardById{findFn: func(_, _ primitive.ObjectID) (*models.Card, error) { return &card, nil }}
		payments := &mockCreatePayment{}
		updates := &mockUpdateCard{}
		transactions := &mockCreateTransaction{}

		controller := NewCreateCardPaymentController(findCard, payments, updates, transactions, clock)
		response := controller.Handle(paymentRequest(t, cardId, userId, map[string]any{
			"amount":           25,
			"paymentDate":      "2024-03-10",
			"isMinimumPayment": true,
		}))

		if response.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want %d", response.StatusCode, http.StatusCreated)
		}

		if len(payments.created) != 1 {
			t.Fatalf("payments created = %d, want 1", len(payments.created))
		}
		if payments.created[0].Amount != 25 || !payments.created[0].IsMinimumPayment {
			t.Errorf("payment recorded wrong: %+v", payments.created[0])
		}

		if len(updates.updated) != 1 {
			t.Fatalf("card updates = %d, want 1", len(updates.updated))
		}
		got := updates.updated[0]
		if got.TotalDebt != 75 {
			t.Errorf("TotalDebt = %v, want 75", got.TotalDebt)
		}
		if want := time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC); !got.DueDate.Equal(want) {
			t.Errorf("DueDate = %v, want %v", got.DueDate, want)
		}
		if !got.MinPaymentDoneThisMonth {
			t.Error("monthly flag should be set by a qualifying minimum payment")
		}

		if len(transactions.created) != 1 {
			t.Fatalf("mirrored transactions = %d, want 1", len(transactions.created))
		}
		mirror := transactions.created[0]
		if mirror.Type != models.TransactionTypeExpense || mirror.Category != models.CardPaymentCategory {
			t.Errorf("mirror labeled wrong: type=%s category=%s", mirror.Type, mirror.Category)
		}
		if mirror.CardId == nil || *mirror.CardId != cardId {
			t.Error("mirror must reference the paid card")
		}
		if want := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC); !mirror.Date.Equal(want) {
			t.Errorf("mirror date = %v, want payment date %v", mirror.Date, want)
		}

		var body map[string]json.RawMessage
		decodeResponse(t, response, &body)
		if _, ok := body["payment"]; !ok {
			t.Error("response missing payment")
		}
		if _, ok := body["card"]; !ok {
			t.Error("response missing card")
		}
	})

	t.Run("returns 404 for an unknown card", func(t *testing.T) {
		findCard := &mockFindCardById{findFn: func(_, _ primitive.ObjectID) (*models.Card, error) { return nil, nil }}
		controller := NewCreateCardPaymentController(findCard, &mockCreatePayment{}, &mockUpdateCard{}, &mockCreateTransaction{}, clock)

		response := controller.Handle(paymentRequest(t, cardId, userId, map[string]any{"amount": 10}))
		if response.StatusCode != http.StatusNotFound {
			t.Fatalf("status = %d, want %d", response.StatusCode, http.StatusNotFound)
		}
	})

	t.Run("retries once on a version conflict", func(t *testing.T) {
		card := testCard(cardId, userId)
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

		controller := NewCreateCardPaymentController(findCard, &mockCreatePayment{}, updates, transactions, clock)
		response := controller.Handle(paymentRequest(t, cardId, userId, map[string]any{"amount": 100}))

		if response.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want %d", response.StatusCode, http.StatusCreated)
		}
		if len(updates.updated) != 2 {
			t.Errorf("update attempts = %d, want 2", len(updates.updated))
		}
		if len(transactions.created) != 1 {
			t.Errorf("mirrored transactions = %d, want exactly 1", len(transactions.created))
		}
	})

	t.Run("surfaces a second conflict as 409", func(t *testing.T) {
		card := testCard(cardId, userId)
		findCard := &mockFindCardById{findFn: func(_, _ primitive.ObjectID) (*models.Card, error) {
			copy := card
			return &copy, nil
		}}
		updates := &mockUpdateCard{updateFn: func(*models.Card) (*models.Card, error) {
			return nil, usecase.ErrVersionConflict
		}}
		transactions := &mockCreateTransaction{}

		controller := NewCreateCardPaymentController(findCard, &mockCreatePayment{}, updates, transactions, clock)
		response := controller.Handle(paymentRequest(t, cardId, userId, map[string]any{"amount": 100}))

		if response.StatusCode != http.StatusConflict {
			t.Fatalf("status = %d, want %d", response.StatusCode, http.StatusConflict)
		}
		if len(transactions.created) != 0 {
			t.Error("no mirror should be written when the card update fails")
		}
	})

	t.Run("defaults the payment date to now", func(t *testing.T) {
		card := testCard(cardId, userId)
		findCard := &mockFindCardById{findFn: func(_, _ primitive.ObjectID) (*models.Card, error) { return &card, nil }}
		payments := &mockCreatePayment{}

		controller := NewCreateCardPaymentController(findCard, payments, &mockUpdateCard{}, &mockCreateTransaction{}, clock)
		response := controller.Handle(paymentRequest(t, cardId, userId, map[string]any{"amount": 10}))

		if response.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want %d", response.StatusCode, http.StatusCreated)
		}
		if !payments.created[0].PaymentDate.Equal(clock.now) {
			t.Errorf("PaymentDate = %v, want clock now %v", payments.created[0].PaymentDate, clock.now)
		}
	})
}
