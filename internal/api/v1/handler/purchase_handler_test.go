package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amozeshgah/internal/model"
)

func purchaseBody(courseID, userID string, amount any) string {
	b, _ := json.Marshal(map[string]any{"courseId": courseID, "userId": userID, "amount": amount})
	return string(b)
}

func TestPurchaseHandler(t *testing.T) {
	store := newStore()
	h := NewPurchaseHandler(store, newValidator(), nopLogger)

	rec := serve(t, h.RegisterRoutes, http.MethodPost, "/purchase", purchaseBody(courseID, aliceID, 49.99))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Purchase successful"}`, rec.Body.String())

	require.Len(t, store.purchases, 1)
	assert.Equal(t, aliceID, store.purchases[0].UserID)
	assert.Equal(t, courseID, store.purchases[0].CourseID)
	assert.Equal(t, 49.99, store.purchases[0].Amount)
}

func TestPurchaseHandlerNumericStringAmount(t *testing.T) {
	store := newStore()
	h := NewPurchaseHandler(store, newValidator(), nopLogger)

	rec := serve(t, h.RegisterRoutes, http.MethodPost, "/purchase", purchaseBody(courseID, aliceID, "20.50"))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 20.5, store.purchases[0].Amount)
}

func TestPurchaseHandlerUppercaseIDs(t *testing.T) {
	store := newStore()
	h := NewPurchaseHandler(store, newValidator(), nopLogger)

	rec := serve(t, h.RegisterRoutes, http.MethodPost, "/purchase",
		purchaseBody(strings.ToUpper(courseID), strings.ToUpper(aliceID), 49.99))
	require.Equal(t, http.StatusCreated, rec.Code)

	require.Len(t, store.purchases, 1)
	assert.Equal(t, aliceID, store.purchases[0].UserID)
	assert.Equal(t, courseID, store.purchases[0].CourseID)
}

func TestPurchaseHandlerExponentAmount(t *testing.T) {
	store := newStore()
	h := NewPurchaseHandler(store, newValidator(), nopLogger)

	body := fmt.Sprintf(`{"courseId":%q,"userId":%q,"amount":1e2}`, courseID, aliceID)
	rec := serve(t, h.RegisterRoutes, http.MethodPost, "/purchase", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 100.0, store.purchases[0].Amount)
}

func TestPurchaseHandlerFailuresAre500(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"courseId":`},
		{"course id not a uuid", purchaseBody("course-1", aliceID, 10)},
		{"user id not a uuid", purchaseBody(courseID, "42", 10)},
		{"missing amount", fmt.Sprintf(`{"courseId":%q,"userId":%q}`, courseID, aliceID)},
		{"amount not numeric", purchaseBody(courseID, aliceID, "ten")},
		{"unknown course", purchaseBody("11111111-2222-4333-8444-555555555555", aliceID, 10)},
		{"unknown user", purchaseBody(courseID, "11111111-2222-4333-8444-555555555555", 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore()
			h := NewPurchaseHandler(store, newValidator(), nopLogger)

			rec := serve(t, h.RegisterRoutes, http.MethodPost, "/purchase", tt.body)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"error":"Failed to insert purchase"}`, rec.Body.String())
			assert.Empty(t, store.purchases)
		})
	}
}

func TestPurchaseThenStudentsIncludesRow(t *testing.T) {
	store := newStore()
	purchases := NewPurchaseHandler(store, newValidator(), nopLogger)
	students := NewStudentHandler(store, nopLogger)

	rec := serve(t, purchases.RegisterRoutes, http.MethodPost, "/purchase", purchaseBody(courseID, aliceID, 49.99))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(t, students.RegisterRoutes, http.MethodGet, "/students?tutorId="+tutorID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []model.StudentPurchase
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, courseID, rows[0].CourseID)
	assert.Equal(t, 49.99, rows[0].Amount)
	assert.Equal(t, model.PaymentCompleted, rows[0].PaymentStatus)
}
