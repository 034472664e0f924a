package web

import (
	"fmt"
	"html"
	"net/http"

	"github.com/go-chi/chi/v5"

	"quiz-platform/internal/domain/model"
	"quiz-platform/internal/infra/adapters/payment"
)

func (s *Server) handlePlans(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Data []model.PlanConfig `json:"data"`
	}{Data: s.paymentUC.Plans(r.Context())})
}

type orderCreateRequest struct {
	Plan        string  `json:"plan"`
	Amount      *string `json:"amount,omitempty"` // optional decimal override, e.g. "14.99"
	Description string  `json:"description,omitempty"`
}

type orderCreateResponse struct {
	TransactionID string `json:"transaction_id"`
	OrderID       string `json:"order_id"`
	ApproveURL    string `json:"approve_url"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
}

func (s *Server) handleOrderCreate(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	var req orderCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var override *int64
	if req.Amount != nil {
		cents, err := payment.ParseAmount(*req.Amount)
		if err != nil {
			writeError(w, r, s.log, http.StatusBadRequest, "invalid amount")
			return
		}
		override = &cents
	}

	tr, approveURL, err := s.paymentUC.CreateOrder(r.Context(), user.ID, model.PlanName(req.Plan), override, req.Description)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, orderCreateResponse{
		TransactionID: tr.ID,
		OrderID:       tr.PayPalOrderID,
		ApproveURL:    approveURL,
		Amount:        payment.FormatCents(tr.AmountCents),
		Currency:      tr.Currency,
	})
}

type transactionResponse struct {
	ID             string  `json:"id"`
	OrderID        string  `json:"order_id"`
	Plan           string  `json:"plan"`
	Amount         string  `json:"amount"`
	Currency       string  `json:"currency"`
	Status         string  `json:"status"`
	Description    string  `json:"description,omitempty"`
	SubscriptionID *string `json:"subscription_id,omitempty"`
	CreatedAt      string  `json:"created_at"`
	CompletedAt    *string `json:"completed_at,omitempty"`
}

func publicTransaction(t *model.Transaction) transactionResponse {
	out := transactionResponse{
		ID:             t.ID,
		OrderID:        t.PayPalOrderID,
		Plan:           string(t.Plan),
		Amount:         payment.FormatCents(t.AmountCents),
		Currency:       t.Currency,
		Status:         string(t.Status),
		Description:    t.Description,
		SubscriptionID: t.SubscriptionID,
		CreatedAt:      t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if t.CompletedAt != nil {
		ts := t.CompletedAt.Format("2006-01-02T15:04:05Z07:00")
		out.CompletedAt = &ts
	}
	return out
}

func (s *Server) handleOrderCapture(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	tr, err := s.paymentUC.CaptureOrder(r.Context(), user.ID, chi.URLParam(r, "orderID"))
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, publicTransaction(tr))
}

func (s *Server) handleSubscriptionGet(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	view, err := s.paymentUC.Subscription(r.Context(), user.ID)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleTransactionList(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	transactions, err := s.paymentUC.Transactions(r.Context(), user.ID)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	out := make([]transactionResponse, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, publicTransaction(t))
	}
	writeJSON(w, http.StatusOK, struct {
		Data []transactionResponse `json:"data"`
	}{Data: out})
}

// The provider redirects the payer's browser here after approval. The page
// tells the client application which order to capture; the capture itself
// happens over the authenticated API.
func (s *Server) handlePaymentSuccess(w http.ResponseWriter, r *http.Request) {
	orderID := r.URL.Query().Get("token")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><title>Payment Approved</title></head>
<body>
<h1>Payment approved</h1>
<p>Return to the app to finish your purchase.</p>
<p>Order: <code>%s</code></p>
</body>
</html>`, html.EscapeString(orderID))
}

func (s *Server) handlePaymentCancel(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, `<!DOCTYPE html>
<html>
<head><title>Payment Cancelled</title></head>
<body>
<h1>Payment cancelled</h1>
<p>No charge was made. You can retry from the app at any time.</p>
</body>
</html>`)
}
