package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Money is written to JSON as a number.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type TransactionStatus string

const (
	TransactionSuccess TransactionStatus = "success"
	TransactionFailure TransactionStatus = "failure"
)

type UserFinancials struct {
	ID        string          `json:"id" db:"id"`
	UserID    string          `json:"user" db:"user_id" validate:"required,uuid"`
	Money     decimal.Decimal `json:"money" db:"money"`
	TotalDebt decimal.Decimal `json:"totalDebt" db:"total_debt" validate:"gte=0"`
}

// UserTransaction is a deposit attempt, credited to the balance once it succeeds.
type UserTransaction struct {
	ID               string            `json:"id" db:"id"`
	UserFinancialsID string            `json:"userFinancials" db:"user_financials_id" validate:"required,uuid"`
	Money            decimal.Decimal   `json:"money" db:"money" validate:"gte=0"`
	Status           TransactionStatus `json:"status" db:"status" validate:"required,oneof=success failure"`
	CreatedAt        time.Time         `json:"createdAt" db:"created_at"`
}

// FeeReceipt records a debt payment.
type FeeReceipt struct {
	ID               string          `json:"id" db:"id"`
	UserFinancialsID string          `json:"userFinancials" db:"user_financials_id" validate:"required,uuid"`
	Balance          string          `json:"balance" db:"balance" validate:"required,max=255"`
	TotalDebt        decimal.Decimal `json:"totalDebt" db:"total_debt" validate:"gte=0"`
	AmountPaid       decimal.Decimal `json:"amountPaid" db:"amount_paid" validate:"gte=0"`
}

func (r FeeReceipt) RemainingBalance() decimal.Decimal {
	return r.TotalDebt.Sub(r.AmountPaid)
}

func (r FeeReceipt) MarshalJSON() ([]byte, error) {
	type receipt FeeReceipt
	return json.Marshal(struct {
		receipt
		RemainingBalance decimal.Decimal `json:"remainingBalance"`
	}{
		receipt:          receipt(r),
		RemainingBalance: r.RemainingBalance(),
	})
}

type TopUpRequest struct {
	Money decimal.Decimal `json:"money"`
}

type CheckoutSession struct {
	ID                string `json:"id"`
	URL               string `json:"url"`
	Status            string `json:"status"`
	PaymentStatus     string `json:"payment_status"`
	AmountTotal       int64  `json:"amount_total"`
	Currency          string `json:"currency"`
	CustomerEmail     string `json:"customer_email"`
	ClientReferenceID string `json:"client_reference_id"`
}

type CheckoutRequest struct {
	UserID           string
	UserEmail        string
	UserFinancialsID string
	TransactionID    string
	Money            decimal.Decimal
	CancelURL        string
}

type TopUpResponse struct {
	Status  string          `json:"status"`
	Session CheckoutSession `json:"session"`
}

type FinancialEventType string

const (
	EventTransactionCredited FinancialEventType = "transaction.credited"
	EventFeeReceiptPaid      FinancialEventType = "fee_receipt.paid"
	EventTopUpStarted        FinancialEventType = "top_up.started"
)

type FinancialEvent struct {
	Type             FinancialEventType `json:"type"`
	UserFinancialsID string             `json:"userFinancials"`
	EntityID         string             `json:"entityId"`
	Amount           decimal.Decimal    `json:"amount"`
	Timestamp        time.Time          `json:"timestamp"`
}

// TransactionStatusMsg arrives from the payment side once a checkout settles.
type TransactionStatusMsg struct {
	TransactionID string            `json:"transactionId"`
	Status        TransactionStatus `json:"status"`
}
