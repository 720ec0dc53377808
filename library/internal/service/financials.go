package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Astemirdum/e-library/library/internal/errs"
	"github.com/Astemirdum/e-library/library/internal/model"
	"github.com/Astemirdum/e-library/pkg/auth"
)

func (s *Service) ListFinancials(ctx context.Context) ([]model.UserFinancials, error) {
	return s.repo.ListFinancials(ctx)
}

func (s *Service) GetFinancials(ctx context.Context, id string) (model.UserFinancials, error) {
	return s.repo.GetFinancials(ctx, id)
}

// MyFinancials returns the financials of the authenticated user.
func (s *Service) MyFinancials(ctx context.Context) (model.UserFinancials, error) {
	p, ok := auth.FromContext(ctx)
	if !ok {
		return model.UserFinancials{}, errs.ErrNotLoggedIn
	}
	return s.repo.GetFinancialsByUser(ctx, p.ID)
}

func (s *Service) CreateFinancials(ctx context.Context, f model.UserFinancials) (model.UserFinancials, error) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if err := s.validator.Validate(f); err != nil {
		return model.UserFinancials{}, err
	}
	return s.repo.CreateFinancials(ctx, f)
}

func (s *Service) UpdateFinancials(ctx context.Context, f model.UserFinancials) (model.UserFinancials, error) {
	if err := s.validator.Validate(f); err != nil {
		return model.UserFinancials{}, err
	}
	return s.repo.UpdateFinancials(ctx, f)
}

func (s *Service) DeleteFinancials(ctx context.Context, id string) error {
	return s.repo.DeleteFinancials(ctx, id)
}

func (s *Service) ListTransactions(ctx context.Context) ([]model.UserTransaction, error) {
	return s.repo.ListTransactions(ctx)
}

func (s *Service) GetTransaction(ctx context.Context, id string) (model.UserTransaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

// CreateTransaction records a pending deposit. The balance is only
// credited once the transaction is updated to success.
func (s *Service) CreateTransaction(ctx context.Context, t model.UserTransaction) (model.UserTransaction, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = model.TransactionFailure
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = s.now()
	}
	if err := s.validator.Validate(t); err != nil {
		return model.UserTransaction{}, err
	}
	return s.repo.CreateTransaction(ctx, t)
}

func (s *Service) UpdateTransaction(ctx context.Context, t model.UserTransaction) (model.UserTransaction, error) {
	if err := s.validator.Validate(t); err != nil {
		return model.UserTransaction{}, err
	}
	updated, credited, err := s.repo.UpdateTransaction(ctx, t)
	if err != nil {
		return model.UserTransaction{}, err
	}
	if credited {
		s.publish(ctx, model.EventTransactionCredited, updated.UserFinancialsID, updated.ID, updated.Money)
	}
	return updated, nil
}

// SetTransactionStatus moves a stored transaction to status, crediting
// the balance the same way an update does.
func (s *Service) SetTransactionStatus(ctx context.Context, id string, status model.TransactionStatus) error {
	t, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		return err
	}
	t.Status = status
	_, err = s.UpdateTransaction(ctx, t)
	return err
}

func (s *Service) DeleteTransaction(ctx context.Context, id string) error {
	return s.repo.DeleteTransaction(ctx, id)
}

func (s *Service) ListFeeReceipts(ctx context.Context) ([]model.FeeReceipt, error) {
	return s.repo.ListFeeReceipts(ctx)
}

func (s *Service) GetFeeReceipt(ctx context.Context, id string) (model.FeeReceipt, error) {
	return s.repo.GetFeeReceipt(ctx, id)
}

// CreateFeeReceipt stores the receipt and debits the linked financials.
func (s *Service) CreateFeeReceipt(ctx context.Context, r model.FeeReceipt) (model.FeeReceipt, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if err := s.validator.Validate(r); err != nil {
		return model.FeeReceipt{}, err
	}
	if r.AmountPaid.GreaterThan(r.TotalDebt) {
		return model.FeeReceipt{}, errs.ErrOverpaid
	}
	created, err := s.repo.CreateFeeReceipt(ctx, r)
	if err != nil {
		return model.FeeReceipt{}, err
	}
	s.publish(ctx, model.EventFeeReceiptPaid, created.UserFinancialsID, created.ID, created.AmountPaid)
	return created, nil
}

func (s *Service) DeleteFeeReceipt(ctx context.Context, id string) error {
	return s.repo.DeleteFeeReceipt(ctx, id)
}

// TopUp opens a checkout for the authenticated user backed by a pending
// transaction. baseURL is where the cancel link of the checkout points to.
func (s *Service) TopUp(ctx context.Context, money decimal.Decimal, baseURL string) (model.CheckoutSession, error) {
	if !money.IsPositive() {
		return model.CheckoutSession{}, errs.ErrNoMoney
	}
	p, ok := auth.FromContext(ctx)
	if !ok {
		return model.CheckoutSession{}, errs.ErrNotLoggedIn
	}
	if s.payments == nil {
		return model.CheckoutSession{}, errors.New("payments are not configured")
	}

	f, err := s.repo.GetFinancialsByUser(ctx, p.ID)
	if errors.Is(err, errs.ErrFinancialsNotFound) {
		f, err = s.repo.CreateFinancials(ctx, model.UserFinancials{ID: uuid.NewString(), UserID: p.ID})
	}
	if err != nil {
		return model.CheckoutSession{}, err
	}

	t, err := s.CreateTransaction(ctx, model.UserTransaction{
		UserFinancialsID: f.ID,
		Money:            money,
		Status:           model.TransactionFailure,
	})
	if err != nil {
		return model.CheckoutSession{}, err
	}

	sess, err := s.payments.CreateCheckout(ctx, model.CheckoutRequest{
		UserID:           p.ID,
		UserEmail:        p.Email,
		UserFinancialsID: f.ID,
		TransactionID:    t.ID,
		Money:            money,
		CancelURL:        fmt.Sprintf("%s/api/v1/user-transactions?user=%s&status=fail", baseURL, f.ID),
	})
	if err != nil {
		s.log.Error("create checkout", zap.String("transaction", t.ID), zap.Error(err))
		return model.CheckoutSession{}, err
	}
	s.publish(ctx, model.EventTopUpStarted, f.ID, t.ID, money)
	return sess, nil
}
