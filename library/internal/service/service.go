package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Astemirdum/e-library/library/internal/model"
	"github.com/Astemirdum/e-library/library/internal/repository"
	"github.com/Astemirdum/e-library/pkg/auth"
	"github.com/Astemirdum/e-library/pkg/validate"
)

type Repository interface {
	repository.BookRepository
	repository.ReviewRepository
	repository.ReaderRepository
	repository.UserRepository
	repository.FinancialsRepository
	repository.TransactionRepository
	repository.FeeReceiptRepository
}

type Validator interface {
	Validate(i interface{}) error
}

type TokenIssuer interface {
	Sign(p auth.Profile) (string, time.Time, error)
}

type Payments interface {
	CreateCheckout(ctx context.Context, req model.CheckoutRequest) (model.CheckoutSession, error)
}

// Publisher ships financial events out of the service; it must not block.
type Publisher interface {
	Publish(ctx context.Context, ev model.FinancialEvent)
}

type Service struct {
	log  *zap.Logger
	repo Repository

	validator Validator
	regs      *Regulations
	tokens    TokenIssuer
	payments  Payments
	events    Publisher
	appURL    string
	now       func() time.Time
}

type Option func(*Service)

func WithValidator(v Validator) Option {
	return func(s *Service) { s.validator = v }
}

func WithTokenIssuer(t TokenIssuer) Option {
	return func(s *Service) { s.tokens = t }
}

func WithPayments(p Payments) Option {
	return func(s *Service) { s.payments = p }
}

func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.events = p }
}

func WithAppURL(url string) Option {
	return func(s *Service) { s.appURL = url }
}

func WithRegulations(r *Regulations) Option {
	return func(s *Service) { s.regs = r }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:       log.Named("service"),
		repo:      repo,
		validator: validate.NewCustomValidator(),
		regs:      NewRegulations(),
		events:    nopPublisher{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, model.FinancialEvent) {}

func (s *Service) Regulations() model.Regulations {
	return s.regs.Get()
}

func (s *Service) UpdateRegulations(req model.RegulationsRequest) (model.Regulations, error) {
	regs, err := s.regs.Update(req)
	if err != nil {
		return regs, err
	}
	s.log.Info("regulations updated", zap.Any("regulations", regs))
	return regs, nil
}

func (s *Service) publish(ctx context.Context, typ model.FinancialEventType, financialsID, entityID string, amount decimal.Decimal) {
	s.events.Publish(ctx, model.FinancialEvent{
		Type:             typ,
		UserFinancialsID: financialsID,
		EntityID:         entityID,
		Amount:           amount,
		Timestamp:        s.now().UTC(),
	})
}
