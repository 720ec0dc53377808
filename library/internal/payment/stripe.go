package payment

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"

	"github.com/Astemirdum/e-library/library/config"
	"github.com/Astemirdum/e-library/library/internal/errs"
	"github.com/Astemirdum/e-library/library/internal/model"
	"github.com/Astemirdum/e-library/pkg/circuit_breaker"
)

const (
	productName        = "The Payment Card"
	productDescription = "This is the card used to user depositing into their account!"
	productImage       = "https://i.pinimg.com/564x/9a/95/6a/9a956ab8bd50e129748b0760e869e3b2.jpg"
)

type sessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// Stripe opens hosted checkout sessions for balance top-ups.
type Stripe struct {
	log      *zap.Logger
	cfg      config.Stripe
	sessions sessionCreator
	cb       circuit_breaker.CircuitBreaker
}

func NewStripe(cfg config.Stripe, log *zap.Logger) *Stripe {
	return newStripe(cfg, log, &session.Client{
		B:   stripe.GetBackend(stripe.APIBackend),
		Key: cfg.SecretKey,
	})
}

func newStripe(cfg config.Stripe, log *zap.Logger, sessions sessionCreator) *Stripe {
	return &Stripe{
		log:      log.Named("stripe"),
		cfg:      cfg,
		sessions: sessions,
		cb:       circuit_breaker.New(100, time.Second, 0.2, 2),
	}
}

func (s *Stripe) CB() circuit_breaker.CircuitBreaker {
	return s.cb
}

// UnitAmount converts money to the smallest currency unit.
func UnitAmount(money decimal.Decimal) int64 {
	return money.Shift(2).Round(0).IntPart()
}

func (s *Stripe) params(ctx context.Context, req model.CheckoutRequest) *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(s.cfg.SuccessURL + "/" + req.UserID),
		CancelURL:          stripe.String(req.CancelURL),
		CustomerEmail:      stripe.String(req.UserEmail),
		ClientReferenceID:  stripe.String(req.UserID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(s.cfg.Currency),
					UnitAmount: stripe.Int64(UnitAmount(req.Money)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(productName),
						Description: stripe.String(productDescription),
						Images:      stripe.StringSlice([]string{productImage}),
					},
				},
			},
		},
	}
	params.Context = ctx
	params.AddMetadata("transaction_id", req.TransactionID)
	params.AddMetadata("user_financials_id", req.UserFinancialsID)
	return params
}

func (s *Stripe) CreateCheckout(ctx context.Context, req model.CheckoutRequest) (model.CheckoutSession, error) {
	var sess *stripe.CheckoutSession
	err := s.cb.Call(func() (err error) {
		sess, err = s.sessions.New(s.params(ctx, req))
		return err
	})
	if err != nil {
		if errors.Is(err, circuit_breaker.ErrOpenCB) {
			return model.CheckoutSession{}, errs.New(http.StatusServiceUnavailable, "Payment Service unavailable")
		}
		return model.CheckoutSession{}, errors.Wrap(err, "stripe checkout")
	}
	s.log.Info("checkout session created",
		zap.String("session", sess.ID),
		zap.String("transaction", req.TransactionID))

	return model.CheckoutSession{
		ID:                sess.ID,
		URL:               sess.URL,
		Status:            string(sess.Status),
		PaymentStatus:     string(sess.PaymentStatus),
		AmountTotal:       sess.AmountTotal,
		Currency:          string(sess.Currency),
		CustomerEmail:     sess.CustomerEmail,
		ClientReferenceID: sess.ClientReferenceID,
	}, nil
}
