package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/Astemirdum/e-library/library/internal/errs"
	"github.com/Astemirdum/e-library/library/internal/model"
)

type setTransactionStatus func(ctx context.Context, id string, status model.TransactionStatus) error

// Consumer applies payment outcomes from the transaction status topic.
type Consumer struct {
	setStatusHandler setTransactionStatus
	log              *zap.Logger
	ready            chan bool
}

func NewConsumer(setStatus setTransactionStatus, log *zap.Logger) *Consumer {
	return &Consumer{
		setStatusHandler: setStatus,
		log:              log.Named("consumer"),
		ready:            make(chan bool),
	}
}

// Ready is closed once the first session has been set up.
func (consumer *Consumer) Ready() <-chan bool {
	return consumer.ready
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	select {
	case <-consumer.ready:
	default:
		close(consumer.ready)
	}
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			if consumer.handle(session.Context(), message) {
				session.MarkMessage(message, "")
			}
		case <-session.Context().Done():
			return nil
		}
	}
}

// handle reports whether the message is done with and can be committed.
func (consumer *Consumer) handle(ctx context.Context, message *sarama.ConsumerMessage) bool {
	var msg model.TransactionStatusMsg
	if err := json.Unmarshal(message.Value, &msg); err != nil {
		consumer.log.Error("unmarshal transaction status", zap.Error(err))
		return true
	}
	if msg.TransactionID == "" ||
		(msg.Status != model.TransactionSuccess && msg.Status != model.TransactionFailure) {
		consumer.log.Error("invalid transaction status", zap.String("value", string(message.Value)))
		return true
	}

	if err := consumer.setStatusHandler(ctx, msg.TransactionID, msg.Status); err != nil {
		consumer.log.Error("consumer.setStatusHandler",
			zap.String("transaction", msg.TransactionID), zap.Error(err))
		// client errors will not heal on redelivery
		return errs.Code(err) < 500
	}

	consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
	return true
}
