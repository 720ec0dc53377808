package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/Astemirdum/e-library/library/internal/model"
)

type financialLog struct {
	producer sarama.AsyncProducer
	topic    string
	log      *zap.Logger
}

// NewFinancialLog publishes financial events to topic. A nil producer
// yields a publisher that drops everything.
func NewFinancialLog(producer sarama.AsyncProducer, topic string, log *zap.Logger) *financialLog {
	if producer == nil {
		return nil
	}
	return &financialLog{
		producer: producer,
		topic:    topic,
		log:      log.Named("events"),
	}
}

func (l *financialLog) Publish(ctx context.Context, ev model.FinancialEvent) {
	if l == nil {
		return
	}
	data, err := json.Marshal(ev)
	if err != nil {
		l.log.Error("marshal event", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{
		Topic: l.topic,
		Key:   sarama.StringEncoder(ev.UserFinancialsID),
		Value: sarama.ByteEncoder(data),
	}
	select {
	case l.producer.Input() <- msg:
	case <-ctx.Done():
		l.log.Warn("event dropped", zap.String("type", string(ev.Type)), zap.Error(ctx.Err()))
	}
}
