package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/Astemirdum/e-library/library/config"
	"github.com/Astemirdum/e-library/library/internal/handler"
	"github.com/Astemirdum/e-library/library/internal/payment"
	"github.com/Astemirdum/e-library/library/internal/repository"
	"github.com/Astemirdum/e-library/library/internal/server"
	"github.com/Astemirdum/e-library/library/internal/service"
	"github.com/Astemirdum/e-library/library/migrations"
	"github.com/Astemirdum/e-library/pkg/auth"
	"github.com/Astemirdum/e-library/pkg/kafka"
	"github.com/Astemirdum/e-library/pkg/logger"
	"github.com/Astemirdum/e-library/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "library")
	defer log.Sync() //nolint:errcheck

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	tokens := auth.NewTokenManager(cfg.Auth)
	opts := []service.Option{
		service.WithTokenIssuer(tokens),
		service.WithPayments(payment.NewStripe(cfg.Stripe, log)),
		service.WithAppURL(cfg.AppURL),
	}

	var (
		producer sarama.AsyncProducer
		consumer sarama.ConsumerGroup
	)
	if cfg.Kafka.Enabled() {
		if err = kafka.CreateTopics(cfg.Kafka, kafka.FinancialEventsTopic, kafka.TransactionStatusTopic); err != nil {
			log.Fatal("kafka.CreateTopics", zap.Error(err))
		}
		if producer, err = kafka.NewAsyncProducer(cfg.Kafka, log); err != nil {
			log.Fatal("kafka.NewAsyncProducer", zap.Error(err))
		}
		opts = append(opts, service.WithPublisher(handler.NewFinancialLog(producer, kafka.FinancialEventsTopic, log)))
	} else {
		log.Warn("kafka is not configured, financial events are not published")
	}

	svc := service.NewService(repo, log, opts...)

	consumeCtx, stopConsume := context.WithCancel(context.Background())
	defer stopConsume()
	if cfg.Kafka.Enabled() {
		if consumer, err = kafka.NewConsumer(cfg.Kafka, kafka.LibraryConsumerGroup); err != nil {
			log.Fatal("kafka.NewConsumer", zap.Error(err))
		}
		go kafka.Consume(consumeCtx, consumer, handler.NewConsumer(svc.SetTransactionStatus, log), log, kafka.TransactionStatusTopic)
	}

	h := handler.New(svc, tokens, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	stopConsume()
	if consumer != nil {
		if err = consumer.Close(); err != nil {
			log.Error("consumer.Close", zap.Error(err))
		}
	}
	if producer != nil {
		if err = producer.Close(); err != nil {
			log.Error("producer.Close", zap.Error(err))
		}
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
