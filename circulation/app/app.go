package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/config"
	"github.com/Astemirdum/library-circulation/circulation/internal/events"
	"github.com/Astemirdum/library-circulation/circulation/internal/handler"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
	"github.com/Astemirdum/library-circulation/circulation/internal/scheduler"
	"github.com/Astemirdum/library-circulation/circulation/internal/server"
	"github.com/Astemirdum/library-circulation/circulation/internal/service"
	"github.com/Astemirdum/library-circulation/circulation/migrations"
	"github.com/Astemirdum/library-circulation/pkg/circuit_breaker"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/Astemirdum/library-circulation/pkg/logger"
	"github.com/Astemirdum/library-circulation/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "circulation")
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log,
		repository.WithTxRetries(cfg.Tx.Retries),
		repository.WithRetryBackoff(cfg.Tx.RetryBackoff),
		repository.WithLockTimeout(cfg.Tx.LockTimeout),
	)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	opts := []service.Option{service.WithSweepWorkers(cfg.Sweep.Workers)}
	var closers []func() error
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		closers = append(closers, producer.Close)
		cb := circuit_breaker.New(circuit_breaker.Config{
			Window:           20,
			Timeout:          30 * time.Second,
			FailureRatio:     0.5,
			RecoveryRequests: 3,
		})
		opts = append(opts, service.WithPublisher(events.NewKafkaPublisher(producer, kafka.CirculationTopic, cb, log)))
	}
	svc := service.NewService(repo, log, opts...)

	if cfg.Kafka.Enabled() {
		group, err := kafka.NewConsumer(cfg.Kafka, kafka.SweepConsumerGroup)
		if err != nil {
			log.Fatal("kafka.NewConsumer", zap.Error(err))
		}
		closers = append(closers, group.Close)
		go kafka.Consume(ctx, group, handler.NewConsumer(svc.Sweep, cfg.Sweep.Timeout, log), log, kafka.SweepTopic)
	}

	sched, err := scheduler.New(cfg.Sweep, svc, log)
	if err != nil {
		log.Fatal("scheduler", zap.Error(err))
	}
	sched.Start()

	h := handler.New(svc, log)
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
	if err = sched.Stop(closeCtx); err != nil {
		log.Warn("scheduler.Stop", zap.Error(err))
	}
	stop()
	for _, c := range closers {
		if err := c(); err != nil {
			log.Warn("close", zap.Error(err))
		}
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	_ = log.Sync()
}
