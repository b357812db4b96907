package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"taskboard-api/taskboard/broker"
	"taskboard-api/taskboard/config"
	"taskboard-api/taskboard/database"
	"taskboard-api/taskboard/graph"
	"taskboard-api/taskboard/routes"
	"taskboard-api/taskboard/services"
	"taskboard-api/taskboard/utils/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg)

	db, err := database.Setup(cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Events are optional; without a broker the API keeps serving.
	var publisher broker.Publisher
	var producer *broker.Producer
	if cfg.NatsURL != "" {
		producer, err = broker.InitProducer(cfg.NatsURL, log)
		if err != nil {
			log.Warnf("Failed to initialize NATS producer: %v", err)
			log.Warn("The application will continue, but task events will not be published")
		} else {
			publisher = producer
		}
	} else {
		log.Info("NATS_URL not set, task events are disabled")
	}

	taskService := services.NewTaskService(publisher, log)

	schema, err := graph.NewSchema(graph.NewResolver(db, taskService), log)
	if err != nil {
		log.Fatalf("Failed to build GraphQL schema: %v", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := routes.NewRouter(routes.RouterOptions{
		Config:   cfg,
		Log:      log,
		DB:       db,
		Schema:   schema,
		Registry: registry,
	})

	server := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Infof("🚀 Server ready at http://localhost:%s/graphql", cfg.AppPort)

	shutdownTimeout := time.Duration(cfg.ShutdownTimeoutSeconds) * time.Second
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			// The server must drain before the broker and database close.
			"taskboard": func(ctx context.Context) error {
				log.Info("Shutting down server...")
				err := server.Shutdown(ctx)
				producer.Close()
				if closeErr := db.Close(); closeErr != nil {
					err = errors.Join(err, closeErr)
				}
				return err
			},
		},
	)

	exitCode := <-wait
	log.Infof("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}
