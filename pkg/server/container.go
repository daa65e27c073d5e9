package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"hello-lambda-api/internal/config"
	"hello-lambda-api/internal/handlers"
	"hello-lambda-api/internal/logging"
	"hello-lambda-api/internal/router"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Router *router.Router
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("failed to create container: nil configuration")
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return NewContainerWithLogger(cfg, logger), nil
}

// NewContainerWithLogger creates a container around an existing logger
func NewContainerWithLogger(cfg *config.Config, logger *logrus.Logger) *Container {
	entry := logger.WithFields(logrus.Fields{
		"stage":       cfg.Stage,
		"environment": cfg.Environment,
	})

	r := router.New(
		handlers.NewHandler(nil),
		router.WithObserver(router.NewLogObserver(entry)),
	)

	return &Container{
		Config: cfg,
		Logger: logger,
		Router: r,
	}
}
