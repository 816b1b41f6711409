package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"worktime/internal/api"
	"worktime/internal/config"
	"worktime/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// RepositoryFactory creates repository instances based on environment
type RepositoryFactory struct {
	env Environment
}

// NewRepositoryFactory creates a new repository factory for the given environment
func NewRepositoryFactory(env Environment) *RepositoryFactory {
	return &RepositoryFactory{env: env}
}

// CreateRepository creates a repository instance based on the current environment
func (rf *RepositoryFactory) CreateRepository(cfg *config.Config) (sqlite.Repository, error) {
	switch rf.env {
	case Development:
		// local database in the working directory
		repo, err := sqlite.New("wt.db")
		if err != nil {
			return nil, fmt.Errorf("failed to initialize development database: %w", err)
		}
		return repo, nil
	case Testing:
		repo, err := config.CreateTestRepository()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize testing database: %w", err)
		}
		return repo, nil
	default:
		return config.CreateRepository(cfg)
	}
}

// OpenBusinessAPI opens the repository for cfg and builds the API on top of it.
// The returned function closes the repository.
func (rf *RepositoryFactory) OpenBusinessAPI(cfg *config.Config, logger *zap.Logger) (api.BusinessAPI, func() error, error) {
	repo, err := rf.CreateRepository(cfg)
	if err != nil {
		return nil, nil, err
	}

	logger.Debug("repository opened", zap.String("environment", string(rf.env)))
	return api.NewBusinessAPI(repo, cfg, logger), repo.Close, nil
}

// getEnvironment determines the current environment from WT_ENV
func getEnvironment() Environment {
	switch os.Getenv("WT_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	default:
		// Default to production for safety
		return Production
	}
}
