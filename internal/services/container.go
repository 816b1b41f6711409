package services

import (
	"go.uber.org/zap"

	"worktime/internal/config"
	"worktime/internal/repository/sqlite"
)

// NewServiceContainer wires every service against one repository
func NewServiceContainer(repo sqlite.Repository, cfg *config.Config, logger *zap.Logger) *ServiceContainer {
	if logger == nil {
		logger = zap.NewNop()
	}

	checker := NewOverlapChecker(logger.Named("overlap"))
	calculator := NewCalculator()
	builder := NewRecordBuilder()

	return &ServiceContainer{
		OverlapChecker:   checker,
		Calculator:       calculator,
		RecordBuilder:    builder,
		ReportingService: NewReportingService(repo, logger.Named("reporting")),
		EntryService:     NewEntryService(repo, cfg, checker, calculator, builder, logger.Named("entry")),
	}
}
