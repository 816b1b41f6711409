package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"worktime/internal/api"
	"worktime/internal/config"
	"worktime/internal/domain"
)

func TestGetEnvironment(t *testing.T) {
	tests := []struct {
		value string
		want  Environment
	}{
		{"development", Development},
		{"testing", Testing},
		{"production", Production},
		{"", Production},
		{"staging", Production},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("WT_ENV", tt.value)
			assert.Equal(t, tt.want, getEnvironment())
		})
	}
}

func TestRepositoryFactory_OpenBusinessAPI(t *testing.T) {
	t.Run("production uses the configured database path", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Database.Dir = filepath.Join(t.TempDir(), "data")

		businessAPI, closeAPI, err := NewRepositoryFactory(Production).OpenBusinessAPI(cfg, zap.NewNop())
		require.NoError(t, err)
		defer func() { assert.NoError(t, closeAPI()) }()

		assert.FileExists(t, cfg.GetDatabasePath())
		assert.Equal(t, "EUR", businessAPI.DefaultCurrency().Code)
	})

	t.Run("testing keeps records in memory", func(t *testing.T) {
		ctx := context.Background()
		cfg := config.NewConfig()

		businessAPI, closeAPI, err := NewRepositoryFactory(Testing).OpenBusinessAPI(cfg, zap.NewNop())
		require.NoError(t, err)
		defer func() { assert.NoError(t, closeAPI()) }()

		record, err := businessAPI.SaveEntry(ctx, api.EntryRequest{
			Date:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local),
			Slots: []string{"09:00-11:00"},
		})
		require.NoError(t, err)
		assert.Equal(t, 50.0, record.Amount)

		view, err := businessAPI.ListRecords(ctx, domain.RecordFilter{})
		require.NoError(t, err)
		assert.Len(t, view.Records, 1)
		assert.Equal(t, 2.0, view.Totals.TotalHours)
	})
}
