package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"worktime/internal/domain"
	"worktime/internal/repository/sqlite"
)

func slot(startHours, startMinutes, endHours, endMinutes int) domain.TimeSlot {
	return domain.NewTimeSlot(startHours, startMinutes, endHours, endMinutes)
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := domain.ParseDate(value)
	require.NoError(t, err)
	return date
}

func setupRepository(t *testing.T) sqlite.Repository {
	t.Helper()
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func storedRecord(id string, date time.Time, totalTime, amount float64, slots ...domain.TimeRecord) domain.WorkRecord {
	return domain.WorkRecord{
		ID:          id,
		Date:        date,
		TimeRecords: slots,
		TotalTime:   totalTime,
		Rate:        25,
		Amount:      amount,
		Currency:    "EUR",
		CreatedAt:   date.Add(18 * time.Hour),
	}
}
