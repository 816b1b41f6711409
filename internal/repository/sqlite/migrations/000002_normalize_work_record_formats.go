package migrations

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"
)

func init() {
	RegisterGoMigration(2, Up_000002_normalize_work_record_formats, Down_000002_normalize_work_record_formats)
}

// Up_000002_normalize_work_record_formats rewrites rows written outside the
// repository into the canonical storage formats: dates as YYYY-MM-DD and
// clock values as zero-padded HH:MM. Rows the repository wrote are already
// canonical. Rows that cannot be parsed are left untouched.
func Up_000002_normalize_work_record_formats(tx *sql.Tx) error {
	type row struct {
		id    string
		value string
	}

	// Read everything first; updating while iterating would hold the cursor open
	var dates []row
	rows, err := tx.Query("SELECT id, date FROM work_records")
	if err != nil {
		return fmt.Errorf("failed to query work records: %w", err)
	}
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.id, &r.value); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan work record: %w", err)
		}
		dates = append(dates, r)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("error iterating work records: %w", err)
	}
	rows.Close()

	for _, r := range dates {
		normalized, err := normalizeDate(r.value)
		if err != nil || normalized == r.value {
			continue
		}
		if _, err := tx.Exec("UPDATE work_records SET date = ? WHERE id = ?", normalized, r.id); err != nil {
			return fmt.Errorf("failed to update date for work record %s: %w", r.id, err)
		}
	}

	type clockRow struct {
		id    int64
		start string
		end   string
	}
	var clocks []clockRow
	rows, err = tx.Query("SELECT id, start_time, end_time FROM time_records")
	if err != nil {
		return fmt.Errorf("failed to query time records: %w", err)
	}
	for rows.Next() {
		var r clockRow
		if err := rows.Scan(&r.id, &r.start, &r.end); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan time record: %w", err)
		}
		clocks = append(clocks, r)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("error iterating time records: %w", err)
	}
	rows.Close()

	for _, r := range clocks {
		start, startErr := normalizeClock(r.start)
		end, endErr := normalizeClock(r.end)
		if startErr != nil || endErr != nil {
			continue
		}
		if start == r.start && end == r.end {
			continue
		}
		if _, err := tx.Exec("UPDATE time_records SET start_time = ?, end_time = ? WHERE id = ?", start, end, r.id); err != nil {
			return fmt.Errorf("failed to update time record %d: %w", r.id, err)
		}
	}

	return nil
}

// Down_000002_normalize_work_record_formats is a no-op: the canonical
// formats are readable by every earlier version.
func Down_000002_normalize_work_record_formats(tx *sql.Tx) error {
	return nil
}

func normalizeDate(value string) (string, error) {
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05.000Z",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, strings.TrimSpace(value)); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("could not parse date: %s", value)
}

func normalizeClock(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("could not parse clock value: %s", value)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return "", fmt.Errorf("invalid hours in clock value: %s", value)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return "", fmt.Errorf("invalid minutes in clock value: %s", value)
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes), nil
}
