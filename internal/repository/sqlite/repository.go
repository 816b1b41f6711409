package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"worktime/internal/errors"
	"worktime/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// SearchOptions contains all possible search parameters. Date bounds are
// calendar days and inclusive, hour bounds compare against total_time.
type SearchOptions struct {
	StartDate *time.Time
	EndDate   *time.Time
	MinHours  *float64
	MaxHours  *float64
}

// ConflictCheck inspects the records already stored for a day and returns an
// error to abort the insert
type ConflictCheck func(existing []*WorkRecord) error

// Options bounds the duration of repository calls. Zero values disable the bound.
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

// Repository defines the interface for database operations
type Repository interface {
	// Create operations
	CreateWorkRecord(ctx context.Context, record *WorkRecord) error
	CreateWorkRecordChecked(ctx context.Context, record *WorkRecord, check ConflictCheck) error

	// Read operations
	GetWorkRecord(ctx context.Context, id string) (*WorkRecord, error)
	ListWorkRecords(ctx context.Context) ([]*WorkRecord, error)
	ListWorkRecordsByDate(ctx context.Context, date time.Time) ([]*WorkRecord, error)
	SearchWorkRecords(ctx context.Context, opts SearchOptions) ([]*WorkRecord, error)

	// Delete operations
	DeleteWorkRecord(ctx context.Context, id string) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db   *sql.DB
	opts Options
}

const workRecordColumns = `id, date, break_hours, total_time, rate, amount, currency, created_at`

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, Options{})
}

// NewWithOptions creates a new SQLite repository whose calls are bounded by opts
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	// A single connection keeps ":memory:" databases shared and serializes writers
	db.SetMaxOpenConns(1)

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db, opts: opts}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opts.QueryTimeout > 0 {
		return context.WithTimeout(ctx, r.opts.QueryTimeout)
	}
	return context.WithCancel(ctx)
}

func (r *SQLiteRepository) writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opts.WriteTimeout > 0 {
		return context.WithTimeout(ctx, r.opts.WriteTimeout)
	}
	return context.WithCancel(ctx)
}

// CreateWorkRecord stores a work record together with its time records
func (r *SQLiteRepository) CreateWorkRecord(ctx context.Context, record *WorkRecord) error {
	return r.CreateWorkRecordChecked(ctx, record, nil)
}

// CreateWorkRecordChecked loads the records stored for the record's date,
// passes them to check and inserts the record only if check returns nil.
// All three steps run in one transaction.
func (r *SQLiteRepository) CreateWorkRecordChecked(ctx context.Context, record *WorkRecord, check ConflictCheck) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	return InTransaction(ctx, r.db, func(tx *sql.Tx) error {
		if check != nil {
			existing, err := listByDate(ctx, tx, record.Date)
			if err != nil {
				return err
			}
			if err := check(existing); err != nil {
				return err
			}
		}
		return insertWorkRecord(ctx, tx, record)
	})
}

func insertWorkRecord(ctx context.Context, q Querier, record *WorkRecord) error {
	query := `
	INSERT INTO work_records (` + workRecordColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	err := Execute(ctx, q, "insert work record", query,
		record.ID,
		FormatDateForDB(record.Date),
		record.BreakHours,
		record.TotalTime,
		record.Rate,
		record.Amount,
		record.Currency,
		FormatTimeForDB(record.CreatedAt),
	)
	if err != nil {
		return err
	}

	for i := range record.TimeRecords {
		tr := &record.TimeRecords[i]
		tr.WorkRecordID = record.ID
		tr.Position = i
		result, err := q.ExecContext(ctx, `
		INSERT INTO time_records (work_record_id, position, start_time, end_time)
		VALUES (?, ?, ?, ?)`, tr.WorkRecordID, tr.Position, tr.StartTime, tr.EndTime)
		if err != nil {
			return HandleDatabaseError("insert time record", err)
		}
		if tr.ID, err = result.LastInsertId(); err != nil {
			return HandleDatabaseError("get last insert ID", err)
		}
	}

	return nil
}

// GetWorkRecord retrieves a work record by ID
func (r *SQLiteRepository) GetWorkRecord(ctx context.Context, id string) (*WorkRecord, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := `SELECT ` + workRecordColumns + ` FROM work_records WHERE id = ?`
	record, err := QuerySingle(ctx, r.db, query, ScanWorkRecord, "work record", id, id)
	if err != nil {
		return nil, err
	}

	if err := attachTimeRecords(ctx, r.db, []*WorkRecord{record}); err != nil {
		return nil, err
	}
	return record, nil
}

// ListWorkRecords retrieves all work records ordered by date
func (r *SQLiteRepository) ListWorkRecords(ctx context.Context) ([]*WorkRecord, error) {
	return r.SearchWorkRecords(ctx, SearchOptions{})
}

// ListWorkRecordsByDate retrieves the work records stored for the calendar day of date
func (r *SQLiteRepository) ListWorkRecordsByDate(ctx context.Context, date time.Time) ([]*WorkRecord, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	return listByDate(ctx, r.db, date)
}

func listByDate(ctx context.Context, q Querier, date time.Time) ([]*WorkRecord, error) {
	query := `SELECT ` + workRecordColumns + ` FROM work_records WHERE date = ? ORDER BY created_at ASC`
	records, err := QueryMultiple(ctx, q, query, ScanWorkRecords, "work records", FormatDateForDB(date))
	if err != nil {
		return nil, err
	}
	if err := attachTimeRecords(ctx, q, records); err != nil {
		return nil, err
	}
	return records, nil
}

// SearchWorkRecords searches for work records based on the provided options
func (r *SQLiteRepository) SearchWorkRecords(ctx context.Context, opts SearchOptions) ([]*WorkRecord, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	var conditions []string
	var args []interface{}

	// Dates are stored as YYYY-MM-DD so text comparison orders them correctly
	if opts.StartDate != nil {
		conditions = append(conditions, "date >= ?")
		args = append(args, FormatDatePtrForDB(opts.StartDate))
	}
	if opts.EndDate != nil {
		conditions = append(conditions, "date <= ?")
		args = append(args, FormatDatePtrForDB(opts.EndDate))
	}
	if opts.MinHours != nil {
		conditions = append(conditions, "total_time >= ?")
		args = append(args, *opts.MinHours)
	}
	if opts.MaxHours != nil {
		conditions = append(conditions, "total_time <= ?")
		args = append(args, *opts.MaxHours)
	}

	query := `SELECT ` + workRecordColumns + ` FROM work_records`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date ASC, created_at ASC"

	records, err := QueryMultiple(ctx, r.db, query, ScanWorkRecords, "work records", args...)
	if err != nil {
		return nil, err
	}
	if err := attachTimeRecords(ctx, r.db, records); err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteWorkRecord deletes a work record and its time records
func (r *SQLiteRepository) DeleteWorkRecord(ctx context.Context, id string) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	return InTransaction(ctx, r.db, func(tx *sql.Tx) error {
		if err := Execute(ctx, tx, "delete time records", `DELETE FROM time_records WHERE work_record_id = ?`, id); err != nil {
			return err
		}
		return ExecuteOne(ctx, tx, "delete work record", `DELETE FROM work_records WHERE id = ?`, "work record", id, id)
	})
}

// attachTimeRecords loads the time records of every record in one query
func attachTimeRecords(ctx context.Context, q Querier, records []*WorkRecord) error {
	if len(records) == 0 {
		return nil
	}

	byID := make(map[string]*WorkRecord, len(records))
	placeholders := make([]string, len(records))
	args := make([]interface{}, len(records))
	for i, record := range records {
		byID[record.ID] = record
		record.TimeRecords = []TimeRecord{}
		placeholders[i] = "?"
		args[i] = record.ID
	}

	query := `
	SELECT id, work_record_id, position, start_time, end_time
	FROM time_records
	WHERE work_record_id IN (` + strings.Join(placeholders, ", ") + `)
	ORDER BY work_record_id, position ASC`

	timeRecords, err := QueryMultiple(ctx, q, query, ScanTimeRecords, "time records", args...)
	if err != nil {
		return err
	}

	for _, tr := range timeRecords {
		if record, ok := byID[tr.WorkRecordID]; ok {
			record.TimeRecords = append(record.TimeRecords, *tr)
		}
	}
	return nil
}
