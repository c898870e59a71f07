package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/realty-portal/applications-service/internal/types"
	"github.com/shopspring/decimal"
)

// Application is a row of the applications table. Every column other than
// ID may be NULL in storage, and Status is kept as stored so values written
// outside this service are still returned.
type Application struct {
	ID             int64
	Name           *string
	Email          *string
	Phone          *string
	OperationType  *string
	PropertyType   *string
	Area           decimal.NullDecimal
	Location       *string
	Description    *string
	EstimatedValue decimal.NullDecimal
	Status         *string
	CreatedAt      *time.Time
}

type ApplicationRepository interface {
	FindByEmail(ctx context.Context, email string) ([]*Application, error)
	UpdateStatus(ctx context.Context, id int64, status types.ApplicationStatus) (bool, error)
	Create(ctx context.Context, app *Application) error
	Count(ctx context.Context) (int64, error)
}

type pgApplicationRepository struct {
	pool *pgxpool.Pool

	selectByEmail string
	updateStatus  string
	insert        string
	count         string
}

// NewApplicationRepository builds the repository for the given table
// identifier, e.g. []string{"applications"} or []string{"schema", "applications"}.
func NewApplicationRepository(pool *pgxpool.Pool, table []string) ApplicationRepository {
	name := pgx.Identifier(table).Sanitize()

	return &pgApplicationRepository{
		pool: pool,
		selectByEmail: fmt.Sprintf(`
			SELECT id, name, email, phone, operation_type, property_type,
			       area, location, description, estimated_value, status, created_at
			FROM %s
			WHERE email = $1
			ORDER BY created_at DESC
		`, name),
		updateStatus: fmt.Sprintf(`
			UPDATE %s
			SET status = $1
			WHERE id = $2
			RETURNING id
		`, name),
		insert: fmt.Sprintf(`
			INSERT INTO %s (name, email, phone, operation_type, property_type,
			                area, location, description, estimated_value, status, created_at)
			VALUES ($1, $2, $3, $4, $5, CAST($6::text AS NUMERIC), $7, $8, CAST($9::text AS NUMERIC), $10, COALESCE($11, NOW()))
			RETURNING id, created_at
		`, name),
		count: fmt.Sprintf(`SELECT COUNT(*) FROM %s`, name),
	}
}

func (r *pgApplicationRepository) FindByEmail(ctx context.Context, email string) ([]*Application, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, r.selectByEmail, email)
	if err != nil {
		return nil, fmt.Errorf("query applications: %w", err)
	}
	defer rows.Close()

	applications := []*Application{}
	for rows.Next() {
		a := &Application{}
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Email, &a.Phone, &a.OperationType, &a.PropertyType,
			&a.Area, &a.Location, &a.Description, &a.EstimatedValue, &a.Status, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		applications = append(applications, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applications: %w", err)
	}
	return applications, nil
}

// UpdateStatus sets the status of one row and reports whether it existed.
// The change is committed before returning true; on false nothing changed.
func (r *pgApplicationRepository) UpdateStatus(ctx context.Context, id int64, status types.ApplicationStatus) (bool, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return false, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var updatedID int64
	err = tx.QueryRow(ctx, r.updateStatus, string(status), id).Scan(&updatedID)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("update status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit status update: %w", err)
	}
	return true, nil
}

// Create inserts a row; used for seeding, never reachable over HTTP.
// A nil Status defaults to new and a nil CreatedAt to NOW().
func (r *pgApplicationRepository) Create(ctx context.Context, app *Application) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	status := string(types.StatusNew)
	if app.Status != nil && *app.Status != "" {
		status = *app.Status
	}

	err = conn.QueryRow(ctx, r.insert,
		app.Name, app.Email, app.Phone, app.OperationType, app.PropertyType,
		decimalArg(app.Area), app.Location, app.Description, decimalArg(app.EstimatedValue),
		status, app.CreatedAt,
	).Scan(&app.ID, &app.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	app.Status = &status
	return nil
}

func (r *pgApplicationRepository) Count(ctx context.Context) (int64, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return 0, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	var n int64
	if err := conn.QueryRow(ctx, r.count).Scan(&n); err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}
	return n, nil
}

// decimalArg passes NUMERIC values as text so the server does the conversion.
func decimalArg(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.String()
	return &s
}
