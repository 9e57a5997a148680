package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/codex-timeoff/internal/core/timeoff"
	pgdb "github.com/ogurasousui/codex-timeoff/internal/platform/db/postgres"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
)

const requestColumns = `id, employee_id, employee_name, start_date, end_date, reason, status, created_at, updated_at, COALESCE(manager_id, '')`

// RequestRepository は PostgreSQL を利用した休暇申請永続化の実装です。
type RequestRepository struct {
	pool pgdb.Queryer
}

// NewRequestRepository は RequestRepository を生成します。
func NewRequestRepository(pool pgdb.Queryer) *RequestRepository {
	return &RequestRepository{pool: pool}
}

// Create は申請を新規作成します。承認者が空文字列の場合は NULL として保存します。
func (r *RequestRepository) Create(ctx context.Context, req *timeoff.Request) (*timeoff.Request, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO time_off_requests (id, employee_id, employee_name, start_date, end_date, reason, status, created_at, updated_at, manager_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''))
        RETURNING `+requestColumns,
		req.ID,
		req.EmployeeID,
		req.EmployeeName,
		dateOnly(req.StartDate),
		dateOnly(req.EndDate),
		req.Reason,
		string(req.Status),
		req.CreatedAt,
		req.UpdatedAt,
		req.ManagerID,
	)

	created, err := scanRequest(row)
	if err != nil {
		return nil, translatePgError(err)
	}
	return created, nil
}

// Update は申請の状態と更新日時を書き換えます。
func (r *RequestRepository) Update(ctx context.Context, req *timeoff.Request) (*timeoff.Request, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE time_off_requests
           SET status = $1,
               updated_at = $2
         WHERE id = $3
        RETURNING `+requestColumns,
		string(req.Status),
		req.UpdatedAt,
		req.ID,
	)

	updated, err := scanRequest(row)
	if err != nil {
		return nil, translatePgError(err)
	}
	return updated, nil
}

// FindByID は ID で申請を取得します。
func (r *RequestRepository) FindByID(ctx context.Context, id string) (*timeoff.Request, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+requestColumns+`
          FROM time_off_requests
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanRequest(row)
	if err != nil {
		return nil, translatePgError(err)
	}
	return found, nil
}

// List はフィルタに一致する申請を登録順に取得します。
func (r *RequestRepository) List(ctx context.Context, filter timeoff.ListRequestsFilter) ([]*timeoff.Request, error) {
	args := make([]any, 0, 2)
	conditions := make([]string, 0, 2)

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, "employee_id = $"+strconv.Itoa(len(args)))
	}
	if filter.ManagerID != nil {
		args = append(args, *filter.ManagerID)
		conditions = append(conditions, "COALESCE(manager_id, '') = $"+strconv.Itoa(len(args)))
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := `
        SELECT ` + requestColumns + `
          FROM time_off_requests` + whereClause + `
         ORDER BY seq ASC
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, translatePgError(err)
	}
	defer rows.Close()

	requests := make([]*timeoff.Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, translatePgError(err)
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, translatePgError(err)
	}

	return requests, nil
}

func scanRequest(row pgx.Row) (*timeoff.Request, error) {
	var (
		id           string
		employeeID   string
		employeeName string
		startDate    time.Time
		endDate      time.Time
		reason       string
		status       string
		createdAt    time.Time
		updatedAt    time.Time
		managerID    string
	)

	if err := row.Scan(
		&id,
		&employeeID,
		&employeeName,
		&startDate,
		&endDate,
		&reason,
		&status,
		&createdAt,
		&updatedAt,
		&managerID,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, timeoff.ErrRequestNotFound
		}
		return nil, err
	}

	return &timeoff.Request{
		ID:           id,
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		StartDate:    dateOnly(startDate),
		EndDate:      dateOnly(endDate),
		Reason:       reason,
		Status:       timeoff.Status(status),
		CreatedAt:    createdAt.UTC(),
		UpdatedAt:    updatedAt.UTC(),
		ManagerID:    managerID,
	}, nil
}

func translatePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return timeoff.ErrRequestNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return timeoff.ErrRequestExists
		case foreignKeyViolationCode:
			if pgErr.ConstraintName == "time_off_requests_employee_id_fkey" {
				return timeoff.ErrEmployeeNotFound
			}
			return err
		case checkViolationCode:
			return timeoff.ErrInvalidStatus
		}
	}

	return err
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
