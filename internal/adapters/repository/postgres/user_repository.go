package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/codex-timeoff/internal/core/user"
	pgdb "github.com/ogurasousui/codex-timeoff/internal/platform/db/postgres"
)

// UserRepository は PostgreSQL を利用したユーザー参照の実装です。
type UserRepository struct {
	pool pgdb.Queryer
}

// NewUserRepository は UserRepository を生成します。
func NewUserRepository(pool pgdb.Queryer) *UserRepository {
	return &UserRepository{pool: pool}
}

// FindByID はIDでユーザーを取得します。
func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, name, email, role, COALESCE(manager_id, '')
          FROM users
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanUser(row)
	if err != nil {
		return nil, err
	}
	return found, nil
}

// List は登録順にユーザーを取得します。
func (r *UserRepository) List(ctx context.Context, filter user.ListUsersFilter) ([]*user.User, error) {
	query := `
        SELECT id, name, email, role, COALESCE(manager_id, '')
          FROM users
         ORDER BY seq ASC
    `
	args := []any{}
	if filter.Role != nil {
		query = `
        SELECT id, name, email, role, COALESCE(manager_id, '')
          FROM users
         WHERE role = $1
         ORDER BY seq ASC
    `
		args = append(args, string(*filter.Role))
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		id        string
		name      string
		email     string
		role      string
		managerID string
	)

	if err := row.Scan(&id, &name, &email, &role, &managerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, err
	}

	return &user.User{
		ID:        id,
		Name:      name,
		Email:     email,
		Role:      user.Role(role),
		ManagerID: managerID,
	}, nil
}
