package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/avdeyev/studydesk/internal/domain/errors"
	"github.com/avdeyev/studydesk/internal/domain/model"
	"github.com/avdeyev/studydesk/internal/domain/repository"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Pool is the subset of pgxpool.Pool used by the storage; pgxmock satisfies
// it in tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Users returns the user repository backed by this storage.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

// Orders returns the order repository backed by this storage.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            telegram_id BIGINT UNIQUE,
            is_admin BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            course TEXT NOT NULL,
            semester TEXT NOT NULL,
            faculty TEXT NOT NULL,
            subjects TEXT NOT NULL,
            deadline DATE NOT NULL,
            task_source TEXT NOT NULL,
            work_type TEXT NOT NULL,
            status TEXT NOT NULL DEFAULT 'pending',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, status, deadline)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status_deadline ON orders(status, deadline)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, user model.NewUser) (*model.User, error) {
	const query = `INSERT INTO users (login, password_hash, telegram_id, is_admin)
                   VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	u := model.User{
		Login:        user.Login,
		PasswordHash: user.PasswordHash,
		TelegramID:   user.TelegramID,
		IsAdmin:      user.IsAdmin,
	}
	err := r.storage.pool.QueryRow(ctx, query, user.Login, user.PasswordHash, user.TelegramID, user.IsAdmin).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	const query = `SELECT id, login, password_hash, telegram_id, is_admin, created_at
                   FROM users WHERE login=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, login))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, login, password_hash, telegram_id, is_admin, created_at
                   FROM users WHERE id=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByTelegramID(ctx context.Context, chatID int64) (*model.User, error) {
	const query = `SELECT id, login, password_hash, telegram_id, is_admin, created_at
                   FROM users WHERE telegram_id=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, chatID))
}

func (r *userRepository) scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Login, &u.PasswordHash, &u.TelegramID, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	const query = `INSERT INTO orders (user_id, course, semester, faculty, subjects, deadline, task_source, work_type, status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                   RETURNING id, created_at`
	created := *order
	err := r.storage.pool.QueryRow(ctx, query,
		order.UserID, order.Course, order.Semester, order.Faculty, order.Subjects,
		order.Deadline, order.TaskSource, order.WorkType, order.Status).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &created, nil
}

const orderColumns = `id, user_id, course, semester, faculty, subjects, deadline, task_source, work_type, status, created_at`

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY status, deadline, id`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY status, deadline, id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func collectOrders(rows pgx.Rows) ([]model.Order, error) {
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Course, &o.Semester, &o.Faculty, &o.Subjects,
			&o.Deadline, &o.TaskSource, &o.WorkType, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	const query = `UPDATE orders SET status=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, status, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
