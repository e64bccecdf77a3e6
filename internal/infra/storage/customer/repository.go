package customer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/CBH-BookingService/internal/domain"
	"github.com/m04kA/CBH-BookingService/pkg/dbmetrics"
	"github.com/m04kA/CBH-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с клиентами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert идемпотентно разрешает клиента по имени:
// возвращает существующую строку при точном совпадении имени,
// иначе создает новую. Уникальность имени гарантирует ограничение
// customers(name) и ON CONFLICT - при конкурентных вставках выживает
// ровно одна строка
func (r *Repository) Upsert(ctx context.Context, name string) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// DO UPDATE вместо DO NOTHING, чтобы RETURNING отдавал строку
	// и при конфликте
	query, args, err := psqlbuilder.Insert("customers").
		Columns("name").
		Values(name).
		Suffix("ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id, name, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var customer domain.Customer
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&customer.ID,
		&customer.Name,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrUpsert, err)
	}

	customer.CreatedAt = createdAt.Time

	return &customer, nil
}

// SuggestByName ищет клиентов по подстроке имени (case-insensitive)
// Порядок выдачи определяется хранилищем, количество ограничено limit
func (r *Repository) SuggestByName(ctx context.Context, substr string, limit uint64) ([]domain.CustomerSuggestion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("name").
		From("customers").
		Where(squirrel.ILike{"name": "%" + substr + "%"}).
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: SuggestByName - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: SuggestByName - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	suggestions := make([]domain.CustomerSuggestion, 0, limit)
	for rows.Next() {
		var s domain.CustomerSuggestion
		if err := rows.Scan(&s.Name); err != nil {
			return nil, fmt.Errorf("%w: SuggestByName - scan name: %v", ErrScanRow, err)
		}
		suggestions = append(suggestions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: SuggestByName - rows error: %v", ErrScanRow, err)
	}

	return suggestions, nil
}
