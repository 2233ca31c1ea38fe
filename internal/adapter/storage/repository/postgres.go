package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rgladkov/shopcheckout/internal/adapter/storage"
	"github.com/rgladkov/shopcheckout/internal/core/domain"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func (r *Repository) ListProductsByIDs(ctx context.Context, ids []uint64) ([]*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "price", "stock_available", "stock_reserved").
		From("products").
		Where(sq.Eq{"id": ids})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Product, 0, len(ids))
	for rows.Next() {
		product := domain.Product{}
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Price,
			&product.StockAvailable,
			&product.StockReserved,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &product)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

// reserveStockTx moves quantity from available to reserved for every item.
// Each update is conditional on stock_available at the moment of the write;
// concurrent reservations on the same product never overcommit. Returns an
// OutOfStockError listing every item that could not be covered, which rolls
// the enclosing transaction back.
func (r *Repository) reserveStockTx(ctx context.Context, tx pgx.Tx, items []domain.ProcessedItem) error {
	var shortages []domain.StockShortage

	for _, item := range items {
		statement := r.db.QueryBuilder.
			Update("products").
			Set("stock_available", sq.Expr("stock_available - ?", item.Quantity)).
			Set("stock_reserved", sq.Expr("stock_reserved + ?", item.Quantity)).
			Where(sq.And{
				sq.Eq{"id": item.ProductID},
				sq.GtOrEq{"stock_available": item.Quantity},
			})

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		ct, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if ct.RowsAffected() == 0 {
			var available int32
			err := tx.QueryRow(ctx, "SELECT stock_available FROM products WHERE id = $1", item.ProductID).
				Scan(&available)
			if err != nil {
				if err == pgx.ErrNoRows {
					return &domain.ProductsNotFoundError{IDs: []uint64{item.ProductID}}
				}
				return err
			}
			shortages = append(shortages, domain.StockShortage{
				ProductID: item.ProductID,
				Available: available,
				Requested: item.Quantity,
			})
		}
	}

	if len(shortages) > 0 {
		return &domain.OutOfStockError{Items: shortages}
	}
	return nil
}

func (r *Repository) releaseStockTx(ctx context.Context, tx pgx.Tx, items []domain.ProcessedItem) error {
	for _, item := range items {
		statement := r.db.QueryBuilder.
			Update("products").
			Set("stock_available", sq.Expr("stock_available + ?", item.Quantity)).
			Set("stock_reserved", sq.Expr("stock_reserved - ?", item.Quantity)).
			Where(sq.And{
				sq.Eq{"id": item.ProductID},
				sq.GtOrEq{"stock_reserved": item.Quantity},
			})

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		ct, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if ct.RowsAffected() == 0 {
			return fmt.Errorf("release reservation for product %d: %w", item.ProductID, domain.ErrDataNotFound)
		}
	}
	return nil
}

func (r *Repository) confirmStockSaleTx(ctx context.Context, tx pgx.Tx, items []domain.ProcessedItem) error {
	for _, item := range items {
		statement := r.db.QueryBuilder.
			Update("products").
			Set("stock_reserved", sq.Expr("stock_reserved - ?", item.Quantity)).
			Where(sq.And{
				sq.Eq{"id": item.ProductID},
				sq.GtOrEq{"stock_reserved": item.Quantity},
			})

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		ct, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if ct.RowsAffected() == 0 {
			return fmt.Errorf("confirm sale for product %d: %w", item.ProductID, domain.ErrDataNotFound)
		}
	}
	return nil
}

// deleteProvisionalOrderTx reports whether this transaction removed the row.
// The delete runs first in Complete/Release so the row lock serializes
// concurrent workers; the loser sees zero rows and leaves stock alone.
func (r *Repository) deleteProvisionalOrderTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) (bool, error) {
	statement := r.db.QueryBuilder.
		Delete("provisional_orders").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return false, err
	}

	ct, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() == 1, nil
}

// CompleteProvisionalOrder removes the provisional order and confirms its
// stock sale in one transaction. When the row is already gone the sale was
// confirmed by an earlier delivery and nothing happens, so stock_reserved
// is decremented exactly once per order.
func (r *Repository) CompleteProvisionalOrder(ctx context.Context, id uuid.UUID, items []domain.ProcessedItem) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		deleted, err := r.deleteProvisionalOrderTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return nil
		}
		return r.confirmStockSaleTx(ctx, tx, items)
	})
}

// ReleaseProvisionalOrder removes the provisional order and returns its
// reserved stock to availability in one transaction.
func (r *Repository) ReleaseProvisionalOrder(ctx context.Context, id uuid.UUID, items []domain.ProcessedItem) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		deleted, err := r.deleteProvisionalOrderTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return nil
		}
		return r.releaseStockTx(ctx, tx, items)
	})
}

// CreateProvisionalOrder persists the stock reservation and the provisional
// order in one transaction.
func (r *Repository) CreateProvisionalOrder(ctx context.Context, po *domain.ProvisionalOrder) (*domain.ProvisionalOrder, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := r.reserveStockTx(ctx, tx, po.Items); err != nil {
			return err
		}

		items, err := json.Marshal(po.Items)
		if err != nil {
			return err
		}

		statement := r.db.QueryBuilder.
			Insert("provisional_orders").
			Columns("id", "user_id", "items", "total_currency", "total_value",
				"authorization_id", "created_at", "expires_at", "status").
			Values(po.ID, po.UserID, items, po.TotalCost.Currency, po.TotalCost.Value,
				po.AuthorizationID, po.CreatedAt, po.ExpiresAt, po.Status)

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		return err
	})
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return po, nil
}

var provisionalOrderColumns = []string{"id", "user_id", "items", "total_currency", "total_value",
	"authorization_id", "created_at", "expires_at", "status"}

func (r *Repository) scanProvisionalOrder(row pgx.Row) (*domain.ProvisionalOrder, error) {
	po := domain.ProvisionalOrder{}
	var items []byte

	err := row.Scan(
		&po.ID,
		&po.UserID,
		&items,
		&po.TotalCost.Currency,
		&po.TotalCost.Value,
		&po.AuthorizationID,
		&po.CreatedAt,
		&po.ExpiresAt,
		&po.Status,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(items, &po.Items); err != nil {
		return nil, err
	}
	return &po, nil
}

func (r *Repository) getProvisionalOrder(ctx context.Context, where sq.Sqlizer) (*domain.ProvisionalOrder, error) {
	statement := r.db.QueryBuilder.
		Select(provisionalOrderColumns...).
		From("provisional_orders").
		Where(where)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return r.scanProvisionalOrder(r.db.QueryRow(ctx, sql, args...))
}

func (r *Repository) GetProvisionalOrder(ctx context.Context, userID uint64, authorizationID string) (*domain.ProvisionalOrder, error) {
	return r.getProvisionalOrder(ctx, sq.Eq{"user_id": userID, "authorization_id": authorizationID})
}

func (r *Repository) GetProvisionalOrderByID(ctx context.Context, id uuid.UUID) (*domain.ProvisionalOrder, error) {
	return r.getProvisionalOrder(ctx, sq.Eq{"id": id})
}

func (r *Repository) GetProvisionalOrderByAuthorization(ctx context.Context, authorizationID string) (*domain.ProvisionalOrder, error) {
	return r.getProvisionalOrder(ctx, sq.Eq{"authorization_id": authorizationID})
}

// ClaimProvisionalOrder performs the conditional transition PENDING -> to.
// Reports false when the order was already claimed or deleted, so exactly
// one of finalize/reap/release ever proceeds for a given order.
func (r *Repository) ClaimProvisionalOrder(ctx context.Context, id uuid.UUID, to domain.ProvisionalOrderStatus) (bool, error) {
	statement := r.db.QueryBuilder.
		Update("provisional_orders").
		Set("status", to).
		Where(sq.Eq{"id": id, "status": domain.ProvisionalOrderStatusPending})

	sql, args, err := statement.ToSql()
	if err != nil {
		return false, err
	}

	ct, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() == 1, nil
}

func (r *Repository) ListExpiredProvisionalOrders(ctx context.Context, now time.Time) ([]*domain.ProvisionalOrder, error) {
	statement := r.db.QueryBuilder.
		Select(provisionalOrderColumns...).
		From("provisional_orders").
		Where(sq.And{
			sq.Eq{"status": domain.ProvisionalOrderStatusPending},
			sq.Lt{"expires_at": now},
		})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.ProvisionalOrder, 0)
	for rows.Next() {
		po, err := r.scanProvisionalOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, po)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

// NextOrderNumber draws from a database sequence, an atomic increment safe
// under concurrent finalizations.
func (r *Repository) NextOrderNumber(ctx context.Context) (string, error) {
	var n uint64
	err := r.db.QueryRow(ctx, "SELECT nextval('order_numbers')").Scan(&n)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%06d", n), nil
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, err
	}

	statement := r.db.QueryBuilder.
		Insert("orders").
		Columns("id", "user_id", "items", "total_currency", "total_value", "order_number",
			"status", "payment_method", "payment_status", "payment_transaction_id", "created_at").
		Values(order.ID, order.UserID, items, order.TotalCost.Currency, order.TotalCost.Value,
			order.OrderNumber, order.Status, order.Payment.Method, order.Payment.Status,
			order.Payment.TransactionID, order.CreatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return order, nil
}

func (r *Repository) ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("id", "user_id", "items", "total_currency", "total_value", "order_number",
			"status", "payment_method", "payment_status", "payment_transaction_id", "created_at").
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order := domain.Order{}
		var items []byte
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&items,
			&order.TotalCost.Currency,
			&order.TotalCost.Value,
			&order.OrderNumber,
			&order.Status,
			&order.Payment.Method,
			&order.Payment.Status,
			&order.Payment.TransactionID,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &order.Items); err != nil {
			return nil, err
		}
		list = append(list, &order)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) DeleteBasketByUser(ctx context.Context, userID uint64) error {
	statement := r.db.QueryBuilder.
		Delete("baskets").
		Where(sq.Eq{"user_id": userID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
