package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jpriva/orders_backend/internal/apperrors"
	"github.com/jpriva/orders_backend/internal/core/domain"
	portsrepo "github.com/jpriva/orders_backend/internal/core/ports/repositories"
	"github.com/jpriva/orders_backend/internal/models"
	"github.com/jpriva/orders_backend/internal/utils/mapping"
)

type PgxOrderRepository struct {
	BaseRepository
}

// newPgxOrderRepository creates a new repository for order data.
func newPgxOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepositoryWithTx {
	return &PgxOrderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.OrderRepositoryWithTx = (*PgxOrderRepository)(nil)

const orderColumns = `order_id, company_id, client_id, client_name, address, currency_code, status, total_amount, order_date, created_at, created_by, last_updated_at, last_updated_by`

const orderItemColumns = `item_id, order_id, product_id, product_name, quantity, unit_price, position, created_at, created_by, last_updated_at, last_updated_by`

func scanOrder(row pgx.Row) (models.Order, error) {
	var m models.Order
	err := row.Scan(
		&m.OrderID,
		&m.CompanyID,
		&m.ClientID,
		&m.ClientName,
		&m.Address,
		&m.CurrencyCode,
		&m.Status,
		&m.TotalAmount,
		&m.OrderDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// fetchOrderItems loads the item rows for a set of orders, keyed by order ID
// and sorted by line position.
func fetchOrderItems(ctx context.Context, q querier, orderIDs []string) (map[string][]models.OrderItem, error) {
	if len(orderIDs) == 0 {
		return map[string][]models.OrderItem{}, nil
	}
	query := `
		SELECT ` + orderItemColumns + `
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, position;
	`
	rows, err := q.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	items := make(map[string][]models.OrderItem)
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(
			&item.ItemID,
			&item.OrderID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&item.Position,
			&item.CreatedAt,
			&item.CreatedBy,
			&item.LastUpdatedAt,
			&item.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items[item.OrderID] = append(items[item.OrderID], item)
	}
	return items, rows.Err()
}

// SaveOrder inserts a new order header.
func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	m := mapping.ToModelOrder(order)

	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.OrderID, m.CompanyID, m.ClientID, m.ClientName, m.Address,
		m.CurrencyCode, m.Status, m.TotalAmount, m.OrderDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: company or client for order %s", apperrors.ErrNotFound, m.OrderID)
		}
		return fmt.Errorf("failed to save order %s: %w", m.OrderID, err)
	}
	return nil
}

// FindOrderByID retrieves an order with its items by ID.
func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1;`

	m, err := scanOrder(r.Pool.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order by id %s: %w", orderID, err)
	}

	items, err := fetchOrderItems(ctx, r.Pool, []string{m.OrderID})
	if err != nil {
		return nil, err
	}

	domainOrder := mapping.ToDomainOrder(m, items[m.OrderID])
	return &domainOrder, nil
}

// lockOrder loads an order header with its items inside a transaction,
// holding a row lock so concurrent mutations of the same order serialize.
func (r *PgxOrderRepository) lockOrder(ctx context.Context, tx pgx.Tx, orderID string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1 FOR UPDATE;`

	m, err := scanOrder(tx.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock order %s: %w", orderID, err)
	}

	items, err := fetchOrderItems(ctx, tx, []string{m.OrderID})
	if err != nil {
		return nil, err
	}

	domainOrder := mapping.ToDomainOrder(m, items[m.OrderID])
	return &domainOrder, nil
}

// AddOrderItem appends an item to a pending order and recomputes the stored
// total from the full item list, all inside a single transaction.
func (r *PgxOrderRepository) AddOrderItem(ctx context.Context, orderID string, item domain.OrderItem) (*domain.Order, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	order, err := r.lockOrder(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}

	position := len(order.Items)
	if err := order.AddItem(item); err != nil {
		return nil, err
	}

	modelItem := mapping.ToModelOrderItem(item, position)
	insertItem := `
		INSERT INTO order_items (` + orderItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	if _, err := tx.Exec(ctx, insertItem,
		modelItem.ItemID, modelItem.OrderID, modelItem.ProductID, modelItem.ProductName,
		modelItem.Quantity, modelItem.UnitPrice, modelItem.Position,
		modelItem.CreatedAt, modelItem.CreatedBy, modelItem.LastUpdatedAt, modelItem.LastUpdatedBy,
	); err != nil {
		return nil, fmt.Errorf("failed to insert item for order %s: %w", orderID, err)
	}

	now := time.Now().UTC()
	updateTotal := `
		UPDATE orders
		SET total_amount = $2, last_updated_at = $3, last_updated_by = $4
		WHERE order_id = $1;
	`
	if _, err := tx.Exec(ctx, updateTotal, orderID, order.TotalAmount, now, item.CreatedBy); err != nil {
		return nil, fmt.Errorf("failed to update total of order %s: %w", orderID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateOrderStatus transitions an order inside a single transaction,
// enforcing the status machine against the locked row.
func (r *PgxOrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, next domain.OrderStatus, updaterUserID string) (*domain.Order, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	order, err := r.lockOrder(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.ChangeStatus(next); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	updateStatus := `
		UPDATE orders
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE order_id = $1;
	`
	if _, err := tx.Exec(ctx, updateStatus, orderID, string(order.Status), now, updaterUserID); err != nil {
		return nil, fmt.Errorf("failed to update status of order %s: %w", orderID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	order.LastUpdatedAt = now
	order.LastUpdatedBy = updaterUserID
	return order, nil
}

// listOrders pages order headers for one scope and loads their items.
func (r *PgxOrderRepository) listOrders(ctx context.Context, countQuery, pageQuery string, scopeArgs []any, limit, offset int) ([]domain.Order, int64, error) {
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, scopeArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	args := append(append([]any{}, scopeArgs...), limit, offset)
	rows, err := r.Pool.Query(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	modelOrders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Order, error) {
		return scanOrder(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan orders: %w", err)
	}

	orderIDs := make([]string, len(modelOrders))
	for i, m := range modelOrders {
		orderIDs[i] = m.OrderID
	}
	items, err := fetchOrderItems(ctx, r.Pool, orderIDs)
	if err != nil {
		return nil, 0, err
	}

	domainOrders := make([]domain.Order, len(modelOrders))
	for i, m := range modelOrders {
		domainOrders[i] = mapping.ToDomainOrder(m, items[m.OrderID])
	}
	return domainOrders, total, nil
}

// ListOrdersByCompany retrieves one page of a company's orders, newest first
// with the order ID as a stable tiebreak, plus the total count.
func (r *PgxOrderRepository) ListOrdersByCompany(ctx context.Context, companyID string, limit, offset int) ([]domain.Order, int64, error) {
	countQuery := `SELECT COUNT(*) FROM orders WHERE company_id = $1;`
	pageQuery := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE company_id = $1
		ORDER BY created_at DESC, order_id DESC
		LIMIT $2 OFFSET $3;
	`
	return r.listOrders(ctx, countQuery, pageQuery, []any{companyID}, limit, offset)
}

// ListOrdersByClient retrieves one page of a client's orders within a
// company, newest first with a stable tiebreak, plus the total count.
func (r *PgxOrderRepository) ListOrdersByClient(ctx context.Context, companyID, clientID string, limit, offset int) ([]domain.Order, int64, error) {
	countQuery := `SELECT COUNT(*) FROM orders WHERE company_id = $1 AND client_id = $2;`
	pageQuery := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE company_id = $1 AND client_id = $2
		ORDER BY created_at DESC, order_id DESC
		LIMIT $3 OFFSET $4;
	`
	return r.listOrders(ctx, countQuery, pageQuery, []any{companyID, clientID}, limit, offset)
}
