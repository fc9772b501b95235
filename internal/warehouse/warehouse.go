// Package warehouse is the optional relational source for the dashboard.
// It reads the same transaction log out of a PostgreSQL star schema
// (fact_transactions joined to dim_date, dim_product and dim_customer) and
// exposes a repository of parameterized analytical queries.
package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"ecomdash/internal/config"
	"ecomdash/internal/models"
	"ecomdash/internal/observability"
)

type Store struct {
	db     *sql.DB
	cfg    config.WarehouseConfig
	logger *slog.Logger
}

func Open(ctx context.Context, cfg config.WarehouseConfig, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open warehouse: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.QueryTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping warehouse: %w", err)
	}

	logger.Info("warehouse connected",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
	)

	return &Store{db: db, cfg: cfg, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// LoadTransactions reads the full fact table joined to its dimensions so
// the analytics layer can treat the warehouse and the CSV file as the same
// kind of source.
func (s *Store) LoadTransactions(ctx context.Context) (result []models.Transaction, err error) {
	ctx, finish := observability.TraceOperation(ctx, "warehouse.load_transactions")
	defer func() { finish(err) }()

	const query = `
	SELECT
		ft.transaction_id,
		dd.calendar_date,
		ft.customer_id,
		dc.customer_state,
		dc.customer_city,
		dc.age_group,
		ft.product_id,
		dp.product_name,
		dp.category,
		dp.brand,
		ft.original_price,
		ft.discount_percent,
		ft.final_amount,
		ft.quantity,
		ft.payment_method,
		ft.delivery_type,
		ft.delivery_days,
		ft.is_prime_member,
		dd.is_festival_season,
		COALESCE(dd.festival_name, ''),
		ft.customer_rating,
		dp.rating,
		ft.return_status
	FROM fact_transactions ft
	JOIN dim_date dd ON ft.date_id = dd.date_id
	JOIN dim_product dp ON ft.product_id = dp.product_id
	JOIN dim_customer dc ON ft.customer_id = dc.customer_id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		s.logger.Error("load transactions", "error", err)
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	defer rows.Close()

	var data []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(
			&tx.TransactionID,
			&tx.OrderDate,
			&tx.CustomerID,
			&tx.CustomerState,
			&tx.CustomerCity,
			&tx.AgeGroup,
			&tx.ProductID,
			&tx.ProductName,
			&tx.Category,
			&tx.Brand,
			&tx.OriginalPrice,
			&tx.DiscountPct,
			&tx.FinalAmount,
			&tx.Quantity,
			&tx.PaymentMethod,
			&tx.DeliveryType,
			&tx.DeliveryDays,
			&tx.IsPrimeMember,
			&tx.IsFestivalSale,
			&tx.FestivalName,
			&tx.CustomerRating,
			&tx.ProductRating,
			&tx.ReturnStatus,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		data = append(data, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("no transactions in warehouse")
	}

	return data, nil
}

// SaveSegmentSnapshot records one row per RFM segment so segment drift can
// be compared across dataset loads.
func (s *Store) SaveSegmentSnapshot(ctx context.Context, snapshotID string, segments []models.SegmentSummary) error {
	const query = `
	INSERT INTO rfm_segment_snapshots
		(snapshot_id, segment, customers, avg_recency, avg_frequency, avg_monetary, total_value)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot insert: %w", err)
	}
	defer tx.Rollback()

	for _, seg := range segments {
		if _, err := tx.ExecContext(ctx, query,
			snapshotID, seg.Segment, seg.Customers,
			seg.AvgRecency, seg.AvgFrequency, seg.AvgMonetary, seg.TotalValue,
		); err != nil {
			return fmt.Errorf("insert segment %s: %w", seg.Segment, err)
		}
	}

	return tx.Commit()
}
