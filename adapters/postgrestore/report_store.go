package postgrestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopcloud/backend/domain/checkout"
)

type ReportStore struct {
	db *sqlx.DB
}

func NewReportStore(db *sqlx.DB) *ReportStore {
	return &ReportStore{db}
}

// CustomerSummary counts the orders of a customer. A customer without
// orders gets a zero summary.
func (s *ReportStore) CustomerSummary(ctx context.Context, customerID string) (*checkout.CustomerSummary, error) {
	var result CustomerSummaryQuerySchema
	err := s.db.GetContext(ctx, &result, s.db.Rebind(
		`SELECT customer_id, COUNT(id) AS order_count, COALESCE(SUM(total), 0) AS total
		FROM orders WHERE customer_id = ? GROUP BY customer_id`), customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &checkout.CustomerSummary{CustomerID: customerID}, nil
		}

		return nil, fmt.Errorf("cannot get the summary of customer '%s': %w", customerID, err)
	}

	summary := result.ToDomainSummary()
	return &summary, nil
}

func (s *ReportStore) TopCustomers(ctx context.Context, limit int) ([]checkout.CustomerSummary, error) {
	var results []CustomerSummaryQuerySchema
	err := s.db.SelectContext(ctx, &results, s.db.Rebind(
		`SELECT customer_id, COUNT(id) AS order_count, COALESCE(SUM(total), 0) AS total
		FROM orders GROUP BY customer_id ORDER BY total DESC, customer_id LIMIT ?`), limit)
	if err != nil {
		return nil, fmt.Errorf("cannot list the top customers: %w", err)
	}

	summaries := make([]checkout.CustomerSummary, len(results))
	for i, result := range results {
		summaries[i] = result.ToDomainSummary()
	}

	return summaries, nil
}
