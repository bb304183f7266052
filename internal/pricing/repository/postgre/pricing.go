package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/internal/pricing/repository"
)

const ruleColumns = `id, city, tier, price_per_view, price_per_like, multiplier,
	is_active, effective_from, effective_to, created_by, updated_by, created_at, updated_at`

func scanRule(row interface{ Scan(...interface{}) error }) (*model.PricingRule, error) {
	var (
		rule        model.PricingRule
		effectiveTo sql.NullTime
		updatedBy   sql.NullString
	)

	err := row.Scan(
		&rule.ID, &rule.City, &rule.Tier,
		&rule.PricePerView, &rule.PricePerLike, &rule.Multiplier,
		&rule.Active, &rule.EffectiveFrom, &effectiveTo,
		&rule.CreatedBy, &updatedBy, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if effectiveTo.Valid {
		rule.EffectiveTo = &effectiveTo.Time
	}
	if updatedBy.Valid {
		rule.UpdatedBy = updatedBy.String
	}

	return &rule, nil
}

// CreateRule - Insert a new pricing rule row.
func (r *implRepository) CreateRule(ctx context.Context, opts repository.CreateRuleOptions) (*model.PricingRule, error) {
	now := time.Now()

	query := `
		INSERT INTO engagement.pricing_rules
			(id, city, tier, price_per_view, price_per_like, multiplier,
			 is_active, effective_from, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7, $8, $9, $9)
		RETURNING ` + ruleColumns

	rule, err := scanRule(r.db.QueryRowContext(ctx, query,
		opts.ID, opts.City, opts.Tier,
		opts.PricePerView, opts.PricePerLike, opts.Multiplier,
		opts.EffectiveFrom, opts.CreatedBy, now,
	))
	if err != nil {
		r.l.Errorf(ctx, "pricing.repository.postgre.CreateRule: Failed to insert rule: %v", err)
		return nil, repository.ErrRuleCreateFailed
	}

	return rule, nil
}

// GetRuleByID - Get a pricing rule by primary key.
func (r *implRepository) GetRuleByID(ctx context.Context, id string) (*model.PricingRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM engagement.pricing_rules WHERE id = $1`

	rule, err := scanRule(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrRuleNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "pricing.repository.postgre.GetRuleByID: Failed to get rule: %v", err)
		return nil, err
	}

	return rule, nil
}

// GetOpenRuleByCity - Resolve the currently-effective active rule for a city.
// The ordering is a defensive tie-break; writes keep at most one open rule.
func (r *implRepository) GetOpenRuleByCity(ctx context.Context, city string) (*model.PricingRule, error) {
	query := `
		SELECT ` + ruleColumns + `
		FROM engagement.pricing_rules
		WHERE city = $1
		  AND is_active = TRUE
		  AND effective_from <= NOW()
		  AND (effective_to IS NULL OR effective_to > NOW())
		ORDER BY effective_from DESC, created_at DESC
		LIMIT 1
	`

	rule, err := scanRule(r.db.QueryRowContext(ctx, query, city))
	if err == sql.ErrNoRows {
		return nil, nil // No effective rule is not an error here
	}
	if err != nil {
		r.l.Errorf(ctx, "pricing.repository.postgre.GetOpenRuleByCity: Failed to resolve rule: %v", err)
		return nil, err
	}

	return rule, nil
}

// CloseRule - End an open rule's effective window.
func (r *implRepository) CloseRule(ctx context.Context, opts repository.CloseRuleOptions) error {
	query := `
		UPDATE engagement.pricing_rules
		SET effective_to = $2, updated_by = $3, updated_at = NOW()
		WHERE id = $1 AND effective_to IS NULL
	`

	if _, err := r.db.ExecContext(ctx, query, opts.RuleID, opts.EffectiveTo, opts.UpdatedBy); err != nil {
		r.l.Errorf(ctx, "pricing.repository.postgre.CloseRule: Failed to close rule: %v", err)
		return repository.ErrRuleUpdateFailed
	}

	return nil
}

// ListRules - List pricing rules, optionally filtered.
func (r *implRepository) ListRules(ctx context.Context, opts repository.ListRulesOptions) ([]model.PricingRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM engagement.pricing_rules WHERE 1=1`

	args := []interface{}{}
	if opts.ActiveOnly {
		query += ` AND is_active = TRUE AND (effective_to IS NULL OR effective_to > NOW())`
	}
	if opts.City != "" {
		args = append(args, opts.City)
		query += fmt.Sprintf(" AND city = $%d", len(args))
	}
	query += ` ORDER BY city ASC, effective_from DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "pricing.repository.postgre.ListRules: Failed to list rules: %v", err)
		return nil, err
	}
	defer rows.Close()

	var rules []model.PricingRule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("ListRules scan: %w", err)
		}
		rules = append(rules, *rule)
	}

	return rules, rows.Err()
}

// DeactivateRule - Soft-delete a rule.
func (r *implRepository) DeactivateRule(ctx context.Context, opts repository.DeactivateRuleOptions) error {
	query := `
		UPDATE engagement.pricing_rules
		SET is_active = FALSE, updated_by = $2, updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, opts.RuleID, opts.UpdatedBy)
	if err != nil {
		r.l.Errorf(ctx, "pricing.repository.postgre.DeactivateRule: Failed to deactivate rule: %v", err)
		return repository.ErrRuleUpdateFailed
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return repository.ErrRuleUpdateFailed
	}
	if affected == 0 {
		return repository.ErrRuleNotFound
	}

	return nil
}

// CitiesWithOpenRules - Cities that already have an effective rule.
func (r *implRepository) CitiesWithOpenRules(ctx context.Context) (map[string]struct{}, error) {
	query := `
		SELECT DISTINCT city
		FROM engagement.pricing_rules
		WHERE is_active = TRUE
		  AND effective_from <= NOW()
		  AND (effective_to IS NULL OR effective_to > NOW())
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "pricing.repository.postgre.CitiesWithOpenRules: Failed to query cities: %v", err)
		return nil, err
	}
	defer rows.Close()

	cities := make(map[string]struct{})
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, fmt.Errorf("CitiesWithOpenRules scan: %w", err)
		}
		cities[city] = struct{}{}
	}

	return cities, rows.Err()
}

// TierStats - Per-tier rule counts and average prices.
func (r *implRepository) TierStats(ctx context.Context) ([]repository.TierStatRow, error) {
	query := `
		SELECT tier,
		       COUNT(*),
		       COUNT(*) FILTER (WHERE is_active),
		       COALESCE(AVG(price_per_view) FILTER (WHERE is_active), 0),
		       COALESCE(AVG(price_per_like) FILTER (WHERE is_active), 0)
		FROM engagement.pricing_rules
		GROUP BY tier
		ORDER BY tier ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "pricing.repository.postgre.TierStats: Failed to query stats: %v", err)
		return nil, err
	}
	defer rows.Close()

	var stats []repository.TierStatRow
	for rows.Next() {
		var row repository.TierStatRow
		if err := rows.Scan(&row.Tier, &row.Count, &row.ActiveCount, &row.AvgPricePerView, &row.AvgPricePerLike); err != nil {
			return nil, fmt.Errorf("TierStats scan: %w", err)
		}
		stats = append(stats, row)
	}

	return stats, rows.Err()
}
