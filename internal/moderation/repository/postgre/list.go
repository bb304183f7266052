package postgre

import (
	"context"
	"fmt"
	"time"

	"engagement-srv/internal/moderation/repository"
	"engagement-srv/internal/model"
)

// ListPosts - Admin review list with a status filter.
func (r *implRepository) ListPosts(ctx context.Context, opts repository.ListPostsOptions) ([]model.Post, int64, error) {
	where := `WHERE 1=1`
	args := []interface{}{}

	switch opts.Status {
	case "pending":
		where += ` AND approved = FALSE AND is_active = TRUE AND paid = FALSE`
	case "approved":
		where += ` AND approved = TRUE AND paid = FALSE`
	case "paid":
		where += ` AND paid = TRUE`
	}
	if opts.City != "" {
		args = append(args, opts.City)
		where += fmt.Sprintf(" AND city = $%d", len(args))
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM engagement.posts ` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.ListPosts: Failed to count posts: %v", err)
		return nil, 0, err
	}

	args = append(args, opts.Limit, opts.Offset)
	query := fmt.Sprintf(`SELECT %s FROM engagement.posts %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		postColumns, where, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.ListPosts: Failed to list posts: %v", err)
		return nil, 0, err
	}
	defer rows.Close()

	posts, err := scanPosts(rows)
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// ListPendingPayments - Approved unpaid posts, oldest approval first.
func (r *implRepository) ListPendingPayments(ctx context.Context, opts repository.ListPendingPaymentsOptions) ([]model.Post, int64, error) {
	where := `WHERE approved = TRUE AND paid = FALSE AND is_active = TRUE`
	args := []interface{}{}

	if opts.City != "" {
		args = append(args, opts.City)
		where += fmt.Sprintf(" AND city = $%d", len(args))
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM engagement.posts ` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.ListPendingPayments: Failed to count posts: %v", err)
		return nil, 0, err
	}

	args = append(args, opts.Limit, opts.Offset)
	query := fmt.Sprintf(`SELECT %s FROM engagement.posts %s ORDER BY approved_at ASC LIMIT $%d OFFSET $%d`,
		postColumns, where, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.ListPendingPayments: Failed to list posts: %v", err)
		return nil, 0, err
	}
	defer rows.Close()

	posts, err := scanPosts(rows)
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// ListPaidPosts - Payment history within a window, newest payment first.
func (r *implRepository) ListPaidPosts(ctx context.Context, opts repository.ListPaidPostsOptions) ([]model.Post, int64, error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM engagement.posts WHERE paid = TRUE AND paid_at >= $1`
	if err := r.db.QueryRowContext(ctx, countQuery, opts.Since).Scan(&total); err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.ListPaidPosts: Failed to count posts: %v", err)
		return nil, 0, err
	}

	query := `SELECT ` + postColumns + `
		FROM engagement.posts
		WHERE paid = TRUE AND paid_at >= $1
		ORDER BY paid_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, opts.Since, opts.Limit, opts.Offset)
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.ListPaidPosts: Failed to list posts: %v", err)
		return nil, 0, err
	}
	defer rows.Close()

	posts, err := scanPosts(rows)
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// PaymentStats - Aggregate paid figures for a window.
func (r *implRepository) PaymentStats(ctx context.Context, since time.Time) (repository.PaymentStatsRow, error) {
	query := `
		SELECT COALESCE(SUM(payment_amount), 0), COUNT(*)
		FROM engagement.posts
		WHERE paid = TRUE AND paid_at >= $1
	`

	var stats repository.PaymentStatsRow
	if err := r.db.QueryRowContext(ctx, query, since).Scan(&stats.TotalAmount, &stats.TotalPosts); err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.PaymentStats: Failed to query stats: %v", err)
		return repository.PaymentStatsRow{}, err
	}

	return stats, nil
}
