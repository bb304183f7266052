package postgre

import (
	"context"
	"database/sql"

	"engagement-srv/internal/model"
	"engagement-srv/internal/post/repository"
)

const postColumns = `id, author_id, content, city, visibility,
	views, bot_views, bot_likes, view_revenue, like_revenue, total_revenue,
	approved, approved_by, approved_at, rejected_by, rejected_at, rejection_reason,
	is_active, paid, paid_by, paid_at, payment_amount, created_at, updated_at`

func scanPost(row interface{ Scan(...interface{}) error }) (*model.Post, error) {
	var (
		post            model.Post
		approvedBy      sql.NullString
		approvedAt      sql.NullTime
		rejectedBy      sql.NullString
		rejectedAt      sql.NullTime
		rejectionReason sql.NullString
		paidBy          sql.NullString
		paidAt          sql.NullTime
	)

	err := row.Scan(
		&post.ID, &post.AuthorID, &post.Content, &post.City, &post.Visibility,
		&post.Views, &post.BotViews, &post.BotLikes,
		&post.ViewRevenue, &post.LikeRevenue, &post.TotalRevenue,
		&post.Approved, &approvedBy, &approvedAt,
		&rejectedBy, &rejectedAt, &rejectionReason,
		&post.Active, &post.Paid, &paidBy, &paidAt, &post.PaymentAmount,
		&post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if approvedBy.Valid {
		post.ApprovedBy = approvedBy.String
	}
	if approvedAt.Valid {
		post.ApprovedAt = &approvedAt.Time
	}
	if rejectedBy.Valid {
		post.RejectedBy = rejectedBy.String
	}
	if rejectedAt.Valid {
		post.RejectedAt = &rejectedAt.Time
	}
	if rejectionReason.Valid {
		post.RejectionReason = rejectionReason.String
	}
	if paidBy.Valid {
		post.PaidBy = paidBy.String
	}
	if paidAt.Valid {
		post.PaidAt = &paidAt.Time
	}

	return &post, nil
}

// CreatePost - New posts start pending with zeroed counters.
func (r *implRepository) CreatePost(ctx context.Context, opts repository.CreatePostOptions) (*model.Post, error) {
	query := `
		INSERT INTO engagement.posts (id, author_id, content, city, visibility)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + postColumns

	post, err := scanPost(r.db.QueryRowContext(ctx, query,
		opts.ID, opts.AuthorID, opts.Content, opts.City, opts.Visibility))
	if err != nil {
		r.l.Errorf(ctx, "post.repository.postgre.CreatePost: Failed to insert post: %v", err)
		return nil, repository.ErrPostCreateFailed
	}

	return post, nil
}

// GetPostByID - Load one post.
func (r *implRepository) GetPostByID(ctx context.Context, id string) (*model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM engagement.posts WHERE id = $1`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrPostNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "post.repository.postgre.GetPostByID: Failed to get post: %v", err)
		return nil, err
	}

	return post, nil
}

// ListPostsByAuthor - Author's posts, newest first. Includes rejected posts
// so authors can see their own moderation outcomes.
func (r *implRepository) ListPostsByAuthor(ctx context.Context, opts repository.ListPostsByAuthorOptions) ([]model.Post, int64, error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM engagement.posts WHERE author_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, opts.AuthorID).Scan(&total); err != nil {
		r.l.Errorf(ctx, "post.repository.postgre.ListPostsByAuthor: Failed to count posts: %v", err)
		return nil, 0, err
	}

	query := `SELECT ` + postColumns + `
		FROM engagement.posts
		WHERE author_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, opts.AuthorID, opts.Limit, opts.Offset)
	if err != nil {
		r.l.Errorf(ctx, "post.repository.postgre.ListPostsByAuthor: Failed to list posts: %v", err)
		return nil, 0, err
	}
	defer rows.Close()

	var posts []model.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, 0, err
		}
		posts = append(posts, *post)
	}

	return posts, total, rows.Err()
}

// CountLikes - Like-set size for a post.
func (r *implRepository) CountLikes(ctx context.Context, postID string) (int64, error) {
	query := `SELECT COUNT(*) FROM engagement.post_likes WHERE post_id = $1`

	var count int64
	if err := r.db.QueryRowContext(ctx, query, postID).Scan(&count); err != nil {
		r.l.Errorf(ctx, "post.repository.postgre.CountLikes: Failed to count likes: %v", err)
		return 0, err
	}

	return count, nil
}

// IsLikedBy - Like-set membership check.
func (r *implRepository) IsLikedBy(ctx context.Context, postID, userID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM engagement.post_likes WHERE post_id = $1 AND user_id = $2)`

	var liked bool
	if err := r.db.QueryRowContext(ctx, query, postID, userID).Scan(&liked); err != nil {
		r.l.Errorf(ctx, "post.repository.postgre.IsLikedBy: Failed to check like: %v", err)
		return false, err
	}

	return liked, nil
}
