package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samScriptt/novapress/internal/domain"
)

// psql builds queries with PostgreSQL placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PostgresPostRepository implements PostRepository using PostgreSQL.
type PostgresPostRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPostRepository creates a new PostgresPostRepository.
func NewPostgresPostRepository(pool *pgxpool.Pool) *PostgresPostRepository {
	return &PostgresPostRepository{pool: pool}
}

// Insert creates a new post. The unique index on original_url is the
// durable dedup guarantee; losing that race surfaces as
// ErrDuplicateOriginalURL.
func (r *PostgresPostRepository) Insert(ctx context.Context, post *domain.Post) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO posts (title, content, summary, original_url, image_url, category, tags)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)
		RETURNING id, created_at
	`, post.Title, post.Content, post.Summary, post.OriginalURL, post.ImageURL,
		post.Category, post.Tags).Scan(&post.ID, &post.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateOriginalURL
		}
		return fmt.Errorf("insert post: %w", err)
	}

	return nil
}

// ExistsByOriginalURL reports whether a post was already ingested from
// the given source URL.
func (r *PostgresPostRepository) ExistsByOriginalURL(ctx context.Context, originalURL string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM posts WHERE original_url = $1)`,
		originalURL).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check original url: %w", err)
	}
	return exists, nil
}

// GetByID retrieves a post by ID. Returns nil when not found.
func (r *PostgresPostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	var post domain.Post
	var imageURL *string

	err := r.pool.QueryRow(ctx, `
		SELECT id, title, content, summary, original_url, image_url, category, tags, created_at
		FROM posts
		WHERE id = $1
	`, id).Scan(&post.ID, &post.Title, &post.Content, &post.Summary, &post.OriginalURL,
		&imageURL, &post.Category, &post.Tags, &post.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}

	if imageURL != nil {
		post.ImageURL = *imageURL
	}
	return &post, nil
}

// List returns one page of the feed, newest first, optionally narrowed
// by a case-insensitive search over title and summary and by category.
func (r *PostgresPostRepository) List(ctx context.Context, filter domain.PostFilter) (*domain.PostPage, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	conditions := sq.And{}
	if filter.Category != "" {
		conditions = append(conditions, sq.Eq{"category": filter.Category})
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		conditions = append(conditions, sq.Or{
			sq.ILike{"title": like},
			sq.ILike{"summary": like},
		})
	}

	countSQL, countArgs, err := psql.Select("COUNT(*)").From("posts").Where(conditions).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	listSQL, listArgs, err := psql.
		Select("id", "title", "content", "summary", "original_url", "image_url", "category", "tags", "created_at").
		From("posts").
		Where(conditions).
		OrderBy("created_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.pool.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.Post, 0, pageSize)
	for rows.Next() {
		var post domain.Post
		var imageURL *string
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.Summary, &post.OriginalURL,
			&imageURL, &post.Category, &post.Tags, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		if imageURL != nil {
			post.ImageURL = *imageURL
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read posts: %w", err)
	}

	totalPages := (total + pageSize - 1) / pageSize
	return &domain.PostPage{
		Posts:      posts,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// Count returns the total number of posts.
func (r *PostgresPostRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}

// CountByCategory returns the number of posts per category.
func (r *PostgresPostRepository) CountByCategory(ctx context.Context) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT category, COUNT(*) FROM posts GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("count by category: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		counts[category] = count
	}
	return counts, rows.Err()
}
