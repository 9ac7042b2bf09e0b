package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/agencia-api/internal/domain"
	"github.com/jhoicas/agencia-api/internal/domain/entity"
	"github.com/jhoicas/agencia-api/internal/domain/repository"
)

var _ repository.BlogPostRepository = (*BlogPostRepo)(nil)

const blogPostColumns = `id, slug, title, description, audio_url, episode_number, duration, topics, author_id, display_order, is_featured, status, published_at, created_at, updated_at`

// BlogPostRepo implementación de BlogPostRepository sobre PostgreSQL (usable con pool o tx).
type BlogPostRepo struct {
	q Querier
}

// NewBlogPostRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBlogPostRepository(q Querier) *BlogPostRepo {
	return &BlogPostRepo{q: q}
}

func scanBlogPost(row pgx.Row) (*entity.BlogPost, error) {
	var p entity.BlogPost
	var authorID *string
	err := row.Scan(
		&p.ID, &p.Slug, &p.Title, &p.Description, &p.AudioURL, &p.EpisodeNumber,
		&p.Duration, &p.Topics, &authorID, &p.DisplayOrder, &p.IsFeatured,
		&p.Status, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if authorID != nil {
		p.AuthorID = *authorID
	}
	return &p, nil
}

// Create persiste un nuevo episodio. Topics se almacena como JSONB.
func (r *BlogPostRepo) Create(post *entity.BlogPost) error {
	query := `
		INSERT INTO blog_posts (id, slug, title, description, audio_url, episode_number, duration, topics, author_id, display_order, is_featured, status, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		post.ID, post.Slug, post.Title, post.Description, post.AudioURL, post.EpisodeNumber,
		post.Duration, post.Topics, nullIfEmpty(post.AuthorID), post.DisplayOrder,
		post.IsFeatured, post.Status, post.PublishedAt, post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert blog post: %w", err)
	}
	return nil
}

// GetBySlug obtiene un episodio por slug. Por convención solo las filas
// publicadas son visibles, salvo que includeUnpublished sea true.
func (r *BlogPostRepo) GetBySlug(slug string, includeUnpublished bool) (*entity.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts WHERE slug = $1`
	args := []any{slug}
	if !includeUnpublished {
		query += ` AND status = $2`
		args = append(args, entity.PostStatusPublished)
	}
	p, err := scanBlogPost(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get blog post: %w", err)
	}
	return p, nil
}

// List lista episodios con filtros permitidos y paginación.
func (r *BlogPostRepo) List(f repository.CatalogFilter) ([]*entity.BlogPost, int, error) {
	f.Normalize()
	where, args := buildCatalogWhere(f, entity.PostStatusPublished, true)

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM blog_posts `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count blog posts: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM blog_posts %s ORDER BY display_order ASC, episode_number DESC LIMIT $%d OFFSET $%d`,
		blogPostColumns, where, len(args)+1, len(args)+2)
	rows, err := r.q.Query(context.Background(), query, append(args, f.Limit, f.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	var list []*entity.BlogPost
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan blog post: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// Update actualiza un episodio existente por slug.
func (r *BlogPostRepo) Update(post *entity.BlogPost) error {
	query := `
		UPDATE blog_posts SET title = $2, description = $3, audio_url = $4, episode_number = $5, duration = $6, topics = $7, display_order = $8, updated_at = $9
		WHERE slug = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		post.Slug, post.Title, post.Description, post.AudioURL, post.EpisodeNumber,
		post.Duration, post.Topics, post.DisplayOrder, post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update blog post: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ChangeStatus cambia el estado. Al publicar por primera vez estampa published_at.
func (r *BlogPostRepo) ChangeStatus(slug, status string) error {
	query := `UPDATE blog_posts SET status = $2, updated_at = now() WHERE slug = $1`
	args := []any{slug, status}
	if status == entity.PostStatusPublished {
		query = `UPDATE blog_posts SET status = $2, published_at = COALESCE(published_at, now()), updated_at = now() WHERE slug = $1`
	}
	cmd, err := r.q.Exec(context.Background(), query, args...)
	if err != nil {
		return fmt.Errorf("change blog post status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetFeatured marca o desmarca un episodio destacado. Sin exclusividad.
func (r *BlogPostRepo) SetFeatured(slug string, featured bool) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE blog_posts SET is_featured = $2, updated_at = now() WHERE slug = $1`,
		slug, featured,
	)
	if err != nil {
		return fmt.Errorf("set blog post featured: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetDisplayOrder fija la posición del episodio. Usado dentro de la transacción de reorder.
func (r *BlogPostRepo) SetDisplayOrder(slug string, order int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE blog_posts SET display_order = $2, updated_at = now() WHERE slug = $1`,
		slug, order,
	)
	if err != nil {
		return fmt.Errorf("set blog post order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// HardDelete elimina definitivamente un episodio. Irreversible.
func (r *BlogPostRepo) HardDelete(slug string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM blog_posts WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("delete blog post: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
