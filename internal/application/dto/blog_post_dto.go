package dto

import "time"

// CreateBlogPostRequest entrada para crear un episodio del podcast.
type CreateBlogPostRequest struct {
	Slug          string   `json:"slug" validate:"required,min=1,max=150"`
	Title         string   `json:"title" validate:"required,min=1,max=250"`
	Description   string   `json:"description"`
	AudioURL      string   `json:"audio_url"`
	EpisodeNumber int      `json:"episode_number"`
	Duration      string   `json:"duration"`
	Topics        []string `json:"topics"`
	Order         int      `json:"order"`
}

// UpdateBlogPostRequest actualización parcial de un episodio.
type UpdateBlogPostRequest struct {
	Title         *string  `json:"title" validate:"omitempty,min=1,max=250"`
	Description   *string  `json:"description"`
	AudioURL      *string  `json:"audio_url"`
	EpisodeNumber *int     `json:"episode_number"`
	Duration      *string  `json:"duration"`
	Topics        []string `json:"topics"`
	Order         *int     `json:"order"`
}

// Empty indica si la intersección con los campos permitidos quedó vacía.
func (r UpdateBlogPostRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.AudioURL == nil &&
		r.EpisodeNumber == nil && r.Duration == nil && r.Topics == nil && r.Order == nil
}

// BlogPostResponse salida de un episodio.
type BlogPostResponse struct {
	ID            string     `json:"id"`
	Slug          string     `json:"slug"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	AudioURL      string     `json:"audio_url"`
	EpisodeNumber int        `json:"episode_number"`
	Duration      string     `json:"duration"`
	Topics        []string   `json:"topics"`
	AuthorID      string     `json:"author_id,omitempty"`
	Order         int        `json:"order"`
	IsFeatured    bool       `json:"is_featured"`
	Status        string     `json:"status"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// BlogPostReorderItem par slug/order del body de reorder.
type BlogPostReorderItem struct {
	Slug  string `json:"slug" validate:"required"`
	Order int    `json:"order"`
}

// BlogPostReorderRequest lote de reordenamiento; se aplica completo o no se
// aplica.
type BlogPostReorderRequest struct {
	Order []BlogPostReorderItem `json:"order" validate:"required,min=1"`
}

// Items traduce el body al par genérico de los casos de uso.
func (r BlogPostReorderRequest) Items() []ReorderItem {
	items := make([]ReorderItem, 0, len(r.Order))
	for _, it := range r.Order {
		items = append(items, ReorderItem{BusinessID: it.Slug, Order: it.Order})
	}
	return items
}
