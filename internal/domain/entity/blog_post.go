package entity

import "time"

// Estados de publicación de un BlogPost.
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
	PostStatusArchived  = "archived"
)

// PostStatuses lista los estados permitidos (para mensajes de validación).
var PostStatuses = []string{PostStatusDraft, PostStatusPublished, PostStatusArchived}

// BlogPost representa un episodio del podcast de la agencia.
// Slug es la clave de negocio; IsFeatured no es exclusivo.
type BlogPost struct {
	ID            string
	Slug          string // clave de negocio: [a-z0-9-]+
	Title         string
	Description   string
	AudioURL      string
	EpisodeNumber int
	Duration      string // mm:ss
	Topics        []string
	AuthorID      string // user id, referencia débil
	DisplayOrder  int
	IsFeatured    bool
	Status        string // draft, published, archived
	PublishedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ValidPostStatus indica si status pertenece al conjunto permitido.
func ValidPostStatus(status string) bool {
	for _, s := range PostStatuses {
		if s == status {
			return true
		}
	}
	return false
}
