package owners

import "context"

type Repository interface {
	Create(ctx context.Context, in CreateInput) (Owner, error)
	GetByID(ctx context.Context, id int64) (Owner, error)
	// GetAllByIDs devuelve solo los owners encontrados; los ids ausentes no aparecen en el mapa.
	GetAllByIDs(ctx context.Context, ids []int64) (map[int64]Owner, error)
	Search(ctx context.Context, filter SearchFilter) ([]Owner, error)
}
