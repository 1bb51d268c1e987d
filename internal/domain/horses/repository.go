package horses

import (
	"context"

	"horse-registry/internal/domain/owners"
)

// Repository es el Entity Store de caballos.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Horse, error)
	// GetAllByIDs devuelve solo los encontrados; el caller decide si un faltante es fatal.
	GetAllByIDs(ctx context.Context, ids []int64) (map[int64]Horse, error)
	Search(ctx context.Context, filter SearchFilter) ([]Horse, error)
	// GetAncestors devuelve la raíz y sus ancestros hasta maxGenerations (la raíz es la generación 1).
	// Falla con not found si rootID no existe; con maxGenerations <= 0 devuelve un set vacío.
	GetAncestors(ctx context.Context, rootID int64, maxGenerations int) ([]Horse, error)
	// GetChildren devuelve todos los caballos cuyo mother_id o father_id es horseID.
	GetChildren(ctx context.Context, horseID int64) ([]Horse, error)
	Create(ctx context.Context, h Horse) (Horse, error)
	Update(ctx context.Context, h Horse) (Horse, error)
	// Delete borra el caballo y deja en NULL las referencias de sus hijos, de forma atómica.
	Delete(ctx context.Context, id int64) error
}

// OwnerLookup resuelve owners referenciados. Lo implementa owners.Service;
// se declara acá para no acoplar horses a la implementación.
type OwnerLookup interface {
	GetByID(ctx context.Context, id int64) (owners.Owner, error)
	GetAllByIDs(ctx context.Context, ids []int64) (map[int64]owners.Owner, error)
}
