// Package memory guarda caballos y owners en mapas, para dev y tests.
package memory

import (
	"sync"

	"horse-registry/internal/domain/horses"
	"horse-registry/internal/domain/owners"
)

// Store comparte un único lock entre caballos y owners: la búsqueda por
// ownerName lee ambos mapas y el delete de un caballo toca a sus hijos.
type Store struct {
	mu sync.RWMutex

	horses      map[int64]horses.Horse
	owners      map[int64]owners.Owner
	nextHorseID int64
	nextOwnerID int64
}

func NewStore() *Store {
	return &Store{
		horses: make(map[int64]horses.Horse),
		owners: make(map[int64]owners.Owner),
	}
}

func (s *Store) Horses() horses.Repository { return &horseRepo{s: s} }

func (s *Store) Owners() owners.Repository { return &ownerRepo{s: s} }
