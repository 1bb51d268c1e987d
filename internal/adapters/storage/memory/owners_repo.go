package memory

import (
	"context"
	"sort"
	"strings"

	"horse-registry/internal/domain/apperr"
	"horse-registry/internal/domain/owners"
)

type ownerRepo struct {
	s *Store
}

func (r *ownerRepo) Create(ctx context.Context, in owners.CreateInput) (owners.Owner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextOwnerID++
	o := owners.Owner{
		ID:        r.s.nextOwnerID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
	}
	r.s.owners[o.ID] = o
	return o, nil
}

func (r *ownerRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.owners[id]
	if !ok {
		return owners.Owner{}, apperr.NotFoundf("owner %d", id)
	}
	return o, nil
}

func (r *ownerRepo) GetAllByIDs(ctx context.Context, ids []int64) (map[int64]owners.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make(map[int64]owners.Owner, len(ids))
	for _, id := range ids {
		if o, ok := r.s.owners[id]; ok {
			out[id] = o
		}
	}
	return out, nil
}

func (r *ownerRepo) Search(ctx context.Context, filter owners.SearchFilter) ([]owners.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	needle := strings.ToUpper(filter.Name)
	out := make([]owners.Owner, 0)
	for _, o := range r.s.owners {
		if strings.Contains(strings.ToUpper(o.FullName()), needle) {
			out = append(out, o)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}
