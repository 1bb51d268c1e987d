package memory

import (
	"context"
	"sort"
	"strings"

	"horse-registry/internal/domain/apperr"
	"horse-registry/internal/domain/horses"
)

type horseRepo struct {
	s *Store
}

func (r *horseRepo) GetByID(ctx context.Context, id int64) (horses.Horse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	h, ok := r.s.horses[id]
	if !ok {
		return horses.Horse{}, apperr.NotFoundf("horse %d", id)
	}
	return h, nil
}

func (r *horseRepo) GetAllByIDs(ctx context.Context, ids []int64) (map[int64]horses.Horse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make(map[int64]horses.Horse, len(ids))
	for _, id := range ids {
		if h, ok := r.s.horses[id]; ok {
			out[id] = h
		}
	}
	return out, nil
}

func (r *horseRepo) Search(ctx context.Context, filter horses.SearchFilter) ([]horses.Horse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]horses.Horse, 0)
	for _, h := range r.s.horses {
		if r.matches(h, filter) {
			out = append(out, h)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if filter.Limit != nil && *filter.Limit >= 0 && len(out) > *filter.Limit {
		out = out[:*filter.Limit]
	}
	return out, nil
}

// matches replica la semántica del LIKE '%x%' case-insensitive de la versión SQL.
// Se llama con el read lock tomado.
func (r *horseRepo) matches(h horses.Horse, f horses.SearchFilter) bool {
	if f.Name != nil && !containsFold(h.Name, *f.Name) {
		return false
	}
	if f.Description != nil && (h.Description == nil || !containsFold(*h.Description, *f.Description)) {
		return false
	}
	if f.Sex != nil && h.Sex != *f.Sex {
		return false
	}
	if f.BornBefore != nil && !h.DateOfBirth.Before(horses.DateOnly(*f.BornBefore)) {
		return false
	}
	if f.OwnerName != nil {
		if h.OwnerID == nil {
			return false
		}
		o, ok := r.s.owners[*h.OwnerID]
		if !ok || !containsFold(o.FullName(), *f.OwnerName) {
			return false
		}
	}
	return true
}

// GetAncestors hace BFS desde la raíz; cada caballo entra una vez, en su generación más baja.
func (r *horseRepo) GetAncestors(ctx context.Context, rootID int64, maxGenerations int) ([]horses.Horse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	root, ok := r.s.horses[rootID]
	if !ok {
		return nil, apperr.NotFoundf("horse %d", rootID)
	}
	out := make([]horses.Horse, 0)
	if maxGenerations <= 0 {
		return out, nil
	}

	seen := map[int64]bool{root.ID: true}
	level := []horses.Horse{root}
	for gen := 1; len(level) > 0; gen++ {
		out = append(out, level...)
		if gen == maxGenerations {
			break
		}

		var next []horses.Horse
		for _, h := range level {
			for _, pid := range []*int64{h.MotherID, h.FatherID} {
				if pid == nil || seen[*pid] {
					continue
				}
				if p, ok := r.s.horses[*pid]; ok {
					seen[p.ID] = true
					next = append(next, p)
				}
			}
		}
		level = next
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *horseRepo) GetChildren(ctx context.Context, horseID int64) ([]horses.Horse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]horses.Horse, 0)
	for _, h := range r.s.horses {
		if isParent(h, horseID) {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *horseRepo) Create(ctx context.Context, h horses.Horse) (horses.Horse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextHorseID++
	h.ID = r.s.nextHorseID
	h.DateOfBirth = horses.DateOnly(h.DateOfBirth)
	r.s.horses[h.ID] = h
	return h, nil
}

func (r *horseRepo) Update(ctx context.Context, h horses.Horse) (horses.Horse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.horses[h.ID]; !exists {
		return horses.Horse{}, apperr.NotFoundf("horse %d", h.ID)
	}
	h.DateOfBirth = horses.DateOnly(h.DateOfBirth)
	r.s.horses[h.ID] = h
	return h, nil
}

// Delete corre bajo el write lock: ningún lector ve un hijo apuntando a un padre borrado.
func (r *horseRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.horses[id]; !exists {
		return apperr.NotFoundf("horse %d", id)
	}

	for cid, child := range r.s.horses {
		changed := false
		if child.MotherID != nil && *child.MotherID == id {
			child.MotherID = nil
			changed = true
		}
		if child.FatherID != nil && *child.FatherID == id {
			child.FatherID = nil
			changed = true
		}
		if changed {
			r.s.horses[cid] = child
		}
	}
	delete(r.s.horses, id)
	return nil
}

func isParent(child horses.Horse, id int64) bool {
	return (child.MotherID != nil && *child.MotherID == id) ||
		(child.FatherID != nil && *child.FatherID == id)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToUpper(s), strings.ToUpper(substr))
}
