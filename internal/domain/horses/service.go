package horses

import (
	"context"
	"errors"
	"sort"

	"horse-registry/internal/domain/apperr"
	"horse-registry/internal/platform/logger"
	"horse-registry/internal/platform/metrics"
)

type Service struct {
	repo      Repository
	owners    OwnerLookup
	validator *Validator
	log       logger.Logger
}

func NewService(repo Repository, owners OwnerLookup, log logger.Logger) *Service {
	return &Service{
		repo:      repo,
		owners:    owners,
		validator: NewValidator(owners),
		log:       log.With(map[string]any{"module": "horses"}),
	}
}

func (s *Service) Create(ctx context.Context, d Draft) (Detail, error) {
	d = normalizeDraft(d)

	rel, err := s.parentsOf(ctx, d)
	if err != nil {
		return Detail{}, err
	}
	if err := s.validator.ValidateForCreation(ctx, d, rel); err != nil {
		s.rejected("create", err)
		return Detail{}, err
	}

	h, err := s.repo.Create(ctx, d.toHorse())
	if err != nil {
		return Detail{}, err
	}
	s.log.Info("horse created", map[string]any{"horse_id": h.ID})
	return s.detail(ctx, h)
}

// Update reemplaza el registro completo. Si el caballo ya es padre de otros,
// corre además el chequeo retroactivo contra sus hijos actuales.
func (s *Service) Update(ctx context.Context, d Draft) (Detail, error) {
	d = normalizeDraft(d)

	rel, err := s.parentsOf(ctx, d)
	if err != nil {
		return Detail{}, err
	}
	if d.ID != nil {
		current, err := s.repo.GetByID(ctx, *d.ID)
		if err != nil {
			return Detail{}, err
		}
		children, err := s.repo.GetChildren(ctx, current.ID)
		if err != nil {
			return Detail{}, err
		}
		rel.Current = &current
		rel.Children = children
	}

	if err := s.validator.ValidateForUpdate(ctx, d, rel); err != nil {
		s.rejected("update", err)
		return Detail{}, err
	}

	h, err := s.repo.Update(ctx, d.toHorse())
	if err != nil {
		return Detail{}, err
	}
	s.log.Info("horse updated", map[string]any{"horse_id": h.ID})
	return s.detail(ctx, h)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Detail, error) {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	return s.detail(ctx, h)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("horse deleted", map[string]any{"horse_id": id})
	return nil
}

// Search resuelve los owners de todos los resultados en una sola consulta.
func (s *Service) Search(ctx context.Context, filter SearchFilter) ([]ListItem, error) {
	if filter.Limit != nil && *filter.Limit < 0 {
		var c apperr.Collector
		c.Invalid("Limit of search cannot be negative")
		return nil, c.Err("Invalid horse search")
	}
	if filter.BornBefore != nil {
		d := DateOnly(*filter.BornBefore)
		filter.BornBefore = &d
	}

	found, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	seen := map[int64]bool{}
	ownerIDs := make([]int64, 0, len(found))
	for _, h := range found {
		if h.OwnerID != nil && !seen[*h.OwnerID] {
			seen[*h.OwnerID] = true
			ownerIDs = append(ownerIDs, *h.OwnerID)
		}
	}
	sort.Slice(ownerIDs, func(i, j int) bool { return ownerIDs[i] < ownerIDs[j] })

	resolved, err := s.owners.GetAllByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	out := make([]ListItem, 0, len(found))
	for _, h := range found {
		item := ListItem{
			ID:          h.ID,
			Name:        h.Name,
			Description: h.Description,
			DateOfBirth: h.DateOfBirth,
			Sex:         h.Sex,
		}
		if h.OwnerID != nil {
			o, ok := resolved[*h.OwnerID]
			if !ok {
				return nil, apperr.Fatalf("owner %d of horse %d not found", *h.OwnerID, h.ID)
			}
			item.Owner = &o
		}
		out = append(out, item)
	}
	return out, nil
}

// GetFamilyTree ajusta generations a [0, MaxFamilyTreeGenerations].
// Con 0 el set de ancestros es vacío y el árbol es nil (la raíz igual debe existir).
func (s *Service) GetFamilyTree(ctx context.Context, id int64, generations int) (*FamilyTreeNode, error) {
	generations = ClampGenerations(generations)

	ancestors, err := s.repo.GetAncestors(ctx, id, generations)
	if err != nil {
		return nil, err
	}
	metrics.FamilyTreeSize.Observe(float64(len(ancestors)))

	return BuildFamilyTreeDepth(id, ancestors, generations), nil
}

func (s *Service) parentsOf(ctx context.Context, d Draft) (Relatives, error) {
	var ids []int64
	if d.MotherID != nil {
		ids = append(ids, *d.MotherID)
	}
	if d.FatherID != nil {
		ids = append(ids, *d.FatherID)
	}
	if len(ids) == 0 {
		return Relatives{}, nil
	}

	found, err := s.repo.GetAllByIDs(ctx, ids)
	if err != nil {
		return Relatives{}, err
	}

	var rel Relatives
	if d.MotherID != nil {
		if m, ok := found[*d.MotherID]; ok {
			rel.Mother = &m
		}
	}
	if d.FatherID != nil {
		if f, ok := found[*d.FatherID]; ok {
			rel.Father = &f
		}
	}
	return rel, nil
}

// detail: owner/madre/padre guardados que no resuelven son corrupción del store.
func (s *Service) detail(ctx context.Context, h Horse) (Detail, error) {
	d := Detail{
		ID:          h.ID,
		Name:        h.Name,
		Description: h.Description,
		DateOfBirth: h.DateOfBirth,
		Sex:         h.Sex,
	}

	if h.OwnerID != nil {
		o, err := s.owners.GetByID(ctx, *h.OwnerID)
		if err != nil {
			return Detail{}, asFatal(err, "owner %d of horse %d", *h.OwnerID, h.ID)
		}
		d.Owner = &o
	}
	if h.MotherID != nil {
		m, err := s.repo.GetByID(ctx, *h.MotherID)
		if err != nil {
			return Detail{}, asFatal(err, "mother %d of horse %d", *h.MotherID, h.ID)
		}
		d.Mother = toParent(m)
	}
	if h.FatherID != nil {
		f, err := s.repo.GetByID(ctx, *h.FatherID)
		if err != nil {
			return Detail{}, asFatal(err, "father %d of horse %d", *h.FatherID, h.ID)
		}
		d.Father = toParent(f)
	}
	return d, nil
}

func (s *Service) rejected(op string, err error) {
	var verr *apperr.ValidationError
	kind := "conflict"
	if errors.As(err, &verr) {
		kind = "validation"
	} else if errors.Is(err, apperr.ErrFatal) {
		kind = "fatal"
	}
	metrics.PedigreeRejections.WithLabelValues(op, kind).Inc()
	s.log.Warn("horse rejected", map[string]any{"operation": op, "kind": kind, "error": err.Error()})
}

func asFatal(err error, format string, args ...any) error {
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.Fatalf(format+" not found", args...)
	}
	return err
}

func normalizeDraft(d Draft) Draft {
	if d.DateOfBirth != nil {
		dob := DateOnly(*d.DateOfBirth)
		d.DateOfBirth = &dob
	}
	return d
}
