package horses

import "time"

const (
	MaxFamilyTreeGenerations     = 100
	DefaultFamilyTreeGenerations = 5
)

// FamilyTreeNode es una vista transitoria sobre las filas planas de ancestros.
type FamilyTreeNode struct {
	ID          int64
	Name        string
	DateOfBirth time.Time
	Mother      *FamilyTreeNode
	Father      *FamilyTreeNode
}

// ClampGenerations: fuera de rango se ajusta, no se rechaza.
func ClampGenerations(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxFamilyTreeGenerations {
		return MaxFamilyTreeGenerations
	}
	return n
}

// BuildFamilyTree arma el árbol sin cota extra: la profundidad la define el set de ancestros.
func BuildFamilyTree(rootID int64, ancestors []Horse) *FamilyTreeNode {
	return BuildFamilyTreeDepth(rootID, ancestors, len(ancestors))
}

// BuildFamilyTreeDepth arma el árbol con raíz rootID usando solo las filas recibidas.
// Un padre ausente del set queda nil. La raíz cuenta como generación 1 y ningún
// nodo se expande más allá de maxGenerations, aunque el set tenga sus padres
// por otro camino (pedigrees con consanguinidad).
// Devuelve nil si rootID no está en el set.
func BuildFamilyTreeDepth(rootID int64, ancestors []Horse, maxGenerations int) *FamilyTreeNode {
	if maxGenerations <= 0 {
		return nil
	}

	index := make(map[int64]*Horse, len(ancestors))
	for i := range ancestors {
		index[ancestors[i].ID] = &ancestors[i]
	}

	b := treeBuilder{index: index, max: maxGenerations, path: map[int64]bool{}}
	return b.node(&rootID, 1)
}

type treeBuilder struct {
	index map[int64]*Horse
	max   int
	// path son los ids de la rama actual; corta ciclos si el store está corrupto.
	path map[int64]bool
}

func (b *treeBuilder) node(id *int64, generation int) *FamilyTreeNode {
	if id == nil || generation > b.max || b.path[*id] {
		return nil
	}
	h, ok := b.index[*id]
	if !ok {
		return nil
	}

	b.path[h.ID] = true
	defer delete(b.path, h.ID)

	return &FamilyTreeNode{
		ID:          h.ID,
		Name:        h.Name,
		DateOfBirth: h.DateOfBirth,
		Mother:      b.node(h.MotherID, generation+1),
		Father:      b.node(h.FatherID, generation+1),
	}
}
