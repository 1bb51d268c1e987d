package horses

import (
	"time"

	"horse-registry/internal/domain/owners"
)

// Parent es la vista reducida de madre/padre dentro de Detail (sin recursión).
type Parent struct {
	ID          int64
	Name        string
	Description *string
	DateOfBirth time.Time
	Sex         Sex
}

// Detail es un caballo con owner y padres resueltos.
type Detail struct {
	ID          int64
	Name        string
	Description *string
	DateOfBirth time.Time
	Sex         Sex

	Owner  *owners.Owner
	Mother *Parent
	Father *Parent
}

func (d Detail) OwnerID() *int64 {
	if d.Owner == nil {
		return nil
	}
	return &d.Owner.ID
}

func (d Detail) MotherID() *int64 {
	if d.Mother == nil {
		return nil
	}
	return &d.Mother.ID
}

func (d Detail) FatherID() *int64 {
	if d.Father == nil {
		return nil
	}
	return &d.Father.ID
}

// ListItem es la vista usada por search.
type ListItem struct {
	ID          int64
	Name        string
	Description *string
	DateOfBirth time.Time
	Sex         Sex
	Owner       *owners.Owner
}

func toParent(h Horse) *Parent {
	return &Parent{
		ID:          h.ID,
		Name:        h.Name,
		Description: h.Description,
		DateOfBirth: h.DateOfBirth,
		Sex:         h.Sex,
	}
}
