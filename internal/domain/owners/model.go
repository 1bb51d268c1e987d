package owners

// Owner es inmutable una vez creado: no hay update ni delete.
type Owner struct {
	ID        int64
	FirstName string
	LastName  string
	Email     *string
}

// FullName es el string contra el que se matchea el filtro ownerName de horses.
func (o Owner) FullName() string {
	return o.FirstName + " " + o.LastName
}

type CreateInput struct {
	FirstName string
	LastName  string
	Email     *string
}

type SearchFilter struct {
	Name  string
	Limit int
}
