package horses

import (
	"strings"
	"time"
)

// Sex define el sexo del caballo.
// @Enum MALE, FEMALE
type Sex string

const (
	SexMale   Sex = "MALE"
	SexFemale Sex = "FEMALE"
)

func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// ParseSex acepta mayúsculas o minúsculas.
func ParseSex(raw string) (Sex, bool) {
	s := Sex(strings.ToUpper(strings.TrimSpace(raw)))
	return s, s.Valid()
}

// Horse es un nodo del grafo de pedigree: dos aristas opcionales (madre, padre)
// hacia otros registros Horse.
type Horse struct {
	ID int64

	Name        string
	Description *string
	DateOfBirth time.Time // precisión de día, UTC
	Sex         Sex

	OwnerID  *int64
	MotherID *int64
	FatherID *int64
}

// Draft son los datos propuestos para create/update.
// Update reemplaza todos los campos y referencias (no hay updates parciales).
type Draft struct {
	ID *int64 // solo update

	Name        string
	Description *string
	DateOfBirth *time.Time
	Sex         Sex

	OwnerID  *int64
	MotherID *int64
	FatherID *int64
}

// toHorse asume que el draft ya fue validado (DateOfBirth no nil).
func (d Draft) toHorse() Horse {
	h := Horse{
		Name:        d.Name,
		Description: d.Description,
		Sex:         d.Sex,
		OwnerID:     d.OwnerID,
		MotherID:    d.MotherID,
		FatherID:    d.FatherID,
	}
	if d.ID != nil {
		h.ID = *d.ID
	}
	if d.DateOfBirth != nil {
		h.DateOfBirth = *d.DateOfBirth
	}
	return h
}

// SearchFilter: cada campo nil significa "sin restricción"; los presentes se combinan con AND.
type SearchFilter struct {
	Name        *string
	Description *string
	Sex         *Sex
	BornBefore  *time.Time // cota superior exclusiva
	OwnerName   *string    // contra firstName + " " + lastName
	Limit       *int       // nil => todos los resultados
}

// DateOnly normaliza a medianoche UTC; todas las fechas del dominio pasan por acá.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
