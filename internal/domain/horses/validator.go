package horses

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"horse-registry/internal/domain/apperr"
)

const (
	maxNameLength        = 255
	maxDescriptionLength = 4095
)

// Relatives son los registros ya guardados contra los que se valida un draft.
// El service los busca en el store antes de validar; el validador no consulta el store.
type Relatives struct {
	Mother *Horse // nil si MotherID no está seteado o no existe
	Father *Horse

	// Solo update: registro actual e hijos actuales.
	Current  *Horse
	Children []Horse
}

// Validator aplica las reglas de pedigree antes de cualquier escritura.
// Todas las reglas se evalúan siempre (nunca corta en la primera falla).
type Validator struct {
	owners OwnerLookup
	now    func() time.Time
}

func NewValidator(owners OwnerLookup) *Validator {
	return &Validator{
		owners: owners,
		now:    time.Now,
	}
}

func (v *Validator) ValidateForCreation(ctx context.Context, d Draft, rel Relatives) error {
	var c apperr.Collector

	v.checkFields(&c, d)
	if err := v.checkOwner(ctx, d.OwnerID); err != nil {
		return err
	}
	checkParentRefs(&c, d, rel)

	return c.Err("Error(s) creating horse")
}

func (v *Validator) ValidateForUpdate(ctx context.Context, d Draft, rel Relatives) error {
	var c apperr.Collector

	if d.ID == nil {
		c.Invalid("No id given")
	}
	v.checkFields(&c, d)
	if err := v.checkOwner(ctx, d.OwnerID); err != nil {
		return err
	}
	checkParentRefs(&c, d, rel)

	if rel.Current != nil && len(rel.Children) > 0 {
		checkExistingChildren(&c, d, *rel.Current, rel.Children)
	}

	return c.Err("Error(s) updating horse")
}

func (v *Validator) checkFields(c *apperr.Collector, d Draft) {
	if strings.TrimSpace(d.Name) == "" {
		c.Invalid("Name of horse cannot be empty")
	} else if utf8.RuneCountInString(d.Name) > maxNameLength {
		c.Invalid("Horse name is too long: longer than 255 characters")
	}

	if d.Description != nil {
		if strings.TrimSpace(*d.Description) == "" {
			c.Invalid("Horse description is given but blank")
		}
		if utf8.RuneCountInString(*d.Description) > maxDescriptionLength {
			c.Invalid("Horse description is too long: longer than 4095 characters")
		}
	}

	if d.DateOfBirth == nil {
		c.Invalid("Date of birth of horse cannot be empty")
	} else if DateOnly(*d.DateOfBirth).After(DateOnly(v.now())) {
		c.Invalid("Date of birth of horse cannot be in the future")
	}

	switch {
	case d.Sex == "":
		c.Invalid("Sex of horse cannot be empty")
	case !d.Sex.Valid():
		c.Invalid(fmt.Sprintf("Sex of horse must be %s or %s", SexMale, SexFemale))
	}
}

// checkOwner: el caller garantiza que los owners referenciados existen,
// así que un faltante es una inconsistencia interna, no un error de validación.
func (v *Validator) checkOwner(ctx context.Context, ownerID *int64) error {
	if ownerID == nil {
		return nil
	}
	if _, err := v.owners.GetByID(ctx, *ownerID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.Fatalf("owner %d referenced by horse not found", *ownerID)
		}
		return err
	}
	return nil
}

func checkParentRefs(c *apperr.Collector, d Draft, rel Relatives) {
	mother, father := rel.Mother, rel.Father

	if d.MotherID == nil {
		mother = nil
	} else if mother == nil {
		c.Conflict(fmt.Sprintf("Mother %d does not exist", *d.MotherID))
	}
	if d.FatherID == nil {
		father = nil
	} else if father == nil {
		c.Conflict(fmt.Sprintf("Father %d does not exist", *d.FatherID))
	}

	CheckParents(c, mother, father, d.DateOfBirth)
}

// CheckParents valida madre/padre contra la fecha de nacimiento del hijo.
// Cada regla es independiente; todas las que aplican se acumulan.
func CheckParents(c *apperr.Collector, mother, father *Horse, childBirth *time.Time) {
	if father != nil {
		if father.Sex == SexFemale {
			c.Conflict("Father cannot be female")
		}
		if childBirth != nil && !father.DateOfBirth.Before(*childBirth) {
			c.Conflict("Father must be born before the child")
		}
	}
	if mother != nil {
		if mother.Sex == SexMale {
			c.Conflict("Mother cannot be male")
		}
		if childBirth != nil && !mother.DateOfBirth.Before(*childBirth) {
			c.Conflict("Mother must be born before the child")
		}
	}
	if mother != nil && father != nil && mother.Sex == father.Sex {
		c.Conflict("Parents of a horse cannot be of the same sex")
	}
}

// checkExistingChildren es el chequeo retroactivo: un caballo que ya es padre
// no puede moverse su nacimiento a/después del hijo más viejo ni cambiar de sexo.
func checkExistingChildren(c *apperr.Collector, d Draft, current Horse, children []Horse) {
	earliest := children[0].DateOfBirth
	for _, ch := range children[1:] {
		if ch.DateOfBirth.Before(earliest) {
			earliest = ch.DateOfBirth
		}
	}

	if d.DateOfBirth != nil && !d.DateOfBirth.Before(earliest) {
		c.Conflict(fmt.Sprintf(
			"Cannot move date of birth to %s: horse is already parent of a horse born on %s",
			d.DateOfBirth.Format(time.DateOnly), earliest.Format(time.DateOnly),
		))
	}
	if d.Sex != "" && d.Sex != current.Sex {
		c.Conflict("Cannot change sex of a horse that is already a parent")
	}
}
