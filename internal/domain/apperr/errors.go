package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound: un id que debía existir no existe (horse, owner, raíz del árbol).
	ErrNotFound = errors.New("not found")

	// ErrFatal marca inconsistencias que nunca deberían ocurrir con escrituras correctas
	// (ej: un owner_id guardado que no resuelve). No se expone al cliente.
	ErrFatal = errors.New("fatal inconsistency")
)

// ValidationError: los datos enviados son inconsistentes en sí mismos.
type ValidationError struct {
	Summary string
	Errors  []string
}

func (e *ValidationError) Error() string {
	return joinMessages(e.Summary, "Failed validations", e.Errors)
}

// ConflictError: los datos enviados chocan con registros ya guardados.
type ConflictError struct {
	Summary string
	Errors  []string
}

func (e *ConflictError) Error() string {
	return joinMessages(e.Summary, "Conflicts", e.Errors)
}

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func Fatalf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrFatal, fmt.Sprintf(format, args...))
}

func joinMessages(summary, label string, msgs []string) string {
	if len(msgs) == 0 {
		return summary
	}
	return fmt.Sprintf("%s. %s: %s.", summary, label, strings.Join(msgs, ", "))
}

// Collector acumula errores de validación y de conflicto sin cortar en el primero,
// así un request reporta todos los problemas de una vez.
type Collector struct {
	validation []string
	conflicts  []string
}

func (c *Collector) Invalid(msg string) { c.validation = append(c.validation, msg) }

func (c *Collector) Conflict(msg string) { c.conflicts = append(c.conflicts, msg) }

func (c *Collector) HasValidation() bool { return len(c.validation) > 0 }

func (c *Collector) HasConflicts() bool { return len(c.conflicts) > 0 }

// Err devuelve nil si no hubo fallas. Validación tiene precedencia sobre conflicto.
func (c *Collector) Err(summary string) error {
	if len(c.validation) > 0 {
		return &ValidationError{Summary: summary, Errors: append([]string(nil), c.validation...)}
	}
	if len(c.conflicts) > 0 {
		return &ConflictError{Summary: summary, Errors: append([]string(nil), c.conflicts...)}
	}
	return nil
}
