package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"horse-registry/internal/domain/apperr"
	"horse-registry/internal/domain/owners"
)

type OwnersRepo struct {
	db      *sql.DB
	dialect Dialect
}

func NewOwnersRepo(db *sql.DB, d Dialect) *OwnersRepo {
	return &OwnersRepo{db: db, dialect: d}
}

const ownerColumns = `id, first_name, last_name, email`

func (r *OwnersRepo) Create(ctx context.Context, in owners.CreateInput) (owners.Owner, error) {
	o := owners.Owner{FirstName: in.FirstName, LastName: in.LastName, Email: in.Email}

	err := r.db.QueryRowContext(ctx, r.dialect.rebind(`
		INSERT INTO owner (first_name, last_name, email)
		VALUES (?, ?, ?)
		RETURNING id
	`), o.FirstName, o.LastName, nullString(o.Email)).Scan(&o.ID)
	if err != nil {
		return owners.Owner{}, err
	}
	return o, nil
}

func (r *OwnersRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	row := r.db.QueryRowContext(ctx, r.dialect.rebind(`
		SELECT `+ownerColumns+`
		FROM owner
		WHERE id = ?
	`), id)

	o, err := scanOwner(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return owners.Owner{}, apperr.NotFoundf("owner %d", id)
		}
		return owners.Owner{}, err
	}
	return o, nil
}

func (r *OwnersRepo) GetAllByIDs(ctx context.Context, ids []int64) (map[int64]owners.Owner, error) {
	out := make(map[int64]owners.Owner, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}

	rows, err := r.db.QueryContext(ctx, r.dialect.rebind(`
		SELECT `+ownerColumns+`
		FROM owner
		WHERE id IN (`+placeholders(len(ids))+`)
	`), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		o, err := scanOwner(rows)
		if err != nil {
			return nil, err
		}
		out[o.ID] = o
	}
	return out, rows.Err()
}

func (r *OwnersRepo) Search(ctx context.Context, filter owners.SearchFilter) ([]owners.Owner, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT ` + ownerColumns + `
		FROM owner
		WHERE 1 = 1
	`)
	args := []any{}

	if filter.Name != "" {
		sb.WriteString(" AND UPPER(first_name || ' ' || last_name) LIKE UPPER(?) ESCAPE '\\'")
		args = append(args, containsPattern(filter.Name))
	}

	sb.WriteString(" ORDER BY id")
	if filter.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, r.dialect.rebind(sb.String()), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]owners.Owner, 0)
	for rows.Next() {
		o, err := scanOwner(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOwner(s rowScanner) (owners.Owner, error) {
	var o owners.Owner
	var email sql.NullString
	if err := s.Scan(&o.ID, &o.FirstName, &o.LastName, &email); err != nil {
		return owners.Owner{}, err
	}
	if email.Valid {
		o.Email = &email.String
	}
	return o, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
