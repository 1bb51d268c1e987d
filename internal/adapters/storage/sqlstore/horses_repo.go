package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"horse-registry/internal/domain/apperr"
	"horse-registry/internal/domain/horses"
)

type HorsesRepo struct {
	db      *sql.DB
	dialect Dialect
}

func NewHorsesRepo(db *sql.DB, d Dialect) *HorsesRepo {
	return &HorsesRepo{db: db, dialect: d}
}

const horseColumns = `id, name, description, date_of_birth, sex, owner_id, mother_id, father_id`

func (r *HorsesRepo) GetByID(ctx context.Context, id int64) (horses.Horse, error) {
	row := r.db.QueryRowContext(ctx, r.dialect.rebind(`
		SELECT `+horseColumns+`
		FROM horse
		WHERE id = ?
	`), id)

	h, err := scanHorse(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return horses.Horse{}, apperr.NotFoundf("horse %d", id)
		}
		return horses.Horse{}, err
	}
	return h, nil
}

func (r *HorsesRepo) GetAllByIDs(ctx context.Context, ids []int64) (map[int64]horses.Horse, error) {
	out := make(map[int64]horses.Horse, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}

	list, err := r.query(ctx, `
		SELECT `+horseColumns+`
		FROM horse
		WHERE id IN (`+placeholders(len(ids))+`)
	`, args...)
	if err != nil {
		return nil, err
	}
	for _, h := range list {
		out[h.ID] = h
	}
	return out, nil
}

func (r *HorsesRepo) Search(ctx context.Context, filter horses.SearchFilter) ([]horses.Horse, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT h.id, h.name, h.description, h.date_of_birth, h.sex, h.owner_id, h.mother_id, h.father_id
		FROM horse h
		LEFT JOIN owner o ON o.id = h.owner_id
		WHERE 1 = 1
	`)
	args := []any{}

	if filter.Name != nil {
		sb.WriteString(" AND UPPER(h.name) LIKE UPPER(?) ESCAPE '\\'")
		args = append(args, containsPattern(*filter.Name))
	}
	if filter.Description != nil {
		sb.WriteString(" AND UPPER(h.description) LIKE UPPER(?) ESCAPE '\\'")
		args = append(args, containsPattern(*filter.Description))
	}
	if filter.Sex != nil {
		sb.WriteString(" AND h.sex = ?")
		args = append(args, string(*filter.Sex))
	}
	if filter.BornBefore != nil {
		sb.WriteString(" AND h.date_of_birth < ?")
		args = append(args, horses.DateOnly(*filter.BornBefore))
	}
	if filter.OwnerName != nil {
		sb.WriteString(" AND UPPER(o.first_name || ' ' || o.last_name) LIKE UPPER(?) ESCAPE '\\'")
		args = append(args, containsPattern(*filter.OwnerName))
	}

	sb.WriteString(" ORDER BY h.id")
	if filter.Limit != nil && *filter.Limit >= 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, *filter.Limit)
	}

	return r.query(ctx, sb.String(), args...)
}

// GetAncestors recorre madre/padre con un CTE recursivo. La raíz es la generación 1.
func (r *HorsesRepo) GetAncestors(ctx context.Context, rootID int64, maxGenerations int) ([]horses.Horse, error) {
	if _, err := r.GetByID(ctx, rootID); err != nil {
		return nil, err
	}
	if maxGenerations <= 0 {
		return []horses.Horse{}, nil
	}

	return r.query(ctx, `
		WITH RECURSIVE ancestors (id, mother_id, father_id, generation) AS (
			SELECT id, mother_id, father_id, 1
			FROM horse
			WHERE id = ?
			UNION
			SELECT h.id, h.mother_id, h.father_id, a.generation + 1
			FROM horse h
			JOIN ancestors a ON h.id = a.mother_id OR h.id = a.father_id
			WHERE a.generation < ?
		)
		SELECT `+horseColumns+`
		FROM horse
		WHERE id IN (SELECT id FROM ancestors)
		ORDER BY id
	`, rootID, maxGenerations)
}

func (r *HorsesRepo) GetChildren(ctx context.Context, horseID int64) ([]horses.Horse, error) {
	return r.query(ctx, `
		SELECT `+horseColumns+`
		FROM horse
		WHERE mother_id = ? OR father_id = ?
		ORDER BY id
	`, horseID, horseID)
}

func (r *HorsesRepo) Create(ctx context.Context, h horses.Horse) (horses.Horse, error) {
	h.DateOfBirth = horses.DateOnly(h.DateOfBirth)

	err := r.db.QueryRowContext(ctx, r.dialect.rebind(`
		INSERT INTO horse (name, description, date_of_birth, sex, owner_id, mother_id, father_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`),
		h.Name,
		nullString(h.Description),
		h.DateOfBirth,
		string(h.Sex),
		nullInt64(h.OwnerID),
		nullInt64(h.MotherID),
		nullInt64(h.FatherID),
	).Scan(&h.ID)
	if err != nil {
		return horses.Horse{}, err
	}
	return h, nil
}

func (r *HorsesRepo) Update(ctx context.Context, h horses.Horse) (horses.Horse, error) {
	h.DateOfBirth = horses.DateOnly(h.DateOfBirth)

	res, err := r.db.ExecContext(ctx, r.dialect.rebind(`
		UPDATE horse
		SET name = ?, description = ?, date_of_birth = ?, sex = ?, owner_id = ?, mother_id = ?, father_id = ?
		WHERE id = ?
	`),
		h.Name,
		nullString(h.Description),
		h.DateOfBirth,
		string(h.Sex),
		nullInt64(h.OwnerID),
		nullInt64(h.MotherID),
		nullInt64(h.FatherID),
		h.ID,
	)
	if err != nil {
		return horses.Horse{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return horses.Horse{}, err
	}
	if n == 0 {
		return horses.Horse{}, apperr.NotFoundf("horse %d", h.ID)
	}
	return h, nil
}

// Delete desvincula a los hijos y borra el registro en la misma transacción.
func (r *HorsesRepo) Delete(ctx context.Context, id int64) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, r.dialect.rebind(`UPDATE horse SET mother_id = NULL WHERE mother_id = ?`), id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, r.dialect.rebind(`UPDATE horse SET father_id = NULL WHERE father_id = ?`), id); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, r.dialect.rebind(`DELETE FROM horse WHERE id = ?`), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		err = apperr.NotFoundf("horse %d", id)
		return err
	}

	return tx.Commit()
}

func (r *HorsesRepo) query(ctx context.Context, q string, args ...any) ([]horses.Horse, error) {
	rows, err := r.db.QueryContext(ctx, r.dialect.rebind(q), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]horses.Horse, 0)
	for rows.Next() {
		h, err := scanHorse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func scanHorse(s rowScanner) (horses.Horse, error) {
	var h horses.Horse
	var (
		description                 sql.NullString
		dob                         dateValue
		sex                         string
		ownerID, motherID, fatherID sql.NullInt64
	)
	if err := s.Scan(&h.ID, &h.Name, &description, &dob, &sex, &ownerID, &motherID, &fatherID); err != nil {
		return horses.Horse{}, err
	}

	if description.Valid {
		h.Description = &description.String
	}
	h.DateOfBirth = dob.t
	h.Sex = horses.Sex(sex)
	h.OwnerID = int64Ptr(ownerID)
	h.MotherID = int64Ptr(motherID)
	h.FatherID = int64Ptr(fatherID)
	return h, nil
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

// dateValue acepta lo que devuelva cada driver para una columna DATE:
// time.Time (pgx, modernc) o texto.
type dateValue struct {
	t time.Time
}

var dateLayouts = []string{
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	time.DateOnly,
}

func (d *dateValue) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.t = horses.DateOnly(v)
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	default:
		return fmt.Errorf("unsupported date value %T", src)
	}
}

func (d *dateValue) parse(s string) error {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.t = horses.DateOnly(t)
			return nil
		}
	}
	if len(s) >= len(time.DateOnly) {
		if t, err := time.Parse(time.DateOnly, s[:len(time.DateOnly)]); err == nil {
			d.t = t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}
