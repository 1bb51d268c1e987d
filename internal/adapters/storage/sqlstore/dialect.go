// Package sqlstore implementa los repositorios sobre database/sql.
// Las queries se escriben con "?" y se reescriben según el dialecto.
package sqlstore

import (
	"fmt"
	"strconv"
	"strings"
)

type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

func ParseDialect(s string) (Dialect, error) {
	switch Dialect(strings.ToLower(strings.TrimSpace(s))) {
	case Postgres:
		return Postgres, nil
	case SQLite, "sqlite3":
		return SQLite, nil
	default:
		return "", fmt.Errorf("unknown sql dialect %q", s)
	}
}

// rebind pasa los "?" a "$1, $2, ..." en Postgres. Las queries no llevan "?" literales.
func (d Dialect) rebind(q string) string {
	if d != Postgres {
		return q
	}

	var sb strings.Builder
	sb.Grow(len(q) + 8)
	n := 1
	for _, c := range q {
		if c == '?' {
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			n++
			continue
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern arma el patrón '%x%' para LIKE ... ESCAPE '\'; x se busca literal.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
