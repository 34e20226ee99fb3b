package repository

import (
	"database/sql"
	"strings"
	"time"

	"github.com/alexanderramin/housewright/internal/domain"
)

// timeLayout is fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000Z07:00"

// parseNullableTime parses a sql.NullString into a *time.Time.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(timeLayout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString returns nil (SQL NULL) for a nil pointer.
func nullableTimeToString(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC().Format(timeLayout)
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func joinModifiers(mods []domain.Modifier) string {
	parts := make([]string, len(mods))
	for i, m := range mods {
		parts[i] = string(m)
	}
	return strings.Join(parts, ",")
}

func splitModifiers(s string) []domain.Modifier {
	if s == "" {
		return []domain.Modifier{}
	}
	parts := strings.Split(s, ",")
	mods := make([]domain.Modifier, len(parts))
	for i, p := range parts {
		mods[i] = domain.Modifier(p)
	}
	return mods
}

// likePrefix escapes LIKE wildcards in p and appends %.
func likePrefix(p string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(p) + "%"
}
