// Package sqlite registers the "sqlite3_weatherbot" driver: mattn/go-sqlite3
// with the SQL functions the small talk corpus relies on.
package sqlite

import (
	"database/sql"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/mattn/go-sqlite3"
)

const DriverName = "sqlite3_weatherbot"

func init() {
	sql.Register(DriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			if err := conn.RegisterFunc("similarity", Similarity, true); err != nil {
				return err
			}
			_, err := conn.Exec("PRAGMA foreign_keys = ON", nil)
			return err
		},
	})
}

// Similarity returns 1 - levenshtein(a, b) / max(len(a), len(b)) on the
// lowercased, trimmed inputs. Identical strings score 1, disjoint ones 0.
func Similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}
