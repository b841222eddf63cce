package sqlerr

import (
	"strconv"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ConvertSQLiteError converts an error from the SQLite driver into an Error.
// The table and column are taken from the constraint message, e.g.
// "NOT NULL constraint failed: skills.skill_name".
func ConvertSQLiteError(src *sqlite.Error) *Error {
	table, column := constraintTarget(src.Error())
	return &Error{
		Code:         MapSQLiteCode(src.Code()),
		Severity:     SeverityError,
		DatabaseCode: strconv.Itoa(src.Code()),
		Message:      src.Error(),
		TableName:    table,
		ColumnName:   column,
		driverErr:    src,
	}
}

// MapSQLiteCode maps an (extended) SQLite result code onto a Code.
func MapSQLiteCode(code int) Code {
	switch code {
	case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		return NotNullViolation
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return ForeignKeyViolation
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return UniqueViolation
	case sqlite3.SQLITE_CONSTRAINT_CHECK:
		return CheckViolation
	}

	switch code & 0xff {
	case sqlite3.SQLITE_CONSTRAINT:
		return IntegrityViolation
	case sqlite3.SQLITE_MISMATCH, sqlite3.SQLITE_TOOBIG:
		return DataException
	case sqlite3.SQLITE_CANTOPEN, sqlite3.SQLITE_NOTADB:
		return ConnectionException
	case sqlite3.SQLITE_AUTH:
		return InvalidAuthorization
	}
	return Other
}

func constraintTarget(msg string) (table, column string) {
	const marker = "constraint failed: "
	i := strings.LastIndex(msg, marker)
	if i < 0 {
		return "", ""
	}

	fields := strings.Fields(msg[i+len(marker):])
	if len(fields) == 0 {
		return "", ""
	}

	target := strings.TrimSuffix(fields[0], ",")
	table, column, ok := strings.Cut(target, ".")
	if !ok {
		return "", ""
	}
	return table, column
}
