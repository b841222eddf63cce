// Package sqlerr specifically handles database driver errors.
//
// It parses cryptic error codes from the database driver and
// converts them into user-friendly errors (e.g. a "not null violation"
// becomes a Bad Request, an unreachable server becomes Service Unavailable).
package sqlerr

import "fmt"

// Code is the category of a database error.
type Code string

const (
	Other               Code = "other"
	NotNullViolation    Code = "not_null_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
	// IntegrityViolation is any other SQLSTATE class 23 error.
	IntegrityViolation Code = "integrity_violation"
	// DataException is SQLSTATE class 22: the engine rejected a value.
	DataException Code = "data_exception"
	// ConnectionException is SQLSTATE class 08.
	ConnectionException Code = "connection_exception"
	// InvalidAuthorization is SQLSTATE class 28 (bad credentials).
	InvalidAuthorization Code = "invalid_authorization"
	// InvalidCatalog is SQLSTATE 3D000 (unknown database).
	InvalidCatalog Code = "invalid_catalog"
	// CannotConnectNow is SQLSTATE class 57 (server starting or shutting down).
	CannotConnectNow Code = "operator_intervention"
)

// Severity is the PostgreSQL message severity.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// Error is a normalized database error.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Severity, e.DatabaseCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a SQLSTATE onto a Code.
func MapCode(sqlState string) Code {
	switch sqlState {
	case "23502":
		return NotNullViolation
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	case "3D000":
		return InvalidCatalog
	}

	if len(sqlState) < 2 {
		return Other
	}
	switch sqlState[:2] {
	case "23":
		return IntegrityViolation
	case "22":
		return DataException
	case "08":
		return ConnectionException
	case "28":
		return InvalidAuthorization
	case "57":
		return CannotConnectNow
	}
	return Other
}

// MapSeverity maps the severity string reported by the server.
func MapSeverity(severity string) Severity {
	switch Severity(severity) {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning,
		SeverityNotice, SeverityDebug, SeverityInfo, SeverityLog:
		return Severity(severity)
	}
	return SeverityError
}

// IsInputRejection reports whether the engine refused the submitted values.
func (c Code) IsInputRejection() bool {
	switch c {
	case NotNullViolation, ForeignKeyViolation, UniqueViolation,
		CheckViolation, IntegrityViolation, DataException:
		return true
	}
	return false
}

// IsConnectionFailure reports whether the code means the store could not be
// reached or refused the session.
func (c Code) IsConnectionFailure() bool {
	switch c {
	case ConnectionException, InvalidAuthorization, InvalidCatalog, CannotConnectNow:
		return true
	}
	return false
}
