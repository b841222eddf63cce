package sqlerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"modernc.org/sqlite"

	"github.com/deppfellow/portfolio/internal/database"
	"github.com/deppfellow/portfolio/internal/errs"
	"github.com/deppfellow/portfolio/internal/repository"
)

// ConnectionFailedMessage is shown whenever the store cannot be reached.
const ConnectionFailedMessage = "Database connection failed."

// ErrCode reports the mapped Code for err, or Other.
func ErrCode(err error) Code {
	if sqlErr := asError(err); sqlErr != nil {
		return sqlErr.Code
	}
	return Other
}

// asError finds a driver error in err's chain and normalizes it. It
// returns nil when err carries none.
func asError(err error) *Error {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr
	}
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return ConvertPgError(pgerr)
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return ConvertSQLiteError(liteErr)
	}
	return nil
}

// ConvertPgError converts a raw PostgreSQL error into an Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode builds a stable code such as "SKILL_REQUIRED" from the
// table and the kind of violation.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "INVALID"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// humanizeText converts snake_case into Title Case: "skill_name" -> "Skill Name".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// describeRejection adds the offending column, when known, to message.
func describeRejection(message string, sqlErr *Error) string {
	field := humanizeText(sqlErr.ColumnName)
	if field == "" {
		return message
	}

	switch sqlErr.Code {
	case NotNullViolation:
		return fmt.Sprintf("%s %s is required.", message, field)
	case DataException:
		return fmt.Sprintf("%s %s has an invalid value.", message, field)
	default:
		return fmt.Sprintf("%s Check %s.", message, field)
	}
}

// HandleError converts an error from the data layer into an *errs.HTTPError.
//
// message is the entity specific text shown for a storage failure, e.g.
// "Unable to add project.".
//
//   - *errs.HTTPError: returned unchanged
//   - connection failures: 503 "Database connection failed."
//   - values rejected by the engine (SQLSTATE class 22 or 23, or the
//     SQLite constraint and mismatch codes): 400 message
//   - repository.ErrNotFound: 404 message
//   - anything else: 500 message
//
// The original error is attached as the cause for logging.
func HandleError(err error, message string) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	if IsConnectionFailure(err) {
		return errs.NewServiceUnavailableError(ConnectionFailedMessage).WithCause(err)
	}

	if sqlErr := asError(err); sqlErr != nil {
		if sqlErr.Code.IsInputRejection() {
			code := generateErrorCode(sqlErr.TableName, sqlErr.Code)
			return errs.NewBadRequestError(describeRejection(message, sqlErr), &code).WithCause(err)
		}
		return errs.NewInternalServerError(message).WithCause(err)
	}

	if errors.Is(err, repository.ErrNotFound) {
		return errs.NewNotFoundError(message, nil).WithCause(err)
	}

	return errs.NewInternalServerError(message).WithCause(err)
}

// IsConnectionFailure reports whether err means the store could not be
// reached or refused the session: a failed Acquire, a dial error or a
// connection level SQLSTATE.
func IsConnectionFailure(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, database.ErrConnection) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	return ErrCode(err).IsConnectionFailure()
}
