package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// TagSQLIdent validates dataset and table names that are interpolated into statements.
const TagSQLIdent = "sqlident"

var sqlIdentPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

// New creates a new validator instance with the project's custom tags registered.
func New() *Validate {
	v := validator.New()
	_ = v.RegisterValidation(TagSQLIdent, func(fl validator.FieldLevel) bool {
		return IsSQLIdent(fl.Field().String())
	})
	return v
}

// IsSQLIdent reports whether s is a plain SQL identifier.
func IsSQLIdent(s string) bool {
	return sqlIdentPattern.MatchString(s)
}
