package validators

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"socialgraph/domain/core/entities"
	pkgerrors "socialgraph/pkg/errors"
)

// RecordValidator checks raw input records before they enter the graph. A
// missing required field surfaces as a malformed-entity error naming the
// offending field, and the builder aborts the whole build on the first one.
type RecordValidator struct {
	validate *validator.Validate
}

// NewRecordValidator creates a record validator
func NewRecordValidator() *RecordValidator {
	v := validator.New()

	// Report fields by their json name so errors match the input document
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &RecordValidator{validate: v}
}

// ValidateUser validates a raw user record
func (rv *RecordValidator) ValidateUser(rec entities.UserRecord) error {
	return rv.check("user", rec)
}

// ValidatePost validates a raw post record
func (rv *RecordValidator) ValidatePost(rec entities.PostRecord) error {
	return rv.check("post", rec)
}

// ValidateComment validates a raw comment record
func (rv *RecordValidator) ValidateComment(rec entities.CommentRecord) error {
	return rv.check("comment", rec)
}

func (rv *RecordValidator) check(kind string, rec interface{}) error {
	err := rv.validate.Struct(rec)
	if err == nil {
		return nil
	}

	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		return pkgerrors.NewMalformedEntityError(kind, fieldName(fieldErrs[0]))
	}
	return pkgerrors.NewValidationError(err.Error())
}

// fieldName strips the record type prefix from the validator namespace, so a
// nested failure reads "attributes.gender" rather than "UserRecord.attributes.gender"
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}
