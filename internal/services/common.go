package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"

	"portal/internal/apperrors"

	"github.com/go-playground/validator/v10"
)

// Outcome tells a caller whether an operation changed anything.
type Outcome int

const (
	// OutcomeApplied means the requested change was made.
	OutcomeApplied Outcome = iota
	// OutcomeNoOp means the request carried nothing to do.
	OutcomeNoOp
)

func (o Outcome) String() string {
	if o == OutcomeNoOp {
		return "no-op"
	}
	return "applied"
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the validate tags of s and reports failures per field.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperrors.Invalid("Validation failed", nil)
	}
	fields := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		fields[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return apperrors.Invalid("Validation failed", fields)
}

// compensations undo side effects outside the database, such as uploaded
// objects, when the database part of an operation fails.
type compensations []func(ctx context.Context) error

func (c *compensations) add(fn func(ctx context.Context) error) {
	*c = append(*c, fn)
}

// run executes the undo steps in reverse order. It keeps going when a step
// fails and still runs when the request context is already cancelled.
func (c compensations) run(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	for i := len(c) - 1; i >= 0; i-- {
		if err := c[i](ctx); err != nil {
			log.Printf("Compensating action failed: %v", err)
		}
	}
}
