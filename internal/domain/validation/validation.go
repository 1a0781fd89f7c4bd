// Package validation evaluates declarative field rules and reports every
// failing rule at once.
package validation

import (
	"context"
	"reflect"

	"github.com/pkg/errors"
)

// Code classifies a failure.
type Code string

const (
	CodeWrongInput Code = "WRONG_INPUT"
	CodeDuplicate  Code = "IS_DUPLICATE"
)

// ErrMisconfigured marks a rule that was built without the parameters its
// kind needs. It is a programming defect, not a client error.
var ErrMisconfigured = errors.New("validation rule misconfigured")

// Name is the bilingual field name. Eng is reported to clients as the field
// key, Kor is used in default messages.
type Name struct {
	Eng string
	Kor string
}

// Field is the part shared by every rule kind.
type Field struct {
	Name Name
	// Value may be nil, a pointer, a string (or string-kinded type), or a collection.
	Value    any
	Required bool
	// Message replaces the default message when set.
	Message string
}

// Failure is the result of one failed rule.
type Failure struct {
	Name    string `json:"name"`
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// Rule is one of Length, Pattern, DateFormat, Uniqueness or Enumeration.
type Rule interface {
	field() *Field
	verify() error
	check(ctx context.Context, value reflect.Value) (*Failure, error)
}

// Validate runs every rule in order and returns the failures of those that
// did not pass. A rule whose value is absent is skipped unless it is
// required. The error is non-nil only for misconfigured rules or when a
// uniqueness predicate fails; in that case no failures are returned.
func Validate(ctx context.Context, rules ...Rule) ([]Failure, error) {
	failures := make([]Failure, 0)

	for i, rule := range rules {
		f := rule.field()
		if f.Name.Eng == "" || f.Name.Kor == "" {
			return nil, errors.Wrapf(ErrMisconfigured, "rule %d: field name is incomplete", i)
		}
		if err := rule.verify(); err != nil {
			return nil, errors.Wrapf(err, "rule %d (%s)", i, f.Name.Eng)
		}

		value, present := resolve(f.Value)
		if !present {
			if f.Required {
				failures = append(failures, f.fail(CodeWrongInput, requiredMessage(f.Name.Kor)))
			}

			continue
		}

		failure, err := rule.check(ctx, value)
		if err != nil {
			return nil, errors.Wrapf(err, "rule %d (%s)", i, f.Name.Eng)
		}
		if failure != nil {
			failures = append(failures, *failure)
		}
	}

	return failures, nil
}

func (f *Field) fail(code Code, defaultMessage string) Failure {
	message := defaultMessage
	if f.Message != "" {
		message = f.Message
	}

	return Failure{Name: f.Name.Eng, Code: code, Message: message}
}

// resolve dereferences pointers and reports whether a value is present.
// nil, nil pointers, nil collections and empty strings are absent.
func resolve(raw any) (reflect.Value, bool) {
	if raw == nil {
		return reflect.Value{}, false
	}

	v := reflect.ValueOf(raw)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.String:
		return v, v.Len() > 0
	case reflect.Slice, reflect.Map:
		return v, !v.IsNil()
	default:
		return v, true
	}
}

func stringOf(v reflect.Value, rule string) (string, error) {
	if v.Kind() != reflect.String {
		return "", errors.Wrapf(ErrMisconfigured, "%s rule requires a string value, got %s", rule, v.Kind())
	}

	return v.String(), nil
}
