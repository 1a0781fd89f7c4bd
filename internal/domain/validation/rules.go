package validation

import (
	"context"
	"reflect"
	"regexp"
	"slices"
	"sync"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Length bounds the size of a string (in characters) or a collection.
// When Equals is set, Min and Max are ignored. Zero means unset.
type Length struct {
	Field
	Min    int
	Max    int
	Equals int
}

func (r Length) field() *Field { return &r.Field }

func (r Length) verify() error {
	if r.Min == 0 && r.Max == 0 && r.Equals == 0 {
		return errors.Wrap(ErrMisconfigured, "length rule needs one of min, max or equals")
	}

	return nil
}

func (r Length) check(_ context.Context, v reflect.Value) (*Failure, error) {
	var size int
	switch v.Kind() {
	case reflect.String:
		size = utf8.RuneCountInString(v.String())
	case reflect.Slice, reflect.Array, reflect.Map:
		size = v.Len()
	default:
		return nil, errors.Wrapf(ErrMisconfigured, "length rule cannot measure %s", v.Kind())
	}

	kor := r.Name.Kor
	if r.Equals != 0 {
		if size != r.Equals {
			failure := r.fail(CodeWrongInput, equalsMessage(kor, r.Equals))
			return &failure, nil
		}

		return nil, nil
	}

	if r.Min != 0 && size < r.Min {
		failure := r.fail(CodeWrongInput, minMessage(kor, r.Min))
		return &failure, nil
	}
	if r.Max != 0 && size > r.Max {
		failure := r.fail(CodeWrongInput, maxMessage(kor, r.Max))
		return &failure, nil
	}

	return nil, nil
}

// Pattern requires the whole value to match Expr, whether or not Expr is
// anchored.
type Pattern struct {
	Field
	Expr *regexp.Regexp
}

func (r Pattern) field() *Field { return &r.Field }

func (r Pattern) verify() error {
	if r.Expr == nil {
		return errors.Wrap(ErrMisconfigured, "pattern rule needs an expression")
	}

	return nil
}

func (r Pattern) check(_ context.Context, v reflect.Value) (*Failure, error) {
	s, err := stringOf(v, "pattern")
	if err != nil {
		return nil, err
	}

	if !fullMatch(r.Expr, s) {
		failure := r.fail(CodeWrongInput, formatMessage(r.Name.Kor))
		return &failure, nil
	}

	return nil, nil
}

var dateExpr = regexp.MustCompile(`^[0-9]{4}-(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])$`)

// DateFormat requires YYYY-MM-DD with a non-zero year. Day and month are not
// cross-checked, so 2023-02-31 passes.
type DateFormat struct {
	Field
}

func (r DateFormat) field() *Field { return &r.Field }

func (r DateFormat) verify() error { return nil }

func (r DateFormat) check(_ context.Context, v reflect.Value) (*Failure, error) {
	s, err := stringOf(v, "dateFormat")
	if err != nil {
		return nil, err
	}

	if !IsDate(s) {
		failure := r.fail(CodeWrongInput, formatMessage(r.Name.Kor))
		return &failure, nil
	}

	return nil, nil
}

// IsDate reports whether s satisfies the DateFormat grammar.
func IsDate(s string) bool {
	return dateExpr.MatchString(s) && s[:4] != "0000"
}

// ExistsFunc reports whether value is already taken.
type ExistsFunc func(ctx context.Context, value string) (bool, error)

// Uniqueness fails with IS_DUPLICATE when Exists reports the value as taken.
type Uniqueness struct {
	Field
	Exists ExistsFunc
}

func (r Uniqueness) field() *Field { return &r.Field }

func (r Uniqueness) verify() error {
	if r.Exists == nil {
		return errors.Wrap(ErrMisconfigured, "uniqueness rule needs an exists function")
	}

	return nil
}

func (r Uniqueness) check(ctx context.Context, v reflect.Value) (*Failure, error) {
	s, err := stringOf(v, "uniqueness")
	if err != nil {
		return nil, err
	}

	exists, err := r.Exists(ctx, s)
	if err != nil {
		return nil, errors.Wrap(err, "uniqueness check")
	}
	if exists {
		failure := r.fail(CodeDuplicate, duplicateMessage(r.Name.Kor))
		return &failure, nil
	}

	return nil, nil
}

// Enumeration requires the value to be one of Options.
type Enumeration struct {
	Field
	Options []string
}

func (r Enumeration) field() *Field { return &r.Field }

func (r Enumeration) verify() error {
	if len(r.Options) == 0 {
		return errors.Wrap(ErrMisconfigured, "enumeration rule needs options")
	}

	return nil
}

func (r Enumeration) check(_ context.Context, v reflect.Value) (*Failure, error) {
	s, err := stringOf(v, "enumeration")
	if err != nil {
		return nil, err
	}

	if !slices.Contains(r.Options, s) {
		failure := r.fail(CodeWrongInput, optionsMessage(r.Name.Kor, r.Options))
		return &failure, nil
	}

	return nil, nil
}

// anchored caches the \A(?:expr)\z form of each pattern expression.
var anchored sync.Map

func fullMatch(re *regexp.Regexp, s string) bool {
	if cached, ok := anchored.Load(re); ok {
		return cached.(*regexp.Regexp).MatchString(s)
	}

	whole := regexp.MustCompile(`\A(?:` + re.String() + `)\z`)
	anchored.Store(re, whole)

	return whole.MatchString(s)
}
