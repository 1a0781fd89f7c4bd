package validation

import (
	"context"
	"regexp"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var usernameName = Name{Eng: "username", Kor: "아이디"}

func strPtr(s string) *string { return &s }

func TestValidate_LengthEquals(t *testing.T) {
	password44 := "abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqr"
	require.Len(t, password44, 44)

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "exact length passes", value: password44},
		{name: "shorter fails", value: password44[:43], wantErr: true},
		{name: "longer fails", value: password44 + "s", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failures, err := Validate(context.Background(), Length{
				Field:  Field{Name: Name{Eng: "password", Kor: "비밀번호"}, Value: tt.value, Required: true},
				Min:    50,
				Max:    10,
				Equals: 44,
			})
			require.NoError(t, err)
			if tt.wantErr {
				require.Len(t, failures, 1)
				assert.Equal(t, CodeWrongInput, failures[0].Code)
				assert.Equal(t, "비밀번호은(는) 44글자만 허용됩니다", failures[0].Message)
			} else {
				assert.Empty(t, failures)
			}
		})
	}
}

func TestValidate_LengthMinMax(t *testing.T) {
	rule := func(v string) Rule {
		return Length{Field: Field{Name: usernameName, Value: v}, Min: 6, Max: 20}
	}

	failures, err := Validate(context.Background(), rule("abc"))
	require.NoError(t, err)
	require.Len(t, failures, 1)
	assert.Equal(t, "아이디은(는) 6글자 이상이어야 합니다.", failures[0].Message)

	failures, err = Validate(context.Background(), rule("abcdefghijklmnopqrstu"))
	require.NoError(t, err)
	require.Len(t, failures, 1)
	assert.Equal(t, "아이디은(는) 20글자 이하여야 합니다.", failures[0].Message)

	failures, err = Validate(context.Background(), rule("abcdefg"))
	require.NoError(t, err)
	assert.Empty(t, failures)
}

func TestValidate_LengthCountsCharactersAndCollections(t *testing.T) {
	failures, err := Validate(context.Background(),
		Length{Field: Field{Name: Name{Eng: "fullName", Kor: "이름"}, Value: "홍길동"}, Max: 3},
		Length{Field: Field{Name: Name{Eng: "units", Kor: "단위"}, Value: []int64{1, 2, 3}}, Max: 2},
	)
	require.NoError(t, err)
	require.Len(t, failures, 1)
	assert.Equal(t, "units", failures[0].Name)
}

func TestValidate_AbsentValues(t *testing.T) {
	var nilPtr *string
	var nilSlice []int64

	for _, value := range []any{nil, nilPtr, "", strPtr(""), nilSlice} {
		failures, err := Validate(context.Background(), Length{Field: Field{Name: usernameName, Value: value}, Min: 6})
		require.NoError(t, err)
		assert.Empty(t, failures, "optional absent value %#v must be skipped", value)

		failures, err = Validate(context.Background(), Length{Field: Field{Name: usernameName, Value: value, Required: true}, Min: 6})
		require.NoError(t, err)
		require.Len(t, failures, 1, "required absent value %#v must fail", value)
		assert.Equal(t, CodeWrongInput, failures[0].Code)
	}
}

func TestValidate_Pattern(t *testing.T) {
	expr := regexp.MustCompile(`^[A-Za-z0-9]+$`)

	failures, err := Validate(context.Background(),
		Pattern{Field: Field{Name: usernameName, Value: "valid01", Required: true}, Expr: expr},
		Pattern{Field: Field{Name: usernameName, Value: "in valid", Required: true}, Expr: expr},
		Pattern{Field: Field{Name: usernameName, Value: strPtr("한글"), Required: true}, Expr: expr},
	)
	require.NoError(t, err)
	require.Len(t, failures, 2)
	assert.Equal(t, "아이디의 형식을 확인해 주세요.", failures[0].Message)
}

func TestValidate_PatternRequiresFullMatch(t *testing.T) {
	tests := []struct {
		name  string
		value string
		expr  string
		valid bool
	}{
		{name: "unanchored prefix match", value: "abc!", expr: `[a-z]+`, valid: false},
		{name: "unanchored whole match", value: "abc", expr: `[a-z]+`, valid: true},
		{name: "later alternative covers the value", value: "ab", expr: `a|ab`, valid: true},
		{name: "anchored expression", value: "ab", expr: `^(?:a|ab)$`, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failures, err := Validate(context.Background(),
				Pattern{Field: Field{Name: usernameName, Value: tt.value}, Expr: regexp.MustCompile(tt.expr)},
			)
			require.NoError(t, err)
			if tt.valid {
				assert.Empty(t, failures)
			} else {
				assert.Len(t, failures, 1)
			}
		})
	}
}

func TestValidate_DateFormat(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{value: "2023-01-15", ok: true},
		{value: "2023-02-31", ok: true},
		{value: "0000-01-01", ok: false},
		{value: "2023-13-01", ok: false},
		{value: "2023-00-10", ok: false},
		{value: "2023-01-32", ok: false},
		{value: "2023-1-1", ok: false},
		{value: "20230101", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			failures, err := Validate(context.Background(),
				DateFormat{Field: Field{Name: Name{Eng: "dateOfBirth", Kor: "생년월일"}, Value: tt.value}},
			)
			require.NoError(t, err)
			assert.Equal(t, tt.ok, len(failures) == 0)
			assert.Equal(t, tt.ok, IsDate(tt.value))
		})
	}
}

func TestValidate_Uniqueness(t *testing.T) {
	taken := func(_ context.Context, value string) (bool, error) {
		return value == "taken01", nil
	}

	failures, err := Validate(context.Background(),
		Uniqueness{Field: Field{Name: usernameName, Value: "taken01", Required: true}, Exists: taken},
		Uniqueness{Field: Field{Name: usernameName, Value: "fresh01", Required: true}, Exists: taken},
	)
	require.NoError(t, err)
	require.Len(t, failures, 1)
	assert.Equal(t, CodeDuplicate, failures[0].Code)
	assert.Equal(t, "이미 존재하는 아이디입니다.", failures[0].Message)
}

func TestValidate_UniquenessPredicateError(t *testing.T) {
	boom := errors.New("store unavailable")

	failures, err := Validate(context.Background(),
		Uniqueness{Field: Field{Name: usernameName, Value: "x"}, Exists: func(context.Context, string) (bool, error) {
			return false, boom
		}},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, failures)
}

func TestValidate_EnumerationCustomMessage(t *testing.T) {
	failures, err := Validate(context.Background(),
		Enumeration{
			Field:   Field{Name: Name{Eng: "gender", Kor: "성별"}, Value: "UNKNOWN", Required: true, Message: "custom"},
			Options: []string{"MALE", "FEMALE", "OTHER"},
		},
		Enumeration{
			Field:   Field{Name: Name{Eng: "gender", Kor: "성별"}, Value: "NONE"},
			Options: []string{"MALE", "FEMALE"},
		},
	)
	require.NoError(t, err)
	require.Len(t, failures, 2)
	assert.Equal(t, "custom", failures[0].Message)
	assert.Equal(t, "성별은(는) MALE,FEMALE 중 하나여야 합니다.", failures[1].Message)
}

func TestValidate_CollectsEveryFailureInOrder(t *testing.T) {
	rules := []Rule{
		Length{Field: Field{Name: usernameName, Value: "ab"}, Min: 6},
		Pattern{Field: Field{Name: usernameName, Value: "a b", Required: true}, Expr: regexp.MustCompile(`^[a-z]+$`)},
		Enumeration{Field: Field{Name: Name{Eng: "gender", Kor: "성별"}, Value: "X"}, Options: []string{"MALE"}},
	}

	first, err := Validate(context.Background(), rules...)
	require.NoError(t, err)
	require.Len(t, first, 3)
	assert.Equal(t, []string{"username", "username", "gender"}, []string{first[0].Name, first[1].Name, first[2].Name})

	second, err := Validate(context.Background(), rules...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestValidate_Misconfigured(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
	}{
		{name: "length without bounds", rule: Length{Field: Field{Name: usernameName, Value: "abc"}}},
		{name: "length without bounds and absent value", rule: Length{Field: Field{Name: usernameName}}},
		{name: "pattern without expression", rule: Pattern{Field: Field{Name: usernameName, Value: "abc"}}},
		{name: "uniqueness without predicate", rule: Uniqueness{Field: Field{Name: usernameName, Value: "abc"}}},
		{name: "enumeration without options", rule: Enumeration{Field: Field{Name: usernameName, Value: "abc"}}},
		{name: "missing korean name", rule: DateFormat{Field: Field{Name: Name{Eng: "date"}, Value: "2020-01-01"}}},
		{name: "pattern on non-string", rule: Pattern{Field: Field{Name: usernameName, Value: 42}, Expr: regexp.MustCompile(`^1$`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failures, err := Validate(context.Background(), tt.rule)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMisconfigured)
			assert.Nil(t, failures)
		})
	}
}

func TestValidate_NoRules(t *testing.T) {
	failures, err := Validate(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, failures)
	assert.Empty(t, failures)
}
