package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	validator "github.com/go-playground/validator/v10"

	"rtdoc/model"
	"rtdoc/units"
)

// newStructValidator returns validator for range rules declared with struct
// tags on model types. Sizes are validated in twips, unset optional values
// are skipped by "omitempty".
func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	v.RegisterCustomTypeFunc(comparableValue, units.Size{}, model.Opt[units.Size]{}, model.Opt[int]{})
	return v
}

func comparableValue(field reflect.Value) any {
	switch v := field.Interface().(type) {
	case units.Size:
		return v.Twips()
	case model.Opt[units.Size]:
		if s, ok := v.Get(); ok {
			return s.Twips()
		}
	case model.Opt[int]:
		if n, ok := v.Get(); ok {
			return n
		}
	}
	return nil
}

// structErrors converts validator result into violations rooted at prefix.
func structErrors(prefix string, err error) []error {
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []error{&Error{Path: prefix, Rule: "struct", Message: err.Error()}}
	}
	out := make([]error, 0, len(ve))
	for _, fe := range ve {
		// drop type name, keep field path
		_, rest, _ := strings.Cut(fe.Namespace(), ".")
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		out = append(out, &Error{
			Path:    join(prefix, rest),
			Value:   fe.Value(),
			Rule:    rule,
			Message: ruleMessage(fe),
		})
	}
	return out
}

// ruleMessage describes failed rule. Sizes are reported in twips.
func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at least %s items", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at most %s items", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q rule", fe.Tag())
	}
}

func join(prefix, name string) string {
	switch {
	case prefix == "":
		return name
	case name == "":
		return prefix
	case strings.HasPrefix(name, "["):
		return prefix + name
	default:
		return prefix + "." + name
	}
}

// safeName checks names which end up as format syntax tokens.
func safeName(s string) (string, bool) {
	if s == "" {
		return "must not be empty", false
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return "must not contain control characters", false
		}
	}
	return "", true
}

const maxBookmarkLen = 40

func safeBookmark(s string) (string, bool) {
	if msg, ok := safeName(s); !ok {
		return msg, false
	}
	if len([]rune(s)) > maxBookmarkLen {
		return fmt.Sprintf("must be at most %d characters", maxBookmarkLen), false
	}
	if strings.ContainsAny(s, " \t{}\\") {
		return "must not contain spaces, braces or backslashes", false
	}
	return "", true
}
