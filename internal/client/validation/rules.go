// Package validation holds the declarative field constraints shared by the
// login flow, the profile editors and the provisioning form. Validators
// return a field→message map; an empty map means the input may be submitted.
package validation

import (
	"regexp"
	"strings"
)

// Errors maps a field name to its validation message.
type Errors map[string]string

// OK reports whether no field failed validation.
func (e Errors) OK() bool { return len(e) == 0 }

// Rule checks a single field value and returns a message, or "" when the
// value is acceptable.
type Rule func(value string) string

// Schema is an ordered list of per-field rule sets.
type Schema []Field

// Field binds a field name to its rules. The first failing rule wins.
type Field struct {
	Name  string
	Rules []Rule
}

// Validate applies the schema to the given field values.
func (s Schema) Validate(values map[string]string) Errors {
	errs := Errors{}
	for _, f := range s {
		v := values[f.Name]
		for _, r := range f.Rules {
			if msg := r(v); msg != "" {
				errs[f.Name] = msg
				break
			}
		}
	}
	return errs
}

func required(msg string) Rule {
	return func(v string) string {
		if strings.TrimSpace(v) == "" {
			return msg
		}
		return ""
	}
}

// optional skips the wrapped rule for empty values.
func optional(r Rule) Rule {
	return func(v string) string {
		if strings.TrimSpace(v) == "" {
			return ""
		}
		return r(v)
	}
}

func minLen(n int, msg string) Rule {
	return func(v string) string {
		if len([]rune(strings.TrimSpace(v))) < n {
			return msg
		}
		return ""
	}
}

func maxLen(n int, msg string) Rule {
	return func(v string) string {
		if len([]rune(strings.TrimSpace(v))) > n {
			return msg
		}
		return ""
	}
}

// lenBetween checks the untrimmed length; used for passwords, where
// surrounding whitespace is significant.
func lenBetween(min, max int, msg string) Rule {
	return func(v string) string {
		if n := len([]rune(v)); n < min || n > max {
			return msg
		}
		return ""
	}
}

func pattern(re *regexp.Regexp, msg string) Rule {
	return func(v string) string {
		if !re.MatchString(strings.TrimSpace(v)) {
			return msg
		}
		return ""
	}
}

func containsAny(set string, msg string) Rule {
	return func(v string) string {
		if !strings.ContainsAny(v, set) {
			return msg
		}
		return ""
	}
}

func oneOf(allowed []string, msg string) Rule {
	return func(v string) string {
		for _, a := range allowed {
			if v == a {
				return ""
			}
		}
		return msg
	}
}
