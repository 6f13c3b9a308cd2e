//go:build unit || e2e

package testutil

import "net/url"

// Field returns a mutation that sets a form field, or drops it when value
// is nil.
func Field(key string, value *string) func(url.Values) {
	return func(v url.Values) {
		if value == nil {
			v.Del(key)
		} else {
			v.Set(key, *value)
		}
	}
}

// Form copies base and applies the mutations.
func Form(base url.Values, muts ...func(url.Values)) url.Values {
	v := make(url.Values, len(base))
	for k, vals := range base {
		v[k] = append([]string(nil), vals...)
	}
	for _, f := range muts {
		f(v)
	}
	return v
}

func Ptr(s string) *string {
	return &s
}
