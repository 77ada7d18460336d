package transform

import (
	"strings"
)

// TrimSpace runs [strings.TrimSpace] on all string values of data recursively,
// including nested maps and slices.
func TrimSpace(data map[string]any) {
	stringFunc(data, strings.TrimSpace)
}

// ToLower runs [strings.ToLower] on all string values of data recursively.
func ToLower(data map[string]any) {
	stringFunc(data, strings.ToLower)
}

// StringFunc returns a transform applying f to every string value recursively.
func StringFunc(f func(string) string) func(map[string]any) {
	return func(data map[string]any) {
		stringFunc(data, f)
	}
}

// Fields restricts fn to the named top-level fields of data.
func Fields(fn func(map[string]any), names ...string) func(map[string]any) {
	return func(data map[string]any) {
		sub := make(map[string]any, len(names))
		for _, name := range names {
			if v, ok := data[name]; ok {
				sub[name] = v
			}
		}
		fn(sub)
		for name, v := range sub {
			data[name] = v
		}
	}
}

// Multi runs all given transforms on data sequentially.
func Multi(data map[string]any, fns ...func(map[string]any)) {
	for _, f := range fns {
		f(data)
	}
}

func stringFunc(data map[string]any, f func(string) string) {
	for k, v := range data {
		data[k] = apply(v, f)
	}
}

func apply(v any, f func(string) string) any {
	switch val := v.(type) {
	case string:
		return f(val)
	case *string:
		if val != nil {
			*val = f(*val)
		}
		return val
	case map[string]any:
		stringFunc(val, f)
		return val
	case map[string]string:
		for k := range val {
			val[k] = f(val[k])
		}
		return val
	case []any:
		for i := range val {
			val[i] = apply(val[i], f)
		}
		return val
	case []string:
		for i := range val {
			val[i] = f(val[i])
		}
		return val
	}
	// Other types, including json.Number, are left untouched.
	return v
}
