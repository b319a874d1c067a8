package transport

import (
	"net/url"
	"strconv"
)

// Query builds query parameters from key/value pairs, skipping empty values.
func Query(pairs ...string) url.Values {
	values := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			values.Set(pairs[i], pairs[i+1])
		}
	}
	return values
}

// SetInt sets key when n is positive.
func SetInt(values url.Values, key string, n int) {
	if n > 0 {
		values.Set(key, strconv.Itoa(n))
	}
}

// SetBool sets key when b is non-nil.
func SetBool(values url.Values, key string, b *bool) {
	if b != nil {
		values.Set(key, strconv.FormatBool(*b))
	}
}
