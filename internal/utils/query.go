package utils

import (
	"net/url"
	"strconv"
)

// QueryInt reads an integer query parameter, falling back to def when the
// value is absent or not a number. Pagination inputs never fail a request.
func QueryInt(q url.Values, key string, def int) int {
	n, err := strconv.Atoi(q.Get(key))
	if err != nil {
		return def
	}
	return n
}
