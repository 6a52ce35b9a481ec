package trello

import "net/url"

// Arguments carries query-string parameters for read operations, e.g.
// fields, filter, limit, since, before. Credentials are never part of
// Arguments; the dispatch layer merges them in.
type Arguments map[string]string

// ToValues converts the arguments to url.Values for the HTTP layer.
func (a Arguments) ToValues() url.Values {
	if len(a) == 0 {
		return nil
	}

	values := url.Values{}
	for key, value := range a {
		values.Set(key, value)
	}

	return values
}

// With returns a copy of the arguments with one parameter added or
// replaced. The receiver is not modified.
func (a Arguments) With(key, value string) Arguments {
	out := make(Arguments, len(a)+1)
	for k, v := range a {
		out[k] = v
	}

	out[key] = value

	return out
}
