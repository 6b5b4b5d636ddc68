package urlcanon

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var errMissingScheme = errors.New("missing scheme")

// Parse validates raw against the generic URL grammar and splits it into
// its components. Query keys and values are decoded to raw bytes, so "+"
// and "%20" both come back as a space.
func Parse(raw string) (*ParsedURL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, invalid(raw, err)
	}

	if u.Scheme == "" {
		return nil, invalid(raw, errMissingScheme)
	}

	pairs, err := parseQuery(u.RawQuery)
	if err != nil {
		return nil, invalid(raw, err)
	}

	p := &ParsedURL{
		Scheme:      u.Scheme,
		Host:        authority(u),
		Path:        u.EscapedPath(),
		Pairs:       pairs,
		HasFragment: strings.Contains(raw, "#"),
	}

	if u.Opaque != "" {
		if _, err := url.PathUnescape(u.Opaque); err != nil {
			return nil, invalid(raw, err)
		}
		p.Path = u.Opaque
	}

	if p.HasFragment {
		p.Fragment = u.EscapedFragment()
	}

	return p, nil
}

func authority(u *url.URL) string {
	if u.User == nil {
		return u.Host
	}
	return u.User.String() + "@" + u.Host
}

func parseQuery(rawQuery string) ([]QueryPair, error) {
	var pairs []QueryPair

	for _, segment := range strings.Split(rawQuery, "&") {
		if segment == "" {
			continue
		}

		rawKey, rawValue, _ := strings.Cut(segment, "=")

		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("query key %q: %w", rawKey, err)
		}

		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("query value %q: %w", rawValue, err)
		}

		pairs = append(pairs, QueryPair{
			Key:   []byte(key),
			Value: []byte(value),
		})
	}

	return pairs, nil
}
