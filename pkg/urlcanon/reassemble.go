package urlcanon

import "strings"

// Reassemble lays the parts out as scheme://host path ? query [# fragment].
// The "://" and "?" separators are always written.
func Reassemble(p *ParsedURL, encodedQuery string) string {
	var sb strings.Builder

	sb.WriteString(p.Scheme)
	sb.WriteString("://")
	sb.WriteString(p.Host)
	sb.WriteString(p.Path)
	sb.WriteByte('?')
	sb.WriteString(encodedQuery)

	if p.HasFragment {
		sb.WriteByte('#')
		sb.WriteString(p.Fragment)
	}

	return sb.String()
}

// Canonical runs raw through Parse, Canonicalize and Reassemble.
func Canonical(raw string) (string, error) {
	p, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return Reassemble(p, Canonicalize(p.Pairs)), nil
}
