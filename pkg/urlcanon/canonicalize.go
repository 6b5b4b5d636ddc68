package urlcanon

import "strings"

const upperhex = "0123456789ABCDEF"

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~':
		return true
	}
	return false
}

// EncodeComponent percent-encodes every byte outside the unreserved set
// as %XX with uppercase hex. Space becomes %20.
func EncodeComponent(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))

	for _, c := range b {
		if unreserved(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperhex[c>>4])
		sb.WriteByte(upperhex[c&0x0f])
	}

	return sb.String()
}

func EncodePairs(pairs []QueryPair) []EncodedPair {
	encoded := make([]EncodedPair, len(pairs))
	for i, p := range pairs {
		encoded[i] = EncodedPair{
			Key:   EncodeComponent(p.Key),
			Value: EncodeComponent(p.Value),
		}
	}
	return encoded
}

// Canonicalize encodes each pair and joins them as key=value&key=value,
// keeping order and duplicates. An empty value still gets its "=".
func Canonicalize(pairs []QueryPair) string {
	var sb strings.Builder
	for i, p := range EncodePairs(pairs) {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(p.Key)
		sb.WriteByte('=')
		sb.WriteString(p.Value)
	}
	return sb.String()
}
