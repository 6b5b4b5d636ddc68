package process

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/purell"
)

// DefaultFlags never reorders the query or drops the fragment, so the
// canonicalizer still sees pairs in source order.
const DefaultFlags = purell.FlagLowercaseScheme |
	purell.FlagLowercaseHost |
	purell.FlagRemoveDefaultPort |
	purell.FlagRemoveDuplicateSlashes |
	purell.FlagRemoveDotSegments

var flagNames = map[string]purell.NormalizationFlags{
	"lowercase_scheme":         purell.FlagLowercaseScheme,
	"lowercase_host":           purell.FlagLowercaseHost,
	"uppercase_escapes":        purell.FlagUppercaseEscapes,
	"decode_unnecessary":       purell.FlagDecodeUnnecessaryEscapes,
	"encode_necessary":         purell.FlagEncodeNecessaryEscapes,
	"remove_default_port":      purell.FlagRemoveDefaultPort,
	"remove_trailing_slash":    purell.FlagRemoveTrailingSlash,
	"add_trailing_slash":       purell.FlagAddTrailingSlash,
	"remove_dot_segments":      purell.FlagRemoveDotSegments,
	"remove_directory_index":   purell.FlagRemoveDirectoryIndex,
	"remove_duplicate_slashes": purell.FlagRemoveDuplicateSlashes,
	"remove_www":               purell.FlagRemoveWWW,
	"add_www":                  purell.FlagAddWWW,
	"force_http":               purell.FlagForceHTTP,
}

// ParseFlags maps configured flag names onto purell flags. An empty list
// yields DefaultFlags.
func ParseFlags(names []string) (purell.NormalizationFlags, error) {
	if len(names) == 0 {
		return DefaultFlags, nil
	}

	var flags purell.NormalizationFlags
	for _, name := range names {
		f, ok := flagNames[name]
		if !ok {
			return 0, fmt.Errorf("unknown normalization flag %q (known: %v)", name, FlagNames())
		}
		flags |= f
	}
	return flags, nil
}

func FlagNames() []string {
	names := make([]string, 0, len(flagNames))
	for name := range flagNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Normalize applies flags to url. An empty fragment survives, which
// url.URL.String alone would drop.
func Normalize(url string, flags purell.NormalizationFlags) (string, error) {
	normalized, err := purell.NormalizeURLString(url, flags)
	if err != nil {
		return "", err
	}

	if strings.Contains(url, "#") && !strings.Contains(normalized, "#") {
		normalized += "#"
	}
	return normalized, nil
}
