package query

import "strings"

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings. Sort parameters go through
// [SortDirectives] instead, which is whitespace-sensitive.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// SortDirectives parses a comma-separated sort parameter into directive
// tokens, restoring the ascending markers lost to URL form decoding: a "+"
// in a query string encodes a space, so ?sort=+name reaches the handler as
// " name" and ?sort=++albumCount as "  albumCount". One leading space maps
// back to "+", two to "++"; percent-encoded markers (%2B) survive decoding
// and pass through untouched, as do "-"/"--" tokens.
func SortDirectives(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		switch {
		case strings.HasPrefix(v, "  "):
			v = "++" + strings.TrimSpace(v[2:])
		case strings.HasPrefix(v, " "):
			v = "+" + strings.TrimSpace(v[1:])
		default:
			v = strings.TrimSpace(v)
		}
		if v != "" && v != "+" && v != "++" {
			res = append(res, v)
		}
	}
	return res
}

// Flag reports whether a comma-separated query value contains the given
// token (e.g. ?include=aggregates,albums → Flag(val, "aggregates") == true).
func Flag(val, token string) bool {
	for _, v := range StringSlice(val) {
		if v == token {
			return true
		}
	}
	return false
}
