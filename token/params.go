package token

import "strconv"

// splitParams splits a CSI parameter string on ';', returning one
// element per component. An empty string yields a single empty
// component (matching "CSI m" meaning a single parameter of 0, not zero
// parameters).
func splitParams(s string) []string {
	out := []string{""}
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ';' {
			out[len(out)-1] = s[start:i]
			out = append(out, "")
			start = i + 1
		}
	}
	out[len(out)-1] = s[start:]
	return out
}

// parseIntParams splits s on ';' and parses every component as a
// base-10 integer, treating an empty component as 0. It reports ok=false
// if any non-empty component fails to parse.
func parseIntParams(s string) (values []int, ok bool) {
	parts := splitParams(s)
	values = make([]int, len(parts))
	for i, p := range parts {
		if p == "" {
			values[i] = 0
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		values[i] = n
	}
	return values, true
}
