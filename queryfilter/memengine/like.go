package memengine

// matchLike reports whether value matches a SQL LIKE pattern, where "%" matches any sequence
// of characters and "_" matches exactly one. There is no escape character.
func matchLike(value, pattern string) bool {
	v, p := []rune(value), []rune(pattern)
	vi, pi := 0, 0
	starP, starV := -1, 0

	for vi < len(v) {
		switch {
		case pi < len(p) && p[pi] == '%':
			starP, starV = pi, vi
			pi++

		case pi < len(p) && (p[pi] == '_' || p[pi] == v[vi]):
			vi++
			pi++

		case starP >= 0:
			// backtrack: let the last % swallow one more character
			starV++
			vi, pi = starV, starP+1

		default:
			return false
		}
	}

	for pi < len(p) && p[pi] == '%' {
		pi++
	}

	return pi == len(p)
}
