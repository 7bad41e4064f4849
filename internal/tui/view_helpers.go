package tui

// fitText truncates v to max characters, keeping a trailing ellipsis when
// something was cut. Counts runes rather than bytes so multibyte values in
// configuration fields truncate cleanly.
func fitText(v string, max int) string {
	if max <= 0 {
		return v
	}

	r := []rune(v)
	if len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}

	return string(r[:max-3]) + "..."
}
