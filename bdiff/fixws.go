package bdiff

// Fixws normalizes whitespace in s. With allWS, every space, tab, and
// carriage return is dropped. Otherwise runs of spaces/tabs/CRs collapse
// to a single space, and a space immediately before a newline is folded
// into the newline (trailing whitespace per line is trimmed). Fixws is
// idempotent: Fixws(Fixws(s, w), w) == Fixws(s, w).
func Fixws(s []byte, allWS bool) []byte {
	out := make([]byte, 0, len(s))

	for _, c := range s {
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			if !allWS && (len(out) == 0 || out[len(out)-1] != ' ') {
				out = append(out, ' ')
			}
		case c == '\n' && !allWS && len(out) > 0 && out[len(out)-1] == ' ':
			out[len(out)-1] = '\n'
		default:
			out = append(out, c)
		}
	}

	return out
}
