package patcher

// Insert walks lines once and appends each point's lines right after the line it fires on.
// Points fire in the order given when several trigger on the same line.
func Insert(lines []string, points ...*Point) []string {
	extra := 0
	for _, p := range points {
		extra += len(p.Lines())
	}

	out := make([]string, 0, len(lines)+extra)
	for i, line := range lines {
		out = append(out, line)
		for _, p := range points {
			if p.Observe(line, i+1) {
				out = append(out, p.Lines()...)
			}
		}
	}
	return out
}
