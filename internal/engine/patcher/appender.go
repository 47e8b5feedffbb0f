package patcher

// InsertBefore walks lines once and places the point's lines immediately before
// the first line it fires on.
func InsertBefore(lines []string, p *Point) []string {
	out := make([]string, 0, len(lines)+len(p.Lines()))
	for i, line := range lines {
		if p.Observe(line, i+1) {
			out = append(out, p.Lines()...)
		}
		out = append(out, line)
	}
	return out
}
