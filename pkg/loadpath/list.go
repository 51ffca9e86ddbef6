package loadpath

// List is a slice-backed types.LoadPath
type List []string

// Append adds paths to the end of the list
func (l *List) Append(paths ...string) {
	*l = append(*l, paths...)
}

// Unique returns paths with later duplicates removed, keeping first-seen order
func Unique(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
