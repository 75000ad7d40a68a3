package variables

// Candidates snapshots every live variable name for a completing prompt.
// The names are unfiltered and unsorted; the store is not modified.
func Candidates(s *Store) []string {
	return s.Names()
}
