package schema

// HeadersMatch compares a found header row against the expected one:
// exact ordered equality, case sensitive, no normalization. Callers must
// surface both lists on mismatch instead of coping with drift silently.
func HeadersMatch(found, expected []string) bool {
	if len(found) != len(expected) {
		return false
	}
	for index, name := range expected {
		if found[index] != name {
			return false
		}
	}
	return true
}
