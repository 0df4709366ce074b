package donation

// LastID returns the id in the first field of the last line.
// An empty store yields 0, so the first inserted record gets id 1.
func LastID(lines []string) (int, error) {
	if len(lines) == 0 {
		return 0, nil
	}
	return ParseID(lines[len(lines)-1])
}

// NextID returns the id assigned to a record inserted after lastID.
// Ids are not checked for uniqueness: deleting the last line lets its id be reused.
func NextID(lastID int) int {
	return lastID + 1
}
