package donation

// DeletePlan describes the outcome of scanning a store for a delete target.
type DeletePlan struct {
	TargetID  int
	Found     bool
	Index     int      // position of the first matching line, -1 when not found
	Removed   string   // the removed line, empty when not found
	Remaining []string // lines to rewrite; nil when not found
}

// PlanDelete scans lines in order and plans removal of the first line whose id equals targetID.
// A malformed line aborts the scan with an error wrapping ErrFormat, even if a later line matches.
// Only the first match is removed; duplicate ids are left in place.
func PlanDelete(lines []string, targetID int) (DeletePlan, error) {
	for i, line := range lines {
		id, err := ParseID(line)
		if err != nil {
			return DeletePlan{}, err
		}
		if id != targetID {
			continue
		}

		remaining := make([]string, 0, len(lines)-1)
		remaining = append(remaining, lines[:i]...)
		remaining = append(remaining, lines[i+1:]...)
		return DeletePlan{
			TargetID:  targetID,
			Found:     true,
			Index:     i,
			Removed:   line,
			Remaining: remaining,
		}, nil
	}

	return DeletePlan{TargetID: targetID, Index: -1}, nil
}
