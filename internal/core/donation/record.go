// Package donation contains the pure business logic for donation records.
// This is part of the Functional Core - no I/O, only pure functions over lines.
package donation

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldSeparator separates the fields of a record line. No quoting or escaping is applied.
const FieldSeparator = ","

// Record is one blood donation entry.
type Record struct {
	ID         int
	Name       string
	NationalID string
	BirthDate  string // YYYY-MM-DD, not validated
	BloodType  string
	VolumeML   int
}

// FormatLine serializes a record as id,name,nationalId,birthDate,bloodType,volumeMl.
// Field contents are written verbatim; an embedded comma shifts the columns.
func FormatLine(r Record) string {
	return strings.Join([]string{
		strconv.Itoa(r.ID),
		r.Name,
		r.NationalID,
		r.BirthDate,
		r.BloodType,
		strconv.Itoa(r.VolumeML),
	}, FieldSeparator)
}

// ParseID extracts the integer id from the first field of a record line.
// Returns an error wrapping ErrFormat if the field is not an integer.
func ParseID(line string) (int, error) {
	field, _, _ := strings.Cut(line, FieldSeparator)
	id, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q is not a number", ErrFormat, field)
	}
	return id, nil
}
