package valueobject

import "fmt"

// SortField selects which task timestamp drives ordering
type SortField string

const (
	SortFieldNone      SortField = ""
	SortFieldStartTime SortField = "startTime"
	SortFieldEndTime   SortField = "endTime"
)

// SortDirection is the ordering direction
type SortDirection string

const (
	SortDirectionNone SortDirection = ""
	SortAscending     SortDirection = "asc"
	SortDescending    SortDirection = "desc"
)

// ParseSortField accepts "start", "startTime", "end", "endTime" or empty
func ParseSortField(s string) (SortField, error) {
	switch s {
	case "":
		return SortFieldNone, nil
	case "start", "startTime", "start-time", "start_time":
		return SortFieldStartTime, nil
	case "end", "endTime", "end-time", "end_time":
		return SortFieldEndTime, nil
	default:
		return SortFieldNone, fmt.Errorf("invalid sort field %q: must be one of: start, end", s)
	}
}

// ParseSortDirection accepts "asc", "desc" or empty
func ParseSortDirection(s string) (SortDirection, error) {
	switch s {
	case "":
		return SortDirectionNone, nil
	case "asc", "ascending":
		return SortAscending, nil
	case "desc", "descending":
		return SortDescending, nil
	default:
		return SortDirectionNone, fmt.Errorf("invalid sort order %q: must be one of: asc, desc", s)
	}
}

// SortConfig is the active sort field and direction. The zero value sorts nothing.
type SortConfig struct {
	Field     SortField     `json:"field,omitempty" yaml:"field,omitempty"`
	Direction SortDirection `json:"direction,omitempty" yaml:"direction,omitempty"`
}

// IsActive reports whether both a field and a direction are set
func (c SortConfig) IsActive() bool {
	return c.Field != SortFieldNone && c.Direction != SortDirectionNone
}

// Toggle returns the config after the user selects field. Selecting a new
// field starts ascending; selecting the current field flips asc and desc.
// There is no transition back to the unsorted state.
func (c SortConfig) Toggle(field SortField) SortConfig {
	if c.Field == field && c.Direction == SortAscending {
		return SortConfig{Field: field, Direction: SortDescending}
	}
	return SortConfig{Field: field, Direction: SortAscending}
}
