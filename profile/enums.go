package profile

import "sort"

// Enum members used by the course writer.
const (
	FileCourse = "course"

	EventTimer = "timer"

	EventTypeStart          = "start"
	EventTypeStopDisableAll = "stop_disable_all"
)

var fileValues = map[string]uint8{
	"course": 6,
}

var sportValues = map[string]uint8{
	"cycling": 2,
}

var eventValues = map[string]uint8{
	"timer": 0,
}

var eventTypeValues = map[string]uint8{
	"start":            0,
	"stop_disable_all": 9,
}

var coursePointValues = map[string]uint8{
	"generic":         0,
	"summit":          1,
	"valley":          2,
	"water":           3,
	"food":            4,
	"danger":          5,
	"left":            6,
	"right":           7,
	"straight":        8,
	"first_aid":       9,
	"fourth_category": 10,
	"third_category":  11,
	"second_category": 12,
	"first_category":  13,
	"hors_category":   14,
	"sprint":          15,
	"left_fork":       16,
	"right_fork":      17,
	"middle_fork":     18,
	"slight_left":     19,
	"sharp_left":      20,
	"slight_right":    21,
	"sharp_right":     22,
	"u_turn":          23,
	"segment_start":   24,
	"segment_end":     25,
}

// EnumValue returns the wire value of name in the enum type t.
// It reports false when t is not an enum type or name is not a member.
func EnumValue(t FieldType, name string) (uint8, bool) {
	et, ok := t.(enumType)
	if !ok {
		return 0, false
	}
	n, ok := et.values[name]

	return n, ok
}

// EnumNames returns the member names of the enum type t ordered by wire value.
// It returns nil when t is not an enum type.
func EnumNames(t FieldType) []string {
	et, ok := t.(enumType)
	if !ok {
		return nil
	}

	names := make([]string, 0, len(et.values))
	for name := range et.values {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return et.values[names[i]] < et.values[names[j]]
	})

	return names
}
