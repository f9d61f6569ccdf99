package profile

import (
	"fmt"

	"github.com/arloliu/fitcourse/errs"
)

// Message names in the catalog.
const (
	MesgFileID      = "file_id"
	MesgCourse      = "course"
	MesgLap         = "lap"
	MesgRecord      = "record"
	MesgCoursePoint = "course_point"
	MesgEvent       = "event"
)

// FieldDef describes one field of a message.
type FieldDef struct {
	Num  uint8     // protocol-assigned field number
	Name string    // application-facing key
	Type FieldType // semantic type
}

// MessageDef describes a message: its global number and fields in canonical order.
type MessageDef struct {
	Name   string
	Num    uint16
	Fields []FieldDef
}

// Field returns the field definition named name.
func (m *MessageDef) Field(name string) (FieldDef, bool) {
	for _, f := range m.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return FieldDef{}, false
}

var catalog = []*MessageDef{
	{
		Name: MesgFileID,
		Num:  0,
		Fields: []FieldDef{
			{Num: 0, Name: "type", Type: EnumFile},
			{Num: 4, Name: "time_created", Type: DateTime},
		},
	},
	{
		Name:   MesgCourse,
		Num:    31,
		Fields: []FieldDef{{Num: 5, Name: "name", Type: Text}},
	},
	{
		Name: MesgLap,
		Num:  19,
		Fields: []FieldDef{
			{Num: 253, Name: "timestamp", Type: DateTime},
			{Num: 2, Name: "start_time", Type: DateTime},
			{Num: 3, Name: "start_position_lat", Type: Semicircles},
			{Num: 4, Name: "start_position_long", Type: Semicircles},
			{Num: 5, Name: "end_position_lat", Type: Semicircles},
			{Num: 6, Name: "end_position_long", Type: Semicircles},
			{Num: 8, Name: "total_timer_time", Type: Seconds},
			{Num: 9, Name: "total_distance", Type: Distance},
			{Num: 21, Name: "total_ascent", Type: Uint16},
			{Num: 22, Name: "total_descent", Type: Uint16},
		},
	},
	{
		Name: MesgRecord,
		Num:  20,
		Fields: []FieldDef{
			{Num: 253, Name: "timestamp", Type: DateTime},
			{Num: 0, Name: "position_lat", Type: Semicircles},
			{Num: 1, Name: "position_long", Type: Semicircles},
			{Num: 2, Name: "altitude", Type: Altitude},
			{Num: 5, Name: "distance", Type: Distance},
		},
	},
	{
		Name: MesgCoursePoint,
		Num:  32,
		Fields: []FieldDef{
			{Num: 0, Name: "message_index", Type: Uint16},
			{Num: 1, Name: "timestamp", Type: DateTime},
			{Num: 2, Name: "position_lat", Type: Semicircles},
			{Num: 3, Name: "position_long", Type: Semicircles},
			{Num: 4, Name: "distance", Type: Distance},
			{Num: 5, Name: "type", Type: EnumCoursePoint},
			{Num: 6, Name: "name", Type: Text},
		},
	},
	{
		Name: MesgEvent,
		Num:  21,
		Fields: []FieldDef{
			{Num: 253, Name: "timestamp", Type: DateTime},
			{Num: 0, Name: "event", Type: EnumEvent},
			{Num: 1, Name: "event_type", Type: EnumEventType},
			{Num: 4, Name: "event_group", Type: Uint8},
		},
	},
}

var catalogByName = func() map[string]*MessageDef {
	m := make(map[string]*MessageDef, len(catalog))
	for _, def := range catalog {
		m[def.Name] = def
	}

	return m
}()

// LookupMessage returns the catalog entry for the named message.
func LookupMessage(name string) (*MessageDef, error) {
	def, ok := catalogByName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownMessage, name)
	}

	return def, nil
}

// Messages returns the message names in catalog order.
func Messages() []string {
	names := make([]string, len(catalog))
	for i, def := range catalog {
		names[i] = def.Name
	}

	return names
}
