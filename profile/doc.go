// Package profile holds the static FIT profile used by the writer: the
// registry of semantic field types and the catalog of supported messages.
//
// # Field Types
//
// A FieldType maps an application value to its fixed-width wire form. Base
// types (sint8 … uint32, string) store the value as-is; derived types apply a
// transform before storing it in a base type:
//
//	Type         Base    Wire value
//	-----------  ------  ------------------------------------------
//	seconds      uint32  round(seconds × 1000)
//	distance     uint32  round(meters × 100)
//	altitude     uint16  round((meters + 500) × 5)
//	semicircles  sint32  round(degrees / 180 × 2^31)
//	date_time    uint32  round(unix ms / 1000) − 631065600
//	enum_*       enum    lookup of the enum name
//
// Rounding is half away from zero. Values that do not fit the wire width wrap
// like the fixed-width integer conversion does; range checking is the caller's
// responsibility.
//
// # Messages
//
// The catalog is fixed at six messages: file_id, course, lap, record,
// course_point and event. Field order in the catalog is the order used when
// encoding definition and data records.
//
// # Thread Safety
//
// All catalog and registry values are immutable and safe for concurrent use.
package profile
