// Package mesg builds single FIT messages: it resolves a catalog entry,
// filters the supplied values down to the fields that are present, and
// renders the definition record and data record for that instance.
//
// A Message is built once per write and is not retained by the encoder:
//
//	m, err := mesg.Build(0, profile.MesgCourse, mesg.Values{
//	    "name": profile.String("foo"),
//	})
//	defn := m.DefinitionRecord() // 0x40 0x00 0x01 0x00 0x1f 0x01 0x05 0x04 0x07
//	data, err := m.DataRecord()  // 0x00 'f' 'o' 'o' 0x00
//
// Multi-byte field values are written big-endian, matching the architecture
// byte the definition record declares.
package mesg
