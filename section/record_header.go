package section

// DefinitionHeader returns the record header byte of a definition record on
// the given local message number.
func DefinitionHeader(localNum uint8) byte {
	return RecordDefinitionFlag | (localNum & LocalMesgNumMask)
}

// DataHeader returns the record header byte of a data record on the given
// local message number.
func DataHeader(localNum uint8) byte {
	return localNum & LocalMesgNumMask
}

// IsDefinition reports whether a record header byte marks a definition record.
func IsDefinition(header byte) bool {
	return header&RecordDefinitionFlag != 0
}

// LocalMesgNum extracts the local message number from a record header byte.
func LocalMesgNum(header byte) uint8 {
	return header & LocalMesgNumMask
}

// DefinitionRecordLen returns the size of a definition record with n fields.
func DefinitionRecordLen(n int) int {
	return DefinitionFixedSize + FieldDefinitionSize*n
}
