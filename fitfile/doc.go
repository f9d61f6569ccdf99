// Package fitfile assembles FIT files from a sequence of message writes.
//
// An Encoder assigns one local channel (0-15) to every distinct message name
// on first use, remembers the definition last emitted on each channel, and
// inserts a new definition record only when the layout of a message changes.
// Finish frames the records with the 14-byte header and the payload checksum
// trailer and returns the finished File.
//
// # Basic Usage
//
//	enc, _ := fitfile.NewEncoder()
//	_ = enc.WriteFileID(fitfile.Values{
//	    "type":         profile.Enum(profile.FileCourse),
//	    "time_created": profile.Time(time.Now()),
//	})
//	_ = enc.WriteCourse(fitfile.Values{"name": profile.String("Morning loop")})
//	_ = enc.WriteRecord(fitfile.Values{
//	    "timestamp":     profile.Time(time.Now()),
//	    "position_lat":  profile.Float(48.1372),
//	    "position_long": profile.Float(11.5756),
//	})
//	file, _ := enc.Finish()
//	os.WriteFile("course.fit", file.Bytes(), 0o644)
//
// # Thread Safety
//
// An Encoder is NOT thread-safe and NOT reusable: it is owned by a single
// goroutine from creation until Finish. Independent encoders share no mutable
// state and can run in parallel. A finished File is immutable.
package fitfile
