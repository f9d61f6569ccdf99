// Package course builds a typical FIT course file in one pass.
//
// A course file starts with file_id, course, lap and a timer start event,
// continues with track points and turn instructions in any order, and ends
// with a timer stop event:
//
//	c, err := course.New("Morning loop", start, 45*time.Minute,
//	    course.Position{Lat: 48.1372, Long: 11.5756},
//	    course.Position{Lat: 48.1372, Long: 11.5756},
//	    course.WithAscent(120),
//	)
//	if err != nil {
//	    return err
//	}
//	for _, p := range points {
//	    c.Point(p.Time, p.Pos, &p.Altitude, &p.Distance)
//	}
//	c.Turn(turnTime, turnPos, "left", "Main St", &turnDistance)
//	file, err := c.Finish(end)
//
// Point and Turn return the Course so calls can be chained. The first failing
// call is remembered, later calls are ignored and Finish reports the error.
package course
