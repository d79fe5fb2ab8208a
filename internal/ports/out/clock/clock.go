package clock

import "time"

// Clock is the source of "now" for an evaluation pass.
// Services read it once per pass and thread the value through the engine.
type Clock interface {
	Now() time.Time
}
