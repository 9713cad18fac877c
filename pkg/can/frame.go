package can

import (
	"time"

	ecan "go.einride.tech/can"
)

// TimedFrame is a classic CAN frame stamped with its capture time.
// The embedded frame keeps ID, Length, Data and the flag fields
// directly accessible; Timestamp carries the wall-clock time the
// frame was captured at.
type TimedFrame struct {
	ecan.Frame
	Timestamp time.Time
}
