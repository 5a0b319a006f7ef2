package app

import "time"

// TickMsg triggers a frame update and a history sample.
type TickMsg time.Time
