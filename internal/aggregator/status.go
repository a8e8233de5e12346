package aggregator

import "time"

type Status struct {
	Warm      bool
	FetchedAt *time.Time
}
