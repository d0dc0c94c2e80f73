package domain

import "time"

type WorkUnit struct {
	Name       string
	Path       string
	ModifiedAt time.Time
}
