package domain

import "time"

// UsagePattern aggregates per-domain usage counters feeding the importance score
type UsagePattern struct {
	OpenCount        int           `json:"openCount"`
	InteractionCount int           `json:"interactionCount"`
	TotalActiveTime  time.Duration `json:"totalActiveTime"`
	LastActiveTime   time.Time     `json:"lastActiveTime"`
	Importance       float64       `json:"importance"`
	LastAnalyzed     time.Time     `json:"lastAnalyzed,omitzero"`
}
