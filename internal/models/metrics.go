package models

// StatusCounts holds participant counts per status.
type StatusCounts struct {
	Active    int64 `json:"active"`
	Completed int64 `json:"completed"`
	Withdrawn int64 `json:"withdrawn"`
}

// GroupCounts holds participant counts per study group.
type GroupCounts struct {
	Treatment int64 `json:"treatment"`
	Control   int64 `json:"control"`
}

// ParticipantMetrics is the enrollment summary.
type ParticipantMetrics struct {
	Total    int64        `json:"total"`
	ByStatus StatusCounts `json:"by_status"`
	ByGroup  GroupCounts  `json:"by_group"`
}
