package gutenberg

import "time"

// JobStatus represents the lifecycle state of a print job.
type JobStatus string

// Job statuses reported by the server.
const (
	JobStatusIncoming   JobStatus = "INCOMING"
	JobStatusPending    JobStatus = "PENDING"
	JobStatusProcessing JobStatus = "PROCESSING"
	JobStatusPrinting   JobStatus = "PRINTING"
	JobStatusCompleted  JobStatus = "COMPLETED"
	JobStatusCanceled   JobStatus = "CANCELED"
	JobStatusError      JobStatus = "ERROR"
)

// String returns the string representation of a JobStatus.
func (s JobStatus) String() string {
	return string(s)
}

// Terminal reports whether the job can no longer change state.
func (s JobStatus) Terminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusCanceled, JobStatusError:
		return true
	}
	return false
}

// Cancelable reports whether the job can still be canceled.
func (s JobStatus) Cancelable() bool {
	return !s.Terminal() && s != JobStatusPrinting
}

// JobProperties are the print settings attached to a job.
type JobProperties struct {
	Copies   int  `json:"copies"`
	TwoSided bool `json:"two_sided"`
	Color    bool `json:"color"`
}

// Job is a single print job owned by the signed-in user.
type Job struct {
	ID         int           `json:"id"`
	Name       string        `json:"name"`
	Status     JobStatus     `json:"status"`
	StatusInfo string        `json:"status_info,omitempty"`
	Pages      int           `json:"pages"`
	Properties JobProperties `json:"properties"`
	CreatedAt  time.Time     `json:"date_created"`
}
