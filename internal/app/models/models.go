package models

import "time"

type ItemState string

const (
	StatePending ItemState = "pending"
	StateLoading ItemState = "loading"
	StateSuccess ItemState = "success"
	StateFailed  ItemState = "failed"
)

type Kind string

const (
	KindText   Kind = "text"
	KindImage  Kind = "image"
	KindVideo  Kind = "video"
	KindSpeech Kind = "speech"
)

type RunStatus string

const (
	RunRunning   RunStatus = "running"
	RunCompleted RunStatus = "completed"
	RunCancelled RunStatus = "cancelled"
)

// Input is everything needed to produce one artifact. Raw bytes stay out of
// JSON snapshots; artifacts are served by their own endpoint.
type Input struct {
	Kind           Kind              `json:"kind"`
	Prompt         string            `json:"prompt"`
	ReferenceImage []byte            `json:"-"`
	MimeType       string            `json:"mime_type,omitempty"`
	Params         map[string]string `json:"params,omitempty"`
}

type Artifact struct {
	MimeType string `json:"mime_type"`
	Data     []byte `json:"-"`
	Text     string `json:"text,omitempty"`
}

type Item struct {
	Index     int       `json:"index"`
	Input     Input     `json:"input"`
	State     ItemState `json:"state"`
	Result    *Artifact `json:"result,omitempty"`
	Error     string    `json:"error,omitempty"`
	Attempts  int       `json:"attempts"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Progress struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	Loading int `json:"loading"`
	Success int `json:"success"`
	Failed  int `json:"failed"`
}

// CountProgress derives progress counters from the item states.
func CountProgress(items []Item) Progress {
	p := Progress{Total: len(items)}
	for _, item := range items {
		switch item.State {
		case StatePending:
			p.Pending++
		case StateLoading:
			p.Loading++
		case StateSuccess:
			p.Success++
		case StateFailed:
			p.Failed++
		}
	}
	return p
}

type Summary struct {
	RunID      string    `json:"run_id"`
	Status     RunStatus `json:"status"`
	Progress   Progress  `json:"progress"`
	Items      []Item    `json:"-"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// FailedItems returns only the failed items of the summary.
func (s *Summary) FailedItems() []Item {
	var failed []Item
	for _, item := range s.Items {
		if item.State == StateFailed {
			failed = append(failed, item)
		}
	}
	return failed
}

type RunView struct {
	ID              string     `json:"id"`
	Status          RunStatus  `json:"status"`
	CancelRequested bool       `json:"cancel_requested"`
	Items           []Item     `json:"items"`
	Progress        Progress   `json:"progress"`
	CreatedAt       time.Time  `json:"created_at"`
	FinishedAt      *time.Time `json:"finished_at,omitempty"`
}

type HistoryEntry struct {
	ID        string    `json:"id"`
	RunID     string    `json:"run_id"`
	Index     int       `json:"index"`
	Kind      Kind      `json:"kind"`
	Prompt    string    `json:"prompt"`
	MimeType  string    `json:"mime_type,omitempty"`
	Text      string    `json:"text,omitempty"`
	Data      []byte    `json:"data,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ItemRequest struct {
	Kind        Kind              `json:"kind"`
	Prompt      string            `json:"prompt"`
	ImageBase64 string            `json:"image_base64,omitempty"`
	MimeType    string            `json:"mime_type,omitempty"`
	Params      map[string]string `json:"params,omitempty"`
}

type Request struct {
	Items []ItemRequest `json:"items"`
}

type RunResponse struct {
	ID        string    `json:"id"`
	Status    RunStatus `json:"status"`
	Progress  Progress  `json:"progress"`
	CreatedAt time.Time `json:"created_at"`
}
