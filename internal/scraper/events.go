package scraper

import "time"

// Progress event types emitted during a bulk run. Consumers must see events
// in emission order; only keepalives may repeat.
const (
	EventStarted   = "started"
	EventItemOK    = "item_ok"
	EventItemError = "item_error"
	EventKeepalive = "keepalive"
	EventDone      = "done"
	EventFatal     = "fatal"
)

// Event is one unit of the progress stream, serialized as a single JSON
// object per line/message.
type Event struct {
	Type          string    `json:"type"`
	JobID         string    `json:"job_id,omitempty"`
	Brand         string    `json:"brand,omitempty"`
	Page          int       `json:"page,omitempty"`
	IndexOnPage   int       `json:"index_on_page,omitempty"`
	TotalInserted int       `json:"total_inserted,omitempty"`
	TotalModels   int       `json:"total_models,omitempty"`
	Slug          string    `json:"slug,omitempty"`
	Title         string    `json:"title,omitempty"`
	Error         string    `json:"error,omitempty"`
	At            time.Time `json:"at"`
}

// Sink consumes progress events. Emit is called from the job's single
// goroutine, in order; implementations that cross goroutines must keep
// that order.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

func (f SinkFunc) Emit(e Event) { f(e) }

func startedEvent(jobID, brand string) Event {
	return Event{Type: EventStarted, JobID: jobID, Brand: brand, At: time.Now()}
}

func itemOKEvent(page, index, totalInserted int, slug, title string) Event {
	return Event{
		Type:          EventItemOK,
		Page:          page,
		IndexOnPage:   index,
		TotalInserted: totalInserted,
		Slug:          slug,
		Title:         title,
		At:            time.Now(),
	}
}

func itemErrorEvent(page, index int, slug, title string, err error) Event {
	return Event{
		Type:        EventItemError,
		Page:        page,
		IndexOnPage: index,
		Slug:        slug,
		Title:       title,
		Error:       err.Error(),
		At:          time.Now(),
	}
}

// KeepaliveEvent is sent by transports on their own clock so intermediaries
// never see an idle stream.
func KeepaliveEvent() Event {
	return Event{Type: EventKeepalive, At: time.Now()}
}

func doneEvent(jobID string, res BulkResult) Event {
	return Event{
		Type:          EventDone,
		JobID:         jobID,
		TotalInserted: res.TotalInserted,
		TotalModels:   res.TotalModels,
		At:            time.Now(),
	}
}

// FatalEvent reports an error that terminates the whole job.
func FatalEvent(jobID string, err error) Event {
	return Event{Type: EventFatal, JobID: jobID, Error: err.Error(), At: time.Now()}
}
