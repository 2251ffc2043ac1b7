package domain

// IngestStatus enumerates the terminal outcomes of one pipeline run.
type IngestStatus string

const (
	// IngestPublished means a new post was created.
	IngestPublished IngestStatus = "published"
	// IngestNothingNew means no eligible unseen candidate was found.
	IngestNothingNew IngestStatus = "nothing_new"
	// IngestRejected means the AI declined the candidate editorially.
	IngestRejected IngestStatus = "rejected"
	// IngestAlreadyExists means a concurrent run won the insert race.
	IngestAlreadyExists IngestStatus = "already_exists"
	// IngestBusy means another run was already in flight.
	IngestBusy IngestStatus = "busy"
)

// Tweet outcome values recorded on a run summary.
const (
	TweetSuccess = "success"
	TweetFailed  = "failed"
	TweetSkipped = "skipped"
)

// IngestResult summarizes one ingestion run for the trigger caller.
// Only IngestPublished implies side effects beyond logging; Success
// mirrors that so schedulers can alert on the boolean alone.
type IngestResult struct {
	Success     bool         `json:"success"`
	Status      IngestStatus `json:"status"`
	PostID      string       `json:"post_id,omitempty"`
	Title       string       `json:"title,omitempty"`
	Category    string       `json:"category,omitempty"`
	TweetStatus string       `json:"twitter,omitempty"`
	Message     string       `json:"message,omitempty"`
}

// Published reports whether the run produced a new post.
func (r IngestResult) Published() bool {
	return r.Status == IngestPublished
}
