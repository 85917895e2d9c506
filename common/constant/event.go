package constant

const (
	QueueStreamName = "event_ticket_queue_stream"
)

const (
	AllWildcard   = "events.>"
	EmailWildcard = "events.email.>"
	UserWildcard  = "events.user.>"

	SubjectSendEmail    = "events.email.send"
	SubjectUserReferred = "events.user.referred"
)
