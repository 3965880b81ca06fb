// Package queue defines message payloads exchanged over the message broker.
package queue

// SubmissionAcceptedEvent is published after a submission has been fully
// persisted (user, response and API key written). It carries enough for
// downstream consumers to log or trigger analytics without querying the
// primary store. The API key itself is deliberately not included.
type SubmissionAcceptedEvent struct {
	UserID           string  `json:"user_id"`
	ResponseID       string  `json:"response_id"`
	Email            string  `json:"email"`
	Language         string  `json:"language"`
	SovereigntyScore float64 `json:"sovereignty_score"`
	ProfileType      string  `json:"profile_type"`
	AcceptedAt       string  `json:"accepted_at"`
}
