package entities

import (
	"time"
)

// ThreadPayload is the request body for creating a thread.
type ThreadPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// AddedThread is what a successful thread creation returns to the client.
type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

// ThreadHeader is the raw thread row joined with its owner's username.
type ThreadHeader struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Date     time.Time `json:"date"`
	Username string    `json:"username"`
}

// ThreadDetail is the fully aggregated thread view: header plus its
// comments in creation order, each carrying its replies.
type ThreadDetail struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     time.Time       `json:"date"`
	Username string          `json:"username"`
	Comments []CommentDetail `json:"comments"`
}
