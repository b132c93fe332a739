package models

// Message is one record in the messages collection. SenderId is whatever the
// client sent; it is not checked against the users collection. File is a
// public path under /uploads, or null when the message had no attachment.
type Message struct {
	ID        string  `json:"id"`
	SenderID  string  `json:"senderId"`
	Text      string  `json:"text"`
	File      *string `json:"file"`
	Timestamp string  `json:"timestamp"`
}
