package core

import "time"

// MessageKind distinguishes envelope payloads.
type MessageKind string

const (
	// KindText marks an envelope carrying chat text.
	KindText MessageKind = "text"
	// KindLocation marks an envelope carrying a map link.
	KindLocation MessageKind = "location"
)

// SystemSender authors service notices such as welcomes and join/leave
// announcements.
const SystemSender = "Admin"

// Envelope is a single outbound chat message. Envelopes are built, delivered
// and discarded; nothing stores them.
type Envelope struct {
	Kind      MessageKind
	Sender    string
	Body      string
	CreatedAt time.Time
}

// NewTextMessage stamps a text envelope at the current time. Content checks
// are the caller's job; none happen here.
func NewTextMessage(sender, body string) Envelope {
	return Envelope{Kind: KindText, Sender: sender, Body: body, CreatedAt: time.Now()}
}

// NewLocationMessage stamps a location envelope carrying a prebuilt map URL.
func NewLocationMessage(sender, mapURL string) Envelope {
	return Envelope{Kind: KindLocation, Sender: sender, Body: mapURL, CreatedAt: time.Now()}
}
