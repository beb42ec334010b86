package domain

import "time"

// Message is a single raw SMS, inbound or outbound.
type Message struct {
	ID        string
	Phone     string
	Direction Direction
	Text      string
	CreatedAt time.Time
}
