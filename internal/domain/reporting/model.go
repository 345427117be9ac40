package reporting

import "time"

// Channel is a patient communication channel.
type Channel string

const (
	ChannelSMS   Channel = "sms"
	ChannelEmail Channel = "email"
	ChannelCall  Channel = "call"
)

// CommunicationEntry is one logged patient contact. Entries are stored in the
// order they are added; the report renders them as-is, so callers supply them
// in the desired display order.
type CommunicationEntry struct {
	Date    time.Time `json:"date"`
	Channel Channel   `json:"channel"`
	Note    string    `json:"note"`
}
