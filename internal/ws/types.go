package ws

const (
	// server - client
	MsgTick = "tick"
	MsgDone = "done"
	MsgIdle = "idle"
)

// Message is one countdown frame.
type Message struct {
	Type       string `json:"type"`
	Remaining  int64  `json:"remaining,omitempty"`
	EndingTime string `json:"ending_time,omitempty"`
}
