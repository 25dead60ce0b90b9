package proto

import "encoding/json"

// Inbound is the envelope for events coming from the client. Events that
// expect an acknowledgment carry a client-chosen id which is echoed back in
// the ack frame.
type Inbound struct {
	Type string          `json:"type"`
	ID   int64           `json:"id,omitempty"`
	Data json.RawMessage `json:"data,omitempty"`
}

const (
	InboundTypeJoin         = "join"
	InboundTypeSendMessage  = "sendMessage"
	InboundTypeSendLocation = "sendLocation"

	OutboundTypeEvent = "event"
	OutboundTypeAck   = "ack"
)

// JoinData carries the join options.
type JoinData struct {
	Username string `json:"username"`
	Room     string `json:"room"`
}

// SendMessageData is a chat message from the client.
type SendMessageData struct {
	Text string `json:"text"`
}

// SendLocationData carries the coordinates to share with the room.
type SendLocationData struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Outbound is the envelope for frames sent to the client: room events and
// acknowledgments.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	ID    int64  `json:"id,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// ChatMessage is the payload of "message" events, user and system authored
// alike. CreatedAt is Unix milliseconds.
type ChatMessage struct {
	Username  string `json:"username"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"`
}

// LocationMessage is the payload of "locationMessage" events.
type LocationMessage struct {
	Username  string `json:"username"`
	URL       string `json:"url"`
	CreatedAt int64  `json:"createdAt"`
}

// RoomUser is one entry of a room roster.
type RoomUser struct {
	Username string `json:"username"`
}

// RoomData is the payload of "roomData" events.
type RoomData struct {
	Room  string     `json:"room"`
	Users []RoomUser `json:"users"`
}

// Error describes a rejected event in an ack frame.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
