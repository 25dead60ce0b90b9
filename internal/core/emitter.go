package core

// Outbound event names understood by clients.
const (
	EventMessage         = "message"
	EventLocationMessage = "locationMessage"
	EventRoomData        = "roomData"
)

// Roster is the membership snapshot broadcast after joins and departures.
// Each snapshot is computed once and the same value goes to every recipient
// of the triggering event.
type Roster struct {
	Room  string
	Users []RoomMember
}

// Emitter is the transport capability the session router fans out through.
// Delivery is best-effort and fire-and-forget: a recipient that cannot keep
// up must not block or fail delivery to the others.
type Emitter interface {
	// Subscribe adds the connection to a room's delivery group.
	Subscribe(connID, room string)
	// ToConn delivers an event to a single connection.
	ToConn(connID, event string, payload any)
	// ToRoom delivers an event to every connection in the room.
	ToRoom(room, event string, payload any)
	// ToRoomExcept delivers an event to every connection in the room but one.
	ToRoomExcept(room, exceptID, event string, payload any)
}

// ContentFilter screens chat text before it is fanned out. Flagged text is
// rejected without being delivered to anyone.
type ContentFilter interface {
	Flagged(text string) bool
}
