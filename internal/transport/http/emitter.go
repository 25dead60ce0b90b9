package http

import (
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/roomtalk/roomtalk-server/internal/proto"
)

// eventBuffer bounds the per-connection outbound queue. A full queue means a
// consumer too slow to matter; frames for it are dropped, never the frames
// for its roommates.
const eventBuffer = 16

// clientConn is the transport-side state for one WebSocket connection.
type clientConn struct {
	id     string
	events chan proto.Outbound
}

func newClientConn(id string) *clientConn {
	return &clientConn{id: id, events: make(chan proto.Outbound, eventBuffer)}
}

// RoomEmitter tracks live connections and their room subscriptions, and
// implements the addressing primitives the session router fans out through:
// one connection, a whole room, or a room minus the sender.
type RoomEmitter struct {
	mu    sync.Mutex
	conns map[string]*clientConn
	rooms map[string]map[string]struct{} // lower-cased room -> conn ids
	log   *zerolog.Logger
}

// NewRoomEmitter constructs an emitter with no connections.
func NewRoomEmitter(logger *zerolog.Logger) *RoomEmitter {
	return &RoomEmitter{
		conns: make(map[string]*clientConn),
		rooms: make(map[string]map[string]struct{}),
		log:   logger,
	}
}

// Register makes the connection addressable. Must happen before any routing
// for it.
func (e *RoomEmitter) Register(c *clientConn) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.conns[c.id] = c
}

// Drop removes the connection from every room and from the registry. The
// transport calls this before routing the disconnect event, so departure
// notices reach only the remaining members.
func (e *RoomEmitter) Drop(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.conns, id)
	for room, members := range e.rooms {
		delete(members, id)
		if len(members) == 0 {
			delete(e.rooms, room)
		}
	}
}

// Subscribe adds the connection to a room's delivery group. Room names are
// grouped case-insensitively, matching the directory.
func (e *RoomEmitter) Subscribe(connID, room string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	key := roomKey(room)
	members, ok := e.rooms[key]
	if !ok {
		members = make(map[string]struct{})
		e.rooms[key] = members
	}
	members[connID] = struct{}{}
}

// ToConn delivers an event to a single connection.
func (e *RoomEmitter) ToConn(connID, event string, payload any) {
	e.mu.Lock()
	c := e.conns[connID]
	e.mu.Unlock()

	if c != nil {
		e.deliver(c, event, payload)
	}
}

// ToRoom delivers an event to every connection in the room.
func (e *RoomEmitter) ToRoom(room, event string, payload any) {
	for _, c := range e.members(room, "") {
		e.deliver(c, event, payload)
	}
}

// ToRoomExcept delivers an event to every connection in the room but one.
func (e *RoomEmitter) ToRoomExcept(room, exceptID, event string, payload any) {
	for _, c := range e.members(room, exceptID) {
		e.deliver(c, event, payload)
	}
}

func (e *RoomEmitter) members(room, exceptID string) []*clientConn {
	e.mu.Lock()
	defer e.mu.Unlock()

	ids := e.rooms[roomKey(room)]
	out := make([]*clientConn, 0, len(ids))
	for id := range ids {
		if id == exceptID {
			continue
		}
		if c, ok := e.conns[id]; ok {
			out = append(out, c)
		}
	}
	return out
}

func (e *RoomEmitter) deliver(c *clientConn, event string, payload any) {
	frame, ok := outboundFrame(event, payload)
	if !ok {
		e.log.Error().Str("event", event).Msg("unmappable outbound payload")
		return
	}

	select {
	case c.events <- frame:
	default:
		e.log.Warn().Str("client_id", c.id).Str("event", event).Msg("dropping event for slow consumer")
	}
}

func roomKey(room string) string {
	return strings.ToLower(room)
}
