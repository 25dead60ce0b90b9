package core

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
)

type sessionState int

const (
	stateUnjoined sessionState = iota
	stateJoined
	stateClosed
)

// Session routes the events of a single connection through the directory and
// out to the room. The transport delivers a connection's events one at a
// time, so Session itself needs no locking; cross-connection access is
// serialized by the Directory.
type Session struct {
	id      string
	state   sessionState
	dir     *Directory
	emitter Emitter
	filter  ContentFilter
	log     *zerolog.Logger
}

// NewSession builds the router for one connection. The id is the
// transport-assigned connection identifier.
func NewSession(id string, dir *Directory, emitter Emitter, filter ContentFilter, logger *zerolog.Logger) *Session {
	return &Session{id: id, dir: dir, emitter: emitter, filter: filter, log: logger}
}

// ID returns the connection identifier the session routes for.
func (s *Session) ID() string {
	return s.id
}

// Join registers the user and announces the arrival: a welcome to the joiner
// only, a join notice to the rest of the room, and a fresh roster to the
// whole room including the joiner. The returned error is the acknowledgment
// value for the event; on failure nothing is emitted and no state changes.
// A second join on the same connection is a protocol error.
func (s *Session) Join(username, room string) error {
	if s.state != stateUnjoined {
		return protocolError("join is only valid once per connection")
	}

	user, err := s.dir.AddUser(s.id, username, room)
	if err != nil {
		return err
	}
	s.state = stateJoined

	s.emitter.Subscribe(s.id, user.Room)

	s.emitter.ToConn(s.id, EventMessage, NewTextMessage(SystemSender, "Welcome!"))
	s.emitter.ToRoomExcept(user.Room, s.id, EventMessage,
		NewTextMessage(SystemSender, fmt.Sprintf("%s has joined!", user.Username)))
	s.emitter.ToRoom(user.Room, EventRoomData, Roster{
		Room:  user.Room,
		Users: s.dir.UsersInRoom(user.Room),
	})

	s.log.Info().Str("client_id", s.id).Str("user", user.Username).Str("room", user.Room).Msg("user joined room")
	return nil
}

// SendMessage fans a chat message out to the sender's room, sender included.
// Flagged content is rejected before the directory lookup, mirroring the
// upstream order. ErrNoAck is returned when the connection has no directory
// record; the upstream server stayed silent in that case and transports must
// not send an ack frame for it.
func (s *Session) SendMessage(text string) error {
	if s.filter != nil && s.filter.Flagged(text) {
		return contentRejected("Profanity is not allowed!")
	}

	user := s.dir.GetUser(s.id)
	if user == nil {
		s.log.Warn().Str("client_id", s.id).Msg("message from connection with no user record")
		return ErrNoAck
	}

	s.emitter.ToRoom(user.Room, EventMessage, NewTextMessage(user.Username, text))
	return nil
}

// SendLocation shares a map link for the given coordinates with the sender's
// room, sender included. Same no-ack rule as SendMessage when the user
// record is missing.
func (s *Session) SendLocation(latitude, longitude float64) error {
	user := s.dir.GetUser(s.id)
	if user == nil {
		s.log.Warn().Str("client_id", s.id).Msg("location from connection with no user record")
		return ErrNoAck
	}

	mapURL := fmt.Sprintf("https://google.com/maps?q=%s,%s",
		strconv.FormatFloat(latitude, 'f', -1, 64),
		strconv.FormatFloat(longitude, 'f', -1, 64))
	s.emitter.ToRoom(user.Room, EventLocationMessage, NewLocationMessage(user.Username, mapURL))
	return nil
}

// Disconnect removes the user and notifies the room left behind with a
// departure notice and an updated roster. The transport must drop the
// connection from the emitter before routing the disconnect, so the
// emissions reach only the remaining members. Safe to call for connections
// that never joined, and idempotent.
func (s *Session) Disconnect() {
	if s.state == stateClosed {
		return
	}
	s.state = stateClosed

	user := s.dir.RemoveUser(s.id)
	if user == nil {
		return
	}

	s.emitter.ToRoom(user.Room, EventMessage,
		NewTextMessage(SystemSender, fmt.Sprintf("%s has left!", user.Username)))
	s.emitter.ToRoom(user.Room, EventRoomData, Roster{
		Room:  user.Room,
		Users: s.dir.UsersInRoom(user.Room),
	})

	s.log.Info().Str("client_id", s.id).Str("user", user.Username).Str("room", user.Room).Msg("user left room")
}
