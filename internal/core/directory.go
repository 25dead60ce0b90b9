package core

import (
	"strings"
	"sync"
)

// User is one active chat participant, keyed by its connection id. Users are
// immutable once created; there is no rename or room change.
type User struct {
	ID       string
	Username string
	Room     string
}

// RoomMember is the directory's view of a user exposed in room rosters.
type RoomMember struct {
	Username string
}

// Directory is the in-memory registry of connected users. It is the only
// shared mutable state in the process; its mutex serializes all access.
type Directory struct {
	mu    sync.Mutex
	users map[string]*User
	order []string // connection ids in join order
}

// NewDirectory constructs an empty directory.
func NewDirectory() *Directory {
	return &Directory{users: make(map[string]*User)}
}

// AddUser validates and inserts a new user. Username and room are trimmed and
// must be non-empty; the (username, room) pair must be free, compared
// case-insensitively so "Bob" and "bob" cannot coexist in one room.
func (d *Directory) AddUser(id, username, room string) (*User, error) {
	username = strings.TrimSpace(username)
	room = strings.TrimSpace(room)
	if username == "" || room == "" {
		return nil, validationError("username and room are required")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.users {
		if strings.EqualFold(existing.Username, username) && strings.EqualFold(existing.Room, room) {
			return nil, conflictError("username is already taken in this room")
		}
	}

	u := &User{ID: id, Username: username, Room: room}
	d.users[id] = u
	d.order = append(d.order, id)
	return u, nil
}

// RemoveUser deletes and returns the user for id. A miss returns nil: a
// disconnect can fire twice or arrive for a connection that never joined,
// and neither is an error.
func (d *Directory) RemoveUser(id string) *User {
	d.mu.Lock()
	defer d.mu.Unlock()

	u, ok := d.users[id]
	if !ok {
		return nil
	}
	delete(d.users, id)
	for i, other := range d.order {
		if other == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return u
}

// GetUser returns the user for id, or nil when unknown.
func (d *Directory) GetUser(id string) *User {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.users[id]
}

// UsersInRoom lists room members in join order. Room comparison is
// case-insensitive; an unknown or empty room yields an empty roster.
func (d *Directory) UsersInRoom(room string) []RoomMember {
	d.mu.Lock()
	defer d.mu.Unlock()

	members := make([]RoomMember, 0, len(d.order))
	for _, id := range d.order {
		if u := d.users[id]; strings.EqualFold(u.Room, room) {
			members = append(members, RoomMember{Username: u.Username})
		}
	}
	return members
}
