package core

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// emission records one outbound delivery made through the fake emitter.
type emission struct {
	scope   string // "conn", "room" or "roomExcept"
	target  string // connection id or room name
	exclude string
	event   string
	payload any
}

type fakeEmitter struct {
	subscriptions map[string]string // conn id -> room
	emissions     []emission
}

func newFakeEmitter() *fakeEmitter {
	return &fakeEmitter{subscriptions: make(map[string]string)}
}

func (f *fakeEmitter) Subscribe(connID, room string) {
	f.subscriptions[connID] = room
}

func (f *fakeEmitter) ToConn(connID, event string, payload any) {
	f.emissions = append(f.emissions, emission{scope: "conn", target: connID, event: event, payload: payload})
}

func (f *fakeEmitter) ToRoom(room, event string, payload any) {
	f.emissions = append(f.emissions, emission{scope: "room", target: room, event: event, payload: payload})
}

func (f *fakeEmitter) ToRoomExcept(room, exceptID, event string, payload any) {
	f.emissions = append(f.emissions, emission{scope: "roomExcept", target: room, exclude: exceptID, event: event, payload: payload})
}

func (f *fakeEmitter) byEvent(event string) []emission {
	var out []emission
	for _, e := range f.emissions {
		if e.event == event {
			out = append(out, e)
		}
	}
	return out
}

func (f *fakeEmitter) reset() {
	f.emissions = nil
}

// stubFilter flags any text containing the banned substring.
type stubFilter struct {
	banned string
}

func (s stubFilter) Flagged(text string) bool {
	return s.banned != "" && strings.Contains(text, s.banned)
}

func mustEnvelope(t *testing.T, e emission) Envelope {
	t.Helper()
	env, ok := e.payload.(Envelope)
	if !ok {
		t.Fatalf("expected Envelope payload, got %T", e.payload)
	}
	return env
}

func mustRoster(t *testing.T, e emission) Roster {
	t.Helper()
	roster, ok := e.payload.(Roster)
	if !ok {
		t.Fatalf("expected Roster payload, got %T", e.payload)
	}
	return roster
}

func testLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}
