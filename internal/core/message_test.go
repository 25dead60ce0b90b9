package core

import (
	"testing"
	"time"
)

func TestNewTextMessage(t *testing.T) {
	before := time.Now()
	env := NewTextMessage("alice", "hello")

	if env.Kind != KindText {
		t.Fatalf("unexpected kind: %v", env.Kind)
	}
	if env.Sender != "alice" || env.Body != "hello" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if env.CreatedAt.Before(before) || env.CreatedAt.After(time.Now()) {
		t.Fatalf("createdAt not stamped at formatting time: %v", env.CreatedAt)
	}
}

func TestNewLocationMessage(t *testing.T) {
	env := NewLocationMessage("bob", "https://google.com/maps?q=1,2")

	if env.Kind != KindLocation {
		t.Fatalf("unexpected kind: %v", env.Kind)
	}
	if env.Sender != "bob" || env.Body != "https://google.com/maps?q=1,2" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if env.CreatedAt.IsZero() {
		t.Fatal("createdAt not set")
	}
}
