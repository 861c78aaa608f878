package mcpserver

import "testing"

func TestNewServerRegistersWithoutPanic(t *testing.T) {
	server := NewServer("test")
	if server == nil {
		t.Fatal("NewServer returned nil")
	}
}
