package identity

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		uid   string
		email string
		want  string
	}{
		{"uid wins", "uid-123", "user@example.com", "uid-123"},
		{"email fallback", "", "user@example.com", "user@example.com"},
		{"blank uid ignored", "   ", "user@example.com", "user@example.com"},
		{"anonymous", "", "", Anonymous},
		{"blank everything", "  ", "  ", Anonymous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.uid, tt.email); got != tt.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.uid, tt.email, got, tt.want)
			}
		})
	}
}
