package ui

import "testing"

func TestPrefixLength(t *testing.T) {
	tests := []struct {
		name   string
		length map[string]int
		id     string
		want   int
	}{
		{
			name:   "case insensitive lookup",
			length: map[string]int{"abc123": 4},
			id:     "ABC123",
			want:   4,
		},
		{
			name:   "missing id",
			length: map[string]int{"abc123": 4},
			id:     "",
			want:   0,
		},
		{
			name:   "nil map",
			length: nil,
			id:     "ABC123",
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrefixLength(tt.length, tt.id); got != tt.want {
				t.Fatalf("PrefixLength() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHighlightIDPlainWithoutTerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if got := HighlightID("abc123", 3); got != "abc123" {
		t.Fatalf("expected plain id, got %q", got)
	}
}

func TestShortID(t *testing.T) {
	tests := []struct {
		id        string
		prefixLen int
		minLen    int
		want      string
	}{
		{id: "0f3a9c1e-aaaa", prefixLen: 2, minLen: 8, want: "0f3a9c1e"},
		{id: "0f3a9c1e-aaaa", prefixLen: 10, minLen: 8, want: "0f3a9c1e-a"},
		{id: "abc", prefixLen: 1, minLen: 8, want: "abc"},
		{id: "abc", prefixLen: 0, minLen: 0, want: "abc"},
	}

	for _, tt := range tests {
		if got := ShortID(tt.id, tt.prefixLen, tt.minLen); got != tt.want {
			t.Errorf("ShortID(%q, %d, %d) = %q, want %q", tt.id, tt.prefixLen, tt.minLen, got, tt.want)
		}
	}
}
