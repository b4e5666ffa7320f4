package strings

import "testing"

func TestNormalizeWhitespace(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: " \n\t ", want: ""},
		{name: "collapses spaces", input: "buy   oat    milk", want: "buy oat milk"},
		{name: "collapses newlines", input: "one\n\n two\tthree", want: "one two three"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeWhitespace(tc.input); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNormalizeLowerTrimSpace(t *testing.T) {
	if got := NormalizeLowerTrimSpace("  Ada@Example.COM "); got != "ada@example.com" {
		t.Fatalf("expected normalized email, got %q", got)
	}
}

func TestNormalizeNewlines(t *testing.T) {
	if got := NormalizeNewlines("a\r\nb\rc"); got != "a\nb\nc" {
		t.Fatalf("expected LF newlines, got %q", got)
	}
}

func TestTrimTrailingNewlines(t *testing.T) {
	if got := TrimTrailingNewlines("text\r\n\n"); got != "text" {
		t.Fatalf("expected trailing newlines removed, got %q", got)
	}
}

func TestContainsFold(t *testing.T) {
	cases := []struct {
		s, substr string
		want      bool
	}{
		{s: "Buy Milk", substr: "milk", want: true},
		{s: "Buy Milk", substr: "MILK", want: true},
		{s: "Buy bread", substr: "milk", want: false},
		{s: "anything", substr: "", want: true},
	}

	for _, tc := range cases {
		if got := ContainsFold(tc.s, tc.substr); got != tc.want {
			t.Errorf("ContainsFold(%q, %q) = %v, want %v", tc.s, tc.substr, got, tc.want)
		}
	}
}
