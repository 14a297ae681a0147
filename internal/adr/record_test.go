package adr

import "testing"

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "simple words", title: "Use a Database!", want: "use-a-database"},
		{name: "surrounding noise", title: "  --Hello World--  ", want: "hello-world"},
		{name: "only punctuation", title: "?!---...", want: ""},
		{name: "empty", title: "", want: ""},
		{name: "mixed case", title: "Record Architecture Decisions", want: "record-architecture-decisions"},
		{name: "digits kept", title: "Move to HTTP2", want: "move-to-http2"},
		{name: "run of separators", title: "a -- b // c", want: "a-b-c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Slug(tt.title)
			if got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		number int
		title  string
		want   string
	}{
		{7, "Use a Database!", "0007-use-a-database.md"},
		{1, "Record architecture decisions", "0001-record-architecture-decisions.md"},
		{12345, "Big store", "12345-big-store.md"},
	}

	for _, tt := range tests {
		got := Filename(tt.number, tt.title)
		if got != tt.want {
			t.Errorf("Filename(%d, %q) = %q, want %q", tt.number, tt.title, got, tt.want)
		}
	}
}

func TestNumberFromFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		want   int
		wantOK bool
	}{
		{"0001-first.md", 1, true},
		{"0042-answer.md", 42, true},
		{"10000-big.md", 10000, true},
		{"042-too-short.md", 0, false},
		{"README.md", 0, false},
		{"0001-first.txt", 0, false},
		{"notes", 0, false},
	}

	for _, tt := range tests {
		got, ok := numberFromFilename(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("numberFromFilename(%q) = (%d, %v), want (%d, %v)", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}
