package htmlsanitize_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/dalemusser/mentorhub/internal/app/system/htmlsanitize"
)

func TestText_Empty(t *testing.T) {
	if got := htmlsanitize.Text(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestText_StripsMarkup(t *testing.T) {
	got := htmlsanitize.Text(`  <b>Room</b> <script>alert('x')</script>4 `)
	if got != "Room 4" {
		t.Errorf("Text() = %q, want %q", got, "Room 4")
	}
}

func TestText_EncodedMarkup(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"&lt;img src=x onerror=alert(1)&gt;", ""},
		{"&lt;b&gt;Room&lt;/b&gt; 4", "Room 4"},
		{"a &lt; b", "a < b"},
	}
	for _, tt := range tests {
		if got := htmlsanitize.Text(tt.in); got != tt.want {
			t.Errorf("Text(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSessionLink(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{"empty clears", "   ", "", nil},
		{"zoom url", "https://zoom.us/j/123?pwd=abc&x=1", "https://zoom.us/j/123?pwd=abc&x=1", nil},
		{"plain text", "Room 12, Block B", "Room 12, Block B", nil},
		{"time text", "at 12:30 in lobby", "at 12:30 in lobby", nil},
		{"anchor stripped", `<a href="https://meet.example/x">https://meet.example/x</a>`, "https://meet.example/x", nil},
		{"javascript", "javascript:alert(1)", "", htmlsanitize.ErrBadScheme},
		{"data", "DATA:text/html,hi", "", htmlsanitize.ErrBadScheme},
		{"escaped script", "&lt;script&gt;alert(1)&lt;/script&gt;", "", nil},
		{"escaped img", "&lt;img src=x onerror=alert(1)&gt;https://meet.example/x", "https://meet.example/x", nil},
		{"double escaped script", "&amp;lt;script&amp;gt;alert(1)&amp;lt;/script&amp;gt;", "", nil},
		{"bare bracket", "https://x.example/?a<5", "", htmlsanitize.ErrMarkup},
		{"too long", "https://x/" + strings.Repeat("a", 500), "", htmlsanitize.ErrTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := htmlsanitize.SessionLink(tt.in, 500)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SessionLink() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("SessionLink() = %q, want %q", got, tt.want)
			}
		})
	}
}
