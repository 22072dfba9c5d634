package database

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateUTF8(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{
			name:  "short_unchanged",
			input: "fever",
			limit: 500,
			want:  "fever",
		},
		{
			name:  "ascii_cut_at_limit",
			input: "abcdef",
			limit: 4,
			want:  "abcd",
		},
		{
			// बुखार is 15 bytes; a 7-byte limit lands inside the third rune
			// and must back off to the previous boundary.
			name:  "devanagari_cut_backs_off_to_rune_boundary",
			input: "बुखार",
			limit: 7,
			want:  "बु",
		},
		{
			name:  "limit_on_exact_boundary",
			input: "बुखार",
			limit: 6,
			want:  "बु",
		},
		{
			name:  "empty",
			input: "",
			limit: 500,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateUTF8(tt.input, tt.limit)
			if got != tt.want {
				t.Errorf("truncateUTF8(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.want)
			}
		})
	}
}

func TestTruncateUTF8LongHindiResponse(t *testing.T) {
	// A multi-condition Hindi aggregation comfortably exceeds the stored
	// limit; 500 is not a multiple of 3, so a byte slice would split a
	// Devanagari sequence.
	response := strings.Repeat("बुखार में आराम करें और खूब तरल पदार्थ लें।\n", 20)
	if len(response) <= maxBotResponseLen {
		t.Fatalf("fixture only %d bytes, want > %d", len(response), maxBotResponseLen)
	}

	got := truncateUTF8(response, maxBotResponseLen)
	if len(got) > maxBotResponseLen {
		t.Errorf("truncated length = %d bytes, want <= %d", len(got), maxBotResponseLen)
	}
	if !utf8.ValidString(got) {
		t.Errorf("truncateUTF8 produced invalid UTF-8: %q", got)
	}
	if !strings.HasPrefix(response, got) {
		t.Errorf("truncated response is not a prefix of the original")
	}
}
