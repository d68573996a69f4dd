package models

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	testCases := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "simple title",
			title: "Zero Trust Rollout",
			want:  "zero-trust-rollout",
		},
		{
			name:  "punctuation dropped",
			title: "SOC 2, Explained! (Part 1)",
			want:  "soc-2-explained-part-1",
		},
		{
			name:  "hyphen runs collapsed",
			title: "a  --  b",
			want:  "a-b",
		},
		{
			name:  "surrounding noise trimmed",
			title: "  --- Hello ---  ",
			want:  "hello",
		},
		{
			name:  "non-ascii dropped",
			title: "Café Security™",
			want:  "caf-security",
		},
		{
			name:  "empty input",
			title: "",
			want:  "",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if got := Slugify(testCase.title); got != testCase.want {
				t.Fatalf("Slugify(%q) = %q, want %q", testCase.title, got, testCase.want)
			}
		})
	}
}

func TestSlugifyCapsLength(t *testing.T) {
	long := strings.Repeat("security ", 20)
	got := Slugify(long)
	if len(got) > 80 {
		t.Fatalf("expected slug capped at 80 chars, got %d", len(got))
	}
	if strings.HasSuffix(got, "-") || strings.HasPrefix(got, "-") {
		t.Fatalf("expected trimmed slug, got %q", got)
	}
}
