package gridview

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWordWrap(t *testing.T) {
	type tc struct {
		text  string
		width int
		want  []string
	}

	tests := map[string]tc{
		"words":         {text: "merged cells wrap", width: 6, want: []string{"merged", "cells", "wrap"}},
		"fits":          {text: "a b", width: 10, want: []string{"a b"}},
		"long word":     {text: "abcdefg", width: 3, want: []string{"abc", "def", "g"}},
		"wide glyphs":   {text: "日本語", width: 4, want: []string{"日本", "語"}},
		"empty":         {text: "", width: 5, want: []string{""}},
		"no width":      {text: "abc", width: 0, want: nil},
		"hanging space": {text: "ab  cd", width: 2, want: []string{"ab", "cd"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, WordWrap(tt.text, tt.width)); diff != "" {
				t.Errorf("WordWrap() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStringWidth(t *testing.T) {
	if got := StringWidth("a日b"); got != 4 {
		t.Errorf("StringWidth() = %d, want 4", got)
	}
}
