package lang_test

import (
	"testing"

	"github.com/agrovet/pashumitra/internal/lang"
)

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"trims", "  High fever  ", "High fever"},
		{"collapses runs", "Nasal \t\n  discharge", "Nasal discharge"},
		{"repairs apostrophe", "Pinkâ€™s eye", "Pink's eye"},
		{"telugu preserved", "  అధిక జ్వరం ", "అధిక జ్వరం"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := lang.NormalizeText(tc.in); got != tc.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeAll(t *testing.T) {
	t.Parallel()

	got := lang.NormalizeAll([]string{" a ", "b  c"})
	if len(got) != 2 || got[0] != "a" || got[1] != "b c" {
		t.Errorf("NormalizeAll = %v", got)
	}
}

func TestTitleCase(t *testing.T) {
	t.Parallel()

	if got := lang.TitleCase("cow"); got != "Cow" {
		t.Errorf("TitleCase(cow) = %q", got)
	}
	if got := lang.TitleCase("BUFFALO"); got != "Buffalo" {
		t.Errorf("TitleCase(BUFFALO) = %q", got)
	}
}
