package deeplink

import "testing"

func TestHasScheme(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  bool
	}{
		{"lowercase", "takma://board/42", true},
		{"uppercase", "TAKMA://board/42", true},
		{"mixed_case", "Takma://card-abc", true},
		{"prefix_only", "takma://", true},
		{"missing_slashes", "takma:board", false},
		{"other_scheme", "https://takma.app", false},
		{"too_short", "tak", false},
		{"empty", "", false},
		{"leading_space", " takma://board", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasScheme(tc.input); got != tc.want {
				t.Errorf("HasScheme(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestFromArgs(t *testing.T) {
	testCases := []struct {
		name   string
		argv   []string
		want   string
		wantOK bool
	}{
		{"nil", nil, "", false},
		{"exe_only", []string{"/usr/bin/takma"}, "", false},
		{"exe_is_link", []string{"takma://board/1"}, "", false},
		{"single_link", []string{"/usr/bin/takma", "takma://board/42"}, "takma://board/42", true},
		{"case_preserved", []string{"takma.exe", "TAKMA://Board/42"}, "TAKMA://Board/42", true},
		{"after_flags", []string{"takma", "--debug", "takma://card-abc"}, "takma://card-abc", true},
		{"first_of_many", []string{"takma", "takma://a", "takma://b"}, "takma://a", true},
		{"no_link", []string{"takma", "--debug", "https://example.com"}, "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FromArgs(tc.argv)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("FromArgs(%q) = (%q, %v), want (%q, %v)", tc.argv, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestCandidate(t *testing.T) {
	testCases := []struct {
		name   string
		argv   []string
		want   string
		wantOK bool
	}{
		{"nil", nil, "", false},
		{"exe_only", []string{"takma"}, "", false},
		{"link", []string{"takma", "takma://board/42"}, "takma://board/42", true},
		{"arbitrary_string", []string{"takma", "hello"}, "hello", true},
		{"only_first_extra", []string{"takma", "one", "takma://two"}, "one", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Candidate(tc.argv)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("Candidate(%q) = (%q, %v), want (%q, %v)", tc.argv, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}
