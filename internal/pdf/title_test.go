package pdf

import "testing"

func TestPlausibleTitle(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"real title", "An Integrative Theory of Intergroup Conflict", true},
		{"lowercase title", "Social identity and intergroup behaviour", true},
		{"too short", "Abstract", false},
		{"running head in full caps", "INTERGROUP CONFLICT AND COOPERATION", false},
		{"journal masthead", "Journal of Personality and Social Psychology", false},
		{"citation line", "Vol. 86, No. 2, pp. 124-139", false},
		{"copyright footer", "Copyright 1979 by the American Psychological Association", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := plausibleTitle(tt.line); got != tt.want {
				t.Errorf("plausibleTitle(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestIsFrontMatter(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"Psychological Review 1977, Vol. 84, No. 2", true},
		{"doi: 10.1037/0033-295X.84.2.191", true},
		{"Received: 12 March 1976   Accepted: 4 June 1976", true},
		{"Downloaded from psycnet.apa.org on 2024-01-15", true},
		{"Volume 12, Issue 3", true},
		{"Self-efficacy: Toward a unifying theory of behavioral change", false},
	}

	for _, tt := range tests {
		if got := isFrontMatter(tt.line); got != tt.want {
			t.Errorf("isFrontMatter(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
