package words

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		word string
		want string
	}{
		{name: "irregular men", word: "men", want: "man"},
		{name: "irregular women", word: "women", want: "woman"},
		{name: "irregular lives", word: "lives", want: "life"},
		{name: "regular plural", word: "boys", want: "boy"},
		{name: "regular plural girls", word: "girls", want: "girl"},
		{name: "stoplisted christmas", word: "christmas", want: "christmas"},
		{name: "stoplisted its", word: "its", want: "its"},
		{name: "stoplisted lasts", word: "lasts", want: "lasts"},
		{name: "stoplisted miss", word: "miss", want: "miss"},
		{name: "too short to strip", word: "is", want: "is"},
		{name: "singular unchanged", word: "love", want: "love"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.word); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestUnnormalize(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{word: "man", want: "men"},
		{word: "woman", want: "women"},
		{word: "life", want: "lives"},
		{word: "boy", want: "boys"},
		{word: "night", want: "nights"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := Unnormalize(tt.word); got != tt.want {
				t.Errorf("Unnormalize(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

// Round-trip: normalizing the decanonicalized form must return the
// canonical word, for the irregular pairs and regular words alike.
func TestNormalizeUnnormalizeRoundTrip(t *testing.T) {
	for _, canonical := range []string{"man", "woman", "life", "boy", "girl", "night", "love", "day"} {
		if got := Normalize(Unnormalize(canonical)); got != canonical {
			t.Errorf("Normalize(Unnormalize(%q)) = %q, want %q", canonical, got, canonical)
		}
	}
}

func TestTitleKey(t *testing.T) {
	if TitleKey("  The Good Man ") != "the good man" {
		t.Errorf("TitleKey should trim and lowercase, got %q", TitleKey("  The Good Man "))
	}
	if TitleKey("RE-RELEASE") != TitleKey("re-release") {
		t.Error("TitleKey must be case-insensitive")
	}
}
