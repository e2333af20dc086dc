package taxonomy

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "BHA", "bha"},
		{"already canonical", "bha", "bha"},
		{"strips diacritics", "Bhà", "bha"},
		{"decomposes accented words", "Açaí Purée", "acai puree"},
		{"en dash becomes hyphen", "tert–butylhydroquinone", "tert-butylhydroquinone"},
		{"em dash becomes hyphen", "tert—butylhydroquinone", "tert-butylhydroquinone"},
		{"keeps ascii hyphen", "tert-butylhydroquinone", "tert-butylhydroquinone"},
		{"strips punctuation", "BHA (Butylated Hydroxyanisole)", "bha butylated hydroxyanisole"},
		{"keeps plus and digits", "vitamin b12+", "vitamin b12+"},
		{"collapses whitespace", "  corn \t syrup \n solids  ", "corn syrup solids"},
		{"empty input", "", ""},
		{"all symbols", "(*&^%$#!)", ""},
		{"non-latin script dropped", "砂糖", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"BHA (Butylated Hydroxyanisole)",
		"tert–butylhydroquinone",
		"Açaí Purée",
		"  mono-  and  diglycerides ",
		"E621",
		"",
		"!!!",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestNormalizeCaseAndDiacriticInsensitive(t *testing.T) {
	variants := []string{"BHA", "bha", "Bhà", "BHÁ"}
	want := Normalize(variants[0])
	for _, v := range variants[1:] {
		if got := Normalize(v); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", v, got, want)
		}
	}
}
