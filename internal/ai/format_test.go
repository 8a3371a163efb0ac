package ai

import "testing"

func TestRenderInlineMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bold",
			in:   "Drink **plenty of water** daily.",
			want: "Drink <strong>plenty of water</strong> daily.",
		},
		{
			name: "italic",
			in:   "This is *usually* harmless.",
			want: "This is <em>usually</em> harmless.",
		},
		{
			name: "bold and italic",
			in:   "**Rest** and *hydrate*.",
			want: "<strong>Rest</strong> and <em>hydrate</em>.",
		},
		{
			name: "unpaired marker untouched",
			in:   "a * b",
			want: "a * b",
		},
		{
			name: "unpaired double marker untouched",
			in:   "see ** here",
			want: "see ** here",
		},
		{
			name: "plain text",
			in:   "nothing to do",
			want: "nothing to do",
		},
		{
			name: "multiple bold spans",
			in:   "**one** and **two**",
			want: "<strong>one</strong> and <strong>two</strong>",
		},
		{
			name: "empty string",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderInlineMarkup(tt.in); got != tt.want {
				t.Errorf("RenderInlineMarkup(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCanonicalSpecialization(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"Cardiology", "Cardiology", true},
		{"cardiology", "Cardiology", true},
		{"  Neurology.\n", "Neurology", true},
		{"\"Dermatology\"", "Dermatology", true},
		{"infectious disease", "Infectious Disease", true},
		{"General", "General", true},
		{"Astrology", "", false},
		{"", "", false},
		{"I think this is Cardiology", "", false},
	}

	for _, tt := range tests {
		got, ok := CanonicalSpecialization(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("CanonicalSpecialization(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
