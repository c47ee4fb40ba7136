package clipboard

import "testing"

func TestIsAvailable(t *testing.T) {
	// Just verifies the probe doesn't panic; availability is system-dependent
	_ = IsAvailable()
}

func TestCopy(t *testing.T) {
	if !IsAvailable() {
		t.Skip("clipboard not available on this system")
	}

	if err := Copy("test clipboard content"); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		formatter string
		want      Format
	}{
		{"plain", FormatPlain},
		{"latex", FormatPlain},
		{"markdown", FormatPlain},
		{"html", FormatHTML},
		{"html+css", FormatHTML},
		{"HTML_CSS", FormatHTML},
		{"richtext", FormatRTF},
		{"rtf", FormatRTF},
	}

	for _, tt := range tests {
		if got := FormatFor(tt.formatter); got != tt.want {
			t.Errorf("FormatFor(%q) = %q, want %q", tt.formatter, got, tt.want)
		}
	}
}

func TestMimeType(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatPlain, "text/plain"},
		{FormatHTML, "text/html"},
		{FormatRTF, "text/rtf"},
	}

	for _, tt := range tests {
		if got := mimeType(tt.format); got != tt.want {
			t.Errorf("mimeType(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}
