package shortener

import "testing"

func TestValidateLongURL(t *testing.T) {
	valid := []string{
		"https://example.com/page",
		"http://example.com",
		"https://example.com:8080/path?foo=bar#section",
		"ftp://files.example.com/archive.tar.gz",
	}
	for _, raw := range valid {
		if err := ValidateLongURL(raw); err != nil {
			t.Errorf("ValidateLongURL(%q) = %v, want nil", raw, err)
		}
	}

	invalid := []string{
		"",
		"not-a-url",
		"example.com/no-scheme",
		"/relative/path",
		"https://",
		"://invalid",
	}
	for _, raw := range invalid {
		if err := ValidateLongURL(raw); err == nil {
			t.Errorf("ValidateLongURL(%q) = nil, want error", raw)
		}
	}
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Code
		wantErr  bool
	}{
		{
			name:     "lowercases",
			input:    "ABC123",
			expected: "abc123",
		},
		{
			name:     "trims surrounding whitespace",
			input:    "  my-link  ",
			expected: "my-link",
		},
		{
			name:     "replaces internal whitespace with hyphens",
			input:    "my new link",
			expected: "my-new-link",
		},
		{
			name:     "collapses whitespace runs",
			input:    "my\t  link",
			expected: "my-link",
		},
		{
			name:     "keeps underscores and hyphens",
			input:    "my_link-2",
			expected: "my_link-2",
		},
		{
			name:    "rejects short codes",
			input:   "ab",
			wantErr: true,
		},
		{
			name:    "rejects empty input",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "rejects disallowed characters",
			input:   "my/link",
			wantErr: true,
		},
		{
			name:    "rejects unicode",
			input:   "café",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := NormalizeCode(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NormalizeCode(%q) = %q, want error", tt.input, code)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if code != tt.expected {
				t.Errorf("got %q, want %q", code, tt.expected)
			}
		})
	}
}
