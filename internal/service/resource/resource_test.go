package resource

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "worksheet.pdf", "worksheet.pdf"},
		{"with spaces", "q3 planning notes.pdf", "q3_planning_notes.pdf"},
		{"unix path stripped", "../../etc/passwd", "passwd"},
		{"windows path stripped", `C:\Users\evil\doc.pdf`, "doc.pdf"},
		{"empty", "", "file"},
		{"dot", ".", "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeFileName(tt.in); got != tt.want {
				t.Errorf("sanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
