package pathutil

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "/"},
		{"root", "/", "/"},
		{"missing root prefix", "screens", "/screens"},
		{"already canonical", "/screens/lobby", "/screens/lobby"},
		{"trailing separator", "/screens/", "/screens"},
		{"duplicate separators", "//screens///lobby", "/screens/lobby"},
		{"relative nested", "screens/lobby", "/screens/lobby"},
		{"only separators", "///", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
			// Normalize must be idempotent for every input.
			if again := Normalize(got); again != got {
				t.Errorf("Normalize not idempotent: Normalize(%q) = %q", got, again)
			}
		})
	}
}

func TestIsRootDrive(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"/", true},
		{"", true},
		{"//", true},
		{"/screens", false},
		{"screens", false},
	}

	for _, tt := range tests {
		if got := IsRootDrive(tt.in); got != tt.want {
			t.Errorf("IsRootDrive(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		parent string
		name   string
		want   string
	}{
		{"/", "screens", "/screens"},
		{"", "screens", "/screens"},
		{"/screens", "lobby", "/screens/lobby"},
		{"/screens/", "lobby", "/screens/lobby"},
	}

	for _, tt := range tests {
		if got := Join(tt.parent, tt.name); got != tt.want {
			t.Errorf("Join(%q, %q) = %q, want %q", tt.parent, tt.name, got, tt.want)
		}
	}
}

func TestDirBase(t *testing.T) {
	tests := []struct {
		in       string
		wantDir  string
		wantBase string
	}{
		{"/", "/", ""},
		{"/screens", "/", "screens"},
		{"/screens/lobby", "/screens", "lobby"},
		{"/a/b/c", "/a/b", "c"},
	}

	for _, tt := range tests {
		if got := Dir(tt.in); got != tt.wantDir {
			t.Errorf("Dir(%q) = %q, want %q", tt.in, got, tt.wantDir)
		}
		if got := Base(tt.in); got != tt.wantBase {
			t.Errorf("Base(%q) = %q, want %q", tt.in, got, tt.wantBase)
		}
	}
}
