package subjects

import "testing"

func TestAll_Count(t *testing.T) {
	all := All()
	if len(all) != 36 {
		t.Errorf("got %d subjects, want 36", len(all))
	}
	langs := 0
	for _, s := range all {
		if s.HasLevels {
			langs++
		}
	}
	if langs != 11 {
		t.Errorf("got %d language subjects, want 11", langs)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		code     string
		wantName string
		wantOK   bool
	}{
		{"mathematics", "Mathematics", true},
		{"english", "English Home Language", true},
		{"lifeSciences", "Life Sciences", true},
		{"lifeSciencies", "Life Sciences", true},
		{"astrology", "", false},
	}

	for _, tt := range tests {
		s, ok := Lookup(tt.code)
		if ok != tt.wantOK || s.Name != tt.wantName {
			t.Errorf("Lookup(%q) = (%q, %v), want (%q, %v)", tt.code, s.Name, ok, tt.wantName, tt.wantOK)
		}
	}
}

func TestDisplayName_FallsBackToCode(t *testing.T) {
	if got := DisplayName("unknownSubject"); got != "unknownSubject" {
		t.Errorf("DisplayName() = %q, want code", got)
	}
}

func TestHasLevels(t *testing.T) {
	if !HasLevels("afrikaans") {
		t.Error("afrikaans should have levels")
	}
	if HasLevels("mathematics") {
		t.Error("mathematics should not have levels")
	}
}

func TestIsEnglishFamily(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"english", true},
		{"englishFAL", true},
		{"English", true},
		{"afrikaans", false},
	}
	for _, tt := range tests {
		if got := IsEnglishFamily(tt.code); got != tt.want {
			t.Errorf("IsEnglishFamily(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestLevel_DisplayName(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelHL, "Home Language"},
		{LevelFAL, "First Additional Language"},
		{"X", "X"},
	}
	for _, tt := range tests {
		if got := tt.level.DisplayName(); got != tt.want {
			t.Errorf("Level(%q).DisplayName() = %q, want %q", tt.level, got, tt.want)
		}
	}
}
