package admin

import "testing"

func TestGetAccessLevel_KnownLevels(t *testing.T) {
	tests := []struct {
		level    int
		wantName string
	}{
		{0, "Guest"},
		{1, "User"},
		{2, "Regular"},
		{20, "Moderator"},
		{40, "Admin"},
		{60, "Full Admin"},
		{80, "Senior Admin"},
		{100, "Super Admin"},
	}
	for _, tt := range tests {
		al := GetAccessLevel(tt.level)
		if al == nil {
			t.Fatalf("GetAccessLevel(%d) = nil, want %q", tt.level, tt.wantName)
		}
		if al.Name != tt.wantName {
			t.Errorf("GetAccessLevel(%d).Name = %q, want %q", tt.level, al.Name, tt.wantName)
		}
	}
}

func TestGetAccessLevel_Negative(t *testing.T) {
	if al := GetAccessLevel(-1); al != nil {
		t.Errorf("GetAccessLevel(-1) = %+v, want nil", al)
	}
}

func TestGetAccessLevel_UnknownPositiveFallback(t *testing.T) {
	// Level 50 should fall back to level 40 (Admin), highest known <= 50
	al := GetAccessLevel(50)
	if al == nil || al.Name != "Admin" {
		t.Errorf("GetAccessLevel(50) = %+v, want Admin", al)
	}

	al = GetAccessLevel(200)
	if al == nil || al.Name != "Super Admin" {
		t.Errorf("GetAccessLevel(200) = %+v, want Super Admin", al)
	}
}

func TestGroupName(t *testing.T) {
	tests := map[int]string{
		-1:  "None",
		0:   "Guest",
		20:  "Moderator",
		59:  "Admin",
		60:  "Full Admin",
		150: "Super Admin",
	}
	for level, want := range tests {
		if got := GroupName(level); got != want {
			t.Errorf("GroupName(%d) = %q, want %q", level, got, want)
		}
	}
}

func TestLevelByKeyword(t *testing.T) {
	if n, ok := LevelByKeyword("MOD"); !ok || n != 20 {
		t.Errorf("LevelByKeyword(MOD) = %d, %v; want 20, true", n, ok)
	}
	if _, ok := LevelByKeyword("wizard"); ok {
		t.Error("LevelByKeyword(wizard) should not match")
	}
}

func TestParseLevelRange(t *testing.T) {
	tests := []struct {
		spec    string
		want    LevelRange
		wantErr bool
	}{
		{"60", LevelRange{60, 100}, false},
		{" 0 ", LevelRange{0, 100}, false},
		{"mod", LevelRange{20, 100}, false},
		{"20-40", LevelRange{20, 40}, false},
		{"admin-senioradmin", LevelRange{40, 80}, false},
		{"", LevelRange{}, true},
		{"101", LevelRange{}, true},
		{"-5", LevelRange{}, true},
		{"80-20", LevelRange{}, true},
		{"wizard", LevelRange{}, true},
		{"20-wizard", LevelRange{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseLevelRange(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevelRange(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevelRange(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestLevelRange_Allows(t *testing.T) {
	r := LevelRange{Min: 20, Max: 40}
	for level, want := range map[int]bool{0: false, 19: false, 20: true, 40: true, 41: false} {
		if got := r.Allows(level); got != want {
			t.Errorf("Allows(%d) = %v, want %v", level, got, want)
		}
	}
	if s := AtLeast(60).String(); s != "60" {
		t.Errorf("AtLeast(60).String() = %q, want 60", s)
	}
	if s := r.String(); s != "20-40" {
		t.Errorf("String() = %q, want 20-40", s)
	}
}
