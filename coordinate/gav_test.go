package coordinate

import "testing"

func TestGav_IsResolved(t *testing.T) {
	tests := []struct {
		name string
		gav  Gav
		want bool
	}{
		{"fully resolved", NewGav("com.x", "lib", "1.2.3"), true},
		{"unresolved version expression", NewGav("com.x", "lib", "${lib.version}"), false},
		{"empty group", NewGav("", "lib", "1.0"), false},
		{"empty artifact", NewGav("com.x", "", "1.0"), false},
		{"empty version", NewGav("com.x", "lib", ""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.gav.IsResolved(); got != tt.want {
				t.Errorf("IsResolved() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGav_String(t *testing.T) {
	g := NewGav("com.x", "lib", "1.2.3")
	want := "com.x:lib:1.2.3"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDependencyKey_DefaultsType(t *testing.T) {
	k := NewDependencyKey("com.x", "lib", "", "")
	if k.Type != DefaultType {
		t.Errorf("Type = %q, want %q", k.Type, DefaultType)
	}
}

func TestDependencyKey_Equality(t *testing.T) {
	a := NewDependencyKey("com.x", "lib", "", "jar")
	b := NewDependencyKey("com.x", "lib", "", "")
	if a != b {
		t.Errorf("expected %+v == %+v after type defaulting", a, b)
	}
}

func TestScopeFromString(t *testing.T) {
	tests := []struct {
		in   string
		want Scope
	}{
		{"", Compile},
		{"COMPILE", Compile},
		{"provided", Provided},
		{"Runtime", Runtime},
		{"test", Test},
		{"system", System},
		{"import", Import},
		{"bogus", Compile},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ScopeFromString(tt.in); got != tt.want {
				t.Errorf("ScopeFromString(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
