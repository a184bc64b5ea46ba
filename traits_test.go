package bufobj

import "testing"

// TestTraitsOf tests layout derivation for the documented element types and
// the unknown-layout fallback.
func TestTraitsOf(t *testing.T) {
	tests := []struct {
		name string
		got  Traits
		want Traits
	}{
		{"int8", TraitsOf[int8](), Traits{1, ScalarInteger}},
		{"uint8", TraitsOf[uint8](), Traits{1, ScalarInteger}},
		{"int16", TraitsOf[int16](), Traits{1, ScalarInteger}},
		{"uint16", TraitsOf[uint16](), Traits{1, ScalarInteger}},
		{"int32", TraitsOf[int32](), Traits{1, ScalarInteger}},
		{"uint32", TraitsOf[uint32](), Traits{1, ScalarInteger}},
		{"Vec2", TraitsOf[Vec2](), Traits{2, ScalarFloat}},
		{"Vec3", TraitsOf[Vec3](), Traits{3, ScalarFloat}},
		{"Vec4", TraitsOf[Vec4](), Traits{4, ScalarFloat}},

		// Unrecognized types degrade to "layout unavailable", not an error.
		{"float32", TraitsOf[float32](), Traits{0, ScalarFloat}},
		{"float64", TraitsOf[float64](), Traits{0, ScalarFloat}},
		{"int64", TraitsOf[int64](), Traits{0, ScalarFloat}},
		{"struct", TraitsOf[struct{ A, B float64 }](), Traits{0, ScalarFloat}},
		{"array", TraitsOf[[5]int32](), Traits{0, ScalarFloat}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("TraitsOf = %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

// TestScalarKindString tests ScalarKind string representations.
func TestScalarKindString(t *testing.T) {
	tests := []struct {
		kind ScalarKind
		want string
	}{
		{ScalarInteger, "Integer"},
		{ScalarFloat, "Float"},
		{ScalarKind(42), "Unknown(42)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
