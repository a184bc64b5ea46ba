package bufobj

import "testing"

// TestTargetString tests Target string representations.
func TestTargetString(t *testing.T) {
	tests := []struct {
		target Target
		want   string
	}{
		{TargetArray, "Array"},
		{TargetElementArray, "ElementArray"},
		{TargetPixelPack, "PixelPack"},
		{TargetPixelUnpack, "PixelUnpack"},
		{TargetUniform, "Uniform"},
		{TargetCopyRead, "CopyRead"},
		{TargetCopyWrite, "CopyWrite"},
		{Target(99), "Unknown(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.target.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestTargetSupportsSubData tests the sub-data capable subset.
func TestTargetSupportsSubData(t *testing.T) {
	tests := []struct {
		target Target
		want   bool
	}{
		{TargetArray, true},
		{TargetElementArray, true},
		{TargetPixelPack, true},
		{TargetPixelUnpack, true},
		{TargetUniform, false},
		{TargetCopyRead, false},
		{TargetCopyWrite, false},
		{Target(99), false},
	}

	for _, tt := range tests {
		t.Run(tt.target.String(), func(t *testing.T) {
			if got := tt.target.SupportsSubData(); got != tt.want {
				t.Errorf("SupportsSubData() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestUsageString tests Usage string representations.
func TestUsageString(t *testing.T) {
	tests := []struct {
		usage Usage
		want  string
	}{
		{UsageStaticDraw, "StaticDraw"},
		{UsageDynamicDraw, "DynamicDraw"},
		{UsageStreamDraw, "StreamDraw"},
		{UsageStaticRead, "StaticRead"},
		{UsageDynamicRead, "DynamicRead"},
		{UsageStreamRead, "StreamRead"},
		{Usage(99), "Unknown(99)"},
	}

	for _, tt := range tests {
		if got := tt.usage.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
