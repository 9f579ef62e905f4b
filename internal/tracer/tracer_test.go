package tracer

import "testing"

func TestModExpTrace(t *testing.T) {
	tests := []struct {
		base, exp, mod int64
		want           int64
		wantTrace      string
	}{
		{7, 7, 77, 28, "(7^7) mod 77 = 28"},
		{8, 7, 77, 57, "(8^7) mod 77 = 57"},
		{28, 43, 77, 7, "(28^43) mod 77 = 7"},
		{0, 5, 65, 0, "(0^5) mod 65 = 0"},
		{25, 5, 65, 25, "(25^5) mod 65 = 25"},
	}

	for _, tt := range tests {
		got, trace := ModExpTrace(tt.base, tt.exp, tt.mod)
		if got != tt.want {
			t.Errorf("ModExpTrace(%d, %d, %d) result = %d, want %d", tt.base, tt.exp, tt.mod, got, tt.want)
		}
		if trace != tt.wantTrace {
			t.Errorf("ModExpTrace(%d, %d, %d) trace = %q, want %q", tt.base, tt.exp, tt.mod, trace, tt.wantTrace)
		}
	}
}
