package constant_test

import (
	"testing"

	"github.com/rakapradana/place-review/constant"
)

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"shop", "shop", true},
		{"Restaurant", "restaurant", true},
		{"  DOCTOR ", "doctor", true},
		{"other", "other", true},
		{"", "other", true},
		{"   ", "other", true},
		{"gymnasium", "", false},
		{"restaurantt", "", false},
	}
	for _, tt := range tests {
		got, ok := constant.NormalizeCategory(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("NormalizeCategory(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
