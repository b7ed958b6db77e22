package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/luxebid/luxebid/pkg/model"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		arg     string
		want    int64
		wantErr bool
	}{
		{"42", 42, false},
		{"0", 0, false},
		{"abc", 0, true},
		{"", 0, true},
		{"12.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseID(tt.arg, "auction")
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseID(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseID(%q) = %d, want %d", tt.arg, got, tt.want)
			}
		})
	}
}

func TestRenderReceipt(t *testing.T) {
	p := &model.Payment{
		ID:        101,
		OrderID:   11,
		Amount:    decimal.RequireFromString("820.5"),
		Method:    "card",
		Reference: "ch_12345",
		PaidAt:    time.Date(2026, 6, 1, 14, 30, 0, 0, time.UTC),
	}

	out := renderReceipt(p)
	for _, want := range []string{
		"LuxeBid Receipt",
		"Receipt #:  101",
		"Order #:    11",
		"Amount:     820.50",
		"Method:     card",
		"Reference:  ch_12345",
		"2026-06-01 14:30",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("receipt missing %q:\n%s", want, out)
		}
	}
}
