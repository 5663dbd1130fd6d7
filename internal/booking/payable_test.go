package booking

import "testing"

func TestPayabilityOf(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"active", true},
		{"ACTIVE", true},
		{"Active", true},
		{"cancelled", false},
		{"expired", false},
		{"pending_review", false}, // unknown future status must not pay
		{"", false},
	}

	for _, tt := range tests {
		p := PayabilityOf(tt.status)
		if p.Payable != tt.want {
			t.Errorf("PayabilityOf(%q).Payable = %v, want %v", tt.status, p.Payable, tt.want)
		}
		if !tt.want && p.Reason == "" {
			t.Errorf("PayabilityOf(%q) blocked without a reason", tt.status)
		}
		if tt.want && p.Reason != "" {
			t.Errorf("PayabilityOf(%q).Reason = %q, want empty", tt.status, p.Reason)
		}
	}
}
