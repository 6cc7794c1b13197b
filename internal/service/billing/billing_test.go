package billing

import "testing"

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		cents    int64
		currency string
		want     string
	}{
		{"whole dollars", 15000, "usd", "150.00 USD"},
		{"with cents", 9995, "usd", "99.95 USD"},
		{"euro", 120050, "eur", "1200.50 EUR"},
		{"empty currency defaults", 500, "", "5.00 USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatAmount(tt.cents, tt.currency); got != tt.want {
				t.Errorf("formatAmount(%d, %q) = %q, want %q", tt.cents, tt.currency, got, tt.want)
			}
		})
	}
}
