package units

import "testing"

func TestSizeTwips(t *testing.T) {
	tests := []struct {
		name string
		size Size
		want int
	}{
		{"twips", Twips(720), 720},
		{"points", Points(12), 240},
		{"half points", HalfPoints(24), 240},
		{"inch", Inches(8.5), 12240},
		{"centimeter", Centimeters(2.54), 1440},
		{"millimeter", Millimeters(10), 567},
		{"pixels", Pixels(96), 1440},
		{"emu", EMU(914400), 1440},
		{"negative rounds away from zero", Size{Value: -0.5, Unit: UnitTwip}, -1},
		{"half rounds up", Size{Value: 0.5, Unit: UnitTwip}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.size.Twips(); got != tt.want {
				t.Errorf("Twips() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSizeDerivedUnits(t *testing.T) {
	s := Points(11)
	if got := s.HalfPoints(); got != 22 {
		t.Errorf("HalfPoints() = %d, want 22", got)
	}
	if got := Inches(1).EMU(); got != 914400 {
		t.Errorf("EMU() = %d, want 914400", got)
	}
	if got := Twips(1440).Pixels(); got != 96 {
		t.Errorf("Pixels() = %d, want 96", got)
	}
}

func TestSizeDeterministic(t *testing.T) {
	s := Millimeters(33.3)
	first := s.Twips()
	for range 10 {
		if s.Twips() != first {
			t.Fatal("conversion is not deterministic")
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Size
		wantErr bool
	}{
		{"12pt", Points(12), false},
		{"2.5cm", Centimeters(2.5), false},
		{"720", Twips(720), false},
		{"720tw", Twips(720), false},
		{" 1in ", Inches(1), false},
		{"24hp", HalfPoints(24), false},
		{"96px", Pixels(96), false},
		{"914400emu", EMU(914400), false},
		{"", Size{}, true},
		{"abcpt", Size{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSizeTextRoundTrip(t *testing.T) {
	var s Size
	if err := s.UnmarshalText([]byte("10mm")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	data, _ := s.MarshalText()
	if string(data) != "10mm" {
		t.Errorf("MarshalText() = %s, want 10mm", data)
	}
}
