package identity

import "testing"

func TestKey(t *testing.T) {
	cases := []struct {
		brand, name string
		want        string
		ok          bool
	}{
		{"Coca Cola", "330ml Can", "coca cola 330ml can", true},
		{"  Coca Cola  ", " 330ml Can ", "coca cola 330ml can", true},
		{"COCA COLA", "330ML CAN", "coca cola 330ml can", true},
		{"", "Coca Cola 330ml Can", "coca cola 330ml can", true},
		{"", "Milk", "milk", true},
		{"Brand", "", "", false},
		{"", "", "", false},
		{"   ", "   ", "", false},
	}

	for _, c := range cases {
		got, ok := Key(c.brand, c.name)
		if ok != c.ok {
			t.Errorf("Key(%q, %q) ok = %v, want %v", c.brand, c.name, ok, c.ok)
		}
		if got != c.want {
			t.Errorf("Key(%q, %q) = %q, want %q", c.brand, c.name, got, c.want)
		}
	}
}

func TestKeyBrandlessMatchesCombined(t *testing.T) {
	// A brand-less entry named "Coca Cola 330ml Can" must land on the same
	// key as the inventory item (brand "Coca Cola", name "330ml Can").
	combined, ok := Key("Coca Cola", "330ml Can")
	if !ok {
		t.Fatal("combined key not derivable")
	}
	nameOnly, ok := Key("", "Coca Cola 330ml Can")
	if !ok {
		t.Fatal("name-only key not derivable")
	}
	if combined != nameOnly {
		t.Errorf("keys diverge: %q vs %q", combined, nameOnly)
	}
}

func TestKeyUnicodeNormalization(t *testing.T) {
	// "é" composed (U+00E9) vs decomposed (e + U+0301) must produce the
	// same key.
	composed, _ := Key("Nestlé", "Cereal")
	decomposed, _ := Key("Nestlé", "Cereal")
	if composed != decomposed {
		t.Errorf("NFC not applied: %q vs %q", composed, decomposed)
	}
}

func TestNameKey(t *testing.T) {
	if got := NameKey("  Dish Soap "); got != "dish soap" {
		t.Errorf("NameKey = %q, want %q", got, "dish soap")
	}
	if got := NameKey(""); got != "" {
		t.Errorf("NameKey(empty) = %q, want empty", got)
	}
}
