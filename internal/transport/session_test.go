package transport

import "testing"

func TestDeriveRoom(t *testing.T) {
	cases := []struct {
		address string
		want    string
	}{
		{"", ""},
		{"room-42", "room-42"},
		{"room%2D42", "room-42"},
		{"room-42#fragment", "room-42"},
		{"room%2342", "room"}, // decoded '#' truncates too
		{"abc#x#y", "abc"},
		{"#fragment-only", ""},
		{"%zz", ""}, // undecodable
	}

	for _, c := range cases {
		if got := DeriveRoom(c.address); got != c.want {
			t.Errorf("DeriveRoom(%q) = %q, want %q", c.address, got, c.want)
		}
	}
}
