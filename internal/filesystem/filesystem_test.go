package filesystem

import "testing"

func TestIsRemote(t *testing.T) {
	cases := []struct {
		name   string
		fsType uint32
		want   bool
	}{
		{"cifs", 0xFF534D42, true},
		{"smb2", 0xFE534D42, true},
		{"ext4", 0xEF53, false},
		{"tmpfs", 0x01021994, false},
		{"nfs", 0x6969, false},
		{"zero", 0, false},
	}

	for _, c := range cases {
		if got := IsRemote(c.fsType); got != c.want {
			t.Errorf("%s: IsRemote(%#x) = %v, want %v", c.name, c.fsType, got, c.want)
		}
	}
}
