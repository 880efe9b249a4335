package arm

import "testing"

func TestType(t *testing.T) {
	cases := []struct {
		v    uint32
		want RelocationType
		name string
	}{
		{0, R_ARM_NONE, "R_ARM_NONE"},
		{2, R_ARM_ABS32, "R_ARM_ABS32"},
		{23, R_ARM_RELATIVE, "R_ARM_RELATIVE"},
		{135, R_ARM_THM_ALU_ABS_G3, "R_ARM_THM_ALU_ABS_G3"},
	}
	for _, c := range cases {
		rt := Type(c.v)
		if rt != c.want || !rt.Known() || rt.String() != c.name {
			t.Fatalf("type %d: %v known=%v", c.v, rt, rt.Known())
		}
	}
}

func TestTypeUnknown(t *testing.T) {
	rt := Type(200)
	if rt.Known() {
		t.Fatal("type 200 claims to be known")
	}
	if rt.Value() != 200 {
		t.Fatalf("value %d", rt.Value())
	}
}
