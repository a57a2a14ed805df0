package oracle

import "testing"

func TestSipHash24Deterministic(t *testing.T) {
	a := SipHash24(1, 2)
	b := SipHash24(1, 2)
	if a != b {
		t.Fatalf("SipHash24 is not deterministic: %d != %d", a, b)
	}
}

func TestSipHash24SensitiveToEachInput(t *testing.T) {
	base := SipHash24(10, 20)
	if SipHash24(11, 20) == base {
		t.Fatalf("changing x1 did not change the digest")
	}
	if SipHash24(10, 21) == base {
		t.Fatalf("changing x2 did not change the digest")
	}
}

func TestSipHash24NotCommutative(t *testing.T) {
	if SipHash24(3, 7) == SipHash24(7, 3) {
		t.Fatalf("SipHash24(3,7) unexpectedly equals SipHash24(7,3)")
	}
}

func TestBitAtOrdering(t *testing.T) {
	// 0x80000000 has only its most significant bit set.
	h := uint32(0x80000000)
	if BitAt(h, 0) != 1 {
		t.Fatalf("expected bit 0 (MSB) to be 1")
	}
	for j := 1; j < 32; j++ {
		if BitAt(h, j) != 0 {
			t.Fatalf("expected bit %d to be 0, got 1", j)
		}
	}
	// 0x00000001 has only its least significant bit set.
	h = 1
	if BitAt(h, 31) != 1 {
		t.Fatalf("expected bit 31 (LSB) to be 1")
	}
	if BitAt(h, 0) != 0 {
		t.Fatalf("expected bit 0 to be 0")
	}
}

func TestBitAtReconstructsWord(t *testing.T) {
	h := SipHash24(42, 99)
	var reconstructed uint32
	for j := 0; j < 32; j++ {
		reconstructed = (reconstructed << 1) | BitAt(h, j)
	}
	if reconstructed != h {
		t.Fatalf("bit reconstruction mismatch: got %x want %x", reconstructed, h)
	}
}
