package bitbuf

import "testing"

func TestAppendValueWidths(t *testing.T) {
	b := New(0)
	b.AppendValue(0b101, 3)
	if b.Len() != 3 {
		t.Fatalf("len after 3-bit append: got %d", b.Len())
	}
	b.AppendValue(0xFF, 6) // only the low 6 bits
	if b.Len() != 9 {
		t.Fatalf("len after 6-bit append: got %d", b.Len())
	}
	if got := b.Value(0, 3); got != 0b101 {
		t.Errorf("value(0,3): got %b", got)
	}
	if got := b.Value(3, 6); got != 0b111111 {
		t.Errorf("value(3,6): got %b", got)
	}
}

func TestValueMSBFirst(t *testing.T) {
	b := New(0)
	b.Append(true)
	b.Append(false)
	b.Append(false)
	b.Append(true)
	if got := b.Value(0, 4); got != 0b1001 {
		t.Errorf("got %04b, want 1001", got)
	}
}

func TestSlice(t *testing.T) {
	b := New(0)
	b.AppendValue(0b11010010, 8)
	s := b.Slice(2, 4)
	if s.Len() != 4 {
		t.Fatalf("slice len: got %d", s.Len())
	}
	if got := s.Value(0, 4); got != 0b0100 {
		t.Errorf("slice value: got %04b, want 0100", got)
	}
	// Slices are independent.
	s.Append(true)
	if b.Len() != 8 {
		t.Errorf("source buffer grew to %d", b.Len())
	}
}

func TestBytesRoundTrip(t *testing.T) {
	data := []byte{0x00, 0xFF, 0xA5, 0x3C}
	b := FromBytes(data)
	if b.Len() != 32 {
		t.Fatalf("len: got %d", b.Len())
	}
	out := b.Bytes()
	for i := range data {
		if out[i] != data[i] {
			t.Errorf("byte %d: got %02x, want %02x", i, out[i], data[i])
		}
	}
	// MSB of 0xA5 is bit 16.
	if !b.Bit(16) || b.Bit(17) {
		t.Error("0xA5 bit order wrong")
	}
}

func TestBytesUnaligned(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Bytes on 7 bits did not panic")
		}
	}()
	b := New(0)
	b.AppendValue(0, 7)
	b.Bytes()
}

func TestReadPastEnd(t *testing.T) {
	b := New(0)
	b.AppendValue(0, 8)
	for _, f := range []func(){
		func() { b.Bit(8) },
		func() { b.Bit(-1) },
		func() { b.Value(5, 4) },
		func() { b.Slice(0, 9) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Error("out-of-range read did not panic")
				}
			}()
			f()
		}()
	}
}

func TestClone(t *testing.T) {
	b := New(0)
	b.AppendValue(0xAB, 8)
	c := b.Clone()
	c.Append(true)
	if b.Len() != 8 || c.Len() != 9 {
		t.Errorf("clone not independent: %d/%d", b.Len(), c.Len())
	}
}
