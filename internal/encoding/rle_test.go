package encoding

import (
	"bytes"
	"testing"
)

func TestRLERoundTrip(t *testing.T) {
	cases := [][]uint8{
		nil,
		{'.'},
		{'.', '.', '.', '.', '.'},
		{'O', '.', '#', '#', '#', '.', 'O', 'O'},
		bytes.Repeat([]byte{'.'}, 10_000),
	}
	for _, in := range cases {
		enc := EncodeRLE(in)
		out, err := DecodeRLE(enc)
		if err != nil {
			t.Fatalf("decode %q: %v", enc, err)
		}
		if !bytes.Equal(out, in) {
			t.Fatalf("round trip mismatch: got %v want %v", out, in)
		}
	}
}

func TestDecodeRLE_RejectsGarbage(t *testing.T) {
	if _, err := DecodeRLE("not base64!!"); err == nil {
		t.Fatalf("want error for bad base64")
	}
}

func TestEncodeRLE_CompressesRuns(t *testing.T) {
	long := bytes.Repeat([]byte{'.'}, 100_000)
	if enc := EncodeRLE(long); len(enc) > 32 {
		t.Fatalf("run of 100k cells encoded to %d chars", len(enc))
	}
}
