package helpers

import (
	"strconv"
	"testing"
)

func TestGenOTPCodeShape(t *testing.T) {
	for i := 0; i < 500; i++ {
		code, err := GenOTPCode()
		if err != nil {
			t.Fatalf("GenOTPCode: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("code %q is not 6 characters", code)
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code %q is not numeric: %v", code, err)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("code %d outside 6-digit range", n)
		}
	}
}
