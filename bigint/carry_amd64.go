//go:build amd64

package bigint

import (
	"math/bits"

	"golang.org/x/sys/cpu"
)

// On amd64 with ADX/BMI2 available, the hardware carry chain used by
// bits.Add64/bits.Sub64 is the same MULX/ADCX/ADOX pipeline the original
// source selects via its own add-with-carry intrinsic path (spec.md §4.3
// treats the choice of intrinsic as an implementation detail, not part of
// the contract). Packing two 32-bit limbs per 64-bit lane halves the
// number of carry-propagating steps versus the portable one-limb-at-a-time
// loop in addsub.go.
func init() {
	if cpu.X86.HasADX && cpu.X86.HasBMI2 {
		addVVImpl = addVVWide
		subVVImpl = subVVWide
	}
}

func addVVWide(z, x, y mag) word {
	n := len(x)
	i := 0
	var c uint64
	for ; i+1 < n; i += 2 {
		xw := uint64(x[i]) | uint64(x[i+1])<<wordBits
		yw := uint64(y[i]) | uint64(y[i+1])<<wordBits
		sum, cOut := bits.Add64(xw, yw, c)
		z[i] = word(sum)
		z[i+1] = word(sum >> wordBits)
		c = cOut
	}
	cw := word(c)
	if i < n {
		z[i], cw = addWW(x[i], y[i], cw)
	}
	return cw
}

func subVVWide(z, x, y mag) word {
	n := len(x)
	i := 0
	var b uint64
	for ; i+1 < n; i += 2 {
		xw := uint64(x[i]) | uint64(x[i+1])<<wordBits
		yw := uint64(y[i]) | uint64(y[i+1])<<wordBits
		diff, bOut := bits.Sub64(xw, yw, b)
		z[i] = word(diff)
		z[i+1] = word(diff >> wordBits)
		b = bOut
	}
	bw := word(b)
	if i < n {
		z[i], bw = subWW(x[i], y[i], bw)
	}
	return bw
}
