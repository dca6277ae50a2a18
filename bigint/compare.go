package bigint

// cmpMag compares two magnitudes and returns -1, 0, or +1 as a<b, a==b, or
// a>b. It tolerates untrimmed leading zero limbs on either operand: any
// limbs beyond the shorter operand's length are only significant if
// nonzero, and the comparison otherwise proceeds from the most significant
// limb downward so the first differing limb decides the result.
func cmpMag(a, b mag) int {
	la, lb := len(a), len(b)
	for la > lb {
		la--
		if a[la] != 0 {
			return 1
		}
	}
	for lb > la {
		lb--
		if b[lb] != 0 {
			return -1
		}
	}
	for i := la - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// cmpMagWord compares a magnitude against a single limb value.
func cmpMagWord(a mag, w word) int {
	t := trim(a)
	if len(t) > 1 {
		return 1
	}
	switch {
	case t[0] > w:
		return 1
	case t[0] < w:
		return -1
	default:
		return 0
	}
}
