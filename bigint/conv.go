package bigint

import (
	"fmt"
	"strings"
)

// digitAlphabet is the 64-character digit alphabet spec.md §4.8 specifies
// for bases above 36: 0-9, A-Z, a-z, then '-' (index 62) and '_' (index 63),
// matching the original source's output alphabet.
const digitAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-_"

var digitValue [256]int8

func init() {
	for i := range digitValue {
		digitValue[i] = -1
	}
	for i := 0; i < len(digitAlphabet); i++ {
		digitValue[digitAlphabet[i]] = int8(i)
	}
}

// Parse parses s as a signed base-10 integer.
func Parse(s string) (Int, error) { return ParseBase(s, 10) }

// ParseBase parses s, optionally signed with a leading '+' or '-', as an
// integer in the given base (2..64), using digitAlphabet.
func ParseBase(s string, base int) (Int, error) {
	if base < 2 || base > 64 {
		return Zero, fmt.Errorf("bigint: invalid base %d", base)
	}
	if s == "" {
		return Zero, fmt.Errorf("bigint: empty input")
	}
	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	}
	if s == "" {
		return Zero, fmt.Errorf("bigint: empty input")
	}
	bw := word(base)
	m := mag{0}
	for i := 0; i < len(s); i++ {
		dv := digitValue[s[i]]
		if dv < 0 || int(dv) >= base {
			return Zero, fmt.Errorf("bigint: invalid digit %q for base %d", s[i], base)
		}
		m = mulByWord(m, bw)
		m = addInto(m, mag{word(dv)})
	}
	return fromMagSign(neg, m), nil
}

// Text renders x in the given base (2..64) using digitAlphabet, with a
// fast path for power-of-two bases (mask-and-shift, no division) and a
// chunked-division path for every other base, mirroring the original
// source's output/output_fast split.
func (x Int) Text(base int) (string, error) {
	if base < 2 || base > 64 {
		return "", fmt.Errorf("bigint: invalid base %d", base)
	}
	if x.IsZero() {
		return "0", nil
	}
	var digits string
	if isPowerOfTwo(base) {
		digits = formatPow2(x.m, base)
	} else {
		digits = formatGeneral(x.m, base)
	}
	if x.neg {
		return "-" + digits, nil
	}
	return digits, nil
}

func isPowerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }

// formatPow2 extracts fixed-width bit groups from m's magnitude directly,
// the fast path available whenever base is a power of two.
func formatPow2(m mag, base int) string {
	bitsPerDigit := bitLenWord(word(base - 1))
	total := m.bitLen()
	ndigits := (total + bitsPerDigit - 1) / bitsPerDigit
	if ndigits == 0 {
		ndigits = 1
	}
	mask := word(base - 1)
	work := m.clone()
	buf := make([]byte, ndigits)
	for i := ndigits - 1; i >= 0; i-- {
		buf[i] = digitAlphabet[work[0]&mask]
		work = shiftRight(work, bitsPerDigit)
	}
	return string(buf)
}

// formatGeneral divides m repeatedly by the largest power of base that
// still fits in a single limb, turning an O(digits) sequence of full
// magnitude divisions into one magnitude division per chunkWidth digits
// plus cheap machine-word formatting for each chunk.
func formatGeneral(m mag, base int) string {
	chunkWidth, chunkBase := maxWordChunk(word(base))
	var chunks []word
	work := m.clone()
	for !work.isZero() {
		var rem word
		work, rem = divModWord(work, chunkBase)
		chunks = append(chunks, rem)
	}
	if len(chunks) == 0 {
		chunks = []word{0}
	}
	var sb strings.Builder
	sb.WriteString(formatWordInBase(chunks[len(chunks)-1], base, 0))
	for i := len(chunks) - 2; i >= 0; i-- {
		sb.WriteString(formatWordInBase(chunks[i], base, chunkWidth))
	}
	return sb.String()
}

// maxWordChunk returns the largest k and base^k such that base^k fits in a
// single limb (without overflowing wordMax).
func maxWordChunk(base word) (k int, chunkBase word) {
	chunkBase = 1
	for {
		next := uint64(chunkBase) * uint64(base)
		if next > uint64(wordMax) {
			break
		}
		chunkBase = word(next)
		k++
	}
	return k, chunkBase
}

// formatWordInBase renders v in base, left-padded with zero digits to
// width (width 0 means no padding, used for the most significant chunk).
func formatWordInBase(v word, base int, width int) string {
	if v == 0 && width == 0 {
		return "0"
	}
	buf := make([]byte, 0, width+4)
	for v > 0 {
		buf = append(buf, digitAlphabet[v%word(base)])
		v /= word(base)
	}
	for len(buf) < width {
		buf = append(buf, '0')
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}
