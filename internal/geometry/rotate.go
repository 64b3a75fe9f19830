package geometry

var (
	rotate90  = [9]int{6, 3, 0, 7, 4, 1, 8, 5, 2}
	rotate270 = [9]int{2, 5, 8, 1, 4, 7, 0, 3, 6}
)

// ExactState turns a raw footprint clockwise by offset%4 quarter turns.
// Offsets 4..7 turn the same way; the mirror group only picks the raw input.
// Negative offsets turn counter-clockwise.
func ExactState(raw string, offset int) string {
	if len(raw) != 9 {
		return raw
	}
	switch ((offset % 4) + 4) % 4 {
	case 1:
		return permute(raw, &rotate90)
	case 2:
		b := []byte(raw)
		for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
			b[i], b[j] = b[j], b[i]
		}
		return string(b)
	case 3:
		return permute(raw, &rotate270)
	default:
		return raw
	}
}

func permute(raw string, idx *[9]int) string {
	var b [9]byte
	for i, j := range idx {
		b[i] = raw[j]
	}
	return string(b[:])
}

// Rotate turns a mask clockwise by turns quarter turns.
func (m Mask) Rotate(turns int) Mask {
	out := m
	for t := 0; t < ((turns%4)+4)%4; t++ {
		var next Mask
		for i, j := range rotate90 {
			next[i] = out[j]
		}
		out = next
	}
	return out
}
