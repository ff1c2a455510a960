package kg

// dictCache is the move-to-front byte dictionary shared by the decoder
// and the encoder. Each of the 256 rows is keyed by the canvas byte one
// pixel behind the write position and holds the eight values most
// recently written after that byte, most recent first. Rows start out
// as the identity sequence 0..7; both sides replay the same update
// history, so the tables never diverge.
type dictCache struct {
	rows [256][8]byte
}

func newDictCache() *dictCache {
	c := &dictCache{}
	for i := range c.rows {
		for j := range c.rows[i] {
			c.rows[i][j] = byte(j)
		}
	}
	return c
}

// lookup returns the value at slot in the row keyed by ref.
func (c *dictCache) lookup(ref byte, slot int) byte {
	return c.rows[ref][slot]
}

// find returns the slot holding v in the row keyed by ref, or -1.
func (c *dictCache) find(ref, v byte) int {
	row := &c.rows[ref]
	for i := range row {
		if row[i] == v {
			return i
		}
	}
	return -1
}

// update records v as the most recent value after ref. A value already
// at the front leaves the row untouched; one found deeper moves to the
// front; a new value evicts the last slot. Rows always hold eight
// distinct values.
func (c *dictCache) update(ref, v byte) {
	row := &c.rows[ref]
	if row[0] == v {
		return
	}
	p := len(row) - 1
	for i := 1; i < len(row); i++ {
		if row[i] == v {
			p = i
			break
		}
	}
	copy(row[1:p+1], row[:p])
	row[0] = v
}
