package kg

import (
	. "gopkg.in/check.v1"
)

type CacheSuite struct{}

var _ = Suite(&CacheSuite{})

func (s *CacheSuite) TestIdentitySeed(c *C) {
	cache := newDictCache()

	for ref := 0; ref < 256; ref++ {
		for slot := 0; slot < 8; slot++ {
			c.Assert(cache.lookup(byte(ref), slot), Equals, byte(slot))
		}
	}
}

func (s *CacheSuite) TestFrontHitKeepsRow(c *C) {
	cache := newDictCache()

	cache.update(10, 0)
	c.Check(cache.rows[10], Equals, [8]byte{0, 1, 2, 3, 4, 5, 6, 7})
}

func (s *CacheSuite) TestMoveToFront(c *C) {
	cache := newDictCache()

	cache.update(10, 5)
	c.Check(cache.rows[10], Equals, [8]byte{5, 0, 1, 2, 3, 4, 6, 7})

	cache.update(10, 3)
	c.Check(cache.rows[10], Equals, [8]byte{3, 5, 0, 1, 2, 4, 6, 7})

	// Rows are independent.
	c.Check(cache.rows[11], Equals, [8]byte{0, 1, 2, 3, 4, 5, 6, 7})
}

func (s *CacheSuite) TestEviction(c *C) {
	cache := newDictCache()

	cache.update(42, 100)
	c.Check(cache.rows[42], Equals, [8]byte{100, 0, 1, 2, 3, 4, 5, 6})

	cache.update(42, 200)
	c.Check(cache.rows[42], Equals, [8]byte{200, 100, 0, 1, 2, 3, 4, 5})

	// A value already present moves instead of evicting.
	cache.update(42, 100)
	c.Check(cache.rows[42], Equals, [8]byte{100, 200, 0, 1, 2, 3, 4, 5})
}

func (s *CacheSuite) TestLastSlot(c *C) {
	cache := newDictCache()

	cache.update(7, 7)
	c.Check(cache.rows[7], Equals, [8]byte{7, 0, 1, 2, 3, 4, 5, 6})
}

func (s *CacheSuite) TestFind(c *C) {
	cache := newDictCache()

	c.Check(cache.find(1, 5), Equals, 5)
	c.Check(cache.find(1, 200), Equals, -1)

	cache.update(1, 200)
	c.Check(cache.find(1, 200), Equals, 0)
	c.Check(cache.find(1, 7), Equals, -1)

	// find and lookup agree for every slot it reports.
	for v := 0; v < 8; v++ {
		slot := cache.find(1, byte(v))
		if slot >= 0 {
			c.Check(cache.lookup(1, slot), Equals, byte(v))
		}
	}
}

func (s *CacheSuite) TestDeterminism(c *C) {
	// Two caches fed the same history stay byte-identical; the decoder
	// relies on replaying the encoder's updates exactly.
	a, b := newDictCache(), newDictCache()

	seq := []struct{ ref, v byte }{
		{0, 1}, {1, 9}, {1, 9}, {9, 200}, {200, 9}, {9, 9},
		{255, 0}, {255, 255}, {0, 1}, {1, 200}, {1, 3}, {1, 100},
	}
	for _, u := range seq {
		a.update(u.ref, u.v)
		b.update(u.ref, u.v)
	}

	c.Check(a.rows, Equals, b.rows)
}

func (s *CacheSuite) TestRowStaysDistinct(c *C) {
	cache := newDictCache()

	for _, v := range []byte{3, 9, 3, 120, 9, 77, 3, 0, 0, 255} {
		cache.update(13, v)

		seen := make(map[byte]bool)
		for slot := 0; slot < 8; slot++ {
			seen[cache.lookup(13, slot)] = true
		}
		c.Assert(seen, HasLen, 8)
	}
}
