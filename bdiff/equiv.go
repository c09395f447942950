package bdiff

// equivEntry is one hash-table slot: firstPos heads the chain of B-side
// lines hashing into this slot (noLine if empty), count tracks how
// popular the slot is so the match finder can refuse to chase lines that
// are too common to be useful anchors.
type equivEntry struct {
	firstPos lineRef
	count    int32
}

// equateLines builds the equivalence classes: every B line gets a slot
// (chaining on collision), and every A line is pointed at the same slot
// so A/B lines compare equal in O(1) via eqClass. A-side chains are
// capped by popularity so the match finder never chases a line that
// appears more than the threshold number of times in B.
func equateLines(a []line, aBuf []byte, b []line, bBuf []byte) {
	bn := len(b)

	buckets := 1
	for buckets < bn+1 {
		buckets *= 2
	}

	var table []equivEntry
	for _, scale := range []int{4, 2, 1} {
		size := scale * buckets
		if size < 1 {
			continue
		}
		table = make([]equivEntry, size)
		break
	}

	mask := int32(len(table) - 1)
	for i := range table {
		table[i].firstPos = noLine
	}

	for i := 0; i < bn; i++ {
		slot := int32(b[i].hash) & mask
		for table[slot].firstPos.valid() && !equalBytes(b[i], bBuf, b[table[slot].firstPos], bBuf) {
			slot = (slot + 1) & mask
		}
		b[i].chainNext = table[slot].firstPos
		b[i].eqClass = slot
		table[slot].firstPos = lineRef(i)
		table[slot].count++
	}

	// popularity threshold: permissive for small inputs, strict for large
	// ones, so a handful of blank lines in a small diff doesn't get
	// treated as "too popular to chase".
	var threshold int32
	if bn >= 31000 {
		threshold = int32(bn / 1000)
	} else {
		threshold = int32(1000000 / (bn + 1))
	}

	an := len(a)
	for i := 0; i < an; i++ {
		slot := int32(a[i].hash) & mask
		for table[slot].firstPos.valid() && !equalBytes(a[i], aBuf, b[table[slot].firstPos], bBuf) {
			slot = (slot + 1) & mask
		}
		a[i].eqClass = slot
		if table[slot].count <= threshold {
			a[i].chainNext = table[slot].firstPos
		} else {
			a[i].chainNext = noLine
		}
	}
}
