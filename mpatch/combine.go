package mpatch

// gather moves fragments from the front of src whose post-image end
// falls before cut into dest, adjusting offset (the running difference
// between A-delta's post-image position and its pre-image position) as
// it goes. If the last relevant fragment straddles cut, it's split: the
// left part goes to dest, the right part stays at the front of src.
func gather(dest []Fragment, src []Fragment, cut, offset int) (newDest []Fragment, remaining []Fragment, newOffset int) {
	for len(src) > 0 {
		s := src[0]
		if s.Start+offset >= cut {
			break
		}

		postEnd := offset + s.Start + s.Length
		if postEnd <= cut {
			offset += s.Start + s.Length - s.End
			dest = append(dest, s)
			src = src[1:]
			continue
		}

		c := s.End
		if cut-offset < c {
			c = cut - offset
		}
		l := s.Length
		if cut-offset-s.Start < l {
			l = cut - offset - s.Start
		}
		offset += s.Start + l - c

		dest = append(dest, Fragment{Start: s.Start, End: c, Length: l, Data: s.Data[:l]})
		src[0] = Fragment{Start: c, End: s.End, Length: s.Length - l, Data: s.Data[l:]}
		break
	}
	return dest, src, offset
}

// discard is gather without a destination: it just advances past
// A-fragments whose post-image is wholly consumed by a B-fragment's
// replacement.
func discard(src []Fragment, cut, offset int) (remaining []Fragment, newOffset int) {
	for len(src) > 0 {
		s := src[0]
		if s.Start+offset >= cut {
			break
		}

		postEnd := offset + s.Start + s.Length
		if postEnd <= cut {
			offset += s.Start + s.Length - s.End
			src = src[1:]
			continue
		}

		c := s.End
		if cut-offset < c {
			c = cut - offset
		}
		l := s.Length
		if cut-offset-s.Start < l {
			l = cut - offset - s.Start
		}
		offset += s.Start + l - c

		src[0] = Fragment{Start: c, End: s.End, Length: s.Length - l, Data: s.Data[l:]}
		break
	}
	return src, offset
}

// Combine merges fragment list a (patching X0->X1) with b (patching
// X1->X2) into one fragment list patching X0->X2 directly: each
// b-fragment's post-image coordinates are rewritten to pre-image
// coordinates using the offset accumulated from preceding a-fragments,
// splitting at partial-overlap boundaries as needed.
func Combine(a, b []Fragment) []Fragment {
	out := make([]Fragment, 0, 2*(len(a)+len(b)))
	offset := 0

	for _, bh := range b {
		var post int
		out, a, offset = gather(out, a, bh.Start, offset)
		a, post = discard(a, bh.End, offset)

		out = append(out, Fragment{
			Start:  bh.Start - offset,
			End:    bh.End - post,
			Length: bh.Length,
			Data:   bh.Data,
		})
		offset = post
	}

	out = append(out, a...)
	return out
}
