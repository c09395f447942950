package mpatch

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(start, end int, data string) []byte {
	var hdr [12]byte
	binary.BigEndian.PutUint32(hdr[0:4], uint32(start))
	binary.BigEndian.PutUint32(hdr[4:8], uint32(end))
	binary.BigEndian.PutUint32(hdr[8:12], uint32(len(data)))
	return append(hdr[:], data...)
}

func TestDecodeEmptyIsIdentity(t *testing.T) {
	frags, err := Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, frags)
}

func TestDecodeSingleRecord(t *testing.T) {
	bin := record(2, 4, "B\n")
	frags, err := Decode(bin)
	require.NoError(t, err)
	require.Len(t, frags, 1)
	assert.Equal(t, 2, frags[0].Start)
	assert.Equal(t, 4, frags[0].End)
	assert.Equal(t, "B\n", string(frags[0].Data))
}

func TestDecodeTruncatedHeader(t *testing.T) {
	_, err := Decode([]byte{0, 0, 0})
	require.Error(t, err)
	var de *DecodeError
	assert.ErrorAs(t, err, &de)
}

func TestDecodeTruncatedData(t *testing.T) {
	bin := record(0, 0, "hello")
	bin = bin[:len(bin)-2]
	_, err := Decode(bin)
	require.Error(t, err)
}

func TestDecodeStartAfterEnd(t *testing.T) {
	bin := record(5, 2, "x")
	_, err := Decode(bin)
	require.Error(t, err)
}

func TestDecodeTrailingBytes(t *testing.T) {
	bin := append(record(0, 0, "a"), 0xff)
	_, err := Decode(bin)
	require.Error(t, err)
}

func TestApplyEmptyFragments(t *testing.T) {
	orig := []byte("unchanged")
	out, err := Apply(orig, nil)
	require.NoError(t, err)
	assert.Equal(t, orig, out)
}

func TestApplyReplacesSpan(t *testing.T) {
	orig := []byte("a\nb\nc\n")
	frags := []Fragment{{Start: 2, End: 4, Length: 2, Data: []byte("B\n")}}
	out, err := Apply(orig, frags)
	require.NoError(t, err)
	assert.Equal(t, []byte("a\nB\nc\n"), out)
}

func TestApplyRejectsOutOfRange(t *testing.T) {
	orig := []byte("short")
	frags := []Fragment{{Start: 0, End: 100, Length: 0}}
	_, err := Apply(orig, frags)
	require.Error(t, err)
	var ipe *InvalidPatchError
	assert.ErrorAs(t, err, &ipe)
}

func TestApplyRejectsNonMonotone(t *testing.T) {
	orig := []byte("abcdef")
	frags := []Fragment{
		{Start: 3, End: 4, Length: 1, Data: []byte("X")},
		{Start: 1, End: 2, Length: 1, Data: []byte("Y")},
	}
	_, err := Apply(orig, frags)
	require.Error(t, err)
}

func TestCalcSizeMatchesApply(t *testing.T) {
	orig := []byte("one two three four")
	frags := []Fragment{
		{Start: 4, End: 7, Length: 5, Data: []byte("2222ZZZZ"[:5])},
	}
	size, err := CalcSize(len(orig), frags)
	require.NoError(t, err)
	out, err := Apply(orig, frags)
	require.NoError(t, err)
	assert.Len(t, out, size)
}

func TestCombineEquivalentToSequentialApply(t *testing.T) {
	orig := []byte("a\nb\n")
	mid := []byte("a\nc\n")
	final := []byte("a\nd\n")

	deltaAB := []Fragment{{Start: 2, End: 4, Length: 2, Data: []byte("c\n")}}
	deltaBC := []Fragment{{Start: 2, End: 4, Length: 2, Data: []byte("d\n")}}

	step1, err := Apply(orig, deltaAB)
	require.NoError(t, err)
	assert.Equal(t, mid, step1)
	step2, err := Apply(step1, deltaBC)
	require.NoError(t, err)
	assert.Equal(t, final, step2)

	composed := Combine(deltaAB, deltaBC)
	out, err := Apply(orig, composed)
	require.NoError(t, err)
	assert.Equal(t, final, out)
}

func TestCombineWithDisjointEdits(t *testing.T) {
	orig := []byte("abcdefgh")
	deltaAB := []Fragment{{Start: 0, End: 1, Length: 1, Data: []byte("X")}}
	deltaBC := []Fragment{{Start: 5, End: 6, Length: 1, Data: []byte("Y")}}

	step1, err := Apply(orig, deltaAB)
	require.NoError(t, err)
	step2, err := Apply(step1, deltaBC)
	require.NoError(t, err)

	composed := Combine(deltaAB, deltaBC)
	out, err := Apply(orig, composed)
	require.NoError(t, err)
	assert.Equal(t, step2, out)
}

func TestCombineWithOverlappingReplacement(t *testing.T) {
	orig := []byte("0123456789")
	deltaAB := []Fragment{{Start: 2, End: 8, Length: 3, Data: []byte("xyz")}}
	// B is now "01" + "xyz" + "89" = "01xyz89" (len 7)
	deltaBC := []Fragment{{Start: 1, End: 6, Length: 2, Data: []byte("QQ")}}
	// replaces B[1:6] = "1xyz8" with "QQ" -> "0" + "QQ" + "9" = "0QQ9"

	step1, err := Apply(orig, deltaAB)
	require.NoError(t, err)
	require.Equal(t, []byte("01xyz89"), step1)
	step2, err := Apply(step1, deltaBC)
	require.NoError(t, err)
	require.Equal(t, []byte("0QQ9"), step2)

	composed := Combine(deltaAB, deltaBC)
	out, err := Apply(orig, composed)
	require.NoError(t, err)
	assert.Equal(t, step2, out)
}

func TestPatchesEmptyDeltaListReturnsCopy(t *testing.T) {
	orig := []byte("unchanged\n")
	out, err := Patches(orig, nil)
	require.NoError(t, err)
	assert.Equal(t, orig, out)
}

func TestPatchesMatchesSequentialFold(t *testing.T) {
	orig := []byte("a\nb\n")
	d1 := record(2, 4, "c\n")
	d2 := record(2, 4, "d\n")

	out, err := Patches(orig, [][]byte{d1, d2})
	require.NoError(t, err)
	assert.Equal(t, []byte("a\nd\n"), out)
}

func TestPatchesManyDeltasUsesTreeFold(t *testing.T) {
	orig := []byte("0000000000")
	deltas := make([][]byte, 0, 10)
	for i := 0; i < 10; i++ {
		deltas = append(deltas, record(i, i+1, "1"))
	}

	out, err := Patches(orig, deltas)
	require.NoError(t, err)
	assert.Equal(t, []byte("1111111111"), out)
}

func TestPatchedSizeMatchesActualOutput(t *testing.T) {
	orig := []byte("a\nb\nc\n")
	delta := record(2, 4, "B\n")

	size, err := PatchedSize(len(orig), delta)
	require.NoError(t, err)

	out, err := Patches(orig, [][]byte{delta})
	require.NoError(t, err)
	assert.Len(t, out, size)
}

func TestPatchedSizeDecodeError(t *testing.T) {
	_, err := PatchedSize(10, []byte{0, 0})
	require.Error(t, err)
}
