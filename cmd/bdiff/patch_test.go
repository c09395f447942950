package main

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

func TestSplitDeltaRecordsEmpty(t *testing.T) {
	records, err := splitDeltaRecords(nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSplitDeltaRecordsSingle(t *testing.T) {
	bin := record(2, 4, "B\n")
	records, err := splitDeltaRecords(bin)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, bin, records[0])
}

func TestSplitDeltaRecordsConcatenated(t *testing.T) {
	r1 := record(0, 1, "a")
	r2 := record(5, 5, "")
	r3 := record(8, 20, "hello world")
	bin := append(append(append([]byte{}, r1...), r2...), r3...)

	records, err := splitDeltaRecords(bin)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, r1, records[0])
	assert.Equal(t, r2, records[1])
	assert.Equal(t, r3, records[2])
}

func TestSplitDeltaRecordsTruncatedHeader(t *testing.T) {
	_, err := splitDeltaRecords([]byte{0, 0, 0})
	assert.Error(t, err)
}

func TestSplitDeltaRecordsTruncatedData(t *testing.T) {
	bin := record(0, 0, "hello")
	bin = bin[:len(bin)-2]
	_, err := splitDeltaRecords(bin)
	assert.Error(t, err)
}
