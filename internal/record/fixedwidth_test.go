package record

import (
	"bufio"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFixedSchema() *FixedWidthSchema {
	return &FixedWidthSchema{
		RecordBytes: 12,
		Fields: []FixedField{
			{Name: "code", Offset: 0, Length: 4, Kind: FWString},
			{Name: "amount", Offset: 4, Length: 8, Kind: FWInt},
		},
	}
}

func TestFixedWidthCodecRoundTrip(t *testing.T) {
	schema := testFixedSchema()
	codec := NewFixedWidthCodec(schema)

	var buf bytes.Buffer
	rec := &Record{Fields: [][]byte{[]byte("AB"), []byte("-42")}}
	require.NoError(t, codec.Encode(&buf, rec))

	line := buf.String()
	assert.Equal(t, 13, len(line)) // 12 bytes + trailing LF
	assert.Equal(t, "AB  ", line[0:4])
	assert.Equal(t, "-0000042", line[4:12])

	decoded, err := codec.Decode(bufio.NewReader(bytes.NewBufferString(line)))
	require.NoError(t, err)
	assert.Equal(t, "AB", string(decoded.Field(0)))
	assert.Equal(t, "-0000042", string(decoded.Field(1))) // codec round-trips the zero-padded text verbatim

}

func TestFixedWidthCodecRejectsShortLine(t *testing.T) {
	codec := NewFixedWidthCodec(testFixedSchema())
	_, err := codec.Decode(bufio.NewReader(bytes.NewBufferString("short\n")))
	require.Error(t, err)
}

func TestFixedWidthCodecEOF(t *testing.T) {
	codec := NewFixedWidthCodec(testFixedSchema())
	_, err := codec.Decode(bufio.NewReader(bytes.NewBufferString("")))
	require.ErrorIs(t, err, io.EOF)
}

func TestPadLeftZeroPreservesSign(t *testing.T) {
	assert.Equal(t, []byte("-000042"), padLeftZero([]byte("-42"), 7))
	assert.Equal(t, []byte("0000042"), padLeftZero([]byte("42"), 7))
}

func TestPadRightTruncatesOverLength(t *testing.T) {
	assert.Equal(t, []byte("ab"), padRight([]byte("abcdef"), 2))
}

func TestMTLogSchemaTotalsRecordBytes(t *testing.T) {
	s := MTLogSchema()
	last := s.Fields[len(s.Fields)-1]
	assert.Equal(t, s.RecordBytes, last.Offset+last.Length)
	assert.Equal(t, 4310, s.RecordBytes)
}
