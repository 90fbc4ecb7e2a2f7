package payload

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"

	"scriptlink/internal/errors"
	"scriptlink/util"
)

// compressionLevel is fixed so identical input always produces
// identical output bytes.
const compressionLevel = zlib.DefaultCompression

// Encode compresses a present payload with zlib (DEFLATE) and returns
// the complete wire frame. Arbitrary input bytes cannot be malformed,
// so failures here are resource or internal codec errors only.
func Encode(p Payload) ([]byte, error) {
	if !p.Present() {
		return nil, errors.ErrNoPayload
	}
	return compress(bytes.NewReader(p.data), p.Len())
}

// EncodeFrom streams r through the codec without buffering the whole
// input first. Used for large script files.
func EncodeFrom(r io.Reader) ([]byte, error) {
	return compress(r, 0)
}

func compress(r io.Reader, sizeHint int) ([]byte, error) {
	var out bytes.Buffer
	if sizeHint > 0 {
		out.Grow(sizeHint/2 + 64)
	}

	zw, err := zlib.NewWriterLevel(&out, compressionLevel)
	if err != nil {
		return nil, &errors.EncodeError{Stage: "init", Err: err}
	}

	// The wrapper masks any WriteTo method so CopyBuffer stages
	// through the pooled buffer.
	buf := util.GetBuf()
	_, err = io.CopyBuffer(zw, struct{ io.Reader }{r}, *buf)
	util.PutBuf(buf)
	if err != nil {
		zw.Close()
		return nil, &errors.EncodeError{Stage: "compress", Err: err}
	}

	if err := zw.Close(); err != nil {
		return nil, &errors.EncodeError{Stage: "flush", Err: err}
	}
	return out.Bytes(), nil
}
