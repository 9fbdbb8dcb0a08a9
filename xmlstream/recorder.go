package xmlstream

import (
	"bufio"
	"io"

	"github.com/cockroachdb/errors"
	"golang.org/x/net/html/charset"
)

// recorder feeds the xml decoder one byte at a time and keeps the raw
// bytes of the token being decoded. encoding/xml reports CDATA sections as
// plain character data; the raw bytes are the only place the difference
// is still visible.
//
// Bytes are addressed by their absolute input offset, the same unit the
// decoder reports through InputOffset.
type recorder struct {
	src  *bufio.Reader
	base int64 // input offset of buf[0]
	buf  []byte
}

func newRecorder(r io.Reader) *recorder {
	return &recorder{src: bufio.NewReader(r)}
}

// ReadByte implements io.ByteReader. encoding/xml uses it directly
// instead of wrapping the reader in its own buffer.
func (r *recorder) ReadByte() (byte, error) {
	b, err := r.src.ReadByte()
	if err != nil {
		return 0, err
	}
	r.buf = append(r.buf, b)
	return b, nil
}

func (r *recorder) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	b, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	p[0] = b
	return 1, nil
}

// span returns the raw bytes between two input offsets.
func (r *recorder) span(start, end int64) []byte {
	lo, hi := start-r.base, end-r.base
	if lo < 0 || hi > int64(len(r.buf)) || lo > hi {
		return nil
	}
	return r.buf[lo:hi]
}

// discard forgets every byte before offset. Bytes already read ahead of
// it by the decoder are kept.
func (r *recorder) discard(offset int64) {
	n := offset - r.base
	if n <= 0 {
		return
	}
	if n > int64(len(r.buf)) {
		n = int64(len(r.buf))
	}
	r.buf = append(r.buf[:0], r.buf[n:]...)
	r.base += n
}

// charsetReader is installed as the decoder's CharsetReader. It routes the
// remaining raw input through a decoder for label and keeps itself as the
// byte source so offsets stay aligned.
func (r *recorder) charsetReader(label string, _ io.Reader) (io.Reader, error) {
	conv, err := charset.NewReaderLabel(label, r.src)
	if err != nil {
		return nil, errors.Wrapf(err, "xmlstream: unsupported encoding %q", label)
	}
	r.src = bufio.NewReader(conv)
	return r, nil
}
