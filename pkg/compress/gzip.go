package compress

import (
	"bytes"
	"io/ioutil"

	"github.com/convox/cloudtrailer/pkg/structs"
	"github.com/klauspost/compress/gzip"
)

var gzipMagic = []byte{0x1f, 0x8b}

// LooksGzipped reports whether data starts with the gzip magic number
func LooksGzipped(data []byte) bool {
	if len(data) < len(gzipMagic) {
		return false
	}

	return bytes.Equal(data[:len(gzipMagic)], gzipMagic)
}

// Decompress inflates a complete gzip stream. A truncated or corrupt stream
// is an error, partial output is never returned.
func Decompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, structs.NewError(structs.DecompressionError, err)
	}
	defer r.Close()

	out, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, structs.NewError(structs.DecompressionError, err)
	}

	return out, nil
}
