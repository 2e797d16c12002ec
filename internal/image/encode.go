package imagepkg

import (
    "bytes"
    "encoding/base64"
    "encoding/hex"
    "fmt"
    "image"
    "image/png"

    "github.com/disintegration/imaging"
    "golang.org/x/crypto/blake2b"
)

// PNGMimeType is the only output encoding; PNG is lossless so there is no quality knob.
const PNGMimeType = "image/png"

// CompositeResult is a freshly allocated composite owned by the caller.
type CompositeResult struct {
    Width  int
    Height int
    Image  *image.NRGBA
    PNG    []byte
    Layout Layout
}

// EncodePNG encodes img losslessly.
func EncodePNG(img image.Image) ([]byte, error) {
    buf := new(bytes.Buffer)
    if err := imaging.Encode(buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.DefaultCompression)); err != nil {
        return nil, fmt.Errorf("encode png: %w", err)
    }
    return buf.Bytes(), nil
}

// DataURI returns the composite as a base64 PNG data URI for display.
func (r *CompositeResult) DataURI() string {
    return "data:" + PNGMimeType + ";base64," + base64.StdEncoding.EncodeToString(r.PNG)
}

// ClipboardPayload returns the (mime type, bytes) pair a clipboard writer needs.
func (r *CompositeResult) ClipboardPayload() (string, []byte) {
    return PNGMimeType, r.PNG
}

// Digest is the hex BLAKE2b-256 of the encoded PNG.
func (r *CompositeResult) Digest() string {
    sum := blake2b.Sum256(r.PNG)
    return hex.EncodeToString(sum[:])
}
