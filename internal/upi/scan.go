package upi

import (
    "errors"
    "fmt"
    "image"
)

var (
    // ErrNotFound is returned by a Decoder when the image holds no readable code.
    ErrNotFound = errors.New("no QR code found")
    // ErrDecodeUnavailable wraps a decoder that failed for any other reason.
    ErrDecodeUnavailable = errors.New("qr decoder unavailable")
)

// Decoder is the external QR capability. It returns the raw decoded text, or an
// error that matches ErrNotFound via errors.Is when no code is present.
type Decoder interface {
    Decode(img image.Image) (string, error)
}

// Scan decodes img with dec and interprets the result. The returned
// Classification is always usable: decoder faults degrade to NotFound and are
// reported through err, which then wraps ErrDecodeUnavailable.
func Scan(dec Decoder, img image.Image) (c Classification, err error) {
    if dec == nil || img == nil {
        return NotFound(), nil
    }
    defer func() {
        if r := recover(); r != nil {
            c = NotFound()
            err = fmt.Errorf("%w: %v", ErrDecodeUnavailable, r)
        }
    }()

    text, derr := dec.Decode(img)
    if derr != nil {
        if errors.Is(derr, ErrNotFound) {
            return NotFound(), nil
        }
        return NotFound(), fmt.Errorf("%w: %v", ErrDecodeUnavailable, derr)
    }
    return Interpret(text, true), nil
}
