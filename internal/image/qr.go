package imagepkg

import (
    "errors"
    "fmt"
    "image"

    "github.com/makiuchi-d/gozxing"
    "github.com/makiuchi-d/gozxing/qrcode"

    "github.com/shashanksharma45/image-merge/internal/upi"
)

var _ upi.Decoder = QRDecoder{}

// QRDecoder reads QR codes out of screenshots.
type QRDecoder struct {
    // TryHarder spends more time looking for a code, which helps when the code is a
    // small part of a large screenshot.
    TryHarder bool
}

// Decode returns the raw text of the first QR code in img, or ErrNoQRCode.
func (d QRDecoder) Decode(img image.Image) (string, error) {
    bmp, err := gozxing.NewBinaryBitmapFromImage(img)
    if err != nil {
        return "", fmt.Errorf("creating bitmap: %w", err)
    }

    var hints map[gozxing.DecodeHintType]interface{}
    if d.TryHarder {
        hints = map[gozxing.DecodeHintType]interface{}{
            gozxing.DecodeHintType_TRY_HARDER: true,
        }
    }
    result, err := qrcode.NewQRCodeReader().Decode(bmp, hints)
    if err != nil {
        var re gozxing.ReaderException
        if errors.As(err, &re) {
            return "", fmt.Errorf("%w: %v", ErrNoQRCode, err)
        }
        return "", err
    }
    return result.GetText(), nil
}
