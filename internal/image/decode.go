package imagepkg

import (
    "fmt"
    "image"
    "io"

    "github.com/disintegration/imaging"
    _ "golang.org/x/image/bmp"
    _ "golang.org/x/image/webp"
)

// DecodeImage decodes a pasted or uploaded image. EXIF orientation is applied so
// phone screenshots come out upright.
func DecodeImage(r io.Reader) (image.Image, error) {
    img, err := imaging.Decode(r, imaging.AutoOrientation(true))
    if err != nil {
        return nil, fmt.Errorf("decode image: %w", err)
    }
    return img, nil
}

// OpenImage loads an image file from disk.
func OpenImage(path string) (image.Image, error) {
    img, err := imaging.Open(path, imaging.AutoOrientation(true))
    if err != nil {
        return nil, fmt.Errorf("open %s: %w", path, err)
    }
    return img, nil
}
