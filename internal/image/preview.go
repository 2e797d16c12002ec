package imagepkg

import (
    "image"

    "golang.org/x/image/draw"
)

// RenderPreview draws img scaled to its Fit size inside box. A degenerate image
// or box yields nil.
func RenderPreview(img image.Image, box Dimensions) *image.NRGBA {
    size := Fit(img, box).Round()
    if size.X <= 0 || size.Y <= 0 {
        return nil
    }
    dst := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
    draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
    return dst
}
