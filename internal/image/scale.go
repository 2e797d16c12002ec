package imagepkg

import (
    "image"
    "math"
)

// Dimensions is a width/height pair used for display boxes and declared screen sizes.
type Dimensions struct {
    Width  float64 `json:"width"`
    Height float64 `json:"height"`
}

// Valid reports whether both sides are positive.
func (d Dimensions) Valid() bool {
    return d.Width > 0 && d.Height > 0
}

// Round returns the dimensions rounded to whole pixels.
func (d Dimensions) Round() image.Point {
    return image.Pt(int(math.Round(d.Width)), int(math.Round(d.Height)))
}

// Fit returns the size img should be drawn at to fit inside box while keeping its
// aspect ratio. Landscape images take the box width, everything else the box height.
func Fit(img image.Image, box Dimensions) Dimensions {
    if img == nil {
        return Dimensions{}
    }
    b := img.Bounds()
    return FitSize(b.Dx(), b.Dy(), box)
}

// FitSize is Fit for a raw width and height.
func FitSize(w, h int, box Dimensions) Dimensions {
    if w <= 0 || h <= 0 {
        return Dimensions{}
    }
    aspect := float64(w) / float64(h)
    if aspect > 1 {
        return Dimensions{Width: box.Width, Height: box.Width / aspect}
    }
    return Dimensions{Width: box.Height * aspect, Height: box.Height}
}
