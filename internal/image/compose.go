package imagepkg

import (
    "fmt"
    "image"
    "image/color"
    "math"

    "github.com/disintegration/imaging"
)

// DefaultFallbackSecondary is the nominal mobile screen size used when no
// secondary size is declared (iPhone X class, 1125x2436).
var DefaultFallbackSecondary = Dimensions{Width: 1125, Height: 2436}

// CropSpec removes a band from the top of the secondary image, typically the
// mobile status bar.
type CropSpec struct {
    TopFractionRemoved float64 `json:"top_fraction_removed"`
}

func (c *CropSpec) validate() error {
    if c == nil {
        return nil
    }
    f := c.TopFractionRemoved
    if math.IsNaN(f) || f < 0 || f >= 1 {
        return fmt.Errorf("%w: got %v", ErrInvalidCrop, f)
    }
    return nil
}

// Layout is the geometry of a composite, computed before any pixel is touched.
type Layout struct {
    PrimaryWidth        int  `json:"primary_width"`
    PrimaryHeight       int  `json:"primary_height"`
    HasSecondary        bool `json:"has_secondary"`
    SecondaryWidth      int  `json:"secondary_width,omitempty"`
    SecondaryHeight     int  `json:"secondary_height,omitempty"`
    TopCropPx           int  `json:"top_crop_px"`
    SecondaryCropHeight int  `json:"secondary_crop_height"`
    FinalHeight         int  `json:"final_height"`
    PrimaryDestWidth    int  `json:"primary_dest_width"`
    SecondaryDestWidth  int  `json:"secondary_dest_width"`
    Width               int  `json:"width"`
    // NominalSecondary is the declared device size for the mobile slot. It is
    // informational only; sizing always uses actual pixel dimensions.
    NominalSecondary Dimensions `json:"nominal_secondary"`
}

// Plan computes the composite layout for a primary of size primary and an
// optional secondary of size *secondary.
func Plan(primary image.Point, secondary *image.Point, crop *CropSpec) (Layout, error) {
    if err := crop.validate(); err != nil {
        return Layout{}, err
    }
    lW, lH := primary.X, primary.Y
    if lW <= 0 || lH <= 0 {
        return Layout{}, fmt.Errorf("%w: primary is %dx%d", ErrDegenerateImage, lW, lH)
    }
    l := Layout{PrimaryWidth: lW, PrimaryHeight: lH, FinalHeight: lH}

    if secondary != nil {
        mW, mH := secondary.X, secondary.Y
        l.HasSecondary = true
        l.SecondaryWidth, l.SecondaryHeight = mW, mH
        if crop != nil {
            l.TopCropPx = int(math.Round(float64(mH) * crop.TopFractionRemoved))
        }
        if l.TopCropPx < 0 {
            l.TopCropPx = 0
        }
        l.SecondaryCropHeight = mH - l.TopCropPx
        if l.SecondaryCropHeight < 0 {
            l.SecondaryCropHeight = 0
        }
        if mW <= 0 || l.SecondaryCropHeight == 0 {
            return Layout{}, fmt.Errorf("%w: secondary is %dx%d after cropping", ErrDegenerateImage, mW, l.SecondaryCropHeight)
        }
        if l.SecondaryCropHeight > l.FinalHeight {
            l.FinalHeight = l.SecondaryCropHeight
        }
    }

    lScale := float64(l.FinalHeight) / float64(lH)
    l.PrimaryDestWidth = int(math.Round(float64(lW) * lScale))
    if l.HasSecondary {
        mScale := float64(l.FinalHeight) / float64(l.SecondaryCropHeight)
        l.SecondaryDestWidth = int(math.Round(float64(l.SecondaryWidth) * mScale))
    }
    l.Width = l.PrimaryDestWidth + l.SecondaryDestWidth
    return l, nil
}

// Compositor places a primary screenshot and an optional secondary screenshot side
// by side at a common height.
type Compositor struct {
    Filter imaging.ResampleFilter
    // RequireSecondary rejects a combine without a secondary image.
    RequireSecondary  bool
    FallbackSecondary Dimensions
}

// NewCompositor returns a Compositor using Lanczos resampling.
func NewCompositor() *Compositor {
    return &Compositor{
        Filter:            imaging.Lanczos,
        FallbackSecondary: DefaultFallbackSecondary,
    }
}

// Combine composites primary and secondary with a default Compositor. fallback is
// the declared nominal size of the secondary screen; the zero value selects
// DefaultFallbackSecondary.
func Combine(primary, secondary image.Image, crop *CropSpec, fallback Dimensions) (*CompositeResult, error) {
    c := NewCompositor()
    if fallback != (Dimensions{}) {
        c.FallbackSecondary = fallback
    }
    return c.Combine(primary, secondary, crop)
}

// Combine produces a new raster with primary on the left and the cropped
// secondary on its right. Inputs are never modified.
func (c *Compositor) Combine(primary, secondary image.Image, crop *CropSpec) (*CompositeResult, error) {
    if primary == nil {
        return nil, ErrMissingPrimaryImage
    }
    if secondary == nil && c.RequireSecondary {
        return nil, ErrMissingSecondaryImage
    }
    nominal := c.FallbackSecondary
    if nominal == (Dimensions{}) {
        nominal = DefaultFallbackSecondary
    }
    if !nominal.Valid() {
        return nil, fmt.Errorf("%w: fallback secondary %vx%v", ErrInvalidDimensions, nominal.Width, nominal.Height)
    }

    pb := primary.Bounds()
    var sizeOfSecondary *image.Point
    if secondary != nil {
        s := secondary.Bounds().Size()
        sizeOfSecondary = &s
    }
    layout, err := Plan(pb.Size(), sizeOfSecondary, crop)
    if err != nil {
        return nil, err
    }
    layout.NominalSecondary = nominal

    canvas := imaging.New(layout.Width, layout.FinalHeight, color.NRGBA{})
    left := imaging.Resize(primary, layout.PrimaryDestWidth, layout.FinalHeight, c.Filter)
    canvas = imaging.Paste(canvas, left, image.Pt(0, 0))

    if secondary != nil {
        sb := secondary.Bounds()
        src := image.Rect(sb.Min.X, sb.Min.Y+layout.TopCropPx, sb.Max.X, sb.Max.Y)
        right := imaging.Resize(imaging.Crop(secondary, src), layout.SecondaryDestWidth, layout.FinalHeight, c.Filter)
        canvas = imaging.Paste(canvas, right, image.Pt(layout.PrimaryDestWidth, 0))
    }

    encoded, err := EncodePNG(canvas)
    if err != nil {
        return nil, err
    }
    return &CompositeResult{
        Width:  layout.Width,
        Height: layout.FinalHeight,
        Image:  canvas,
        PNG:    encoded,
        Layout: layout,
    }, nil
}
