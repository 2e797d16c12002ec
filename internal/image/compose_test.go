package imagepkg

import (
    "bytes"
    "errors"
    "image"
    "image/color"
    "math"
    "testing"

    "github.com/disintegration/imaging"
)

var (
    red   = color.NRGBA{R: 0xff, A: 0xff}
    green = color.NRGBA{G: 0xff, A: 0xff}
    blue  = color.NRGBA{B: 0xff, A: 0xff}
)

// mobileShot is a w x h image whose top bar rows are blue and the rest green.
func mobileShot(w, h, bar int) *image.NRGBA {
    img := imaging.New(w, h, green)
    for y := 0; y < bar; y++ {
        for x := 0; x < w; x++ {
            img.SetNRGBA(x, y, blue)
        }
    }
    return img
}

func near(a, b color.NRGBA) bool {
    d := func(x, y uint8) bool { return math.Abs(float64(x)-float64(y)) <= 2 }
    return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func TestPlanScenario(t *testing.T) {
    second := image.Pt(1080, 2400)
    l, err := Plan(image.Pt(1920, 1080), &second, &CropSpec{TopFractionRemoved: 0.05})
    if err != nil {
        t.Fatalf("Plan: %v", err)
    }
    if l.TopCropPx != 120 || l.SecondaryCropHeight != 2280 {
        t.Fatalf("crop = %d/%d, want 120/2280", l.TopCropPx, l.SecondaryCropHeight)
    }
    if l.FinalHeight != 2280 || l.PrimaryDestWidth != 4053 || l.SecondaryDestWidth != 1080 {
        t.Fatalf("layout = %+v", l)
    }
    if l.Width != 5133 {
        t.Fatalf("width = %d, want 5133", l.Width)
    }
}

func TestPlanWithoutSecondary(t *testing.T) {
    l, err := Plan(image.Pt(1920, 1080), nil, &CropSpec{TopFractionRemoved: 0.5})
    if err != nil {
        t.Fatalf("Plan: %v", err)
    }
    if l.Width != 1920 || l.FinalHeight != 1080 || l.HasSecondary {
        t.Fatalf("layout = %+v", l)
    }
}

func TestPlanOutputHeight(t *testing.T) {
    cases := []struct {
        l, m image.Point
        f    float64
    }{
        {image.Pt(1920, 1080), image.Pt(1080, 2400), 0},
        {image.Pt(1920, 1080), image.Pt(1080, 2400), 0.05},
        {image.Pt(2560, 1600), image.Pt(750, 1334), 0.3},
        {image.Pt(800, 3000), image.Pt(1125, 2436), 0.1},
        {image.Pt(10, 10), image.Pt(3, 7), 0.5},
    }
    for _, tc := range cases {
        m := tc.m
        l, err := Plan(tc.l, &m, &CropSpec{TopFractionRemoved: tc.f})
        if err != nil {
            t.Fatalf("Plan(%v, %v, %v): %v", tc.l, tc.m, tc.f, err)
        }
        cropH := tc.m.Y - int(math.Round(float64(tc.m.Y)*tc.f))
        want := tc.l.Y
        if cropH > want {
            want = cropH
        }
        if l.FinalHeight != want {
            t.Errorf("%v + %v @%v: height %d, want %d", tc.l, tc.m, tc.f, l.FinalHeight, want)
        }
        if l.Width != l.PrimaryDestWidth+l.SecondaryDestWidth || l.Width <= 0 {
            t.Errorf("%v + %v @%v: bad width %+v", tc.l, tc.m, tc.f, l)
        }
    }
}

func TestPlanCropBoundaries(t *testing.T) {
    m := image.Pt(1080, 2400)
    l, err := Plan(image.Pt(100, 100), &m, &CropSpec{TopFractionRemoved: 0})
    if err != nil {
        t.Fatalf("Plan: %v", err)
    }
    if l.TopCropPx != 0 || l.SecondaryCropHeight != 2400 {
        t.Fatalf("zero crop removed pixels: %+v", l)
    }

    _, err = Plan(image.Pt(100, 100), &m, &CropSpec{TopFractionRemoved: 0.9999})
    if !errors.Is(err, ErrDegenerateImage) {
        t.Fatalf("crop near 1: got %v, want ErrDegenerateImage", err)
    }

    for _, f := range []float64{1, 1.5, -0.1, math.NaN()} {
        if _, err := Plan(image.Pt(100, 100), &m, &CropSpec{TopFractionRemoved: f}); !errors.Is(err, ErrInvalidCrop) {
            t.Errorf("crop %v: got %v, want ErrInvalidCrop", f, err)
        }
    }
}

func TestPlanDegenerate(t *testing.T) {
    if _, err := Plan(image.Pt(100, 0), nil, nil); !errors.Is(err, ErrDegenerateImage) {
        t.Errorf("zero primary height: %v", err)
    }
    if _, err := Plan(image.Pt(0, 100), nil, nil); !errors.Is(err, ErrDegenerateImage) {
        t.Errorf("zero primary width: %v", err)
    }
    empty := image.Pt(50, 0)
    if _, err := Plan(image.Pt(100, 100), &empty, nil); !errors.Is(err, ErrDegenerateImage) {
        t.Errorf("zero secondary height: %v", err)
    }
}

func TestCombine(t *testing.T) {
    primary := imaging.New(192, 108, red)
    secondary := mobileShot(108, 240, 12)
    primaryBefore := append([]uint8(nil), primary.Pix...)
    secondaryBefore := append([]uint8(nil), secondary.Pix...)

    res, err := Combine(primary, secondary, &CropSpec{TopFractionRemoved: 0.05}, Dimensions{})
    if err != nil {
        t.Fatalf("Combine: %v", err)
    }
    // 12px bar removed: 228 tall; 192 * 228/108 = 405.33
    if res.Width != 513 || res.Height != 228 {
        t.Fatalf("size = %dx%d, want 513x228", res.Width, res.Height)
    }
    if b := res.Image.Bounds(); b.Dx() != 513 || b.Dy() != 228 {
        t.Fatalf("image bounds = %v", b)
    }
    if got := res.Image.NRGBAAt(200, 114); !near(got, red) {
        t.Errorf("primary pixel = %v, want red", got)
    }
    if got := res.Image.NRGBAAt(405+50, 0); !near(got, green) {
        t.Errorf("top of secondary band = %v, want green (status bar cropped)", got)
    }
    if got := res.Image.NRGBAAt(512, 227); !near(got, green) {
        t.Errorf("bottom-right pixel = %v, want green", got)
    }
    if res.Layout.NominalSecondary != DefaultFallbackSecondary {
        t.Errorf("nominal secondary = %+v", res.Layout.NominalSecondary)
    }

    if !bytes.Equal(primary.Pix, primaryBefore) || !bytes.Equal(secondary.Pix, secondaryBefore) {
        t.Fatalf("inputs were mutated")
    }
}

func TestCombineWithoutSecondary(t *testing.T) {
    primary := imaging.New(64, 48, red)
    res, err := Combine(primary, nil, nil, Dimensions{})
    if err != nil {
        t.Fatalf("Combine: %v", err)
    }
    if res.Width != 64 || res.Height != 48 {
        t.Fatalf("size = %dx%d, want 64x48", res.Width, res.Height)
    }
    if !bytes.Equal(res.Image.Pix, primary.Pix) {
        t.Fatalf("scale 1 composite should equal the primary")
    }
}

func TestCombineSubImageBounds(t *testing.T) {
    // a secondary whose bounds do not start at the origin
    full := mobileShot(40, 120, 30)
    sub := full.SubImage(image.Rect(0, 20, 40, 120))
    res, err := Combine(imaging.New(30, 50, red), sub, &CropSpec{TopFractionRemoved: 0.1}, Dimensions{})
    if err != nil {
        t.Fatalf("Combine: %v", err)
    }
    // sub is 40x100, 10 rows cropped -> 90 tall, rows 30.. of full are green
    if res.Height != 90 || res.Layout.SecondaryDestWidth != 40 {
        t.Fatalf("layout = %+v", res.Layout)
    }
    if got := res.Image.NRGBAAt(res.Layout.PrimaryDestWidth+5, 0); !near(got, green) {
        t.Errorf("first secondary row = %v, want green", got)
    }
}

func TestCombineIsIdempotent(t *testing.T) {
    primary := imaging.New(120, 80, red)
    secondary := mobileShot(60, 160, 10)
    crop := &CropSpec{TopFractionRemoved: 0.0625}

    a, err := Combine(primary, secondary, crop, Dimensions{})
    if err != nil {
        t.Fatalf("Combine: %v", err)
    }
    b, err := Combine(primary, secondary, crop, Dimensions{})
    if err != nil {
        t.Fatalf("Combine: %v", err)
    }
    if a.Width != b.Width || a.Height != b.Height || a.Digest() != b.Digest() {
        t.Fatalf("composites differ: %dx%d %s vs %dx%d %s", a.Width, a.Height, a.Digest(), b.Width, b.Height, b.Digest())
    }
}

func TestCombineErrors(t *testing.T) {
    if _, err := Combine(nil, imaging.New(10, 10, green), nil, Dimensions{}); !errors.Is(err, ErrMissingPrimaryImage) {
        t.Errorf("nil primary: %v", err)
    }

    c := NewCompositor()
    c.RequireSecondary = true
    if _, err := c.Combine(imaging.New(10, 10, red), nil, nil); !errors.Is(err, ErrMissingSecondaryImage) {
        t.Errorf("required secondary: %v", err)
    }

    if _, err := Combine(imaging.New(10, 10, red), nil, nil, Dimensions{Width: -1, Height: 10}); !errors.Is(err, ErrInvalidDimensions) {
        t.Errorf("bad fallback: %v", err)
    }

    if _, err := Combine(&image.NRGBA{}, nil, nil, Dimensions{}); !errors.Is(err, ErrDegenerateImage) {
        t.Errorf("empty primary: %v", err)
    }

    if _, err := Combine(imaging.New(10, 10, red), imaging.New(10, 10, green), &CropSpec{TopFractionRemoved: 0.97}, Dimensions{}); !errors.Is(err, ErrDegenerateImage) {
        t.Errorf("fully cropped secondary: %v", err)
    }
}

func TestCombineNearestFilter(t *testing.T) {
    c := NewCompositor()
    c.Filter = imaging.NearestNeighbor
    res, err := c.Combine(imaging.New(10, 5, red), mobileShot(5, 20, 0), nil)
    if err != nil {
        t.Fatalf("Combine: %v", err)
    }
    // 10x5 scaled to height 20 -> 40 wide
    if res.Width != 45 || res.Height != 20 {
        t.Fatalf("size = %dx%d, want 45x20", res.Width, res.Height)
    }
    if got := res.Image.NRGBAAt(39, 19); got != red {
        t.Errorf("edge of primary = %v", got)
    }
    if got := res.Image.NRGBAAt(40, 0); got != green {
        t.Errorf("start of secondary = %v", got)
    }
}
