package screens

import (
    "errors"
    "fmt"
    "math"
    "strconv"
    "strings"

    imagepkg "github.com/shashanksharma45/image-merge/internal/image"
)

// CSSPixelsPerInch is the reference density used to turn a pixel diagonal into inches.
const CSSPixelsPerInch = 96.0

// None is the dropdown value meaning "no screen selected".
const None = "none"

var (
    ErrNoneSelected = errors.New("no screen size selected")
    ErrInvalidSize  = errors.New("invalid screen size")
)

func FormatSize(w, h int) string {
    return strconv.Itoa(w) + "x" + strconv.Itoa(h)
}

// ParseSize parses a "WIDTHxHEIGHT" value.
func ParseSize(s string) (imagepkg.Dimensions, error) {
    s = strings.TrimSpace(strings.ToLower(s))
    if s == None || s == "" {
        return imagepkg.Dimensions{}, ErrNoneSelected
    }
    ws, hs, ok := strings.Cut(s, "x")
    if !ok {
        return imagepkg.Dimensions{}, fmt.Errorf("%w: %q", ErrInvalidSize, s)
    }
    w, err := strconv.Atoi(strings.TrimSpace(ws))
    if err != nil {
        return imagepkg.Dimensions{}, fmt.Errorf("%w: %q", ErrInvalidSize, s)
    }
    h, err := strconv.Atoi(strings.TrimSpace(hs))
    if err != nil {
        return imagepkg.Dimensions{}, fmt.Errorf("%w: %q", ErrInvalidSize, s)
    }
    d := imagepkg.Dimensions{Width: float64(w), Height: float64(h)}
    if !d.Valid() {
        return imagepkg.Dimensions{}, fmt.Errorf("%w: %q", ErrInvalidSize, s)
    }
    return d, nil
}

// DiagonalInches is the screen diagonal at CSSPixelsPerInch.
func DiagonalInches(d imagepkg.Dimensions) float64 {
    return math.Hypot(d.Width, d.Height) / CSSPixelsPerInch
}

// Measure returns the diagonal of the laptop size, or of the mobile size when the
// laptop is "none".
func Measure(laptop, mobile string) (float64, error) {
    d, err := ParseSize(laptop)
    if errors.Is(err, ErrNoneSelected) {
        d, err = ParseSize(mobile)
    }
    if err != nil {
        return 0, err
    }
    return DiagonalInches(d), nil
}
