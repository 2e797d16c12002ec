package screens

import imagepkg "github.com/shashanksharma45/image-merge/internal/image"

const (
    ClassLaptop = "laptop"
    ClassMobile = "mobile"
)

type Preset struct {
    Name   string `json:"name"`
    Class  string `json:"class"`
    Width  int    `json:"width"`
    Height int    `json:"height"`
}

// Value is the dropdown value form, e.g. "1920x1080".
func (p Preset) Value() string {
    return FormatSize(p.Width, p.Height)
}

func (p Preset) Dimensions() imagepkg.Dimensions {
    return imagepkg.Dimensions{Width: float64(p.Width), Height: float64(p.Height)}
}

// DiagonalInches is what Measure reports when this preset is selected.
func (p Preset) DiagonalInches() float64 {
    return DiagonalInches(p.Dimensions())
}

// Builtin returns the presets offered when no CSV is available.
func Builtin() []Preset {
    return []Preset{
        {Name: "HD laptop", Class: ClassLaptop, Width: 1366, Height: 768},
        {Name: "Full HD", Class: ClassLaptop, Width: 1920, Height: 1080},
        {Name: "MacBook Air 13", Class: ClassLaptop, Width: 1440, Height: 900},
        {Name: "MacBook Pro 13", Class: ClassLaptop, Width: 2560, Height: 1600},
        {Name: "QHD", Class: ClassLaptop, Width: 2560, Height: 1440},
        {Name: "iPhone X/XS/11 Pro", Class: ClassMobile, Width: 1125, Height: 2436},
        {Name: "iPhone 12/13/14", Class: ClassMobile, Width: 1170, Height: 2532},
        {Name: "iPhone 8", Class: ClassMobile, Width: 750, Height: 1334},
        {Name: "Android FHD+", Class: ClassMobile, Width: 1080, Height: 2400},
        {Name: "Android FHD", Class: ClassMobile, Width: 1080, Height: 1920},
    }
}
