package screens

import (
    "errors"
    "math"
    "testing"
)

func TestParseSize(t *testing.T) {
    d, err := ParseSize("1920x1080")
    if err != nil {
        t.Fatalf("ParseSize: %v", err)
    }
    if d.Width != 1920 || d.Height != 1080 {
        t.Fatalf("got %+v", d)
    }
    if _, err := ParseSize(" 1125 X 2436 "); err != nil {
        t.Fatalf("spaces and upper-case separator: %v", err)
    }
    if _, err := ParseSize("none"); !errors.Is(err, ErrNoneSelected) {
        t.Fatalf("none: got %v", err)
    }
    for _, bad := range []string{"1920", "ax1080", "0x10", "10x-1"} {
        if _, err := ParseSize(bad); !errors.Is(err, ErrInvalidSize) {
            t.Errorf("ParseSize(%q) = %v, want ErrInvalidSize", bad, err)
        }
    }
}

func TestMeasure(t *testing.T) {
    got, err := Measure("1920x1080", "1125x2436")
    if err != nil {
        t.Fatalf("Measure: %v", err)
    }
    want := math.Sqrt(1920*1920+1080*1080) / 96
    if math.Abs(got-want) > 1e-9 {
        t.Fatalf("laptop diagonal = %v, want %v", got, want)
    }

    got, err = Measure("none", "1125x2436")
    if err != nil {
        t.Fatalf("Measure mobile: %v", err)
    }
    want = math.Sqrt(1125*1125+2436*2436) / 96
    if math.Abs(got-want) > 1e-9 {
        t.Fatalf("mobile diagonal = %v, want %v", got, want)
    }

    if _, err := Measure("none", "none"); !errors.Is(err, ErrNoneSelected) {
        t.Fatalf("both none: got %v", err)
    }
}

func TestPresetDiagonalMatchesMeasure(t *testing.T) {
    for _, p := range Builtin() {
        var got float64
        var err error
        if p.Class == ClassLaptop {
            got, err = Measure(p.Value(), None)
        } else {
            got, err = Measure(None, p.Value())
        }
        if err != nil {
            t.Fatalf("Measure(%s): %v", p.Value(), err)
        }
        if d := p.DiagonalInches(); math.Abs(d-got) > 1e-9 {
            t.Errorf("%s: preset diagonal %v, Measure %v", p.Name, d, got)
        }
    }
}
