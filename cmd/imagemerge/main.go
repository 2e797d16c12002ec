package main

import (
    "errors"
    "flag"
    "fmt"
    "image"
    "io"
    "os"
    "strings"

    imagepkg "github.com/shashanksharma45/image-merge/internal/image"
    "github.com/shashanksharma45/image-merge/internal/screens"
    "github.com/shashanksharma45/image-merge/internal/upi"
    "github.com/shashanksharma45/image-merge/internal/util"
)

func main() {
    os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
    if len(args) == 0 {
        printUsage(errOut)
        return 2
    }

    switch args[0] {
    case "combine":
        return cmdCombine(args[1:], out, errOut)
    case "scan":
        return cmdScan(args[1:], out, errOut)
    case "fit":
        return cmdFit(args[1:], out, errOut)
    case "measure":
        return cmdMeasure(args[1:], out, errOut)
    case "presets":
        return cmdPresets(args[1:], out, errOut)
    case "help", "-h", "--help":
        printUsage(out)
        return 0
    default:
        fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
        printUsage(errOut)
        return 2
    }
}

func printUsage(w io.Writer) {
    fmt.Fprintln(w, `usage: imagemerge <command> [flags]

commands:
  combine   place a laptop and a mobile screenshot side by side
  scan      read a UPI payment QR code from a screenshot
  fit       print the preview size of an image inside a box
  measure   print the diagonal of a screen size in inches
  presets   list screen-size presets`)
}

func cmdCombine(args []string, out io.Writer, errOut io.Writer) int {
    fs := flag.NewFlagSet("combine", flag.ContinueOnError)
    fs.SetOutput(errOut)
    primaryPath := fs.String("primary", "", "laptop screenshot (required)")
    secondaryPath := fs.String("secondary", "", "mobile screenshot")
    crop := fs.Float64("crop", 0, "fraction of the mobile screenshot to remove from the top")
    requireSecondary := fs.Bool("require-secondary", false, "fail when no mobile screenshot is given")
    outPath := fs.String("out", "combined.png", "output PNG path")
    dataURI := fs.Bool("data-uri", false, "print a base64 data URI instead of writing a file")
    if err := fs.Parse(args); err != nil {
        return 2
    }
    if *primaryPath == "" {
        fmt.Fprintln(errOut, "error:", imagepkg.ErrMissingPrimaryImage)
        return 2
    }

    primary, err := imagepkg.OpenImage(*primaryPath)
    if err != nil {
        fmt.Fprintln(errOut, "error:", err)
        return 1
    }
    var secondary image.Image
    if *secondaryPath != "" {
        if secondary, err = imagepkg.OpenImage(*secondaryPath); err != nil {
            fmt.Fprintln(errOut, "error:", err)
            return 1
        }
    }

    comp := imagepkg.NewCompositor()
    comp.RequireSecondary = *requireSecondary
    res, err := comp.Combine(primary, secondary, &imagepkg.CropSpec{TopFractionRemoved: *crop})
    if err != nil {
        fmt.Fprintln(errOut, "error:", err)
        return 1
    }

    if *dataURI {
        fmt.Fprintln(out, res.DataURI())
        return 0
    }
    if err := util.EnsureParentDir(*outPath); err != nil {
        fmt.Fprintln(errOut, "error:", err)
        return 1
    }
    if err := os.WriteFile(*outPath, res.PNG, 0o644); err != nil {
        fmt.Fprintln(errOut, "error:", err)
        return 1
    }
    fmt.Fprintf(out, "wrote %s (%dx%d, %s)\n", *outPath, res.Width, res.Height, res.Digest())
    return 0
}

func cmdScan(args []string, out io.Writer, errOut io.Writer) int {
    fs := flag.NewFlagSet("scan", flag.ContinueOnError)
    fs.SetOutput(errOut)
    path := fs.String("image", "", "laptop screenshot to scan (required)")
    if err := fs.Parse(args); err != nil {
        return 2
    }
    if *path == "" {
        fmt.Fprintln(errOut, "error: -image is required")
        return 2
    }
    img, err := imagepkg.OpenImage(*path)
    if err != nil {
        fmt.Fprintln(errOut, "error:", err)
        return 1
    }
    c, err := upi.Scan(imagepkg.QRDecoder{TryHarder: true}, img)
    if err != nil {
        fmt.Fprintln(errOut, "warning:", err)
    }
    fmt.Fprintln(out, c.Message())
    if c.Kind == upi.KindNotFound {
        return 3
    }
    return 0
}

func cmdFit(args []string, out io.Writer, errOut io.Writer) int {
    fs := flag.NewFlagSet("fit", flag.ContinueOnError)
    fs.SetOutput(errOut)
    path := fs.String("image", "", "image to fit (required)")
    boxFlag := fs.String("box", "480x320", "box to fit into, WIDTHxHEIGHT")
    if err := fs.Parse(args); err != nil {
        return 2
    }
    box, err := screens.ParseSize(*boxFlag)
    if err != nil || *path == "" {
        fmt.Fprintln(errOut, "error: need -image and a valid -box")
        return 2
    }
    img, err := imagepkg.OpenImage(*path)
    if err != nil {
        fmt.Fprintln(errOut, "error:", err)
        return 1
    }
    d := imagepkg.Fit(img, box)
    fmt.Fprintf(out, "%.2fx%.2f\n", d.Width, d.Height)
    return 0
}

func cmdMeasure(args []string, out io.Writer, errOut io.Writer) int {
    fs := flag.NewFlagSet("measure", flag.ContinueOnError)
    fs.SetOutput(errOut)
    laptop := fs.String("laptop", screens.None, "laptop screen size, WIDTHxHEIGHT or none")
    mobile := fs.String("mobile", screens.None, "mobile screen size, WIDTHxHEIGHT or none")
    if err := fs.Parse(args); err != nil {
        return 2
    }
    inches, err := screens.Measure(*laptop, *mobile)
    if err != nil {
        fmt.Fprintln(errOut, "error:", err)
        if errors.Is(err, screens.ErrNoneSelected) || errors.Is(err, screens.ErrInvalidSize) {
            return 2
        }
        return 1
    }
    fmt.Fprintf(out, "Your screen size: %.2f \" inches\n", inches)
    return 0
}

func cmdPresets(args []string, out io.Writer, errOut io.Writer) int {
    fs := flag.NewFlagSet("presets", flag.ContinueOnError)
    fs.SetOutput(errOut)
    class := fs.String("class", "", "only list this class (laptop or mobile)")
    dataDir := fs.String("data", "", "directory holding screens.csv")
    if err := fs.Parse(args); err != nil {
        return 2
    }
    presets := screens.Builtin()
    if *dataDir != "" {
        loaded, err := screens.LoadPresetsFromDataDir(*dataDir)
        if err != nil {
            fmt.Fprintln(errOut, "error:", err)
            return 1
        }
        presets = loaded
    }
    var opt screens.FilterOptions
    if *class != "" {
        opt.Classes = strings.Split(*class, ",")
    }
    for _, p := range screens.Filter(presets, opt) {
        fmt.Fprintf(out, "%-7s %-11s %6.2f\" %s\n", p.Class, p.Value(), p.DiagonalInches(), p.Name)
    }
    return 0
}
