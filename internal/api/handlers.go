package api

import (
    "errors"
    "fmt"
    "image"
    "log"
    "mime/multipart"
    "net/http"
    "strconv"
    "strings"

    "github.com/gin-gonic/gin"

    imagepkg "github.com/shashanksharma45/image-merge/internal/image"
    "github.com/shashanksharma45/image-merge/internal/screens"
    "github.com/shashanksharma45/image-merge/internal/upi"
    "github.com/shashanksharma45/image-merge/internal/util"
)

var errBadRequest = errors.New("bad request")

// health
func health(c *gin.Context) {
    c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// screensHandler lists the presets used to fill the screen-size dropdowns.
func (s *Server) screensHandler(c *gin.Context) {
    opt := screens.FilterOptions{FreeWords: c.Query("q")}
    if class := c.Query("class"); class != "" {
        opt.Classes = strings.Split(class, ",")
    }
    out := screens.Filter(s.Presets, opt)
    c.JSON(http.StatusOK, gin.H{"count": len(out), "screens": out})
}

func measureHandler(c *gin.Context) {
    inches, err := screens.Measure(c.DefaultQuery("laptop", screens.None), c.DefaultQuery("mobile", screens.None))
    if err != nil {
        fail(c, err)
        return
    }
    c.JSON(http.StatusOK, gin.H{
        "inches": inches,
        "text":   fmt.Sprintf("Your screen size: %.2f \" inches", inches),
    })
}

// combineHandler accepts either a multipart upload (primary, secondary, crop) or
// JSON with image URLs.
func (s *Server) combineHandler(c *gin.Context) {
    var primary, secondary image.Image
    crop := s.DefaultCrop

    if strings.HasPrefix(c.ContentType(), "application/json") {
        var req struct {
            PrimaryURL   string   `json:"primary_url"`
            SecondaryURL string   `json:"secondary_url"`
            Crop         *float64 `json:"crop"`
        }
        if err := c.BindJSON(&req); err != nil {
            return
        }
        if req.Crop != nil {
            crop = *req.Crop
        }
        if (req.PrimaryURL != "" || req.SecondaryURL != "") && len(s.RemoteHosts) == 0 {
            fail(c, errRemoteDisabled)
            return
        }
        fetch := util.Fetcher{Hosts: s.RemoteHosts, MaxBytes: s.MaxUploadBytes}
        var err error
        if req.PrimaryURL != "" {
            if primary, err = imagepkg.DownloadImage(fetch, req.PrimaryURL); err != nil {
                fail(c, fmt.Errorf("%w: primary: %w", errBadRequest, err))
                return
            }
        }
        if req.SecondaryURL != "" {
            if secondary, err = imagepkg.DownloadImage(fetch, req.SecondaryURL); err != nil {
                fail(c, fmt.Errorf("%w: secondary: %w", errBadRequest, err))
                return
            }
        }
    } else {
        var err error
        if primary, err = formImage(c, "primary"); err != nil && !errors.Is(err, errNoImage) {
            fail(c, err)
            return
        }
        if secondary, err = formImage(c, "secondary"); err != nil && !errors.Is(err, errNoImage) {
            fail(c, err)
            return
        }
        if v := c.PostForm("crop"); v != "" {
            if crop, err = parseCrop(v); err != nil {
                fail(c, err)
                return
            }
        }
    }
    if v := c.Query("crop"); v != "" {
        var err error
        if crop, err = parseCrop(v); err != nil {
            fail(c, err)
            return
        }
    }

    res, err := s.Compositor.Combine(primary, secondary, &imagepkg.CropSpec{TopFractionRemoved: crop})
    if err != nil {
        fail(c, err)
        return
    }
    writeComposite(c, res)
}

// scanHandler runs the QR pipeline over an uploaded laptop screenshot.
func (s *Server) scanHandler(c *gin.Context) {
    img, err := formImage(c, "image")
    if err != nil {
        fail(c, err)
        return
    }
    _, out := s.scan(img)
    c.JSON(http.StatusOK, out)
}

// scan never fails; a decoder fault is reported as a warning next to NotFound.
func (s *Server) scan(img image.Image) (upi.Classification, gin.H) {
    cl, err := upi.Scan(s.Decoder, img)
    out := classificationJSON(cl)
    if err != nil {
        log.Printf("qr scan: %v", err)
        out["warning"] = err.Error()
    }
    return cl, out
}

func classificationJSON(cl upi.Classification) gin.H {
    out := gin.H{"kind": cl.Kind, "message": cl.Message()}
    if cl.Value != "" {
        out["value"] = cl.Value
    }
    if pa, ok := cl.ClipboardText(); ok {
        out["clipboard"] = pa
    }
    return out
}

func writeComposite(c *gin.Context, res *imagepkg.CompositeResult) {
    digest := res.Digest()
    if c.Query("format") == "json" {
        c.JSON(http.StatusOK, gin.H{
            "width":    res.Width,
            "height":   res.Height,
            "digest":   digest,
            "layout":   res.Layout,
            "data_uri": res.DataURI(),
        })
        return
    }
    mime, data := res.ClipboardPayload()
    c.Header("ETag", `"`+digest+`"`)
    c.Data(http.StatusOK, mime, data)
}

func parseCrop(v string) (float64, error) {
    f, err := strconv.ParseFloat(v, 64)
    if err != nil {
        return 0, fmt.Errorf("%w: crop %q", imagepkg.ErrInvalidCrop, v)
    }
    return f, nil
}

func parseBox(c *gin.Context) (imagepkg.Dimensions, error) {
    box := DefaultPreviewBox
    if v := c.Query("width"); v != "" {
        f, err := strconv.ParseFloat(v, 64)
        if err != nil {
            return box, fmt.Errorf("%w: width %q", imagepkg.ErrInvalidDimensions, v)
        }
        box.Width = f
    }
    if v := c.Query("height"); v != "" {
        f, err := strconv.ParseFloat(v, 64)
        if err != nil {
            return box, fmt.Errorf("%w: height %q", imagepkg.ErrInvalidDimensions, v)
        }
        box.Height = f
    }
    if !box.Valid() {
        return box, fmt.Errorf("%w: preview box %vx%v", imagepkg.ErrInvalidDimensions, box.Width, box.Height)
    }
    return box, nil
}

// formImage decodes the named multipart file. errNoImage means the field is absent.
func formImage(c *gin.Context, field string) (image.Image, error) {
    fh, err := c.FormFile(field)
    if err != nil {
        var tooLarge *http.MaxBytesError
        if errors.As(err, &tooLarge) {
            return nil, err
        }
        return nil, fmt.Errorf("%w: %s", errNoImage, field)
    }
    return decodeUpload(fh)
}

func decodeUpload(fh *multipart.FileHeader) (image.Image, error) {
    f, err := fh.Open()
    if err != nil {
        return nil, err
    }
    defer f.Close()
    img, err := imagepkg.DecodeImage(f)
    if err != nil {
        return nil, fmt.Errorf("%w: %s: %w", errBadRequest, fh.Filename, err)
    }
    return img, nil
}

// requestImage reads an image from the "image" multipart field, or from the raw
// body for any other content type (a pasted blob).
func requestImage(c *gin.Context) (image.Image, error) {
    if strings.HasPrefix(c.ContentType(), "multipart/") {
        return formImage(c, "image")
    }
    if c.Request.Body == nil || c.Request.ContentLength == 0 {
        return nil, errNoImage
    }
    img, err := imagepkg.DecodeImage(c.Request.Body)
    if err != nil {
        var tooLarge *http.MaxBytesError
        if errors.As(err, &tooLarge) {
            return nil, err
        }
        return nil, fmt.Errorf("%w: %w", errBadRequest, err)
    }
    return img, nil
}
