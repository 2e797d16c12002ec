package api

import (
    "image"
    "net/http"

    "github.com/gin-gonic/gin"

    imagepkg "github.com/shashanksharma45/image-merge/internal/image"
    "github.com/shashanksharma45/image-merge/internal/upi"
    "github.com/shashanksharma45/image-merge/internal/workspace"
)

func (s *Server) session(c *gin.Context) (*workspace.Workspace, bool) {
    w, err := s.Sessions.Get(c.Param("id"))
    if err != nil {
        fail(c, err)
        return nil, false
    }
    return w, true
}

func (s *Server) sessionSlot(c *gin.Context) (*workspace.Workspace, workspace.Slot, bool) {
    w, ok := s.session(c)
    if !ok {
        return nil, "", false
    }
    slot, err := workspace.ParseSlot(c.Param("slot"))
    if err != nil {
        fail(c, err)
        return nil, "", false
    }
    return w, slot, true
}

func (s *Server) createSession(c *gin.Context) {
    id, _ := s.Sessions.Create()
    c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (s *Server) deleteSession(c *gin.Context) {
    if _, ok := s.session(c); !ok {
        return
    }
    s.Sessions.Delete(c.Param("id"))
    c.Status(http.StatusNoContent)
}

// stored describes a slot after an upload; laptop uploads also carry the QR
// result, passed in as qr.
func stored(slot workspace.Slot, img image.Image, qr gin.H) gin.H {
    b := img.Bounds()
    out := gin.H{
        "slot":    slot,
        "width":   b.Dx(),
        "height":  b.Dy(),
        "preview": imagepkg.Fit(img, DefaultPreviewBox),
    }
    if qr != nil {
        out["qr"] = qr
    }
    return out
}

func (s *Server) putSlot(c *gin.Context) {
    w, slot, ok := s.sessionSlot(c)
    if !ok {
        return
    }
    img, err := requestImage(c)
    if err != nil {
        fail(c, err)
        return
    }
    var qr gin.H
    if slot == workspace.SlotLaptop {
        var cl upi.Classification
        cl, qr = s.scan(img)
        w.PutLaptop(img, cl)
    } else {
        w.Put(slot, img)
    }
    c.JSON(http.StatusOK, stored(slot, img, qr))
}

func (s *Server) selectSlot(c *gin.Context) {
    w, slot, ok := s.sessionSlot(c)
    if !ok {
        return
    }
    w.Select(slot)
    c.Status(http.StatusNoContent)
}

// paste stores the image in whichever slot the session has selected.
func (s *Server) paste(c *gin.Context) {
    w, ok := s.session(c)
    if !ok {
        return
    }
    if w.Selected() == "" {
        fail(c, workspace.ErrNoSlotSelected)
        return
    }
    img, err := requestImage(c)
    if err != nil {
        fail(c, err)
        return
    }
    var qr gin.H
    slot, _, err := w.Paste(img, func(img image.Image) upi.Classification {
        var cl upi.Classification
        cl, qr = s.scan(img)
        return cl
    })
    if err != nil {
        fail(c, err)
        return
    }
    c.JSON(http.StatusOK, stored(slot, img, qr))
}

func (s *Server) clearSlot(c *gin.Context) {
    w, slot, ok := s.sessionSlot(c)
    if !ok {
        return
    }
    w.Clear(slot)
    c.Status(http.StatusNoContent)
}

func (s *Server) previewSlot(c *gin.Context) {
    w, slot, ok := s.sessionSlot(c)
    if !ok {
        return
    }
    img := w.Get(slot)
    if img == nil {
        c.JSON(http.StatusNotFound, gin.H{"error": "slot " + string(slot) + " is empty"})
        return
    }
    box, err := parseBox(c)
    if err != nil {
        fail(c, err)
        return
    }
    preview := imagepkg.RenderPreview(img, box)
    if preview == nil {
        fail(c, imagepkg.ErrDegenerateImage)
        return
    }
    data, err := imagepkg.EncodePNG(preview)
    if err != nil {
        fail(c, err)
        return
    }
    c.Data(http.StatusOK, imagepkg.PNGMimeType, data)
}

func (s *Server) sessionCombine(c *gin.Context) {
    w, ok := s.session(c)
    if !ok {
        return
    }
    crop := s.DefaultCrop
    if v := c.Query("crop"); v != "" {
        var err error
        if crop, err = parseCrop(v); err != nil {
            fail(c, err)
            return
        }
    }
    primary, secondary := w.Images()
    res, err := s.Compositor.Combine(primary, secondary, &imagepkg.CropSpec{TopFractionRemoved: crop})
    if err != nil {
        fail(c, err)
        return
    }
    writeComposite(c, res)
}

func (s *Server) sessionQR(c *gin.Context) {
    w, ok := s.session(c)
    if !ok {
        return
    }
    c.JSON(http.StatusOK, classificationJSON(w.QR()))
}

// sessionQRClipboard returns the payment address as plain text for the copy button.
func (s *Server) sessionQRClipboard(c *gin.Context) {
    w, ok := s.session(c)
    if !ok {
        return
    }
    pa, ok := w.QR().ClipboardText()
    if !ok {
        c.JSON(http.StatusNotFound, gin.H{"error": "no payment address to copy"})
        return
    }
    c.String(http.StatusOK, pa)
}
