package workspace

import (
    "errors"
    "fmt"
    "image"
    "sync"
    "time"

    "github.com/shashanksharma45/image-merge/internal/upi"
)

// Slot names one of the two paste targets.
type Slot string

const (
    // SlotLaptop holds the primary, QR-bearing screenshot.
    SlotLaptop Slot = "laptop"
    // SlotMobile holds the secondary screenshot composited to the right.
    SlotMobile Slot = "mobile"
)

var (
    ErrUnknownSlot    = errors.New("unknown slot")
    ErrNoSlotSelected = errors.New("select a canvas to paste the screenshot")
)

// ParseSlot accepts the slot names plus "primary"/"secondary".
func ParseSlot(s string) (Slot, error) {
    switch s {
    case string(SlotLaptop), "primary":
        return SlotLaptop, nil
    case string(SlotMobile), "secondary":
        return SlotMobile, nil
    }
    return "", fmt.Errorf("%w: %q", ErrUnknownSlot, s)
}

// Workspace is the per-user paste state: the two slots, which one is selected
// and the QR result of the last laptop paste.
type Workspace struct {
    mu       sync.Mutex
    images   map[Slot]image.Image
    selected Slot
    qr       upi.Classification
    lastUsed time.Time
}

func New() *Workspace {
    return &Workspace{
        images:   map[Slot]image.Image{},
        qr:       upi.NotFound(),
        lastUsed: time.Now(),
    }
}

func (w *Workspace) touch() {
    w.lastUsed = time.Now()
}

func (w *Workspace) Select(s Slot) {
    w.mu.Lock()
    defer w.mu.Unlock()
    w.selected = s
    w.touch()
}

// Selected returns the selected slot, or "" when none is.
func (w *Workspace) Selected() Slot {
    w.mu.Lock()
    defer w.mu.Unlock()
    return w.selected
}

// Put stores img in slot s. A new laptop image drops the previous QR result;
// use PutLaptop to store the image together with its own.
func (w *Workspace) Put(s Slot, img image.Image) {
    w.mu.Lock()
    defer w.mu.Unlock()
    w.images[s] = img
    if s == SlotLaptop {
        w.qr = upi.NotFound()
    }
    w.touch()
}

// PutLaptop stores the laptop image and its QR classification in one step so
// readers never see one without the other.
func (w *Workspace) PutLaptop(img image.Image, qr upi.Classification) {
    w.mu.Lock()
    defer w.mu.Unlock()
    w.images[SlotLaptop] = img
    w.qr = qr
    w.touch()
}

// Paste stores img in the selected slot and returns that slot. When the
// laptop slot is selected, scan classifies img before anything is stored and
// the result is returned; the workspace stays locked while scan runs.
func (w *Workspace) Paste(img image.Image, scan func(image.Image) upi.Classification) (Slot, upi.Classification, error) {
    w.mu.Lock()
    defer w.mu.Unlock()
    if w.selected == "" {
        return "", upi.Classification{}, ErrNoSlotSelected
    }
    slot := w.selected
    w.images[slot] = img
    var qr upi.Classification
    if slot == SlotLaptop {
        qr = upi.NotFound()
        if scan != nil {
            qr = scan(img)
        }
        w.qr = qr
    }
    w.touch()
    return slot, qr, nil
}

func (w *Workspace) Get(s Slot) image.Image {
    w.mu.Lock()
    defer w.mu.Unlock()
    w.touch()
    return w.images[s]
}

// Images returns the primary and secondary images; either may be nil.
func (w *Workspace) Images() (primary, secondary image.Image) {
    w.mu.Lock()
    defer w.mu.Unlock()
    w.touch()
    return w.images[SlotLaptop], w.images[SlotMobile]
}

// Clear empties a slot. Clearing the laptop slot also drops its QR result.
func (w *Workspace) Clear(s Slot) {
    w.mu.Lock()
    defer w.mu.Unlock()
    delete(w.images, s)
    if s == SlotLaptop {
        w.qr = upi.NotFound()
    }
    w.touch()
}

func (w *Workspace) QR() upi.Classification {
    w.mu.Lock()
    defer w.mu.Unlock()
    return w.qr
}

func (w *Workspace) idleSince() time.Time {
    w.mu.Lock()
    defer w.mu.Unlock()
    return w.lastUsed
}
