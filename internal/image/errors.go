package imagepkg

import (
    "errors"

    "github.com/shashanksharma45/image-merge/internal/upi"
)

var (
    ErrMissingPrimaryImage   = errors.New("primary image is required")
    ErrMissingSecondaryImage = errors.New("both screenshots must be pasted before combining")
    // ErrDegenerateImage is returned when a zero height (or width) would make a
    // scale factor undefined. No output canvas is allocated in that case.
    ErrDegenerateImage   = errors.New("degenerate image")
    ErrInvalidCrop       = errors.New("crop fraction must be in [0, 1)")
    ErrInvalidDimensions = errors.New("dimensions must be positive")
    ErrNoQRCode          = upi.ErrNotFound
)
