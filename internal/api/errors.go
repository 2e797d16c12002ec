package api

import (
    "errors"
    "log"
    "net/http"

    "github.com/gin-gonic/gin"

    imagepkg "github.com/shashanksharma45/image-merge/internal/image"
    "github.com/shashanksharma45/image-merge/internal/screens"
    "github.com/shashanksharma45/image-merge/internal/util"
    "github.com/shashanksharma45/image-merge/internal/workspace"
)

var (
    errNoImage        = errors.New("no image in request")
    errRemoteDisabled = errors.New("image URLs are disabled on this server")
)

func statusFor(err error) int {
    var tooLarge *http.MaxBytesError
    switch {
    case errors.As(err, &tooLarge):
        return http.StatusRequestEntityTooLarge
    case errors.Is(err, errRemoteDisabled), errors.Is(err, util.ErrHostNotAllowed):
        return http.StatusForbidden
    case errors.Is(err, workspace.ErrSessionNotFound):
        return http.StatusNotFound
    case errors.Is(err, imagepkg.ErrDegenerateImage):
        return http.StatusUnprocessableEntity
    case errors.Is(err, imagepkg.ErrMissingPrimaryImage),
        errors.Is(err, imagepkg.ErrMissingSecondaryImage),
        errors.Is(err, imagepkg.ErrInvalidCrop),
        errors.Is(err, imagepkg.ErrInvalidDimensions),
        errors.Is(err, workspace.ErrUnknownSlot),
        errors.Is(err, workspace.ErrNoSlotSelected),
        errors.Is(err, screens.ErrInvalidSize),
        errors.Is(err, screens.ErrNoneSelected),
        errors.Is(err, errNoImage),
        errors.Is(err, errBadRequest):
        return http.StatusBadRequest
    }
    return http.StatusInternalServerError
}

func fail(c *gin.Context, err error) {
    status := statusFor(err)
    if status >= http.StatusInternalServerError {
        log.Printf("request %s: %v", c.GetString("request_id"), err)
    }
    c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
