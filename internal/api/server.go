package api

import (
    imagepkg "github.com/shashanksharma45/image-merge/internal/image"
    "github.com/shashanksharma45/image-merge/internal/screens"
    "github.com/shashanksharma45/image-merge/internal/upi"
    "github.com/shashanksharma45/image-merge/internal/workspace"
)

// DefaultPreviewBox is the canvas size previews fit into when none is given.
var DefaultPreviewBox = imagepkg.Dimensions{Width: 480, Height: 320}

// Server carries the dependencies shared by the handlers.
type Server struct {
    Compositor     *imagepkg.Compositor
    Decoder        upi.Decoder
    Sessions       *workspace.Store
    Presets        []screens.Preset
    MaxUploadBytes int64
    DefaultCrop    float64
    // RemoteHosts lists the hosts JSON combine may download from; "*" allows
    // any. Empty disables URL inputs.
    RemoteHosts []string
}

// NewServer returns a Server with the gozxing decoder and builtin presets.
func NewServer(comp *imagepkg.Compositor) *Server {
    if comp == nil {
        comp = imagepkg.NewCompositor()
    }
    return &Server{
        Compositor:     comp,
        Decoder:        imagepkg.QRDecoder{TryHarder: true},
        Sessions:       workspace.NewStore(),
        Presets:        screens.Builtin(),
        MaxUploadBytes: 20 << 20,
    }
}
