package config

import (
    "fmt"
    "os"
    "strconv"
    "strings"
    "time"

    imagepkg "github.com/shashanksharma45/image-merge/internal/image"
    "github.com/shashanksharma45/image-merge/internal/screens"
)

// Config is read from the environment once at startup.
type Config struct {
    Port             string
    DataDir          string
    MaxUploadBytes   int64
    DefaultCrop      float64
    FallbackMobile   imagepkg.Dimensions
    SessionTTL       time.Duration
    RequireSecondary bool
    // RemoteHosts is a comma-separated list of hosts URL combine may fetch
    // from. Empty leaves URL inputs off.
    RemoteHosts string
}

func Default() Config {
    return Config{
        Port:           "8080",
        DataDir:        "data",
        MaxUploadBytes: 20 << 20,
        FallbackMobile: imagepkg.DefaultFallbackSecondary,
        SessionTTL:     30 * time.Minute,
    }
}

// Load reads PORT and the IMAGEMERGE_* variables on top of Default.
func Load() (Config, error) {
    c := Default()
    if v := os.Getenv("PORT"); v != "" {
        c.Port = v
    }
    if v := os.Getenv("IMAGEMERGE_DATA_DIR"); v != "" {
        c.DataDir = v
    }
    if v := os.Getenv("IMAGEMERGE_MAX_UPLOAD_MB"); v != "" {
        mb, err := strconv.Atoi(v)
        if err != nil || mb <= 0 {
            return c, fmt.Errorf("IMAGEMERGE_MAX_UPLOAD_MB: want a positive integer, got %q", v)
        }
        c.MaxUploadBytes = int64(mb) << 20
    }
    if v := os.Getenv("IMAGEMERGE_DEFAULT_CROP"); v != "" {
        f, err := strconv.ParseFloat(v, 64)
        if err != nil || f < 0 || f >= 1 {
            return c, fmt.Errorf("IMAGEMERGE_DEFAULT_CROP: want a fraction in [0, 1), got %q", v)
        }
        c.DefaultCrop = f
    }
    if v := os.Getenv("IMAGEMERGE_FALLBACK_MOBILE"); v != "" {
        d, err := screens.ParseSize(v)
        if err != nil {
            return c, fmt.Errorf("IMAGEMERGE_FALLBACK_MOBILE: %w", err)
        }
        c.FallbackMobile = d
    }
    if v := os.Getenv("IMAGEMERGE_SESSION_TTL"); v != "" {
        d, err := time.ParseDuration(v)
        if err != nil || d <= 0 {
            return c, fmt.Errorf("IMAGEMERGE_SESSION_TTL: want a positive duration, got %q", v)
        }
        c.SessionTTL = d
    }
    if v := os.Getenv("IMAGEMERGE_REQUIRE_SECONDARY"); v != "" {
        b, err := strconv.ParseBool(v)
        if err != nil {
            return c, fmt.Errorf("IMAGEMERGE_REQUIRE_SECONDARY: %w", err)
        }
        c.RequireSecondary = b
    }
    if v := os.Getenv("IMAGEMERGE_REMOTE_HOSTS"); v != "" {
        c.RemoteHosts = v
    }
    return c, nil
}

// RemoteHostList splits RemoteHosts, dropping blanks.
func (c Config) RemoteHostList() []string {
    var hosts []string
    for _, h := range strings.Split(c.RemoteHosts, ",") {
        if h = strings.TrimSpace(h); h != "" {
            hosts = append(hosts, h)
        }
    }
    return hosts
}

// Compositor builds the compositor this configuration describes.
func (c Config) Compositor() *imagepkg.Compositor {
    comp := imagepkg.NewCompositor()
    comp.RequireSecondary = c.RequireSecondary
    comp.FallbackSecondary = c.FallbackMobile
    return comp
}
