package config

import (
    "testing"
    "time"
)

func TestLoadDefaults(t *testing.T) {
    for _, k := range []string{"PORT", "IMAGEMERGE_DATA_DIR", "IMAGEMERGE_MAX_UPLOAD_MB", "IMAGEMERGE_DEFAULT_CROP",
        "IMAGEMERGE_FALLBACK_MOBILE", "IMAGEMERGE_SESSION_TTL", "IMAGEMERGE_REQUIRE_SECONDARY", "IMAGEMERGE_REMOTE_HOSTS"} {
        t.Setenv(k, "")
    }
    c, err := Load()
    if err != nil {
        t.Fatalf("Load: %v", err)
    }
    if c != Default() {
        t.Fatalf("Load = %+v, want defaults %+v", c, Default())
    }
    if hosts := c.RemoteHostList(); len(hosts) != 0 {
        t.Fatalf("URL inputs on by default: %v", hosts)
    }
}

func TestLoadOverrides(t *testing.T) {
    t.Setenv("PORT", "9090")
    t.Setenv("IMAGEMERGE_DATA_DIR", "/srv/data")
    t.Setenv("IMAGEMERGE_MAX_UPLOAD_MB", "5")
    t.Setenv("IMAGEMERGE_DEFAULT_CROP", "0.05")
    t.Setenv("IMAGEMERGE_FALLBACK_MOBILE", "1080x2400")
    t.Setenv("IMAGEMERGE_SESSION_TTL", "5m")
    t.Setenv("IMAGEMERGE_REQUIRE_SECONDARY", "true")
    t.Setenv("IMAGEMERGE_REMOTE_HOSTS", "cdn.example.com, ,images.example.com")

    c, err := Load()
    if err != nil {
        t.Fatalf("Load: %v", err)
    }
    if c.Port != "9090" || c.DataDir != "/srv/data" || c.MaxUploadBytes != 5<<20 {
        t.Errorf("basic overrides: %+v", c)
    }
    if c.DefaultCrop != 0.05 || c.SessionTTL != 5*time.Minute || !c.RequireSecondary {
        t.Errorf("policy overrides: %+v", c)
    }
    if c.FallbackMobile.Width != 1080 || c.FallbackMobile.Height != 2400 {
        t.Errorf("fallback = %+v", c.FallbackMobile)
    }

    if hosts := c.RemoteHostList(); len(hosts) != 2 || hosts[0] != "cdn.example.com" || hosts[1] != "images.example.com" {
        t.Errorf("remote hosts = %q", hosts)
    }

    comp := c.Compositor()
    if !comp.RequireSecondary || comp.FallbackSecondary != c.FallbackMobile {
        t.Errorf("compositor = %+v", comp)
    }
}

func TestLoadRejectsBadValues(t *testing.T) {
    cases := map[string]string{
        "IMAGEMERGE_MAX_UPLOAD_MB":     "-1",
        "IMAGEMERGE_DEFAULT_CROP":      "1",
        "IMAGEMERGE_FALLBACK_MOBILE":   "wide",
        "IMAGEMERGE_SESSION_TTL":       "soon",
        "IMAGEMERGE_REQUIRE_SECONDARY": "maybe",
    }
    for k, v := range cases {
        t.Run(k, func(t *testing.T) {
            t.Setenv(k, v)
            if _, err := Load(); err == nil {
                t.Fatalf("%s=%q: expected error", k, v)
            }
        })
    }
}
