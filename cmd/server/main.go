package main

import (
    "context"
    "log"
    "net/http"
    "os/signal"
    "syscall"
    "time"

    "github.com/gin-gonic/gin"

    "github.com/shashanksharma45/image-merge/internal/api"
    "github.com/shashanksharma45/image-merge/internal/config"
    "github.com/shashanksharma45/image-merge/internal/screens"
)

func main() {
    cfg, err := config.Load()
    if err != nil {
        log.Fatal(err)
    }

    srv := api.NewServer(cfg.Compositor())
    srv.MaxUploadBytes = cfg.MaxUploadBytes
    srv.DefaultCrop = cfg.DefaultCrop
    srv.RemoteHosts = cfg.RemoteHostList()

    // Load screen presets at startup (best-effort)
    presets, err := screens.LoadPresetsFromDataDir(cfg.DataDir)
    if err != nil {
        log.Println("Warning: failed to load screen CSVs, using builtin presets:", err)
    } else {
        srv.Presets = presets
    }

    ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
    defer stop()
    go sweepSessions(ctx, srv, cfg.SessionTTL)

    r := gin.Default()
    api.RegisterRoutes(r, srv)

    httpSrv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
    go func() {
        <-ctx.Done()
        shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()
        httpSrv.Shutdown(shutdownCtx)
    }()

    log.Println("starting server on http://localhost:" + cfg.Port)
    if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
        log.Fatal(err)
    }
}

func sweepSessions(ctx context.Context, srv *api.Server, ttl time.Duration) {
    interval := ttl / 2
    if interval < time.Second {
        interval = time.Second
    }
    t := time.NewTicker(interval)
    defer t.Stop()
    for {
        select {
        case <-ctx.Done():
            return
        case <-t.C:
            if n := srv.Sessions.Sweep(ttl); n > 0 {
                log.Printf("dropped %d idle sessions", n)
            }
        }
    }
}
