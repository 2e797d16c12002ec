package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, s *Server) {
    r.Use(requestID())
    api := r.Group("/api")
    api.Use(limitBody(s.MaxUploadBytes))
    {
        api.GET("/health", health)
        api.GET("/screens", s.screensHandler)
        api.GET("/screens/measure", measureHandler)
        api.POST("/combine", s.combineHandler)
        api.POST("/scan", s.scanHandler)

        api.POST("/sessions", s.createSession)
        api.DELETE("/sessions/:id", s.deleteSession)
        api.PUT("/sessions/:id/slots/:slot", s.putSlot)
        api.DELETE("/sessions/:id/slots/:slot", s.clearSlot)
        api.GET("/sessions/:id/slots/:slot/preview", s.previewSlot)
        api.POST("/sessions/:id/select/:slot", s.selectSlot)
        api.POST("/sessions/:id/paste", s.paste)
        api.POST("/sessions/:id/combine", s.sessionCombine)
        api.GET("/sessions/:id/qr", s.sessionQR)
        api.GET("/sessions/:id/qr/clipboard", s.sessionQRClipboard)
    }
}
