package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger := zap.Must(zap.NewProduction())
	defer logger.Sync()

	if err := os.MkdirAll("db/generated", 0o755); err != nil {
		logger.Fatal("create storage directories", zap.Error(err))
	}

	r := gin.Default()

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	h := &handler{logger: logger}
	r.GET("/timetable", h.listTimetables)
	r.GET("/timetable/:id", h.getTimetable)
	r.POST("/timetable", h.generateTimetable)

	if err := r.Run(":3001"); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
