package api

import (
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/hamk-ai-autumn2025/Rene-Ots-assignments/internal/story"
	"github.com/hamk-ai-autumn2025/Rene-Ots-assignments/internal/storydb"
)

// Deps carries everything the handlers need, constructed once in main.
type Deps struct {
	Generator *story.Generator
	Store     *storydb.Store
	WebDir    string
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	if deps.WebDir != "" {
		r.StaticFile("/", filepath.Join(deps.WebDir, "index.html"))
		r.Static("/static", filepath.Join(deps.WebDir, "static"))
	}

	r.GET("/health", healthHandler)
	r.POST("/generate", GenerateHandler(deps.Generator, deps.Store))
	r.POST("/download", DownloadHandler())
	r.GET("/stories", ListStoriesHandler(deps.Store))
	r.GET("/stories/:id", GetStoryHandler(deps.Store))
	r.GET("/stories/:id/pdf", StoryPDFHandler(deps.Store))

	return r
}
