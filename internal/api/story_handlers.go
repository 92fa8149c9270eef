package api

import (
	"bytes"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hamk-ai-autumn2025/Rene-Ots-assignments/internal/story"
	"github.com/hamk-ai-autumn2025/Rene-Ots-assignments/internal/storydb"
)

// GET /health
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// POST /generate
func GenerateHandler(gen *story.Generator, store *storydb.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var params story.Params
		if err := c.ShouldBindJSON(&params); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		res, err := gen.Generate(c.Request.Context(), params)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		rec := &storydb.Story{
			Character:   res.Params.Character,
			Setting:     res.Params.Setting,
			Genre:       res.Params.Genre,
			Tone:        res.Params.Tone,
			LengthLabel: res.LengthLabel,
			Text:        res.Story,
		}
		if store != nil {
			// Archive failures must not lose the story the user is waiting for.
			if err := store.Save(rec); err != nil {
				log.Printf("[API] failed to archive story: %v", err)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"story":       res.Story,
			"lengthLabel": res.LengthLabel,
			"id":          rec.ID,
		})
	}
}

type storyDetails struct {
	Character   string `json:"character"`
	Setting     string `json:"setting"`
	Genre       string `json:"genre"`
	Tone        string `json:"tone"`
	LengthLabel string `json:"lengthLabel"`
}

type downloadRequest struct {
	Story   string       `json:"story"`
	Details storyDetails `json:"details"`
}

// POST /download
func DownloadHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req downloadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		req.Story = strings.TrimSpace(req.Story)
		if req.Story == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Story text is required to create a PDF."})
			return
		}

		res := story.Result{
			Story:       req.Story,
			LengthLabel: req.Details.LengthLabel,
			Params: story.Params{
				Character: req.Details.Character,
				Setting:   req.Details.Setting,
				Genre:     req.Details.Genre,
				Tone:      req.Details.Tone,
			},
		}
		servePDF(c, res)
	}
}

// GET /stories
func ListStoriesHandler(store *storydb.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		stories, err := store.Recent(limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list stories"})
			return
		}
		c.JSON(http.StatusOK, stories)
	}
}

// GET /stories/:id
func GetStoryHandler(store *storydb.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := store.Get(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "story not found"})
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

// GET /stories/:id/pdf
func StoryPDFHandler(store *storydb.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := store.Get(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "story not found"})
			return
		}
		servePDF(c, story.Result{
			Story:       rec.Text,
			LengthLabel: rec.LengthLabel,
			Params: story.Params{
				Character: rec.Character,
				Setting:   rec.Setting,
				Genre:     rec.Genre,
				Tone:      rec.Tone,
			},
		})
	}
}

func servePDF(c *gin.Context, res story.Result) {
	var buf bytes.Buffer
	if err := story.RenderPDF(&buf, res); err != nil {
		log.Printf("[API] PDF render failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render PDF"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="ai-kids-story.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
