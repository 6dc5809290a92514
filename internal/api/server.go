package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/yt-collector/internal/models"
	"github.com/yt-collector/internal/youtube"
)

// YouTubeAPI is the subset of the YouTube client the handlers depend on.
type YouTubeAPI interface {
	ResolveChannel(ctx context.Context, name string) youtube.Resolution
	FetchChannelStats(ctx context.Context, channelIDs []string) (models.ChannelTable, error)
	ListPlaylistVideoIDs(ctx context.Context, playlistID string) ([]string, error)
	FetchVideoDetails(ctx context.Context, videoIDs []string) (models.VideoTable, error)
}

// Server represents the API server
type Server struct {
	router *gin.Engine
	yt     YouTubeAPI
}

// NewServer creates a new API server
func NewServer(yt YouTubeAPI) *Server {
	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "Pragma"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	server := &Server{
		router: router,
		yt:     yt,
	}

	server.setupRoutes()

	return server
}

// setupRoutes configures all the routes for the server
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	s.router.GET("/channel/resolve", s.resolveChannel)
	s.router.GET("/channels/stats", s.getChannelStats)
	s.router.GET("/playlists/:id/videos", s.getPlaylistVideos)
	s.router.GET("/videos/details", s.getVideoDetails)
}

// resolveChannel handles requests to resolve a channel name to its ID
func (s *Server) resolveChannel(c *gin.Context) {
	name := c.Query("q")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "q query parameter is required",
		})
		return
	}

	res := s.yt.ResolveChannel(c.Request.Context(), name)
	switch res.State {
	case youtube.ResolveFound:
		c.JSON(http.StatusOK, gin.H{
			"state":     res.State.String(),
			"channelId": res.ChannelID,
			"title":     res.Title,
		})
	case youtube.ResolveNotFound:
		c.JSON(http.StatusNotFound, gin.H{
			"state": res.State.String(),
		})
	default:
		c.JSON(http.StatusBadGateway, gin.H{
			"state": res.State.String(),
			"error": res.Err.Error(),
		})
	}
}

// getChannelStats handles requests to fetch statistics for a set of channels
func (s *Server) getChannelStats(c *gin.Context) {
	ids := splitIDs(c.Query("ids"))

	table, err := s.yt.FetchChannelStats(c.Request.Context(), ids)
	if err != nil {
		if errors.Is(err, youtube.ErrNoChannelIDs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, table)
}

// getPlaylistVideos handles requests to enumerate a playlist's video IDs
func (s *Server) getPlaylistVideos(c *gin.Context) {
	playlistID := c.Param("id")

	videoIDs, err := s.yt.ListPlaylistVideoIDs(c.Request.Context(), playlistID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"playlistId": playlistID,
		"count":      len(videoIDs),
		"videoIds":   videoIDs,
	})
}

// getVideoDetails handles requests to fetch details for a set of videos
func (s *Server) getVideoDetails(c *gin.Context) {
	ids := splitIDs(c.Query("ids"))

	table, err := s.yt.FetchVideoDetails(c.Request.Context(), ids)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	if c.Query("format") == "csv" {
		c.Header("Content-Type", "text/csv")
		if err := models.WriteCSV(c.Writer, table); err != nil {
			log.Error().Err(err).Msg("failed to write csv response")
		}
		return
	}

	c.JSON(http.StatusOK, table)
}

// splitIDs parses a comma-separated ids parameter, dropping empty entries.
func splitIDs(raw string) []string {
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// requestID attaches a request ID to every request, honoring one supplied by
// the caller.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// requestLogger logs request completions.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("request_id", c.GetString("request_id")).
			Msg("request completed")
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the server on the specified port
func (s *Server) Start(port string) error {
	return s.router.Run(":" + port)
}
