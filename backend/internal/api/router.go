package api

import (
	"net/http"

	"charnet/backend/internal/explorer"
	"charnet/backend/internal/graph"
	apperrors "charnet/backend/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type pathResponse struct {
	Found      bool        `json:"found"`
	From       string      `json:"from"`
	To         string      `json:"to"`
	Characters []string    `json:"characters"`
	Games      []string    `json:"games"`
	Hops       []graph.Hop `json:"hops"`
	Length     int         `json:"length"`
}

// NewRouter wires the query endpoints onto a gin engine
func NewRouter(svc *explorer.Service, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(requestID())
	router.Use(ginLogger(log))
	router.Use(gin.Recovery())
	router.Use(cors())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/characters", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"characters": svc.Names()})
		})

		api.GET("/characters/:name", func(c *gin.Context) {
			rec, err := svc.Character(c.Param("name"))
			if err != nil {
				respondError(c, log, err)
				return
			}
			c.JSON(http.StatusOK, rec)
		})

		api.GET("/characters/:name/related", func(c *gin.Context) {
			name := c.Param("name")
			related, err := svc.Related(name)
			if err != nil {
				respondError(c, log, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"character": name, "related": related})
		})

		api.GET("/path", func(c *gin.Context) {
			var req struct {
				From string `form:"from" binding:"required"`
				To   string `form:"to" binding:"required"`
			}
			if err := c.ShouldBindQuery(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			resp := pathResponse{
				From:       req.From,
				To:         req.To,
				Characters: []string{},
				Games:      []string{},
				Hops:       []graph.Hop{},
			}

			path, err := svc.ShortestPath(req.From, req.To)
			if err != nil {
				if apperrors.IsNoPath(err) {
					c.JSON(http.StatusOK, resp)
					return
				}
				respondError(c, log, err)
				return
			}

			resp.Found = true
			resp.Characters = path.Characters
			resp.Games = path.Games
			resp.Hops = path.Hops()
			resp.Length = path.Len()
			c.JSON(http.StatusOK, resp)
		})

		api.GET("/most-connected", func(c *gin.Context) {
			best, err := svc.MostConnected()
			if err != nil {
				respondError(c, log, err)
				return
			}
			c.JSON(http.StatusOK, best)
		})

		api.GET("/connections", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"connections": svc.Connections()})
		})
	}

	return router
}

func respondError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "kind": "not_found"})
	case apperrors.IsErrorType(err, apperrors.ErrorTypeCharacter):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		log.Error("Query failed", zap.Error(err), zap.String("path", c.FullPath()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Query failed"})
	}
}
