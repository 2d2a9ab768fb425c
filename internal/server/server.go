// Package server exposes the icon layout and the orbit constraint over HTTP
// so a front-end scene can query positions instead of computing them.
package server

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/san-kum/techsphere/internal/layout"
	"github.com/san-kum/techsphere/internal/log"
	"github.com/san-kum/techsphere/internal/orbit"
)

// MaxTicks caps the number of steps a single orbit request may ask for.
const MaxTicks = 10000

var errBadQuery = errors.New("server: bad query parameter")

// Server holds the catalog served by /api/icons.
type Server struct {
	icons  []layout.Icon
	radius float64
}

// New returns a server for the given catalog and default radius.
func New(icons []layout.Icon, radius float64) *Server {
	return &Server{icons: icons, radius: radius}
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/icons", s.handleIcons)
	api.GET("/layout", handleLayout)
	api.POST("/orbit/step", handleOrbitStep)
	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(start))
	}
}

type iconResponse struct {
	layout.Placed
	Roll float64 `json:"roll"`
}

func (s *Server) handleIcons(c *gin.Context) {
	radius, err := floatQuery(c, "radius", s.radius)
	if err != nil {
		badRequest(c, err)
		return
	}
	if err := layout.Validate(len(s.icons), radius); err != nil {
		badRequest(c, err)
		return
	}

	placed := layout.Arrange(s.icons, radius)
	out := make([]iconResponse, len(placed))
	for i, p := range placed {
		out[i] = iconResponse{Placed: p}
	}

	if _, ok := c.GetQuery("t"); ok {
		t, err := floatQuery(c, "t", 0)
		if err != nil {
			badRequest(c, err)
			return
		}
		for i := range out {
			out[i].Position, out[i].Roll = layout.Bob(out[i].Position, t)
		}
	}

	c.JSON(http.StatusOK, gin.H{"radius": radius, "icons": out})
}

func handleLayout(c *gin.Context) {
	n, err := strconv.Atoi(c.Query("n"))
	if err != nil {
		badRequest(c, errBadQuery)
		return
	}
	radius, err := floatQuery(c, "radius", layout.Radius)
	if err != nil {
		badRequest(c, err)
		return
	}

	pts, err := layout.Generate(n, radius)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"n": n, "radius": radius, "points": pts})
}

type stepRequest struct {
	Polar    float64  `json:"polar"`
	Dragging bool     `json:"dragging"`
	Rest     *float64 `json:"rest"`
	Range    *float64 `json:"range"`
	Ticks    int      `json:"ticks"`
}

func handleOrbitStep(c *gin.Context) {
	var req stepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	st := orbit.State{Polar: req.Polar, Dragging: req.Dragging, Rest: orbit.RestAngle, Range: orbit.DefaultRange}
	if req.Rest != nil {
		st.Rest = *req.Rest
	}
	if req.Range != nil {
		st.Range = *req.Range
	}
	if st.Range < 0 || math.IsNaN(st.Range) {
		badRequest(c, orbit.ErrNegativeRange)
		return
	}

	ticks := req.Ticks
	if ticks <= 0 {
		ticks = 1
	}
	if ticks > MaxTicks {
		ticks = MaxTicks
	}
	for i := 0; i < ticks; i++ {
		st = orbit.Step(st)
	}
	c.JSON(http.StatusOK, st)
}

func floatQuery(c *gin.Context, key string, def float64) (float64, error) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errBadQuery
	}
	return v, nil
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
