package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Praveen-pk-pro/Portfolio-pk/internal/snapshot"
	"github.com/Praveen-pk-pro/Portfolio-pk/internal/sphere"
	"github.com/Praveen-pk-pro/Portfolio-pk/internal/sphere/loop"
)

const (
	defaultViewportWidth  = 1280
	defaultViewportHeight = 800
	maxSnapshotFrames     = 600
	sphereWriteTimeout    = 2 * time.Second
	sphereReadLimit       = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// sphereEvent is one input event from the browser.
type sphereEvent struct {
	Type   string  `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Index  int     `json:"index"`
}

func applySphereEvent(l *loop.Loop, ev sphereEvent) error {
	switch ev.Type {
	case "pointer":
		return l.Pointer(ev.X, ev.Y)
	case "touch":
		return l.Touch(ev.X, ev.Y)
	case "scroll":
		return l.Scroll()
	case "resize":
		return l.Resize(int(ev.Width), int(ev.Height))
	case "container":
		return l.Container(sphere.Rect{Left: ev.Left, Top: ev.Top, Width: ev.Width, Height: ev.Height})
	case "hover":
		return l.HoverEnter(ev.Index)
	case "leave":
		return l.HoverLeave(ev.Index)
	default:
		return fmt.Errorf("unknown sphere event %q", ev.Type)
	}
}

func viewportFromQuery(c *gin.Context) (int, int) {
	return queryInt(c, "width", defaultViewportWidth), queryInt(c, "height", defaultViewportHeight)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func (app *App) newSphere(width, height int) (*sphere.Sphere, error) {
	return sphere.New(app.view, app.site.SphereIcons(), width, height)
}

func setupSphereRoutes(r *gin.Engine, app *App) {
	g := r.Group("/sphere")

	g.GET("/config", func(c *gin.Context) {
		w, h := viewportFromQuery(c)
		s, err := app.newSphere(w, h)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"items":  s.Items(),
			"radius": s.Radius(),
			"config": s.Config(),
			"fps":    app.cfg.SphereFPS,
		})
	})

	g.GET("/ws", app.handleSphereSession)

	for _, f := range []snapshot.Format{snapshot.PNG, snapshot.WebP} {
		g.GET("/snapshot."+string(f), app.handleSnapshot(f))
	}
}

// handleSphereSession runs one sphere per websocket. The browser sends input
// events and paints the frames the loop streams back.
func (app *App) handleSphereSession(c *gin.Context) {
	w, h := viewportFromQuery(c)
	s, err := app.newSphere(w, h)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		app.log.Warn("Sphere upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(sphereReadLimit)

	id := uuid.NewString()
	log := app.log.With(zap.String("session", id))
	log.Info("Sphere session opened", zap.Int("width", w), zap.Int("height", h))

	l := loop.New(s, app.cfg.SphereFPS)
	ctx := app.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	go func() {
		defer l.Stop()
		for {
			var ev sphereEvent
			if err := conn.ReadJSON(&ev); err != nil {
				log.Debug("Sphere session read ended", zap.Error(err))
				return
			}
			if err := applySphereEvent(l, ev); err != nil {
				log.Debug("Sphere event dropped", zap.String("type", ev.Type), zap.Error(err))
			}
		}
	}()

	err = l.Run(ctx, func(f sphere.Frame) error {
		if err := conn.SetWriteDeadline(time.Now().Add(sphereWriteTimeout)); err != nil {
			return err
		}
		return conn.WriteJSON(f)
	})
	if err != nil {
		log.Debug("Sphere session write ended", zap.Error(err))
	}
	err = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	if err != nil && !errors.Is(err, websocket.ErrCloseSent) {
		log.Debug("Sphere close frame not sent", zap.Error(err))
	}
	log.Info("Sphere session closed")
}

// handleSnapshot renders the frame reached after ?frames= idle steps.
func (app *App) handleSnapshot(format snapshot.Format) gin.HandlerFunc {
	return func(c *gin.Context) {
		w, h := viewportFromQuery(c)
		s, err := app.newSphere(w, h)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		frames := queryInt(c, "frames", 0)
		if frames > maxSnapshotFrames {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("frames must be at most %d", maxSnapshotFrames)})
			return
		}
		hovered := queryInt(c, "hover", -1)
		s.HoverEnter(hovered)

		frame := s.Advance(frames)
		img := snapshot.Render(frame, s.Items(), hovered, snapshot.DefaultOptions())

		c.Header("Content-Type", format.ContentType())
		c.Header("Cache-Control", "no-store")
		c.Status(http.StatusOK)
		if err := snapshot.Encode(c.Writer, img, format); err != nil {
			app.log.Error("Snapshot encode failed", zap.String("format", string(format)), zap.Error(err))
		}
	}
}
