package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Praveen-pk-pro/Portfolio-pk/internal/config"
	"github.com/Praveen-pk-pro/Portfolio-pk/internal/content"
	"github.com/Praveen-pk-pro/Portfolio-pk/internal/logging"
	"github.com/Praveen-pk-pro/Portfolio-pk/internal/sphere"
	"github.com/Praveen-pk-pro/Portfolio-pk/internal/store"
)

// App carries the dependencies shared by every route.
type App struct {
	cfg   config.Config
	log   *zap.Logger
	site  content.Site
	view  sphere.ViewConfig
	store *store.Store
	admin *adminAuth

	// ctx bounds long-lived sphere sessions; it is cancelled on shutdown.
	ctx context.Context
}

func main() {
	cfg := config.FromEnv()
	gin.SetMode(cfg.Mode)

	log, err := logging.New(cfg.LogLevel, gin.Mode() == gin.DebugMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	site, err := config.LoadContent(cfg.ContentFile)
	if err != nil {
		log.Fatal("Failed to load content", zap.Error(err))
	}
	view, err := config.LoadSphere(cfg.SphereFile)
	if err != nil {
		log.Fatal("Failed to load sphere config", zap.Error(err))
	}

	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	app := &App{
		cfg:   cfg,
		log:   log,
		site:  site,
		view:  view,
		store: st,
		admin: newAdminAuth(cfg, log),
		ctx:   ctx,
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           setupRouter(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g.Go(func() error {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		app.runVisitorRetention(ctx, 24*time.Hour)
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("Server stopped", zap.Error(err))
		return
	}
	log.Info("Server stopped")
}

func setupRouter(app *App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(app.log), app.visitorTrackingMiddleware())
	r.LoadHTMLGlob("templates/*")

	r.Static("/static", "./static")

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"site": app.site,
			"year": time.Now().Year(),
		})
	})

	r.GET("/api/content", func(c *gin.Context) {
		c.JSON(http.StatusOK, app.site)
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// HTMX contact form fragment
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title": "Contact Me",
		})
	})

	// Submissions are kept in the local inbox; nothing is emailed.
	r.POST("/contact", app.handleContact)

	setupAdminRoutes(r, app)
	setupSphereRoutes(r, app)

	return r
}

type contactForm struct {
	Name    string `form:"name" binding:"required,max=200"`
	Email   string `form:"email" binding:"required,email,max=320"`
	Message string `form:"message" binding:"required,max=5000"`
}

func (app *App) handleContact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "contact-error.html", gin.H{
			"error": contactErrorMessage(err),
		})
		return
	}
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Message = strings.TrimSpace(form.Message)
	if form.Name == "" || form.Message == "" {
		c.HTML(http.StatusBadRequest, "contact-error.html", gin.H{
			"error": "Please fill in your name and a message.",
		})
		return
	}

	hashed := app.admin.hashIP(c.ClientIP())
	msg, err := app.store.SaveMessage(c.Request.Context(), store.Message{
		Name:     form.Name,
		Email:    form.Email,
		Body:     form.Message,
		HashedIP: hashed,
	})
	if err != nil {
		app.log.Error("Error saving contact message", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	app.log.Info("Contact form submission (simulated)",
		zap.String("id", msg.ID),
		zap.String("client", hashed),
		zap.Int("length", len(msg.Body)),
	)
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Message Sent!",
		"detail":  "Thank you for your message! I'll get back to you soon.",
	})
}

func contactErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid form submission."
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return "Please fill in your " + field + "."
	case "email":
		return "Please enter a valid email address."
	case "max":
		return "Your " + field + " is too long."
	default:
		return "Please check your " + field + "."
	}
}

// requestLogger replaces gin's text logger with structured request lines.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
