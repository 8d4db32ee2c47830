// admin.go - privacy-conscious admin: inbox, visitor metrics and retention
package main

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Praveen-pk-pro/Portfolio-pk/internal/config"
	"github.com/Praveen-pk-pro/Portfolio-pk/internal/store"
)

type adminAuth struct {
	token    string
	salt     string
	username string
	password string
}

// newAdminAuth creates a fresh session token and IP hashing salt.
func newAdminAuth(cfg config.Config, log *zap.Logger) *adminAuth {
	a := &adminAuth{
		token:    generateAdminToken(),
		salt:     generateAdminToken(),
		username: cfg.AdminUsername,
		password: cfg.AdminPassword,
	}

	log.Info("Admin access available at /admin/login")
	if gin.Mode() == gin.DebugMode {
		log.Debug("Admin token (dev only)", zap.String("token", a.token))
		if cfg.UsesDefaultAdmin() {
			log.Warn("Using default admin credentials. Set ADMIN_USERNAME and ADMIN_PASSWORD.")
		}
	}
	log.Info("Privacy: visitor tracking enabled with hashed IP addresses")
	return a
}

func generateAdminToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		panic("failed to generate admin token: " + err.Error())
	}
	return hex.EncodeToString(bytes)
}

// Hash IP address for privacy compliance (consistent per IP for this process)
func (a *adminAuth) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + a.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

func (a *adminAuth) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

// Middleware to check admin authentication
func (a *adminAuth) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("admin_token")
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

var untrackedPrefixes = []string{
	"/static/",
	"/admin",
	"/api/",
	"/sphere/",
	"/favicon",
	"/privacy",
	"/healthz",
}

// Privacy-conscious visitor tracking middleware
func (app *App) visitorTrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || hasAnyPrefix(path, untrackedPrefixes) {
			c.Next()
			return
		}

		// Respect Do Not Track header
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		visit := store.Visit{
			HashedIP:  app.admin.hashIP(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := app.store.RecordVisit(ctx, visit); err != nil {
				app.log.Warn("Error recording visitor", zap.Error(err))
			}
		}()
		c.Next()
	}
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// runVisitorRetention removes expired visitor rows now and then every interval.
func (app *App) runVisitorRetention(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		app.cleanupOldVisitorData(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (app *App) cleanupOldVisitorData(ctx context.Context) {
	n, err := app.store.CleanupVisitors(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			app.log.Error("Error cleaning up old visitor data", zap.Error(err))
		}
		return
	}
	if n > 0 {
		app.log.Info("Privacy cleanup: removed visitor records older than 12 months", zap.Int64("rows", n))
	}
}

// Setup all admin routes
func setupAdminRoutes(r *gin.Engine, app *App) {
	a := app.admin

	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title": "Privacy Policy",
		})
	})

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		client := a.hashIP(c.ClientIP())
		if !a.checkCredentials(c.PostForm("username"), c.PostForm("password")) {
			app.log.Warn("Failed admin login attempt", zap.String("client", client))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"title": "Admin Login",
				"error": "Invalid credentials",
			})
			return
		}

		c.SetCookie("admin_token", a.token, 3600*24, "/admin", "", false, true)
		app.log.Info("Admin login successful", zap.String("client", client))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie("admin_token", "", -1, "/admin", "", false, true)
		app.log.Info("Admin logout", zap.String("client", a.hashIP(c.ClientIP())))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	adminGroup := r.Group("/admin")
	adminGroup.Use(a.middleware())

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		stats, err := app.store.Stats(c.Request.Context())
		if err != nil {
			app.log.Error("Error loading admin stats", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats": stats,
		})
	})

	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := app.store.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.GET("/messages", func(c *gin.Context) {
		msgs, err := app.store.Messages(c.Request.Context(), 200)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load messages"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"messages": msgs})
	})

	adminGroup.DELETE("/messages/:id", func(c *gin.Context) {
		id := c.Param("id")
		err := app.store.DeleteMessage(c.Request.Context(), id)
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		case err != nil:
			app.log.Error("Error deleting message", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
			return
		}
		app.log.Info("Message deleted by admin", zap.String("id", id), zap.String("client", a.hashIP(c.ClientIP())))
		c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
	})

	adminGroup.GET("/visitors", func(c *gin.Context) {
		visits, err := app.store.Visits(c.Request.Context(), 200)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load visitors"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"visitors": visits})
	})

	adminGroup.POST("/privacy/cleanup", func(c *gin.Context) {
		go app.cleanupOldVisitorData(context.Background())
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup initiated"})
	})

	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := app.store.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		app.log.Info("Admin stats exported", zap.String("client", a.hashIP(c.ClientIP())))
		c.JSON(http.StatusOK, stats)
	})
}
