package pkg

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"warp_ships/internal/app/config"
	"warp_ships/internal/app/handler"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	Handler *handler.Handler
	closers []io.Closer
}

func NewApp(c *config.Config, r *gin.Engine, h *handler.Handler, closers ...io.Closer) *Application {
	return &Application{
		Config:  c,
		Router:  r,
		Handler: h,
		closers: closers,
	}
}

// RunApp serves until SIGINT/SIGTERM, then drains in-flight requests and
// closes storage and cache.
func (a *Application) RunApp() {
	logrus.Info("Server start up")

	srv := &http.Server{
		Addr:              a.Config.Addr(),
		Handler:           a.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("graceful shutdown failed: %v", err)
	}

	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			logrus.Warnf("close: %v", err)
		}
	}

	logrus.Info("Server down")
}
