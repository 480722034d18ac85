package main

import (
	"fmt"
	"net/http"
	"time"

	"circletrace/config"
	"circletrace/logger"
	"circletrace/network"
	"circletrace/session"
)

func main() {
	cfg := config.Load()
	logger.New()

	manager := session.NewManager(cfg.CanvasSize)
	srv := network.NewServer(manager)

	addr := fmt.Sprintf(":%s", cfg.Port)
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      srv.Routes(),
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	}

	logger.Info(logger.Fields{
		"addr":   addr,
		"env":    cfg.Environment,
		"canvas": cfg.CanvasSize,
	}, "starting circle trace server")

	if err := httpSrv.ListenAndServe(); err != nil {
		logger.Fatal(logger.Fields{"err": err.Error()}, "server stopped")
	}
}
