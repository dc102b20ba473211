package main

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/shortlink-lab/go-shortlinks/internal/app/server"
	"github.com/shortlink-lab/go-shortlinks/internal/app/service"
	"github.com/shortlink-lab/go-shortlinks/internal/config"
	"github.com/shortlink-lab/go-shortlinks/internal/logger"
	"github.com/shortlink-lab/go-shortlinks/internal/remotelog"
	"github.com/shortlink-lab/go-shortlinks/internal/storage"
	"github.com/shortlink-lab/go-shortlinks/internal/worker"
)

var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

func main() {
	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	cfg, err := config.Parse()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	l := logger.New()
	if err := l.Init(cfg.LogLevel); err != nil {
		log.Fatal(err)
	}
	defer l.Log.Sync()

	collector := remotelog.NewClient(cfg.LogAPIURL, cfg.LogAuthToken)
	dispatcher := remotelog.NewDispatcher(collector, l.Log)
	go dispatcher.Run()
	defer dispatcher.Close()

	store, err := storage.CreateMemoryStorage()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.SweepInterval != "" {
		interval, err := time.ParseDuration(cfg.SweepInterval)
		if err != nil {
			log.Fatal(err)
		}
		sweeper := worker.NewExpirySweeper(interval, store, l.Log)
		go sweeper.Run()
		defer sweeper.Stop()
	}

	linkService := service.NewLink(store, l.Log)
	r := server.Init(cfg.BaseScheme, l.Log, dispatcher, linkService)

	if cfg.EnablePprof {
		go func() {
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				l.Log.Error("pprof listener", zap.Error(err))
			}
		}()
	}

	addr := ":" + cfg.Port
	l.Log.Info("starting server", zap.String("addr", addr))

	if cfg.EnableHTTPS {
		manager := &autocert.Manager{
			Prompt:     autocert.AcceptTOS,
			Cache:      autocert.DirCache(".cache"),
			HostPolicy: autocert.HostWhitelist(cfg.TLSHosts...),
		}
		srv := &http.Server{
			Addr:      addr,
			Handler:   r,
			TLSConfig: manager.TLSConfig(),
		}
		log.Fatal(srv.ListenAndServeTLS("", ""))
	}

	log.Fatal(http.ListenAndServe(addr, r))
}
