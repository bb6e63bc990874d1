package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ardanlabs/conf/v3"
	"github.com/google/uuid"
	"github.com/studysense/goEmotionFusion/business/worker"
	"github.com/studysense/goEmotionFusion/foundation/config"
	"github.com/studysense/goEmotionFusion/foundation/external/dashboard"
	"github.com/studysense/goEmotionFusion/foundation/fusion"
	"github.com/studysense/goEmotionFusion/foundation/logger"
	"github.com/studysense/goEmotionFusion/foundation/redis"
	"github.com/studysense/goEmotionFusion/foundation/smoothing"
)

var (
	version   string
	buildTime string
)

func main() {
	// =================================================================================================================
	// Configuration

	cfg := struct {
		conf.Version
		Session struct {
			ProfileID       string `conf:"default:study-desk"`
			ProfileFilePath string `conf:"default:/etc/goFusion/profiles.json,noprint"`
		}
		Facial struct {
			Endpoint string `conf:"default:http://127.0.0.1:5051/classify/facial"`
			ApiKey   string `conf:"default:fc132465,noprint"`
		}
		Voice struct {
			Endpoint string `conf:"default:http://127.0.0.1:5052/classify/voice"`
			ApiKey   string `conf:"default:vc132465,noprint"`
		}
		Text struct {
			Endpoint string `conf:"default:http://127.0.0.1:5053/classify/sentiment"`
		}
		Dashboard struct {
			Scheme string `conf:"default:ws"`
			Host   string `conf:"default:127.0.0.1:8080"`
			Path   string `conf:"default:/fusion"`
			ApiKey string `conf:"default:db132465,noprint"`
		}
		Redis struct {
			Address        string `conf:"default:127.0.0.1:6379"`
			Password       string `conf:"default:,noprint"`
			EmotionChannel string `conf:"default:fusion:emotion"`
		}
		Logger struct {
			LogDirectory string `conf:"default:/var/log/goFusion/sessions/,noprint"`
		}
	}{
		Version: conf.Version{
			Build: version,
			Desc:  buildTime,
		},
	}

	// Configuration Parsing
	_, err := conf.Parse("", &cfg)
	if err != nil {
		os.Exit(1)
	}

	// =================================================================================================================
	// Version Checking Support

	displayVersion := flag.Bool("version", false, "Display version and exit")
	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		fmt.Printf("Build time:\t%s\n", buildTime)
		os.Exit(0)
	}

	// =================================================================================================================
	// Session Identity

	sessionID := uuid.New().String()

	// =================================================================================================================
	// Application Logger

	log, err := logger.New(cfg.Logger.LogDirectory, sessionID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		os.Exit(1)
	}
	defer log.Sync()

	// =================================================================================================================
	// Set Profile Configuration

	profile, err := config.GetProfile(cfg.Session.ProfileFilePath, cfg.Session.ProfileID)
	if err != nil {
		log.Errorw("startup", "ERROR", err)
	}

	// =================================================================================================================
	// Configuration Stringify

	out, err := conf.String(&cfg)
	if err != nil {
		log.Errorw("startup", "ERROR", err)
	}
	log.Infow("startup", "config", out, "sessionID", sessionID)

	// =================================================================================================================
	// Fusion Engine and Smoother

	fatigue := config.GetFatigue(profile)

	engine := fusion.NewEngine(fusion.Config{
		FacialWeight: config.GetFacialWeight(profile),
		VoiceWeight:  config.GetVoiceWeight(profile),
		TextWeight:   config.GetTextWeight(profile),
		HistoryLimit: config.GetHistoryLimit(profile),
		Fatigue: fusion.Fatigue{
			TiredAfterSec:     fatigue.TiredAfterSec,
			TiredBias:         fatigue.TiredBias,
			ExhaustedAfterSec: fatigue.ExhaustedAfterSec,
			ExhaustedBias:     fatigue.ExhaustedBias,
		},
	})

	smoother := smoothing.New(config.GetSmootherWindow(profile))

	// =================================================================================================================
	// Redis

	redisClient, err := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.EmotionChannel, log)
	if err != nil {
		log.Errorw("startup", "ERROR", err)
	}

	// =================================================================================================================
	// Dashboard

	dashboardSocket, err := dashboard.New(cfg.Dashboard.Scheme, cfg.Dashboard.Host, cfg.Dashboard.Path, cfg.Dashboard.ApiKey)
	if err != nil {
		log.Errorw("startup", "ERROR", err)
		os.Exit(1)
	}
	defer dashboardSocket.Close()

	// =================================================================================================================
	// Run Worker

	workerCh := worker.Run(worker.Settings{
		Logger:    log,
		Engine:    engine,
		Smoother:  smoother,
		Dashboard: dashboardSocket,
		Redis:     redisClient,
		Config: worker.Config{
			SessionID:      sessionID,
			ProfileID:      cfg.Session.ProfileID,
			FacialEndpoint: cfg.Facial.Endpoint,
			FacialApiKey:   cfg.Facial.ApiKey,
			VoiceEndpoint:  cfg.Voice.Endpoint,
			VoiceApiKey:    cfg.Voice.ApiKey,
			TextEndpoint:   cfg.Text.Endpoint,
			FacialInterval: config.GetFacialInterval(profile),
			VoiceInterval:  config.GetVoiceInterval(profile),
			TextInterval:   config.GetTextInterval(profile),
		},
	})

	// Blocking main and waiting for error or shutdown.
	err = <-workerCh

	log.Infow("shutdown", "status", "shutdown started")
	defer log.Infow("shutdown", "status", "shutdown complete")

	if err != nil {
		log.Errorw("shutdown", "ERROR", err)
	}
}
