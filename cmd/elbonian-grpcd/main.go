package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"go.uber.org/zap"

	"xdao.co/elbonian/convertrpc"
	"xdao.co/elbonian/convertrpc/rpcconfig"
	"xdao.co/elbonian/internal/logging"
)

func main() {
	fs := flag.NewFlagSet("elbonian-grpcd", flag.ExitOnError)
	configPath := fs.String("config", "", "YAML config file")
	listen := fs.String("listen", "", "listen address (overrides config)")
	mode := fs.String("compliance", "", "permissive|strict (overrides config)")
	_ = fs.Parse(os.Args[1:])

	cfg, err := loadConfig(*configPath, *listen, *mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, _, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		logger.Error("listen failed", zap.String("addr", cfg.Listen), zap.Error(err))
		os.Exit(1)
	}
	defer lis.Close()

	s := convertrpc.NewGRPCServer(convertrpc.ServerOptions{
		Mode:        cfg.Mode(),
		MaxMsgBytes: cfg.MaxMsgBytes,
		Logger:      logger,
	})

	logger.Info("elbonian-grpcd listening",
		zap.String("addr", lis.Addr().String()),
		zap.String("compliance", cfg.Mode().String()),
	)
	if err := s.Serve(lis); err != nil {
		logger.Error("serve failed", zap.Error(err))
		os.Exit(1)
	}
}

// loadConfig reads the optional config file and applies flag overrides.
func loadConfig(path, listen, mode string) (rpcconfig.Config, error) {
	cfg := rpcconfig.Default()
	if path != "" {
		var err error
		if cfg, err = rpcconfig.LoadFile(path); err != nil {
			return cfg, err
		}
	}
	if listen != "" {
		cfg.Listen = listen
	}
	if mode != "" {
		cfg.Compliance = mode
	}
	return cfg, cfg.Validate()
}
