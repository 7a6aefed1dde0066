package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/korthochain/memkv/pkg/config"
	"github.com/korthochain/memkv/pkg/logger"
	"github.com/korthochain/memkv/pkg/server"
	"github.com/korthochain/memkv/pkg/server/statusserver"
	"github.com/korthochain/memkv/pkg/storage/store/mem"
	kvserver "github.com/korthochain/memkv/pkg/storage/store/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var cfgPath string

func main() {
	rootCmd := &cobra.Command{
		Use:          "memkv-server",
		Short:        "In-memory key-value server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "configuration file (default ./config/memkv.yaml)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.InitLogger(cfg.LogConfig); err != nil {
		return err
	}
	defer logger.Sync()

	db := mem.New()

	var opts []kvserver.Option
	opts = append(opts, kvserver.WithBufferSize(cfg.ServerCfg.BufferSize))
	if lc := cfg.LimiterCfg; lc.Enable {
		opts = append(opts, kvserver.WithAdmitter(server.NewIPLimiter(rate.Limit(lc.Rate), lc.Burst, lc.WhiteList)))
	}

	address := net.JoinHostPort(cfg.ServerCfg.Address, strconv.Itoa(cfg.ServerCfg.Port))
	s, err := kvserver.New(address, db, opts...)
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))
		return err
	}

	var status *statusserver.Server
	if cfg.StatusCfg.Address != "" {
		status = statusserver.NewServer(cfg.StatusCfg.Address, db, s.Metrics())
		go func() {
			if err := status.RunServer(); err != nil {
				logger.Error("status server stopped", zap.Error(err))
			}
		}()
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		sig := <-sc
		logger.Info("got signal, exiting", zap.String("signal", sig.String()))
		if status != nil {
			status.Shutdown()
		}
		s.Stop()
	}()

	return s.Run()
}
