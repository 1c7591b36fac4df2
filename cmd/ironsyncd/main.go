// Command ironsyncd runs the block-sync node as a standalone daemon:
// it opens the local chain store, joins the libp2p swarm, and drives
// the BlockSync state in a loop until the process is stopped.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/libp2p/go-libp2p"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/ironveil-chain/ironsync/chain/comms"
	"github.com/ironveil-chain/ironsync/chain/store"
	"github.com/ironveil-chain/ironsync/chain/sync"
	"github.com/ironveil-chain/ironsync/config"
	"github.com/ironveil-chain/ironsync/internal/xlog"
)

var logger = xlog.Logger("cmd")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var verbose bool
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "ironsyncd",
		Short: "Synchronize a local chain store against the best known network tip",
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				xlog.SetDebug()
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, metricsAddr)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", ":9090", "address to serve prometheus metrics on")

	return cmd
}

func run(ctx context.Context, cfg config.Config, metricsAddr string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := store.OpenBadgerBackend(cfg.Store.DataDir)
	if err != nil {
		return fmt.Errorf("opening chain store: %w", err)
	}
	adapter := store.NewAdapter(backend, cfg.Store.NumWorkers)
	defer adapter.Close()

	opts := make([]libp2p.Option, 0, len(cfg.Comms.ListenAddresses))
	for _, addr := range cfg.Comms.ListenAddresses {
		opts = append(opts, libp2p.ListenAddrStrings(addr))
	}
	host, err := libp2p.New(opts...)
	if err != nil {
		return fmt.Errorf("starting libp2p host: %w", err)
	}
	defer host.Close()

	transport := comms.NewLibP2PTransport(host)
	host.SetStreamHandler(comms.SyncProtocol, comms.ServeStream(adapter))

	commsClient := comms.NewClient(&comms.HostPeerSource{Host: host}, transport)

	driver := &sync.Driver{
		Store: adapter,
		Comms: commsClient,
		Config: sync.Config{
			MaxHeaderRequestRetryAttempts: cfg.Sync.MaxHeaderRequestRetryAttempts,
			MaxBlockRequestRetryAttempts:  cfg.Sync.MaxBlockRequestRetryAttempts,
		},
	}

	go serveMetrics(metricsAddr)

	logger.Infof("ironsyncd listening on %s", host.Addrs())
	return syncLoop(ctx, driver)
}

func syncLoop(ctx context.Context, driver *sync.Driver) error {
	info := sync.FromInitialSync()
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			event := driver.NextEvent(ctx, info)
			if event.Kind == sync.FatalError {
				return fmt.Errorf("block sync: %s", event.Message)
			}
		}
	}
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Warnf("metrics server stopped: %s", err)
	}
}
