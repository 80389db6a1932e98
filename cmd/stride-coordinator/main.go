package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"google.golang.org/grpc"

	"github.com/strideql/stride/pkg/coordinator"
	"github.com/strideql/stride/pkg/fsutil"
	"github.com/strideql/stride/pkg/rpcclient"
	"github.com/strideql/stride/pkg/scheduling"
	"github.com/strideql/stride/pkg/server"
	"github.com/strideql/stride/pkg/stridepb"
	"github.com/strideql/stride/pkg/util/grpcclient"
	"github.com/strideql/stride/pkg/util/log"
)

type config struct {
	log        log.Config
	client     grpcclient.Config
	listenAddr string
	hostname   string
	port       int
	backends   string
	namenode   string
}

func (cfg *config) registerFlags(f *flag.FlagSet) {
	cfg.log.RegisterFlags(f)
	cfg.client.RegisterFlagsWithPrefix("backend", f)
	f.StringVar(&cfg.listenAddr, "server.grpc-listen-address", ":21000", "Address the coordinator gRPC server listens on.")
	f.StringVar(&cfg.hostname, "coordinator.hostname", "localhost", "Hostname backends use to reach this coordinator.")
	f.IntVar(&cfg.port, "coordinator.port", 21000, "Port backends use to reach this coordinator.")
	f.StringVar(&cfg.backends, "scheduler.backends", "", "Comma-separated host:port list of query backends.")
	f.StringVar(&cfg.namenode, "fs.hdfs-namenode", "", "HDFS namenode address for INSERT finalization. Empty uses the local filesystem.")
}

func main() {
	var cfg config
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	cfg.registerFlags(fs)
	_ = fs.Parse(os.Args[1:])

	if err := log.InitLogger(&cfg.log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := log.Logger

	backends, err := parseBackends(cfg.backends)
	if err != nil {
		level.Error(logger).Log("msg", "invalid backend list", "err", err)
		os.Exit(1)
	}
	sched, err := scheduling.NewSimpleScheduler(backends)
	if err != nil {
		level.Error(logger).Log("msg", "failed to build scheduler", "err", err)
		os.Exit(1)
	}

	var fsClient fsutil.FsClient
	if cfg.namenode != "" {
		fsClient, err = fsutil.NewHdfsClient(cfg.namenode)
		if err != nil {
			level.Error(logger).Log("msg", "failed to connect to HDFS", "err", err)
			os.Exit(1)
		}
	} else {
		fsClient = fsutil.NewAferoClient(afero.NewOsFs())
	}

	reg := prometheus.DefaultRegisterer
	clients := rpcclient.NewCache(cfg.client, reg)
	coordAddress := &stridepb.HostPort{Hostname: cfg.hostname, Port: int32(cfg.port)}
	factory := coordinator.NewFactory(logger, clients, fsClient, sched, coordAddress, nil, reg)
	factory.ConnectParallelism = cfg.client.ConnectParallel

	registry := server.NewRegistry()
	grpcServer := grpc.NewServer(
		grpc.MaxRecvMsgSize(cfg.client.MaxRecvMsgSize),
		grpc.MaxSendMsgSize(cfg.client.MaxSendMsgSize),
	)
	server.NewCoordinatorServer(logger, registry, factory).RegisterGRPC(grpcServer)

	lis, err := net.Listen("tcp", cfg.listenAddr)
	if err != nil {
		level.Error(logger).Log("msg", "failed to listen", "addr", cfg.listenAddr, "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log("msg", "coordinator listening", "addr", cfg.listenAddr, "backends", len(backends))
	if err := grpcServer.Serve(lis); err != nil {
		level.Error(logger).Log("msg", "grpc server stopped", "err", err)
		os.Exit(1)
	}
}

func parseBackends(list string) ([]*stridepb.HostPort, error) {
	var out []*stridepb.HostPort
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		host, portStr, err := net.SplitHostPort(entry)
		if err != nil {
			return nil, fmt.Errorf("backend %q: %w", entry, err)
		}
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("backend %q: %w", entry, err)
		}
		hp := &stridepb.HostPort{Port: int32(port)}
		if net.ParseIP(host) != nil {
			hp.IpAddress = host
		} else {
			hp.Hostname = host
		}
		out = append(out, hp)
	}
	return out, nil
}
