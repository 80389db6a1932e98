// Package grpcclient holds shared client-side gRPC settings for connections
// to query backends.
package grpcclient

import (
	"flag"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Config for a gRPC client.
type Config struct {
	MaxRecvMsgSize  int  `yaml:"max_recv_msg_size"`
	MaxSendMsgSize  int  `yaml:"max_send_msg_size"`
	UseGzip         bool `yaml:"use_gzip_compression"`
	MaxIdleClients  int  `yaml:"max_idle_clients"`
	ConnectParallel int  `yaml:"connect_parallelism"`
}

// RegisterFlagsWithPrefix registers flags with prefix.
func (cfg *Config) RegisterFlagsWithPrefix(prefix string, f *flag.FlagSet) {
	f.IntVar(&cfg.MaxRecvMsgSize, prefix+".grpc-max-recv-msg-size", 100<<20, "gRPC client max receive message size (bytes).")
	f.IntVar(&cfg.MaxSendMsgSize, prefix+".grpc-max-send-msg-size", 16<<20, "gRPC client max send message size (bytes).")
	f.BoolVar(&cfg.UseGzip, prefix+".grpc-use-gzip-compression", false, "Use compression when sending messages.")
	f.IntVar(&cfg.MaxIdleClients, prefix+".max-idle-clients", 4, "Max idle client connections kept per backend address.")
	f.IntVar(&cfg.ConnectParallel, prefix+".connect-parallelism", 8, "Max fragment start RPCs issued in parallel per fragment.")
}

// CallOptions returns the config in terms of grpc.CallOptions.
func (cfg *Config) CallOptions() []grpc.CallOption {
	var opts []grpc.CallOption
	opts = append(opts, grpc.MaxCallRecvMsgSize(cfg.MaxRecvMsgSize))
	opts = append(opts, grpc.MaxCallSendMsgSize(cfg.MaxSendMsgSize))
	if cfg.UseGzip {
		opts = append(opts, grpc.UseCompressor("gzip"))
	}
	return opts
}

// DialOption returns the config as a set of grpc.DialOptions.
func (cfg *Config) DialOption() []grpc.DialOption {
	return []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(cfg.CallOptions()...),
	}
}
