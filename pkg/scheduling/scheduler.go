package scheduling

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/strideql/stride/pkg/stridepb"
)

// Scheduler maps the data hosts advertising scan range replicas to the
// worker hosts that will read them. GetHosts returns one exec host per data
// host, parallel to the input; it never fails for a non-empty input.
type Scheduler interface {
	GetHosts(dataHosts []*stridepb.HostPort) ([]*stridepb.HostPort, error)
}

// SimpleScheduler serves hosts from a fixed membership list. A data host
// colocated with a worker maps to that worker; everything else is assigned
// round-robin.
type SimpleScheduler struct {
	mu       sync.Mutex
	backends []*stridepb.HostPort
	byHost   map[string]*stridepb.HostPort
	next     int
}

func NewSimpleScheduler(backends []*stridepb.HostPort) (*SimpleScheduler, error) {
	if len(backends) == 0 {
		return nil, errors.New("simple scheduler requires at least one backend")
	}
	byHost := make(map[string]*stridepb.HostPort, len(backends))
	for _, b := range backends {
		if b.GetIpAddress() != "" {
			byHost[b.GetIpAddress()] = b
		}
		if b.GetHostname() != "" {
			byHost[b.GetHostname()] = b
		}
	}
	return &SimpleScheduler{backends: backends, byHost: byHost}, nil
}

func (s *SimpleScheduler) GetHosts(dataHosts []*stridepb.HostPort) ([]*stridepb.HostPort, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	execHosts := make([]*stridepb.HostPort, 0, len(dataHosts))
	for _, dh := range dataHosts {
		if b, found := s.byHost[dh.GetIpAddress()]; found {
			execHosts = append(execHosts, b)
			continue
		}
		if b, found := s.byHost[dh.GetHostname()]; found {
			execHosts = append(execHosts, b)
			continue
		}
		execHosts = append(execHosts, s.backends[s.next%len(s.backends)])
		s.next++
	}
	return execHosts, nil
}
