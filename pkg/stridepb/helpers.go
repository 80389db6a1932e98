package stridepb

import "fmt"

// InvalidPlanNodeID marks profile nodes that do not belong to a plan node.
const InvalidPlanNodeID = int32(-1)

// PrintID renders a UniqueID the way it appears in logs and error messages.
func PrintID(id *UniqueID) string {
	if id == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%x:%x", id.Hi, id.Lo)
}

// Equal reports whether two ids name the same query or fragment instance.
func (m *UniqueID) Equal(other *UniqueID) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.Hi == other.Hi && m.Lo == other.Lo
}

// Key returns the canonical map key for a host. Data hosts and exec hosts are
// always keyed by ip:port so that differing hostnames for the same address
// collapse to one entry.
func (m *HostPort) Key() string {
	addr := m.GetIpAddress()
	if addr == "" {
		addr = m.GetHostname()
	}
	return fmt.Sprintf("%s:%d", addr, m.GetPort())
}

// Addr returns the dialable address of the host.
func (m *HostPort) Addr() string {
	return m.Key()
}

// Clone returns a copy safe to hold beyond the lifetime of the request that
// carried m.
func (m *HostPort) Clone() *HostPort {
	if m == nil {
		return nil
	}
	return &HostPort{Hostname: m.Hostname, IpAddress: m.IpAddress, Port: m.Port}
}

// Length returns the number of bytes covered by the range, or 0 for ranges
// without size information (KV ranges).
func (m *ScanRange) Length() int64 {
	if split := m.GetHdfsFileSplit(); split != nil {
		return split.Length
	}
	return 0
}

// IsScanNode reports whether the node type reads from storage.
func (t PlanNodeType) IsScanNode() bool {
	return t == PlanNodeType_HDFS_SCAN_NODE || t == PlanNodeType_HBASE_SCAN_NODE
}
