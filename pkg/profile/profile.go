// Package profile implements the runtime profile tree reported by fragment
// instances and aggregated by the query coordinator. Counter values are
// atomics so that readers never need the tree's lock.
package profile

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/dustin/go-humanize"
	"go.uber.org/atomic"

	"github.com/strideql/stride/pkg/stridepb"
)

// Counter names shared between scan nodes and the coordinator's aggregation.
const (
	TotalThroughputCounterName    = "TotalReadThroughput"
	ScanRangesCompleteCounterName = "ScanRangesComplete"
	TotalTimeCounterName          = "TotalTime"
)

type Counter struct {
	name  string
	unit  stridepb.CounterUnit
	value atomic.Int64
}

func (c *Counter) Name() string               { return c.name }
func (c *Counter) Unit() stridepb.CounterUnit { return c.unit }
func (c *Counter) Value() int64               { return c.value.Load() }
func (c *Counter) Set(v int64)                { c.value.Store(v) }
func (c *Counter) Add(delta int64)            { c.value.Add(delta) }

// DerivedFn computes a counter value on demand, typically by summing counters
// across several profiles.
type DerivedFn func() int64

type derivedCounter struct {
	name string
	unit stridepb.CounterUnit
	fn   DerivedFn
}

// Profile is one node of a profile tree.
type Profile struct {
	mu sync.Mutex

	name       string
	planNodeID int32

	counters     map[string]*Counter
	counterOrder []string
	derived      []derivedCounter
	infoStrings  map[string]string
	infoOrder    []string
	children     []*Profile
}

func New(name string) *Profile {
	return NewWithID(name, stridepb.InvalidPlanNodeID)
}

func NewWithID(name string, planNodeID int32) *Profile {
	return &Profile{
		name:        name,
		planNodeID:  planNodeID,
		counters:    map[string]*Counter{},
		infoStrings: map[string]string{},
	}
}

func (p *Profile) Name() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.name
}

func (p *Profile) SetName(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.name = name
}

func (p *Profile) PlanNodeID() int32 {
	return p.planNodeID
}

// AddCounter returns the named counter, creating it if needed.
func (p *Profile) AddCounter(name string, unit stridepb.CounterUnit) *Counter {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.addCounterLocked(name, unit)
}

func (p *Profile) addCounterLocked(name string, unit stridepb.CounterUnit) *Counter {
	if c, found := p.counters[name]; found {
		return c
	}
	c := &Counter{name: name, unit: unit}
	p.counters[name] = c
	p.counterOrder = append(p.counterOrder, name)
	return c
}

// GetCounter returns the named counter or nil. The returned pointer may be
// dereferenced without holding any profile lock.
func (p *Profile) GetCounter(name string) *Counter {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.counters[name]
}

// AddDerivedCounter registers a counter whose value is computed on demand.
func (p *Profile) AddDerivedCounter(name string, unit stridepb.CounterUnit, fn DerivedFn) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.derived = append(p.derived, derivedCounter{name: name, unit: unit, fn: fn})
}

func (p *Profile) AddInfoString(key, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, found := p.infoStrings[key]; !found {
		p.infoOrder = append(p.infoOrder, key)
	}
	p.infoStrings[key] = value
}

func (p *Profile) InfoString(key string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, found := p.infoStrings[key]
	return v, found
}

// AddChild appends child to p's children.
func (p *Profile) AddChild(child *Profile) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.children = append(p.children, child)
}

// InsertChildAfter places child immediately after the given sibling, or first
// if after is nil or not a child of p.
func (p *Profile) InsertChildAfter(child, after *Profile) {
	p.mu.Lock()
	defer p.mu.Unlock()
	pos := 0
	if after != nil {
		for i, c := range p.children {
			if c == after {
				pos = i + 1
				break
			}
		}
	}
	p.children = append(p.children, nil)
	copy(p.children[pos+1:], p.children[pos:])
	p.children[pos] = child
}

func (p *Profile) Children() []*Profile {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*Profile(nil), p.children...)
}

// AllChildren returns every profile in the subtree rooted at p, excluding p,
// in pre-order.
func (p *Profile) AllChildren() []*Profile {
	var out []*Profile
	for _, c := range p.Children() {
		out = append(out, c)
		out = append(out, c.AllChildren()...)
	}
	return out
}

func (p *Profile) childByName(name string) *Profile {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, c := range p.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// Update applies a cumulative snapshot to the tree in place: counter values
// are overwritten, info strings replaced, missing counters and children
// created. Matching is by name.
func (p *Profile) Update(node *stridepb.ProfileNodeProto) {
	if node == nil {
		return
	}
	p.mu.Lock()
	for _, c := range node.Counters {
		p.addCounterLocked(c.Name, c.Unit).Set(c.Value)
	}
	for _, k := range sortedKeys(node.InfoStrings) {
		if _, found := p.infoStrings[k]; !found {
			p.infoOrder = append(p.infoOrder, k)
		}
		p.infoStrings[k] = node.InfoStrings[k]
	}
	p.mu.Unlock()

	for _, childNode := range node.Children {
		child := p.childByName(childNode.Name)
		if child == nil {
			child = NewWithID(childNode.Name, childNode.PlanNodeId)
			p.AddChild(child)
		}
		child.Update(childNode)
	}
}

// FromProto builds a new tree from a snapshot.
func FromProto(node *stridepb.ProfileNodeProto) *Profile {
	p := NewWithID(node.GetName(), node.GetPlanNodeId())
	p.Update(node)
	return p
}

func (p *Profile) ToProto() *stridepb.ProfileNodeProto {
	p.mu.Lock()
	node := &stridepb.ProfileNodeProto{
		Name:       p.name,
		PlanNodeId: p.planNodeID,
	}
	for _, name := range p.counterOrder {
		c := p.counters[name]
		node.Counters = append(node.Counters, &stridepb.CounterProto{Name: c.name, Unit: c.unit, Value: c.Value()})
	}
	for _, d := range p.derived {
		node.Counters = append(node.Counters, &stridepb.CounterProto{Name: d.name, Unit: d.unit, Value: d.fn()})
	}
	if len(p.infoStrings) > 0 {
		node.InfoStrings = make(map[string]string, len(p.infoStrings))
		for k, v := range p.infoStrings {
			node.InfoStrings[k] = v
		}
	}
	children := append([]*Profile(nil), p.children...)
	p.mu.Unlock()

	for _, c := range children {
		node.Children = append(node.Children, c.ToProto())
	}
	return node
}

// Merge adds other's counter values into p, recursing into children by name.
// Used to build averaged per-fragment profiles before Divide.
func (p *Profile) Merge(other *Profile) {
	other.mu.Lock()
	counters := make([]*Counter, 0, len(other.counterOrder))
	for _, name := range other.counterOrder {
		counters = append(counters, other.counters[name])
	}
	children := append([]*Profile(nil), other.children...)
	other.mu.Unlock()

	p.mu.Lock()
	for _, c := range counters {
		p.addCounterLocked(c.name, c.unit).Add(c.Value())
	}
	p.mu.Unlock()

	for _, otherChild := range children {
		child := p.childByName(otherChild.Name())
		if child == nil {
			child = NewWithID(otherChild.Name(), otherChild.PlanNodeID())
			p.AddChild(child)
		}
		child.Merge(otherChild)
	}
}

// Divide divides every counter in the subtree by n.
func (p *Profile) Divide(n int) {
	if n <= 0 {
		return
	}
	p.mu.Lock()
	for _, c := range p.counters {
		c.Set(c.Value() / int64(n))
	}
	children := append([]*Profile(nil), p.children...)
	p.mu.Unlock()
	for _, c := range children {
		c.Divide(n)
	}
}

// PrettyPrint renders the subtree for logs.
func (p *Profile) PrettyPrint(w io.Writer, prefix string) {
	p.mu.Lock()
	fmt.Fprintf(w, "%s%s:\n", prefix, p.name)
	for _, name := range p.counterOrder {
		c := p.counters[name]
		fmt.Fprintf(w, "%s   - %s: %s\n", prefix, name, formatValue(c.Value(), c.unit))
	}
	for _, d := range p.derived {
		fmt.Fprintf(w, "%s   - %s: %s\n", prefix, d.name, formatValue(d.fn(), d.unit))
	}
	for _, k := range p.infoOrder {
		fmt.Fprintf(w, "%s   %s: %s\n", prefix, k, p.infoStrings[k])
	}
	children := append([]*Profile(nil), p.children...)
	p.mu.Unlock()

	for _, c := range children {
		c.PrettyPrint(w, prefix+"  ")
	}
}

func formatValue(v int64, unit stridepb.CounterUnit) string {
	switch unit {
	case stridepb.CounterUnit_BYTES:
		return humanize.IBytes(uint64(v))
	case stridepb.CounterUnit_BYTES_PER_SECOND:
		return humanize.IBytes(uint64(v)) + "/s"
	case stridepb.CounterUnit_TIME_NS:
		return fmt.Sprintf("%dns", v)
	default:
		return humanize.Comma(v)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
