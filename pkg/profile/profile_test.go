package profile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strideql/stride/pkg/stridepb"
)

func TestUpdateAppliesCumulativeSnapshots(t *testing.T) {
	p := New("Instance")

	snapshot := &stridepb.ProfileNodeProto{
		Name: "Instance",
		Counters: []*stridepb.CounterProto{
			{Name: "RowsProduced", Unit: stridepb.CounterUnit_UNIT, Value: 10},
		},
		Children: []*stridepb.ProfileNodeProto{{
			Name:       "SCAN",
			PlanNodeId: 0,
			Counters: []*stridepb.CounterProto{
				{Name: ScanRangesCompleteCounterName, Unit: stridepb.CounterUnit_UNIT, Value: 1},
			},
		}},
	}
	p.Update(snapshot)

	scan := p.Children()[0]
	ctr := scan.GetCounter(ScanRangesCompleteCounterName)
	require.NotNil(t, ctr)
	assert.Equal(t, int64(1), ctr.Value())

	// counters are set, not added, and the cached pointer stays valid
	snapshot.Children[0].Counters[0].Value = 5
	p.Update(snapshot)
	assert.Equal(t, int64(5), ctr.Value())
	assert.Equal(t, int64(10), p.GetCounter("RowsProduced").Value())
	// no duplicate children were created
	assert.Len(t, p.Children(), 1)
}

func TestMergeAndDivide(t *testing.T) {
	a := FromProto(&stridepb.ProfileNodeProto{
		Name:     "Fragment",
		Counters: []*stridepb.CounterProto{{Name: "Rows", Unit: stridepb.CounterUnit_UNIT, Value: 10}},
	})
	b := FromProto(&stridepb.ProfileNodeProto{
		Name:     "Fragment",
		Counters: []*stridepb.CounterProto{{Name: "Rows", Unit: stridepb.CounterUnit_UNIT, Value: 30}},
	})

	avg := New("Averaged Fragment")
	avg.Merge(a)
	avg.Merge(b)
	avg.Divide(2)

	assert.Equal(t, int64(20), avg.GetCounter("Rows").Value())
}

func TestDerivedCounters(t *testing.T) {
	p := New("Query")
	backing := p.AddCounter("Completed", stridepb.CounterUnit_UNIT)
	p.AddDerivedCounter("CompletedTwice", stridepb.CounterUnit_UNIT, func() int64 {
		return 2 * backing.Value()
	})
	backing.Set(21)

	proto := p.ToProto()
	var derived int64
	for _, ctr := range proto.Counters {
		if ctr.Name == "CompletedTwice" {
			derived = ctr.Value
		}
	}
	assert.Equal(t, int64(42), derived)
}

func TestAllChildrenPreOrder(t *testing.T) {
	root := New("root")
	left := New("left")
	leftChild := New("left.child")
	right := New("right")
	root.AddChild(left)
	left.AddChild(leftChild)
	root.AddChild(right)

	names := []string{}
	for _, c := range root.AllChildren() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"left", "left.child", "right"}, names)
}

func TestInsertChildAfter(t *testing.T) {
	root := New("root")
	first := New("first")
	third := New("third")
	root.AddChild(first)
	root.AddChild(third)

	second := New("second")
	root.InsertChildAfter(second, first)

	names := []string{}
	for _, c := range root.Children() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"first", "second", "third"}, names)
}

func TestPrettyPrintFormatsUnits(t *testing.T) {
	p := New("root")
	p.AddCounter("BytesRead", stridepb.CounterUnit_BYTES).Set(2 << 20)
	p.AddInfoString("table", "db.tbl")

	var buf bytes.Buffer
	p.PrettyPrint(&buf, "")
	out := buf.String()
	assert.Contains(t, out, "root:")
	assert.Contains(t, out, "2.0 MiB")
	assert.Contains(t, out, "table: db.tbl")
}
