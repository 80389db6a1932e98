package status

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strideql/stride/pkg/stridepb"
)

func TestZeroValueIsOK(t *testing.T) {
	var s Status
	assert.True(t, s.IsOK())
	assert.NoError(t, s.AsError())
}

func TestFromError(t *testing.T) {
	assert.True(t, FromError(nil).IsOK())

	s := FromError(errors.New("disk failure"))
	assert.Equal(t, stridepb.StatusCode_RUNTIME_ERROR, s.Code())
	assert.Contains(t, s.Error(), "disk failure")

	// a Status error round-trips without re-wrapping
	orig := InternalErrorf("bad plan")
	back := FromError(orig.AsError())
	assert.Equal(t, stridepb.StatusCode_INTERNAL_ERROR, back.Code())
	assert.Equal(t, orig.Msgs(), back.Msgs())
}

func TestProtoRoundTrip(t *testing.T) {
	s := Errorf(stridepb.StatusCode_MEM_LIMIT_EXCEEDED, "limit %d exceeded", 1024)
	s.AddDetail("while aggregating")

	back := FromProto(s.ToProto())
	assert.Equal(t, s.Code(), back.Code())
	assert.Equal(t, s.Msgs(), back.Msgs())

	assert.True(t, FromProto(nil).IsOK())
}

func TestAddErrorKeepsFirstCode(t *testing.T) {
	s := Cancelled()
	s.AddError(InternalErrorf("late failure"))
	assert.True(t, s.IsCancelled())
	require.Len(t, s.Msgs(), 1)
	assert.Equal(t, "late failure", s.Msgs()[0])
}
