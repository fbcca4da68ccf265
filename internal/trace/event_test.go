package trace

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTraceID_GeneratesValidHex(t *testing.T) {
	id := NewTraceID()
	require.Len(t, id, 32)
	_, err := hex.DecodeString(id)
	assert.NoError(t, err)
	assert.NotEqual(t, id, NewTraceID())
}

func TestNewSpanID_GeneratesValidHex(t *testing.T) {
	id := NewSpanID()
	require.Len(t, id, 16)
	_, err := hex.DecodeString(id)
	assert.NoError(t, err)
	assert.NotEqual(t, id, NewSpanID())
}

func TestSpanClone_IsDeep(t *testing.T) {
	child := &Span{Name: "child", Attributes: map[string]string{"k": "v"}}
	root := &Span{Name: "root", Attributes: map[string]string{}, Children: []*Span{child}}

	c := root.clone()
	c.Children[0].Attributes["k"] = "changed"
	c.Children = append(c.Children, &Span{})

	assert.Equal(t, "v", child.Attributes["k"])
	assert.Len(t, root.Children, 1)
	assert.Nil(t, (*Span)(nil).clone())
}
