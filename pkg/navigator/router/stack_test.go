package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	s := NewStack()
	assert.True(t, s.IsEmpty())
	assert.Nil(t, s.Peek())
	assert.Nil(t, s.Pop())

	s.Push(Entry{ID: "1", Pattern: "A"})
	s.Push(Entry{ID: "2", Pattern: "B"})
	s.Push(Entry{ID: "3", Pattern: "A"})
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "3", s.Peek().ID)

	assert.Equal(t, 2, s.LastIndexOf("A"))
	assert.Equal(t, 1, s.LastIndexOf("B"))
	assert.Equal(t, -1, s.LastIndexOf("C"))

	top := s.Pop()
	require.NotNil(t, top)
	assert.Equal(t, "3", top.ID)
	assert.Equal(t, 0, s.LastIndexOf("A"))

	s.Clear()
	assert.True(t, s.IsEmpty())
}

func TestStack_Truncate(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantLen int
	}{
		{name: "keep two", n: 2, wantLen: 2},
		{name: "keep all", n: 3, wantLen: 3},
		{name: "beyond length", n: 10, wantLen: 3},
		{name: "zero", n: 0, wantLen: 0},
		{name: "negative", n: -1, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStack()
			s.Push(Entry{ID: "1"})
			s.Push(Entry{ID: "2"})
			s.Push(Entry{ID: "3"})

			s.Truncate(tt.n)
			assert.Equal(t, tt.wantLen, s.Len())
		})
	}
}

func TestStack_EntriesAreCopies(t *testing.T) {
	s := NewStack()
	s.Push(Entry{ID: "1", Params: Params{"k": "v"}})

	entries := s.Entries()
	entries[0].Params["k"] = "changed"
	entries[0].ID = "changed"

	assert.Equal(t, "1", s.Peek().ID)
	assert.Equal(t, "v", s.Peek().Params["k"])
}
