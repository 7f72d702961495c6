package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 25)

	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, int64(25), p.TotalItems)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasPrev)
	assert.True(t, p.HasNext)
}

func TestNewPagination_FirstAndLastPage(t *testing.T) {
	first := NewPagination(1, 10, 25)
	assert.False(t, first.HasPrev)
	assert.True(t, first.HasNext)

	last := NewPagination(3, 10, 25)
	assert.True(t, last.HasPrev)
	assert.False(t, last.HasNext)
}

func TestNewPagination_ExactMultiple(t *testing.T) {
	p := NewPagination(2, 10, 20)
	assert.Equal(t, 2, p.TotalPages)
	assert.False(t, p.HasNext)
}

func TestNewPagination_EmptyResult(t *testing.T) {
	p := NewPagination(1, 12, 0)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasPrev)
	assert.False(t, p.HasNext)
}

func TestNewPagination_PagePastEnd(t *testing.T) {
	p := NewPagination(9, 10, 25)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasPrev)
	assert.False(t, p.HasNext)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 12))
	assert.Equal(t, 12, Offset(2, 12))
	assert.Equal(t, 0, Offset(0, 12))
}
