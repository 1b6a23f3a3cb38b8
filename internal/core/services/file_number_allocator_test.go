package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFileNumberAllocator_SequentialFromStart(t *testing.T) {
	now := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)
	alloc := newFileNumberAllocator(now, 41)

	assert.Equal(t, "FN-2026-000041", alloc.Next())
	assert.Equal(t, "FN-2026-000042", alloc.Next())
	assert.Equal(t, "FN-2026-000043", alloc.Next())
}

func TestFileNumberAllocator_NonPositiveStartDefaultsToOne(t *testing.T) {
	now := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)

	for _, start := range []int{0, -5} {
		alloc := newFileNumberAllocator(now, start)
		assert.Equal(t, "FN-2026-000001", alloc.Next(), fmt.Sprintf("start=%d", start))
	}
}

func TestFileNumberAllocator_PadsToSixDigits(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	alloc := newFileNumberAllocator(now, 999999)
	assert.Equal(t, "FN-2026-999999", alloc.Next())
	assert.Equal(t, "FN-2026-1000000", alloc.Next(), "sequence keeps counting past the pad width")
}
