package services

import (
	"fmt"
	"time"
)

// fileNumberAllocator hands out sequential display file numbers of the form
// FN-{year}-{000000} within one import batch. Numbering is batch-relative:
// the caller supplies the starting sequence and only created accounts consume
// a number, so a batch that creates n accounts uses exactly start..start+n-1.
type fileNumberAllocator struct {
	year int
	next int
}

func newFileNumberAllocator(now time.Time, start int) *fileNumberAllocator {
	if start <= 0 {
		start = 1
	}
	return &fileNumberAllocator{
		year: now.Year(),
		next: start,
	}
}

// Next returns the next file number and advances the sequence.
func (a *fileNumberAllocator) Next() string {
	n := a.next
	a.next++
	return fmt.Sprintf("FN-%d-%06d", a.year, n)
}
