package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit_Name(t *testing.T) {
	s := Split{Stem: "example", TLD: "com"}
	assert.Equal(t, "example.com", s.Name())
}

func TestCandidate_AppendRecord(t *testing.T) {
	var c Candidate
	assert.False(t, c.HasRecords())

	c.AppendRecord(RecordA, "1.2.3.4")
	c.AppendRecord(RecordA, "5.6.7.8")
	c.AppendRecord(RecordMX, "mail.example.com")

	assert.True(t, c.HasRecords())
	assert.Equal(t, []string{"1.2.3.4", "5.6.7.8"}, c.Records[RecordA])
	assert.Equal(t, []string{"mail.example.com"}, c.Records[RecordMX])
}

func TestCandidateSet_AddDeduplicatesByName(t *testing.T) {
	set := NewCandidateSet()

	added := set.Add(Candidate{Algorithm: Original, Name: "example.com"})
	assert.True(t, added)

	added = set.Add(Candidate{Algorithm: Addition, Name: "example.com"})
	assert.False(t, added, "second insert of the same name must be a no-op")

	assert.Equal(t, 1, set.Len())
	assert.Equal(t, Original, set.Slice()[0].Algorithm, "first-inserted tag wins")
}

func TestCandidateSet_PreservesInsertionOrder(t *testing.T) {
	set := NewCandidateSet()
	names := []string{"c.com", "a.com", "b.com"}
	for _, n := range names {
		set.Add(Candidate{Algorithm: Original, Name: n})
	}

	got := set.Slice()
	require := assert.New(t)
	require.Len(got, 3)
	for i, n := range names {
		require.Equal(n, got[i].Name)
	}
}

func TestCandidateSet_ConcurrentAdd(t *testing.T) {
	set := NewCandidateSet()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			set.Add(Candidate{Algorithm: Original, Name: "dup.com"})
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, set.Len())
}

func TestSuccessList_AppendAndFreeze(t *testing.T) {
	list := NewSuccessList()
	list.Append(Candidate{Name: "a.com"})
	list.Append(Candidate{Name: "b.com"})

	assert.Equal(t, 2, list.Len())
	frozen := list.Freeze()
	assert.Len(t, frozen, 2)

	list.Append(Candidate{Name: "c.com"})
	assert.Len(t, frozen, 2, "a previously frozen snapshot must not observe later appends")
}
