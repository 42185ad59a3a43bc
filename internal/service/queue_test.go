package service

import (
	"testing"

	"github.com/benbeisheim/chess-engine/internal/testutil"
)

func TestQueue_PairsInArrivalOrder(t *testing.T) {
	q := NewQueue()
	for _, id := range []string{"alice", "bob", "carol"} {
		testutil.AssertNoError(t, q.AddPlayer(Player{ID: id}))
	}
	testutil.AssertEqual(t, q.Size(), 3)

	p1, p2, ok := q.GetNextPair()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, p1.ID, "alice")
	testutil.AssertEqual(t, p2.ID, "bob")

	_, _, ok = q.GetNextPair()
	testutil.AssertFalse(t, ok, "one player left")
	testutil.AssertEqual(t, q.Size(), 1)
}

func TestQueue_RejectsDuplicates(t *testing.T) {
	q := NewQueue()
	testutil.AssertNoError(t, q.AddPlayer(Player{ID: "alice"}))
	testutil.AssertErrorIs(t, q.AddPlayer(Player{ID: "alice"}), ErrAlreadyQueued)
	testutil.AssertEqual(t, q.Size(), 1)
}

func TestQueue_Remove(t *testing.T) {
	q := NewQueue()
	testutil.AssertNoError(t, q.AddPlayer(Player{ID: "alice"}))
	testutil.AssertNoError(t, q.AddPlayer(Player{ID: "bob"}))

	testutil.AssertTrue(t, q.Remove("alice"))
	testutil.AssertFalse(t, q.Remove("alice"))
	testutil.AssertEqual(t, q.Size(), 1)
}
