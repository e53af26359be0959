package main

import (
	"bytes"
	"testing"

	"github.com/danielhkuo/quickly-elect/roster"
	"github.com/danielhkuo/quickly-elect/testutil"
)

func TestPrintSummary(t *testing.T) {
	e := testutil.NewTestElection(t, roster.DefaultCandidates...)
	if err := roster.Register(e, roster.DefaultVoters()); err != nil {
		t.Fatal(err)
	}
	testutil.MustCastVote(t, e, "ID001", "Kiiza")
	testutil.MustCastVote(t, e, "ID002", "aliwo")
	testutil.MustCastVote(t, e, "ID0010", "ALIWO")

	var buf bytes.Buffer
	printSummary(&buf, e)

	want := "Votes tally: obama: 0, robert: 0, kiiza: 1, aliwo: 2\nThe winner is: aliwo\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}
