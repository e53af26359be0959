package roster

import (
	"errors"
	"testing"

	"github.com/danielhkuo/quickly-elect/ledger"
	"github.com/danielhkuo/quickly-elect/testutil"
)

func TestDefaultVoters(t *testing.T) {
	voters := DefaultVoters()
	if len(voters) != 10 {
		t.Fatalf("expected 10 voters, got %d", len(voters))
	}

	underage := 0
	for _, v := range voters {
		if !v.Eligible() {
			underage++
		}
	}
	if underage != 1 {
		t.Errorf("expected exactly one underage voter, got %d", underage)
	}

	// Each call returns fresh records
	voters[0].Voted = true
	if DefaultVoters()[0].Voted {
		t.Error("DefaultVoters should not share records between calls")
	}
}

func TestRegister(t *testing.T) {
	e := testutil.NewTestElection(t, DefaultCandidates...)
	if err := Register(e, DefaultVoters()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if e.RegisteredVoters() != 10 {
		t.Errorf("expected 10 registered voters, got %d", e.RegisteredVoters())
	}
	want := []string{"District A", "District B", "District C", "District D"}
	got := e.Districts()
	if len(got) != len(want) {
		t.Fatalf("expected districts %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected districts %v, got %v", want, got)
			break
		}
	}

	// Registering the roster twice hits the duplicate check
	if err := Register(e, DefaultVoters()); !errors.Is(err, ledger.ErrDuplicateVoter) {
		t.Errorf("expected ErrDuplicateVoter, got %v", err)
	}
}

func TestRegister_NilVoter(t *testing.T) {
	e := testutil.NewTestElection(t)
	if err := Register(e, []*ledger.Voter{nil}); !errors.Is(err, ledger.ErrInvalidVoter) {
		t.Errorf("expected ErrInvalidVoter, got %v", err)
	}
}
