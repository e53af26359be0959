package results

import (
	"math"
	"testing"

	"github.com/danielhkuo/quickly-elect/models"
	"github.com/danielhkuo/quickly-elect/testutil"
)

func TestCompute_Scenario(t *testing.T) {
	e := testutil.ScenarioElection(t)
	testutil.MustCastVote(t, e, "ID1", "obama")
	testutil.MustCastVote(t, e, "ID2", "robert")
	testutil.MustCastVote(t, e, "ID4", "obama")

	snap := Compute(e)

	if snap.ID == "" {
		t.Error("snapshot should have an ID")
	}
	if snap.TotalVotes != 3 {
		t.Errorf("expected 3 total votes, got %d", snap.TotalVotes)
	}
	if snap.Winner != "obama" {
		t.Errorf("expected winner obama, got %s", snap.Winner)
	}

	if len(snap.Rankings) != 2 {
		t.Fatalf("expected 2 rankings, got %d", len(snap.Rankings))
	}
	first, second := snap.Rankings[0], snap.Rankings[1]
	if first.Candidate != "obama" || first.Votes != 2 || first.Rank != 1 {
		t.Errorf("unexpected first ranking %+v", first)
	}
	if second.Candidate != "robert" || second.Votes != 1 || second.Rank != 2 {
		t.Errorf("unexpected second ranking %+v", second)
	}
	if math.Abs(first.Share-66.666) > 0.01 || math.Abs(second.Share-33.333) > 0.01 {
		t.Errorf("unexpected shares %.3f / %.3f", first.Share, second.Share)
	}

	wantDistricts := []string{"District A", "District B", "District C", "District D"}
	if len(snap.Districts) != len(wantDistricts) {
		t.Fatalf("expected %d districts, got %d", len(wantDistricts), len(snap.Districts))
	}
	for i, d := range snap.Districts {
		if d.District != wantDistricts[i] {
			t.Errorf("district %d: expected %s, got %s", i, wantDistricts[i], d.District)
		}
	}

	// District C only has the underage voter
	if snap.Districts[2].Total != 0 {
		t.Errorf("District C should have no votes, got %d", snap.Districts[2].Total)
	}
	b := snap.Districts[1]
	if b.Counts[0].Candidate != "obama" || b.Counts[1].Candidate != "robert" || b.Counts[1].Votes != 1 {
		t.Errorf("unexpected District B counts %+v", b.Counts)
	}
}

func TestCompute_NoVotes(t *testing.T) {
	e := testutil.NewTestElection(t, "Kiiza", "Aliwo")

	snap := Compute(e)

	if snap.TotalVotes != 0 {
		t.Errorf("expected 0 votes, got %d", snap.TotalVotes)
	}
	if len(snap.Districts) != 0 {
		t.Errorf("expected no districts, got %d", len(snap.Districts))
	}
	for _, r := range snap.Rankings {
		if r.Share != 0 {
			t.Errorf("share should be 0 with no votes, got %f", r.Share)
		}
	}
	if snap.Winner != "kiiza" || snap.Rankings[0].Candidate != snap.Winner {
		t.Errorf("winner and first ranking should agree: %s vs %s", snap.Winner, snap.Rankings[0].Candidate)
	}
}

func TestCompute_WinnerIsTopRanked(t *testing.T) {
	e := testutil.NewTestElection(t, "Kiiza", "Aliwo", "Robert")
	testutil.RegisterTestVoter(t, e, "V1", 40, "North")
	testutil.RegisterTestVoter(t, e, "V2", 40, "North")
	testutil.RegisterTestVoter(t, e, "V3", 40, "South")
	testutil.MustCastVote(t, e, "V1", "aliwo")
	testutil.MustCastVote(t, e, "V2", "robert")
	testutil.MustCastVote(t, e, "V3", "robert")

	snap := Compute(e)

	if snap.Winner != "robert" || snap.Rankings[0].Candidate != snap.Winner {
		t.Errorf("winner %s should be the first ranking %s", snap.Winner, snap.Rankings[0].Candidate)
	}
	districtSum := 0
	for _, d := range snap.Districts {
		districtSum += d.Total
	}
	if districtSum != snap.TotalVotes || snap.TotalVotes != 3 {
		t.Errorf("district totals %d should match total votes %d", districtSum, snap.TotalVotes)
	}
}

func TestRankCandidates_StableTies(t *testing.T) {
	candidates := []string{"robert", "obama", "kiiza"}
	tally := map[string]int{"robert": 1, "obama": 1, "kiiza": 3}

	rankings := RankCandidates(candidates, tally)

	want := []string{"kiiza", "robert", "obama"}
	for i, r := range rankings {
		if r.Candidate != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], r.Candidate)
		}
		if r.Rank != i+1 {
			t.Errorf("position %d: expected rank %d, got %d", i, i+1, r.Rank)
		}
	}
}

func TestMaxVotes(t *testing.T) {
	snap := models.ResultSnapshot{Rankings: []models.CandidateResult{
		{Candidate: "a", Votes: 4},
		{Candidate: "b", Votes: 9},
	}}
	if got := MaxVotes(snap); got != 9 {
		t.Errorf("expected 9, got %d", got)
	}
	if got := MaxVotes(models.ResultSnapshot{}); got != 0 {
		t.Errorf("expected 0 for empty snapshot, got %d", got)
	}
}
