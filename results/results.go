// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package results

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-elect/ledger"
	"github.com/danielhkuo/quickly-elect/models"
)

// Compute builds a ranked snapshot of the election's current state.
// Every part of the snapshot comes from one ledger state, and the winner
// is always the top-ranked candidate.
func Compute(e *ledger.Election) models.ResultSnapshot {
	st := e.Snapshot()
	rankings := RankCandidates(st.Candidates, st.Tally)

	districts := make([]models.DistrictResult, 0, len(st.Districts))
	for _, district := range st.Districts {
		districtTally := st.ByDistrict[district]
		result := models.DistrictResult{
			District: district,
			Counts:   make([]models.CandidateCount, 0, len(rankings)),
		}
		for _, r := range rankings {
			n := districtTally[r.Candidate]
			result.Counts = append(result.Counts, models.CandidateCount{
				Candidate: r.Candidate,
				Votes:     n,
			})
			result.Total += n
		}
		districts = append(districts, result)
	}

	var winner string
	if len(rankings) > 0 {
		winner = rankings[0].Candidate
	}

	return models.ResultSnapshot{
		ID:         uuid.NewString(),
		ComputedAt: time.Now().UTC(),
		TotalVotes: st.Total,
		Winner:     winner,
		Rankings:   rankings,
		Districts:  districts,
	}
}

// RankCandidates orders candidates by votes, highest first.
// Equal counts keep the order of candidates.
func RankCandidates(candidates []string, tally map[string]int) []models.CandidateResult {
	total := 0
	for _, c := range candidates {
		total += tally[c]
	}

	rankings := make([]models.CandidateResult, 0, len(candidates))
	for _, c := range candidates {
		rankings = append(rankings, models.CandidateResult{
			Candidate: c,
			Votes:     tally[c],
			Share:     share(tally[c], total),
		})
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].Votes > rankings[j].Votes
	})

	for i := range rankings {
		rankings[i].Rank = i + 1
	}
	return rankings
}

// MaxVotes returns the largest single-candidate count in the snapshot
func MaxVotes(snap models.ResultSnapshot) int {
	maxVotes := 0
	for _, r := range snap.Rankings {
		if r.Votes > maxVotes {
			maxVotes = r.Votes
		}
	}
	return maxVotes
}

func share(votes, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(votes) * 100 / float64(total)
}
