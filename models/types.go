package models

import "time"

// Error kinds reported in CastVoteResponse.Error
const (
	KindUnknownVoter     = "unknown_voter"
	KindAlreadyVoted     = "already_voted"
	KindUnderage         = "underage"
	KindUnknownCandidate = "unknown_candidate"
	KindInternal         = "internal"
)

// Request types

type CastVoteRequest struct {
	VoterID   string `json:"voter_id"`
	Candidate string `json:"candidate"`
}

// Response types

// Receipt is returned for every counted vote
type Receipt struct {
	BallotID  string    `json:"ballot_id"`
	VoterID   string    `json:"voter_id"`
	Candidate string    `json:"candidate"` // normalized key
	District  string    `json:"district"`
	CastAt    time.Time `json:"cast_at"`
}

type CastVoteResponse struct {
	OK      bool           `json:"ok"`
	Message string         `json:"message"`
	Error   string         `json:"error,omitempty"`
	Receipt *Receipt       `json:"receipt,omitempty"`
	Tally   map[string]int `json:"tally,omitempty"`
}

// Result types

type CandidateResult struct {
	Candidate string  `json:"candidate"`
	Votes     int     `json:"votes"`
	Share     float64 `json:"share"` // percent of all votes, 0-100
	Rank      int     `json:"rank"`  // 1-indexed ranking
}

type CandidateCount struct {
	Candidate string `json:"candidate"`
	Votes     int    `json:"votes"`
}

type DistrictResult struct {
	District string           `json:"district"`
	Total    int              `json:"total"`
	Counts   []CandidateCount `json:"counts"` // same order as ResultSnapshot.Rankings
}

type ResultSnapshot struct {
	ID         string            `json:"id"`
	ComputedAt time.Time         `json:"computed_at"`
	TotalVotes int               `json:"total_votes"`
	Winner     string            `json:"winner"`
	Rankings   []CandidateResult `json:"rankings"`
	Districts  []DistrictResult  `json:"districts"`
}
