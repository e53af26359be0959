// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

// MinimumVotingAge is the youngest age allowed to cast a vote
const MinimumVotingAge = 18

// Voter is a registered person and their eligibility state.
// Voted flips to true once, on a successful vote, and is never reset.
type Voter struct {
	Name    string
	Age     int
	VoterID string
	Origin  string // district label
	Voted   bool
}

func NewVoter(name string, age int, voterID, origin string) *Voter {
	return &Voter{
		Name:    name,
		Age:     age,
		VoterID: voterID,
		Origin:  origin,
	}
}

// Vote marks the voter as having voted.
// It does not guard against a second call; Election.CastVote does that.
func (v *Voter) Vote() error {
	if !v.Eligible() {
		return ErrUnderage
	}
	v.Voted = true
	return nil
}

// Eligible reports whether the voter is old enough to vote
func (v *Voter) Eligible() bool {
	return v.Age >= MinimumVotingAge
}
