// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-elect/models"
)

// Election is the in-memory ledger: candidates, tallies and the voter registry.
// All methods are safe for concurrent use.
type Election struct {
	mu sync.Mutex

	candidates      []string // normalized, insertion order
	candidateSet    map[string]bool
	votes           map[string]int
	votesByDistrict map[string]map[string]int
	districts       []string // first-sight order
	registry        map[string]*Voter
	voterDistrict   map[string]string // district recorded at registration

	logger *slog.Logger
	now    func() time.Time
}

type Option func(*Election)

// WithLogger sets the logger used for ledger events
func WithLogger(logger *slog.Logger) Option {
	return func(e *Election) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClock overrides the time source used for receipts
func WithClock(now func() time.Time) Option {
	return func(e *Election) {
		if now != nil {
			e.now = now
		}
	}
}

// NormalizeCandidate returns the tally key for a candidate name
func NormalizeCandidate(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NewElection creates a ledger for the given candidates.
// Names are case-folded; two names that fold to the same key are rejected.
func NewElection(candidates []string, opts ...Option) (*Election, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	e := &Election{
		candidateSet:    make(map[string]bool, len(candidates)),
		votes:           make(map[string]int, len(candidates)),
		votesByDistrict: make(map[string]map[string]int),
		registry:        make(map[string]*Voter),
		voterDistrict:   make(map[string]string),
		logger:          slog.Default(),
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	for _, name := range candidates {
		key := NormalizeCandidate(name)
		if key == "" {
			return nil, ErrInvalidCandidateName
		}
		if e.candidateSet[key] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCandidate, key)
		}
		e.candidateSet[key] = true
		e.candidates = append(e.candidates, key)
		e.votes[key] = 0
	}

	return e, nil
}

// RegisterVoter adds a voter to the registry and makes sure their district
// has a tally. The registry keeps the pointer; later changes made through
// the ledger are visible to the caller. The district is fixed at
// registration: editing Origin afterwards does not move the voter's vote.
func (e *Election) RegisterVoter(v *Voter) error {
	if v == nil || strings.TrimSpace(v.VoterID) == "" || v.Age < 0 {
		return ErrInvalidVoter
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.registry[v.VoterID]; exists {
		e.logger.Warn("duplicate voter registration rejected", "voter_id", v.VoterID)
		return fmt.Errorf("%w: %s", ErrDuplicateVoter, v.VoterID)
	}

	e.registry[v.VoterID] = v
	e.voterDistrict[v.VoterID] = v.Origin
	if _, ok := e.votesByDistrict[v.Origin]; !ok {
		e.votesByDistrict[v.Origin] = e.zeroTally()
		e.districts = append(e.districts, v.Origin)
	}

	e.logger.Debug("voter registered", "voter_id", v.VoterID, "district", v.Origin)
	return nil
}

// CastVote records one vote for candidate on behalf of voterID.
// Checks run in a fixed order: unknown voter, already voted, underage,
// unknown candidate. A rejected vote leaves the ledger untouched.
func (e *Election) CastVote(voterID, candidate string) (models.Receipt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	voter, ok := e.registry[voterID]
	if !ok {
		return models.Receipt{}, ErrUnknownVoter
	}
	if voter.Voted {
		return models.Receipt{}, ErrAlreadyVoted
	}
	if !voter.Eligible() {
		return models.Receipt{}, ErrUnderage
	}
	key := NormalizeCandidate(candidate)
	if !e.candidateSet[key] {
		return models.Receipt{}, ErrUnknownCandidate
	}
	district := e.voterDistrict[voterID]
	districtTally, ok := e.votesByDistrict[district]
	if !ok {
		return models.Receipt{}, fmt.Errorf("no tally for district %q", district)
	}

	// Eligibility was checked above, so Vote cannot fail here.
	if err := voter.Vote(); err != nil {
		return models.Receipt{}, err
	}
	e.votes[key]++
	districtTally[key]++

	receipt := models.Receipt{
		BallotID:  uuid.NewString(),
		VoterID:   voter.VoterID,
		Candidate: key,
		District:  district,
		CastAt:    e.now().UTC(),
	}

	e.logger.Debug("vote cast",
		"ballot_id", receipt.BallotID,
		"voter_id", receipt.VoterID,
		"candidate", receipt.Candidate,
		"district", receipt.District,
	)
	return receipt, nil
}

// State is a consistent copy of the ledger's counts, taken under one lock
type State struct {
	Candidates []string
	Tally      map[string]int
	ByDistrict map[string]map[string]int
	Districts  []string
	Total      int
}

// Snapshot copies candidates, tallies and districts in one step, so the
// parts always agree with each other.
func (e *Election) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := State{
		Candidates: append([]string(nil), e.candidates...),
		Tally:      copyTally(e.votes),
		ByDistrict: make(map[string]map[string]int, len(e.votesByDistrict)),
		Districts:  append([]string(nil), e.districts...),
	}
	for district, tally := range e.votesByDistrict {
		st.ByDistrict[district] = copyTally(tally)
	}
	for _, n := range e.votes {
		st.Total += n
	}
	return st
}

// TallyVotes returns a copy of the global tally
func (e *Election) TallyVotes() map[string]int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return copyTally(e.votes)
}

// VotesByDistrict returns a deep copy of the per-district tallies
func (e *Election) VotesByDistrict() map[string]map[string]int {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make(map[string]map[string]int, len(e.votesByDistrict))
	for district, tally := range e.votesByDistrict {
		out[district] = copyTally(tally)
	}
	return out
}

// DeclareWinner returns the candidate with the most votes.
// Ties go to the candidate listed first when the election was created,
// so with no votes cast the first candidate is returned.
func (e *Election) DeclareWinner() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	winner := e.candidates[0]
	for _, c := range e.candidates[1:] {
		if e.votes[c] > e.votes[winner] {
			winner = c
		}
	}
	return winner
}

// Candidates returns the normalized candidate keys in insertion order
func (e *Election) Candidates() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]string(nil), e.candidates...)
}

// Districts returns district labels in the order they were first registered
func (e *Election) Districts() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]string(nil), e.districts...)
}

// TotalVotes returns the number of counted votes
func (e *Election) TotalVotes() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	total := 0
	for _, n := range e.votes {
		total += n
	}
	return total
}

// Voter looks up a registered voter. The result is a copy.
func (e *Election) Voter(voterID string) (Voter, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	v, ok := e.registry[voterID]
	if !ok {
		return Voter{}, false
	}
	return *v, true
}

// RegisteredVoters returns the number of voters in the registry
func (e *Election) RegisteredVoters() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.registry)
}

func (e *Election) zeroTally() map[string]int {
	tally := make(map[string]int, len(e.candidates))
	for _, c := range e.candidates {
		tally[c] = 0
	}
	return tally
}

func copyTally(src map[string]int) map[string]int {
	dst := make(map[string]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
