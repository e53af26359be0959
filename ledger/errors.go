// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import "errors"

// Vote rejections, in the order CastVote checks them.
var (
	ErrUnknownVoter     = errors.New("invalid voter ID")
	ErrAlreadyVoted     = errors.New("voter has already voted")
	ErrUnderage         = errors.New("voter must be at least 18 years old to vote")
	ErrUnknownCandidate = errors.New("invalid candidate")
)

var (
	ErrNoCandidates         = errors.New("at least one candidate is required")
	ErrInvalidCandidateName = errors.New("candidate name cannot be blank")
	ErrDuplicateCandidate   = errors.New("duplicate candidate")
	ErrInvalidVoter         = errors.New("invalid voter record")
	ErrDuplicateVoter       = errors.New("voter ID already registered")
)
