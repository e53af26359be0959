// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"errors"
	"log/slog"
	"time"

	"github.com/danielhkuo/quickly-elect/ledger"
	"github.com/danielhkuo/quickly-elect/models"
)

// CastFunc handles a single vote request
type CastFunc func(req models.CastVoteRequest) models.CastVoteResponse

// WithLogging wraps a CastFunc with attempt logging
func WithLogging(logger *slog.Logger, next CastFunc) CastFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(req models.CastVoteRequest) models.CastVoteResponse {
		start := time.Now()

		logger.Debug("vote attempt started",
			"voter_id", req.VoterID,
			"candidate", req.Candidate,
		)

		resp := next(req)

		duration := time.Since(start)
		if resp.OK {
			logger.Info("vote attempt completed",
				"voter_id", req.VoterID,
				"candidate", req.Candidate,
				"duration_ms", duration.Milliseconds(),
			)
		} else {
			logger.Warn("vote attempt rejected",
				"voter_id", req.VoterID,
				"candidate", req.Candidate,
				"error", resp.Error,
				"duration_ms", duration.Milliseconds(),
			)
		}
		return resp
	}
}

// ErrorResponse builds a failed response from a ledger error
func ErrorResponse(err error) models.CastVoteResponse {
	return models.CastVoteResponse{
		OK:      false,
		Error:   ErrorKind(err),
		Message: err.Error(),
	}
}

// ErrorKind maps a ledger error to its stable kind string
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ledger.ErrUnknownVoter):
		return models.KindUnknownVoter
	case errors.Is(err, ledger.ErrAlreadyVoted):
		return models.KindAlreadyVoted
	case errors.Is(err, ledger.ErrUnderage):
		return models.KindUnderage
	case errors.Is(err, ledger.ErrUnknownCandidate):
		return models.KindUnknownCandidate
	default:
		return models.KindInternal
	}
}
