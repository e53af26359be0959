// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides wrappers around the vote-cast boundary.

# Logging

WithLogging logs every attempt with its outcome and duration:

	submit := middleware.WithLogging(logger, session.submit)

Accepted votes log at Info, rejected ones at Warn with the error kind.

# Error Responses

ErrorResponse turns a ledger error into a CastVoteResponse:

	{OK: false, Error: "underage", Message: "voter must be at least 18 years old to vote"}

Unrecognized errors map to the "internal" kind.
*/
package middleware
