// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package console drives an election from a line-oriented prompt.

# Single Requests

Submit handles one vote and returns the outcome without touching the prompt:

	resp := session.Submit(models.CastVoteRequest{VoterID: "ID001", Candidate: "obama"})
	if !resp.OK {
		fmt.Println(resp.Message) // e.g. "voter has already voted"
	}

# Interactive Loop

Run repeats three prompts:

	Enter your voter ID:
	Enter the candidate you wish to vote for:
	Are there more voters? (yes/no):

After each attempt it prints either "Vote cast successfully!" followed by
the running tally, or the rejection message. Any answer other than "yes"
ends the loop. End of input also ends it without an error; cancelling the
context returns ctx.Err(), and a read error (such as an over-long line) is
returned as is.

A session starts one reader goroutine the first time Run is called and keeps
it for the life of the input, so calling Run again picks up at the next
unread line.
*/
package console
