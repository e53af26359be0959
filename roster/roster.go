// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package roster provides the startup candidates and voter records.
package roster

import (
	"fmt"

	"github.com/danielhkuo/quickly-elect/ledger"
)

// DefaultCandidates is used when no candidates are configured
var DefaultCandidates = []string{"Obama", "Robert", "Kiiza", "Aliwo"}

type entry struct {
	name     string
	age      int
	voterID  string
	district string
}

var defaultEntries = []entry{
	{"Alicia Maya", 30, "ID001", "District A"},
	{"Alina Okla", 25, "ID002", "District B"},
	{"Akuna Matata", 16, "ID003", "District C"}, // underage
	{"Roger Ake", 26, "ID004", "District D"},
	{"Ali Ako", 29, "ID005", "District C"},
	{"Ana Bella", 46, "ID006", "District D"},
	{"Ruth Kats", 40, "ID007", "District D"},
	{"Ali Kats", 48, "ID008", "District C"},
	{"Abaho Patrick", 30, "ID009", "District D"},
	{"Ruth Alic", 60, "ID0010", "District B"},
}

// DefaultVoters returns fresh voter records for the default roster
func DefaultVoters() []*ledger.Voter {
	voters := make([]*ledger.Voter, 0, len(defaultEntries))
	for _, e := range defaultEntries {
		voters = append(voters, ledger.NewVoter(e.name, e.age, e.voterID, e.district))
	}
	return voters
}

// Register adds every voter to the election, stopping at the first error
func Register(e *ledger.Election, voters []*ledger.Voter) error {
	for i, v := range voters {
		if v == nil {
			return fmt.Errorf("failed to register voter #%d: %w", i, ledger.ErrInvalidVoter)
		}
		if err := e.RegisterVoter(v); err != nil {
			return fmt.Errorf("failed to register voter %s: %w", v.VoterID, err)
		}
	}
	return nil
}
