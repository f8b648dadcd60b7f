// Package models holds the persisted record types of the moonadmin schema.
package models

import "time"

// Account is a login principal stored in the account table. Name is the
// derived login (first three characters of the first and last names) and is
// not required to be unique by the schema.
type Account struct {
	UserID    int64
	Name      string
	Password  string
	FirstName string
	LastName  string
	SSN       string
}

// MoonMission is a historical lunar mission record. Missions are seeded
// externally and are read-only from this application's perspective.
type MoonMission struct {
	MissionID  int64
	Spacecraft string
	LaunchDate time.Time
}
