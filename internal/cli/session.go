// Package cli implements the interactive terminal session: the login loop,
// the fixed menu, and the dispatch of menu actions to the service layer.
// Input and output are injectable so tests can drive the session with
// scripted input.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/bamsemats/moonadmin/internal/common"
	"github.com/bamsemats/moonadmin/internal/models"
)

// state is the session's position in its lifecycle. Terminated is final.
type state int

const (
	stateLoggedOut state = iota
	stateAuthRetry
	stateMenuActive
	stateTerminated
)

// Authenticator is the minimal login surface the session needs.
type Authenticator interface {
	ValidateLogin(ctx context.Context, username, password string) (bool, error)
}

// MissionQueries is the read-only mission surface of the menu.
type MissionQueries interface {
	ListMissions(ctx context.Context) ([]string, error)
	GetMissionByID(ctx context.Context, missionID int64) (*models.MoonMission, error)
	CountMissionsByYear(ctx context.Context, year int) (int64, error)
}

// AccountCommands is the mutating account surface of the menu.
type AccountCommands interface {
	CreateAccount(ctx context.Context, firstName, lastName, ssn, password string) (bool, error)
	UpdatePassword(ctx context.Context, userID int64, newPassword string) (bool, error)
	DeleteAccount(ctx context.Context, userID int64) (bool, error)
}

// Session drives the interactive state machine:
//
//	LoggedOut -> MenuActive        on successful login
//	LoggedOut -> AuthRetry         on failed login
//	AuthRetry -> Terminated        on the "0" exit token
//	AuthRetry -> LoggedOut         on any other token (unbounded retries)
//	MenuActive -> Terminated       on the "0" menu entry
//
// Store failures propagate out of Run and are fatal; malformed input,
// not-found lookups, and zero-row mutations are printed and the loop
// continues.
type Session struct {
	auth     Authenticator
	missions MissionQueries
	accounts AccountCommands
	reader   *bufio.Reader
	w        io.Writer
	userName string
}

func NewSession(auth Authenticator, missions MissionQueries, accounts AccountCommands, r io.Reader, w io.Writer) *Session {
	return &Session{
		auth:     auth,
		missions: missions,
		accounts: accounts,
		reader:   bufio.NewReader(r),
		w:        w,
	}
}

// Run executes the session until it terminates. The returned error is a
// store-level failure and means the process should exit non-zero; EOF on
// input terminates the session cleanly.
func (s *Session) Run(ctx context.Context) error {
	st := stateLoggedOut
	for st != stateTerminated {
		var err error
		switch st {
		case stateLoggedOut:
			st, err = s.login(ctx)
		case stateAuthRetry:
			st, err = s.authRetry()
		case stateMenuActive:
			st, err = s.menu(ctx)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
	}
	fmt.Fprintln(s.w, "Bye!")
	return nil
}

func (s *Session) login(ctx context.Context) (state, error) {
	username, err := GetSimpleText(s.reader, "Username:", s.w)
	if err != nil {
		return stateTerminated, err
	}
	password, err := GetPassword(s.reader, "Password:", s.w)
	if err != nil {
		return stateTerminated, err
	}

	ok, err := s.auth.ValidateLogin(ctx, username, password)
	if err != nil {
		return stateTerminated, err
	}
	if !ok {
		return stateAuthRetry, nil
	}

	s.userName = username
	return stateMenuActive, nil
}

func (s *Session) authRetry() (state, error) {
	fmt.Fprintln(s.w, "Invalid username or password")
	token, err := GetSimpleText(s.reader, "0) Exit", s.w)
	if err != nil {
		return stateTerminated, err
	}
	if token == "0" {
		return stateTerminated, nil
	}
	return stateLoggedOut, nil
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.w, "1) List moon missions")
	fmt.Fprintln(s.w, "2) Get a moon mission by mission_id")
	fmt.Fprintln(s.w, "3) Count missions for a given year")
	fmt.Fprintln(s.w, "4) Create an account")
	fmt.Fprintln(s.w, "5) Update an account password")
	fmt.Fprintln(s.w, "6) Delete an account")
	fmt.Fprintln(s.w, "0) Exit")
}

func (s *Session) menu(ctx context.Context) (state, error) {
	s.printMenu()

	token, err := GetSimpleText(s.reader, ">", s.w)
	if err != nil {
		return stateTerminated, err
	}

	switch ParseCommand(token) {
	case CommandExit:
		return stateTerminated, nil
	case CommandListMissions:
		err = s.listMissions(ctx)
	case CommandGetMission:
		err = s.getMission(ctx)
	case CommandCountMissions:
		err = s.countMissions(ctx)
	case CommandCreateAccount:
		err = s.createAccount(ctx)
	case CommandUpdatePassword:
		err = s.updatePassword(ctx)
	case CommandDeleteAccount:
		err = s.deleteAccount(ctx)
	default:
		fmt.Fprintln(s.w, "Invalid option")
	}

	if err != nil {
		return stateTerminated, err
	}
	return stateMenuActive, nil
}

func (s *Session) listMissions(ctx context.Context) error {
	names, err := s.missions.ListMissions(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(s.w, name)
	}
	return nil
}

func (s *Session) getMission(ctx context.Context) error {
	raw, err := GetSimpleText(s.reader, "Enter mission_id:", s.w)
	if err != nil {
		return err
	}
	id, perr := strconv.ParseInt(raw, 10, 64)
	if perr != nil {
		fmt.Fprintln(s.w, "Invalid mission id")
		return nil
	}

	mission, err := s.missions.GetMissionByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Fprintln(s.w, "Mission not found")
			return nil
		}
		return err
	}

	fmt.Fprintf(s.w, "%s (launched %s)\n", mission.Spacecraft, mission.LaunchDate.Format("2006-01-02"))
	return nil
}

func (s *Session) countMissions(ctx context.Context) error {
	raw, err := GetSimpleText(s.reader, "Enter year:", s.w)
	if err != nil {
		return err
	}
	year, perr := strconv.Atoi(raw)
	if perr != nil {
		fmt.Fprintln(s.w, "Invalid year")
		return nil
	}

	count, err := s.missions.CountMissionsByYear(ctx, year)
	if err != nil {
		if errors.Is(err, common.ErrYearOutOfRange) {
			fmt.Fprintln(s.w, "Year must be between 1 and the current year")
			return nil
		}
		return err
	}

	fmt.Fprintln(s.w, count)
	return nil
}

func (s *Session) createAccount(ctx context.Context) error {
	firstName, err := GetSimpleText(s.reader, "First name:", s.w)
	if err != nil {
		return err
	}
	lastName, err := GetSimpleText(s.reader, "Last name:", s.w)
	if err != nil {
		return err
	}
	ssn, err := GetSimpleText(s.reader, "SSN:", s.w)
	if err != nil {
		return err
	}
	password, err := GetPassword(s.reader, "Password:", s.w)
	if err != nil {
		return err
	}

	ok, err := s.accounts.CreateAccount(ctx, firstName, lastName, ssn, password)
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintln(s.w, "Account created")
	} else {
		fmt.Fprintln(s.w, "Failed to create account")
	}
	return nil
}

func (s *Session) updatePassword(ctx context.Context) error {
	raw, err := GetSimpleText(s.reader, "Enter user_id:", s.w)
	if err != nil {
		return err
	}
	id, perr := strconv.ParseInt(raw, 10, 64)
	if perr != nil {
		fmt.Fprintln(s.w, "Invalid user id")
		return nil
	}
	password, err := GetPassword(s.reader, "New password:", s.w)
	if err != nil {
		return err
	}

	ok, err := s.accounts.UpdatePassword(ctx, id, password)
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintln(s.w, "Password updated")
	} else {
		fmt.Fprintln(s.w, "Failed to update password")
	}
	return nil
}

func (s *Session) deleteAccount(ctx context.Context) error {
	raw, err := GetSimpleText(s.reader, "Enter user_id:", s.w)
	if err != nil {
		return err
	}
	id, perr := strconv.ParseInt(raw, 10, 64)
	if perr != nil {
		fmt.Fprintln(s.w, "Invalid user id")
		return nil
	}

	ok, err := s.accounts.DeleteAccount(ctx, id)
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintln(s.w, "Account deleted")
	} else {
		fmt.Fprintln(s.w, "Failed to delete account")
	}
	return nil
}
