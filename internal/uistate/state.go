package uistate

import (
	"errors"
	"time"
)

// Tab identifies one of the dashboard's top-level views. The set is closed;
// there is no navigation stack and no transition is forbidden.
type Tab string

const (
	TabHome         Tab = "home"
	TabDoctorList   Tab = "doctorList"
	TabAddDoctor    Tab = "addDoctor"
	TabAppointments Tab = "appointments"
	TabSettings     Tab = "settings"
)

// ErrUnknownTab is returned when selecting a tab outside the closed set.
var ErrUnknownTab = errors.New("unknown tab")

func ValidTab(t Tab) bool {
	switch t {
	case TabHome, TabDoctorList, TabAddDoctor, TabAppointments, TabSettings:
		return true
	}
	return false
}

// State is one client's UI state: the flat tab selector plus the external
// "logged in" marker. It carries no business data.
type State struct {
	ActiveTab Tab       `json:"activeTab"`
	LoggedIn  bool      `json:"loggedIn"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewState returns the initial state: home tab.
func NewState() *State {
	return &State{ActiveTab: TabHome, UpdatedAt: time.Now().UTC()}
}

// Select records the active tab. Pure state transition, no side effects
// beyond the recorded value.
func (s *State) Select(t Tab) error {
	if !ValidTab(t) {
		return ErrUnknownTab
	}
	s.ActiveTab = t
	s.UpdatedAt = time.Now().UTC()
	return nil
}
