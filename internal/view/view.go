package view

import (
	"time"

	"github.com/clinicdash/clinicdash/internal/appointment"
	"github.com/clinicdash/clinicdash/internal/doctor"
	"github.com/clinicdash/clinicdash/internal/uistate"
)

// Stateless shaping of store snapshots and edit-session buffers into the
// JSON view models the frontend renders. No network, no mutation.

type StatCard struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type DashboardView struct {
	ActiveTab uistate.Tab `json:"activeTab"`
	LoggedIn  bool        `json:"loggedIn"`
	Stats     []StatCard  `json:"stats"`
}

// Dashboard builds the home-tab stat cards from live data (the original's
// hardcoded numbers, made real).
func Dashboard(st *uistate.State, doctors []doctor.Record, appointments []appointment.Record) DashboardView {
	premium := 0
	for _, d := range doctors {
		if d.Attributes.Premium {
			premium++
		}
	}
	return DashboardView{
		ActiveTab: st.ActiveTab,
		LoggedIn:  st.LoggedIn,
		Stats: []StatCard{
			{Label: "Total Doctors", Value: len(doctors)},
			{Label: "Premium Doctors", Value: premium},
			{Label: "Appointments", Value: len(appointments)},
		},
	}
}

type DoctorCard struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Experience string `json:"experience"`
	Hours      string `json:"hours"`
	Premium    bool   `json:"premium"`
}

// DoctorList shapes the cached collection into list cards.
func DoctorList(records []doctor.Record) []DoctorCard {
	out := make([]DoctorCard, 0, len(records))
	for _, r := range records {
		hours := r.Attributes.StartTime
		if r.Attributes.EndTime != "" {
			hours += " - " + r.Attributes.EndTime
		}
		out = append(out, DoctorCard{
			ID:         r.ID,
			Name:       r.Attributes.Name,
			Address:    r.Attributes.Address,
			Phone:      r.Attributes.Phone,
			Email:      r.Attributes.Email,
			Experience: r.Attributes.YearOfExperience,
			Hours:      hours,
			Premium:    r.Attributes.Premium,
		})
	}
	return out
}

type FormField struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Required bool   `json:"required"`
}

type DoctorForm struct {
	Mode          string      `json:"mode"` // add | edit
	ID            int64       `json:"id,omitempty"`
	Fields        []FormField `json:"fields"`
	Premium       bool        `json:"premium"`
	HasAttachment bool        `json:"hasAttachment"`
}

func formFields(a doctor.Attributes) []FormField {
	return []FormField{
		{Name: "Name", Value: a.Name, Required: true},
		{Name: "Address", Value: a.Address, Required: true},
		{Name: "Patients", Value: a.Patients, Required: true},
		{Name: "Year_of_Experience", Value: a.YearOfExperience, Required: true},
		{Name: "StartTime", Value: a.StartTime, Required: true},
		{Name: "EndTime", Value: a.EndTime, Required: true},
		{Name: "About", Value: a.About, Required: false},
		{Name: "Phone", Value: a.Phone, Required: true},
		{Name: "email", Value: a.Email, Required: true},
	}
}

// AddDoctorForm is the blank add-tab form. Premium defaults to true, as the
// original form did.
func AddDoctorForm() DoctorForm {
	return DoctorForm{Mode: "add", Fields: formFields(doctor.Attributes{}), Premium: true}
}

// EditDoctorForm renders the open edit session's buffer.
func EditDoctorForm(id int64, buf doctor.Attributes, hasAttachment bool) DoctorForm {
	return DoctorForm{
		Mode:          "edit",
		ID:            id,
		Fields:        formFields(buf),
		Premium:       buf.Premium,
		HasAttachment: hasAttachment,
	}
}

type AppointmentCard struct {
	ID      int64  `json:"id"`
	Date    string `json:"date"`
	Patient string `json:"patient"`
	Email   string `json:"email"`
	Time    string `json:"time"`
	Note    string `json:"note"`
}

// Appointments shapes the read-only feed, formatting the date the way the
// original rendered it ("January 2, 2006") and passing the raw value through
// when it does not parse.
func Appointments(records []appointment.Record) []AppointmentCard {
	out := make([]AppointmentCard, 0, len(records))
	for _, r := range records {
		date := r.Attributes.Date
		if t, err := time.Parse("2006-01-02", date); err == nil {
			date = t.Format("January 2, 2006")
		}
		out = append(out, AppointmentCard{
			ID:      r.ID,
			Date:    date,
			Patient: r.Attributes.UserName,
			Email:   r.Attributes.Email,
			Time:    r.Attributes.Time,
			Note:    r.Attributes.Note,
		})
	}
	return out
}
