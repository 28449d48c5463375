package models

import (
	"time"
)

// SessionFields holds the caller-editable portion of a training session.
// The store assigns ID and derives Season from Date, so neither appears here.
type SessionFields struct {
	// Date of the session, date only. A zero value means the stored cell was
	// empty or unparseable.
	Date time.Time `json:"date"`

	// Public is the audience group, normally one of Publics
	Public string `json:"public"`

	// Objectives is the "; "-joined list of objective labels
	Objectives string `json:"objectif"`

	// Tags is free text, comma-separated by convention
	Tags string `json:"tags"`

	// DurationMin is the session length in minutes
	DurationMin int `json:"duree_min"`

	// WarmUp describes the warm-up phase
	WarmUp string `json:"echauffement"`

	// MainBody describes the main part of the session
	MainBody string `json:"corps"`

	// CoolDown describes the return-to-calm phase
	CoolDown string `json:"retour"`

	// Equipment lists the material needed
	Equipment string `json:"materiel"`

	// Debrief captures what worked and what to revisit
	Debrief string `json:"bilan"`

	// Headcount is the number of attendees
	Headcount int `json:"effectif"`

	// RPE is the perceived intensity on the 1-10 scale
	RPE int `json:"rpe"`

	// Author is optional free text
	Author string `json:"auteur"`
}

// Session represents one logged training session
type Session struct {
	// ID is the unique identifier for this session, assigned by the store
	ID int `json:"id"`

	// Season is the sporting-season label derived from Date
	Season string `json:"saison"`

	SessionFields
}
