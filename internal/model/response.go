package model

import "time"

// Response models one row of the `responses` table: a single survey
// submission linked to a user. A user accumulates one response per
// submission; the "current profile" is the response with the greatest
// CreatedAt. The structured columns (answers, oce_matrix, profile) are
// stored as JSON.
//
// Fields:
//  ID               – opaque identifier (UUID string).
//  UserID           – owner of the response.
//  Language         – submission language code, "EN" when omitted.
//  Answers          – question id → numeric answer value.
//  SovereigntyScore – derived score, defaults to 75.5 when omitted.
//  OCEMatrix        – trait name → value in [0,1].
//  Profile          – typed profile summary supplied by the client.
//  CreatedAt        – timestamp of creation.
type Response struct {
	ID               string             // responses.id
	UserID           string             // responses.user_id
	Language         string             // responses.language
	Answers          map[string]float64 // responses.answers (JSON)
	SovereigntyScore float64            // responses.sovereignty_score
	OCEMatrix        map[string]float64 // responses.oce_matrix (JSON)
	Profile          Profile            // responses.profile (JSON)
	CreatedAt        time.Time          // responses.created_at
}

// Profile is the structured profile object carried inside a response.
// Every field is optional on submission; the profile view substitutes
// fixed defaults for anything missing.
type Profile struct {
	Type               string   `json:"type,omitempty"`
	Strengths          []string `json:"strengths,omitempty"`
	Weaknesses         []string `json:"weaknesses,omitempty"`
	CommunicationStyle string   `json:"communication_style,omitempty"`
}
