package models

import "time"

// Publication statuses.
const (
	PublicationDraft = "draft"
	PublicationFinal = "final"
)

// Publication is an authored scientific document: a structured abstract,
// ordered sections and a numbered reference list.
type Publication struct {
	ID         string      `bson:"id" json:"id"`
	OwnerID    string      `bson:"ownerId" json:"ownerId"`
	Title      string      `bson:"title" json:"title"`
	Language   string      `bson:"language" json:"language"` // "es" or "en"
	Abstract   string      `bson:"abstract" json:"abstract"`
	Sections   []Section   `bson:"sections" json:"sections"`
	References []Reference `bson:"references" json:"references"`
	Status     string      `bson:"status" json:"status"`
	CreatedAt  time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// Section is one body section of a publication.
type Section struct {
	ID      string `bson:"id" json:"id"`
	Heading string `bson:"heading" json:"heading"`
	Body    string `bson:"body" json:"body"`
	Order   int    `bson:"order" json:"order"`
}

// Reference is one cited work.
type Reference struct {
	ID       string `bson:"id" json:"id"`
	Citation string `bson:"citation" json:"citation"`
	URL      string `bson:"url,omitempty" json:"url,omitempty"`
}

// CreatePublicationRequest starts a new draft.
type CreatePublicationRequest struct {
	Title    string `json:"title" binding:"required"`
	Language string `json:"language" binding:"required"`
	Abstract string `json:"abstract"`
}

// UpsertSectionRequest creates or replaces one section.
type UpsertSectionRequest struct {
	ID      string `json:"id"`
	Heading string `json:"heading" binding:"required"`
	Body    string `json:"body"`
	Order   int    `json:"order"`
}

// AddReferenceRequest appends a citation.
type AddReferenceRequest struct {
	Citation string `json:"citation" binding:"required"`
	URL      string `json:"url"`
}

// DraftSectionRequest asks the AI assistant for a section body suggestion.
type DraftSectionRequest struct {
	Heading string `json:"heading" binding:"required"`
	Prompt  string `json:"prompt" binding:"required"`
}
