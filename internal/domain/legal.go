package domain

import "time"

// Canonical payload shapes. Vendor adapters normalise into these before
// anything is cached.

type Party struct {
	Name   string `json:"name"`
	Role   string `json:"role,omitempty"`
	TaxID  string `json:"tax_id,omitempty"`
	Lawyer string `json:"lawyer,omitempty"`
}

type Movement struct {
	ID          string    `json:"id,omitempty"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

type ProcessSummary struct {
	CaseNumber string     `json:"case_number"`
	Court      string     `json:"court"`
	Subject    string     `json:"subject,omitempty"`
	Class      string     `json:"class,omitempty"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
}

type ProcessSearchResult struct {
	Kind      MonitoringKind   `json:"kind"`
	Value     string           `json:"value"`
	Processes []ProcessSummary `json:"processes"`
}

type ProcessDetail struct {
	ProcessSummary
	Status      string       `json:"status,omitempty"`
	Judge       string       `json:"judge,omitempty"`
	ClaimValue  string       `json:"claim_value,omitempty"`
	Parties     []Party      `json:"parties"`
	Movements   []Movement   `json:"movements"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

type Attachment struct {
	ID         string     `db:"attachment_id" json:"id"`
	CaseNumber string     `db:"case_number" json:"case_number"`
	Title      string     `db:"title" json:"title"`
	URL        string     `db:"url" json:"url"`
	FiledAt    *time.Time `db:"filed_at" json:"filed_at,omitempty"`
}

// AttachmentPage is one page of an attachment enumeration.
type AttachmentPage struct {
	Items    []Attachment `json:"items"`
	Total    int          `json:"total"`
	NextPage int          `json:"next_page"` // 0 when exhausted
}

type Registration struct {
	TaxID        string     `json:"tax_id"`
	Name         string     `json:"name"`
	TradeName    string     `json:"trade_name,omitempty"`
	Status       string     `json:"status"`
	OpenedAt     *time.Time `json:"opened_at,omitempty"`
	Address      string     `json:"address,omitempty"`
	MainActivity string     `json:"main_activity,omitempty"`
}

type CriminalRecord struct {
	TaxID       string    `json:"tax_id"`
	Name        string    `json:"name,omitempty"`
	HasRecords  bool      `json:"has_records"`
	Certificate string    `json:"certificate,omitempty"`
	IssuedAt    time.Time `json:"issued_at"`
	Sources     []string  `json:"sources,omitempty"`
}

type GazetteHit struct {
	Gazette     string    `json:"gazette"`
	PublishedAt time.Time `json:"published_at"`
	Excerpt     string    `json:"excerpt"`
	URL         string    `json:"url,omitempty"`
}

type GazetteSearchResult struct {
	Query string       `json:"query"`
	Hits  []GazetteHit `json:"hits"`
}
