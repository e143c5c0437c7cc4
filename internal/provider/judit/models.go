package judit

type searchRequest struct {
	SearchType string `json:"search_type"`
	SearchKey  string `json:"search_key"`
}

type Named struct {
	Name string `json:"name"`
}

type Lawsuit struct {
	Code             string  `json:"code"`
	TribunalAcronym  string  `json:"tribunal_acronym"`
	Subjects         []Named `json:"subjects"`
	Classifications  []Named `json:"classifications"`
	DistributionDate *string `json:"distribution_date"`
}

type SearchResponse struct {
	PageData []Lawsuit `json:"page_data"`
}

type Party struct {
	Name         string  `json:"name"`
	Side         string  `json:"side"`
	MainDocument string  `json:"main_document"`
	Lawyers      []Named `json:"lawyers"`
}

type Step struct {
	StepID   string `json:"step_id"`
	StepDate string `json:"step_date"`
	Content  string `json:"content"`
}

type LawsuitDetail struct {
	Lawsuit
	Status  string  `json:"status"`
	Judge   string  `json:"judge"`
	Amount  string  `json:"amount"`
	Parties []Party `json:"parties"`
	Steps   []Step  `json:"steps"`
}

type StepsResponse struct {
	Steps []Step `json:"steps"`
}

type AttachmentItem struct {
	AttachmentID   string  `json:"attachment_id"`
	AttachmentName string  `json:"attachment_name"`
	URL            string  `json:"url"`
	AttachmentDate *string `json:"attachment_date"`
}

type AttachmentsResponse struct {
	Attachments   []AttachmentItem `json:"attachments"`
	AllCount      int              `json:"all_count"`
	AllPagesCount int              `json:"all_pages_count"`
	Page          int              `json:"page"`
}

type Address struct {
	Street string `json:"street"`
	Number string `json:"number"`
	City   string `json:"city"`
	State  string `json:"state"`
}

type RegistrationResponse struct {
	Document     string  `json:"document"`
	Name         string  `json:"name"`
	TradeName    string  `json:"trade_name"`
	Situation    string  `json:"situation"`
	OpeningDate  *string `json:"opening_date"`
	Address      Address `json:"address"`
	MainActivity Named   `json:"main_activity"`
}

type CriminalRecordResponse struct {
	Document        string   `json:"document"`
	Name            string   `json:"name"`
	HasRecords      bool     `json:"has_records"`
	CertificateCode string   `json:"certificate_code"`
	IssuedAt        string   `json:"issued_at"`
	Sources         []string `json:"sources"`
}
