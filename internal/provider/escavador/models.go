package escavador

// Response shapes of the Escavador v2 API.

type Court struct {
	Acronym string `json:"sigla"`
	Name    string `json:"nome"`
}

type ProcessItem struct {
	CaseNumber string  `json:"numero_cnj"`
	Court      Court   `json:"tribunal"`
	Subject    string  `json:"assunto"`
	Class      string  `json:"classe"`
	StartDate  *string `json:"data_inicio"`
}

type ProcessList struct {
	Items []ProcessItem `json:"items"`
}

type Involved struct {
	Name   string  `json:"nome"`
	Type   string  `json:"tipo"`
	TaxID  *string `json:"cpf_cnpj"`
	Lawyer *string `json:"advogado"`
}

type ProcessDetail struct {
	ProcessItem
	Status     string     `json:"status"`
	Judge      string     `json:"juiz"`
	ClaimValue string     `json:"valor_causa"`
	Involved   []Involved `json:"envolvidos"`
}

type MovementItem struct {
	ID      int64  `json:"id"`
	Date    string `json:"data"`
	Content string `json:"conteudo"`
}

type MovementList struct {
	Items []MovementItem `json:"items"`
}

type Paginator struct {
	Total       int `json:"total"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
}

type DocumentItem struct {
	ID    int64   `json:"id"`
	Title string  `json:"titulo"`
	Link  string  `json:"link"`
	Date  *string `json:"data"`
}

type DocumentList struct {
	Items     []DocumentItem `json:"items"`
	Paginator Paginator      `json:"paginator"`
}

type GazetteItem struct {
	Gazette struct {
		Name string `json:"nome"`
	} `json:"diario"`
	Date    string `json:"data"`
	Excerpt string `json:"trecho"`
	Link    string `json:"link"`
}

type GazetteList struct {
	Items []GazetteItem `json:"items"`
}
