// Package escavador adapts the Escavador legal-data API.
package escavador

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"legalwatch/internal/domain"
	"legalwatch/internal/provider"
)

const (
	ProviderName = "escavador"
	dateLayout   = "2006-01-02"
)

var supported = map[domain.Operation]bool{
	domain.OpProcessSearch:      true,
	domain.OpProcessDetail:      true,
	domain.OpProcessMovements:   true,
	domain.OpProcessAttachments: true,
	domain.OpGazetteSearch:      true,
}

// Client implements provider.Client for Escavador.
type Client struct {
	http *provider.HTTPClient
}

// New is a provider.Factory.
func New(cfg domain.ProviderConfig) (provider.Client, error) {
	if cfg.EndpointURL == "" {
		return nil, fmt.Errorf("escavador: endpoint url is required")
	}
	return &Client{
		http: provider.NewHTTPClient(cfg.EndpointURL, cfg.Timeout(), provider.BearerAuth(cfg.Credential)),
	}, nil
}

func (c *Client) Name() string { return ProviderName }

func (c *Client) Supports(op domain.Operation) bool { return supported[op] }

func (c *Client) Do(ctx context.Context, op domain.Operation, req provider.Request) (json.RawMessage, error) {
	switch op {
	case domain.OpProcessSearch:
		return c.search(ctx, req)
	case domain.OpProcessDetail:
		return c.detail(ctx, req)
	case domain.OpProcessMovements:
		return c.movements(ctx, req)
	case domain.OpProcessAttachments:
		return c.attachments(ctx, req)
	case domain.OpGazetteSearch:
		return c.gazette(ctx, req)
	}
	return nil, fmt.Errorf("escavador %s: %w", op, domain.ErrUnknownOperation)
}

func (c *Client) search(ctx context.Context, req provider.Request) (json.RawMessage, error) {
	var list ProcessList

	switch req.Kind {
	case domain.KindTaxID:
		q := url.Values{"cpf_cnpj": {domain.Digits(req.Value)}}
		if err := c.http.GetJSON(ctx, "/api/v2/envolvido/processos", q, &list); err != nil {
			return nil, err
		}
	case domain.KindBarNumber:
		number, state := domain.ParseBarNumber(req.Value)
		q := url.Values{"oab_numero": {number}, "oab_estado": {state}}
		if err := c.http.GetJSON(ctx, "/api/v2/advogado/processos", q, &list); err != nil {
			return nil, err
		}
	case domain.KindCaseNumber:
		var item ProcessItem
		if err := c.http.GetJSON(ctx, "/api/v2/processos/numero_cnj/"+url.PathEscape(req.Value), nil, &item); err != nil {
			return nil, err
		}
		list.Items = []ProcessItem{item}
	default:
		return nil, fmt.Errorf("escavador search: unsupported kind %q", req.Kind)
	}

	result := domain.ProcessSearchResult{Kind: req.Kind, Value: req.Value, Processes: make([]domain.ProcessSummary, 0, len(list.Items))}
	for _, it := range list.Items {
		result.Processes = append(result.Processes, summary(it))
	}
	return provider.Marshal(result)
}

func (c *Client) detail(ctx context.Context, req provider.Request) (json.RawMessage, error) {
	var d ProcessDetail
	if err := c.http.GetJSON(ctx, "/api/v2/processos/numero_cnj/"+url.PathEscape(req.Value), nil, &d); err != nil {
		return nil, err
	}

	detail := domain.ProcessDetail{
		ProcessSummary: summary(d.ProcessItem),
		Status:         d.Status,
		Judge:          d.Judge,
		ClaimValue:     d.ClaimValue,
		Parties:        make([]domain.Party, 0, len(d.Involved)),
	}
	for _, inv := range d.Involved {
		p := domain.Party{Name: inv.Name, Role: inv.Type}
		if inv.TaxID != nil {
			p.TaxID = domain.Digits(*inv.TaxID)
		}
		if inv.Lawyer != nil {
			p.Lawyer = *inv.Lawyer
		}
		detail.Parties = append(detail.Parties, p)
	}

	movements, err := c.fetchMovements(ctx, req.Value)
	if err != nil {
		return nil, err
	}
	detail.Movements = movements

	if req.IncludeAttachments {
		page, err := c.fetchDocuments(ctx, req.Value, 1, req.PageSize)
		if err != nil {
			return nil, err
		}
		detail.Attachments = page.Items
	}

	return provider.Marshal(detail)
}

func (c *Client) movements(ctx context.Context, req provider.Request) (json.RawMessage, error) {
	movements, err := c.fetchMovements(ctx, req.Value)
	if err != nil {
		return nil, err
	}
	return provider.Marshal(movements)
}

func (c *Client) fetchMovements(ctx context.Context, caseNumber string) ([]domain.Movement, error) {
	var list MovementList
	if err := c.http.GetJSON(ctx, "/api/v2/processos/numero_cnj/"+url.PathEscape(caseNumber)+"/movimentacoes", nil, &list); err != nil {
		return nil, err
	}

	movements := make([]domain.Movement, 0, len(list.Items))
	for _, it := range list.Items {
		date, err := time.Parse(dateLayout, it.Date)
		if err != nil {
			return nil, fmt.Errorf("parse movement date %q: %w", it.Date, err)
		}
		movements = append(movements, domain.Movement{
			ID:          strconv.FormatInt(it.ID, 10),
			Date:        date,
			Description: it.Content,
		})
	}
	return movements, nil
}

func (c *Client) attachments(ctx context.Context, req provider.Request) (json.RawMessage, error) {
	page, err := c.fetchDocuments(ctx, req.Value, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}
	return provider.Marshal(page)
}

func (c *Client) fetchDocuments(ctx context.Context, caseNumber string, page, pageSize int) (*domain.AttachmentPage, error) {
	if page < 1 {
		page = 1
	}
	q := url.Values{"page": {strconv.Itoa(page)}}
	if pageSize > 0 {
		q.Set("per_page", strconv.Itoa(pageSize))
	}

	var list DocumentList
	if err := c.http.GetJSON(ctx, "/api/v2/processos/numero_cnj/"+url.PathEscape(caseNumber)+"/autos", q, &list); err != nil {
		return nil, err
	}

	out := &domain.AttachmentPage{Items: make([]domain.Attachment, 0, len(list.Items)), Total: list.Paginator.Total}
	for _, it := range list.Items {
		out.Items = append(out.Items, domain.Attachment{
			ID:         strconv.FormatInt(it.ID, 10),
			CaseNumber: caseNumber,
			Title:      it.Title,
			URL:        it.Link,
			FiledAt:    parseDate(it.Date),
		})
	}
	if list.Paginator.CurrentPage < list.Paginator.LastPage {
		out.NextPage = list.Paginator.CurrentPage + 1
	}
	return out, nil
}

func (c *Client) gazette(ctx context.Context, req provider.Request) (json.RawMessage, error) {
	var list GazetteList
	if err := c.http.GetJSON(ctx, "/api/v2/diarios/busca", url.Values{"q": {req.Value}}, &list); err != nil {
		return nil, err
	}

	result := domain.GazetteSearchResult{Query: req.Value, Hits: make([]domain.GazetteHit, 0, len(list.Items))}
	for _, it := range list.Items {
		published, err := time.Parse(dateLayout, it.Date)
		if err != nil {
			continue
		}
		result.Hits = append(result.Hits, domain.GazetteHit{
			Gazette:     it.Gazette.Name,
			PublishedAt: published,
			Excerpt:     it.Excerpt,
			URL:         it.Link,
		})
	}
	return provider.Marshal(result)
}

func summary(it ProcessItem) domain.ProcessSummary {
	return domain.ProcessSummary{
		CaseNumber: it.CaseNumber,
		Court:      it.Court.Acronym,
		Subject:    it.Subject,
		Class:      it.Class,
		StartedAt:  parseDate(it.StartDate),
	}
}

func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}
