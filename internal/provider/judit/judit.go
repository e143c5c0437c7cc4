// Package judit adapts the Judit legal-data API.
package judit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"legalwatch/internal/domain"
	"legalwatch/internal/provider"
)

const ProviderName = "judit"

var supported = map[domain.Operation]bool{
	domain.OpProcessSearch:      true,
	domain.OpProcessDetail:      true,
	domain.OpProcessMovements:   true,
	domain.OpProcessAttachments: true,
	domain.OpRegistration:       true,
	domain.OpCriminalRecord:     true,
}

type Client struct {
	http *provider.HTTPClient
}

func New(cfg domain.ProviderConfig) (provider.Client, error) {
	if cfg.EndpointURL == "" {
		return nil, fmt.Errorf("judit: endpoint url is required")
	}
	return &Client{
		http: provider.NewHTTPClient(cfg.EndpointURL, cfg.Timeout(), provider.HeaderAuth("api-key", cfg.Credential)),
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
		return c.steps(ctx, req)
	case domain.OpProcessAttachments:
		return c.attachments(ctx, req)
	case domain.OpRegistration:
		return c.registration(ctx, req)
	case domain.OpCriminalRecord:
		return c.criminalRecord(ctx, req)
	}
	return nil, fmt.Errorf("judit %s: %w", op, domain.ErrUnknownOperation)
}

func searchType(kind domain.MonitoringKind, value string) (string, string, error) {
	switch kind {
	case domain.KindTaxID:
		digits := domain.Digits(value)
		if domain.IsCompanyTaxID(digits) {
			return "cnpj", digits, nil
		}
		return "cpf", digits, nil
	case domain.KindBarNumber:
		number, state := domain.ParseBarNumber(value)
		return "oab", number + state, nil
	case domain.KindCaseNumber:
		return "lawsuit_cnj", value, nil
	}
	return "", "", fmt.Errorf("judit search: unsupported kind %q", kind)
}

func (c *Client) search(ctx context.Context, req provider.Request) (json.RawMessage, error) {
	st, key, err := searchType(req.Kind, req.Value)
	if err != nil {
		return nil, err
	}

	var resp SearchResponse
	if err := c.http.PostJSON(ctx, "/lawsuits/search", searchRequest{SearchType: st, SearchKey: key}, &resp); err != nil {
		return nil, err
	}

	result := domain.ProcessSearchResult{Kind: req.Kind, Value: req.Value, Processes: make([]domain.ProcessSummary, 0, len(resp.PageData))}
	for _, l := range resp.PageData {
		result.Processes = append(result.Processes, summary(l))
	}
	return provider.Marshal(result)
}

func (c *Client) detail(ctx context.Context, req provider.Request) (json.RawMessage, error) {
	var d LawsuitDetail
	if err := c.http.GetJSON(ctx, "/lawsuits/"+url.PathEscape(req.Value), nil, &d); err != nil {
		return nil, err
	}

	movements, err := toMovements(d.Steps)
	if err != nil {
		return nil, err
	}

	detail := domain.ProcessDetail{
		ProcessSummary: summary(d.Lawsuit),
		Status:         d.Status,
		Judge:          d.Judge,
		ClaimValue:     d.Amount,
		Parties:        make([]domain.Party, 0, len(d.Parties)),
		Movements:      movements,
	}
	for _, p := range d.Parties {
		party := domain.Party{Name: p.Name, Role: strings.ToLower(p.Side), TaxID: domain.Digits(p.MainDocument)}
		if len(p.Lawyers) > 0 {
			party.Lawyer = p.Lawyers[0].Name
		}
		detail.Parties = append(detail.Parties, party)
	}

	if req.IncludeAttachments {
		page, err := c.fetchAttachments(ctx, req.Value, 1, req.PageSize)
		if err != nil {
			return nil, err
		}
		detail.Attachments = page.Items
	}

	return provider.Marshal(detail)
}

func (c *Client) steps(ctx context.Context, req provider.Request) (json.RawMessage, error) {
	var resp StepsResponse
	if err := c.http.GetJSON(ctx, "/lawsuits/"+url.PathEscape(req.Value)+"/steps", nil, &resp); err != nil {
		return nil, err
	}
	movements, err := toMovements(resp.Steps)
	if err != nil {
		return nil, err
	}
	return provider.Marshal(movements)
}

func (c *Client) attachments(ctx context.Context, req provider.Request) (json.RawMessage, error) {
	page, err := c.fetchAttachments(ctx, req.Value, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}
	return provider.Marshal(page)
}

func (c *Client) fetchAttachments(ctx context.Context, caseNumber string, page, pageSize int) (*domain.AttachmentPage, error) {
	if page < 1 {
		page = 1
	}
	q := url.Values{"page": {strconv.Itoa(page)}}
	if pageSize > 0 {
		q.Set("page_size", strconv.Itoa(pageSize))
	}

	var resp AttachmentsResponse
	if err := c.http.GetJSON(ctx, "/lawsuits/"+url.PathEscape(caseNumber)+"/attachments", q, &resp); err != nil {
		return nil, err
	}

	out := &domain.AttachmentPage{Items: make([]domain.Attachment, 0, len(resp.Attachments)), Total: resp.AllCount}
	for _, a := range resp.Attachments {
		out.Items = append(out.Items, domain.Attachment{
			ID:         a.AttachmentID,
			CaseNumber: caseNumber,
			Title:      a.AttachmentName,
			URL:        a.URL,
			FiledAt:    parseTime(a.AttachmentDate),
		})
	}
	if resp.Page < resp.AllPagesCount {
		out.NextPage = resp.Page + 1
	}
	return out, nil
}

func (c *Client) registration(ctx context.Context, req provider.Request) (json.RawMessage, error) {
	var r RegistrationResponse
	if err := c.http.GetJSON(ctx, "/registrations/"+domain.Digits(req.Value), nil, &r); err != nil {
		return nil, err
	}

	reg := domain.Registration{
		TaxID:        domain.Digits(r.Document),
		Name:         r.Name,
		TradeName:    r.TradeName,
		Status:       r.Situation,
		OpenedAt:     parseTime(r.OpeningDate),
		MainActivity: r.MainActivity.Name,
	}
	if r.Address.Street != "" {
		reg.Address = fmt.Sprintf("%s, %s - %s/%s", r.Address.Street, r.Address.Number, r.Address.City, r.Address.State)
	}
	return provider.Marshal(reg)
}

func (c *Client) criminalRecord(ctx context.Context, req provider.Request) (json.RawMessage, error) {
	var r CriminalRecordResponse
	if err := c.http.GetJSON(ctx, "/criminal-records/"+domain.Digits(req.Value), nil, &r); err != nil {
		return nil, err
	}

	issued, err := time.Parse(time.RFC3339, r.IssuedAt)
	if err != nil {
		return nil, fmt.Errorf("parse issued_at %q: %w", r.IssuedAt, err)
	}
	return provider.Marshal(domain.CriminalRecord{
		TaxID:       domain.Digits(r.Document),
		Name:        r.Name,
		HasRecords:  r.HasRecords,
		Certificate: r.CertificateCode,
		IssuedAt:    issued,
		Sources:     r.Sources,
	})
}

func summary(l Lawsuit) domain.ProcessSummary {
	s := domain.ProcessSummary{
		CaseNumber: l.Code,
		Court:      l.TribunalAcronym,
		StartedAt:  parseTime(l.DistributionDate),
	}
	if len(l.Subjects) > 0 {
		s.Subject = l.Subjects[0].Name
	}
	if len(l.Classifications) > 0 {
		s.Class = l.Classifications[0].Name
	}
	return s
}

func toMovements(steps []Step) ([]domain.Movement, error) {
	out := make([]domain.Movement, 0, len(steps))
	for _, s := range steps {
		date, err := time.Parse(time.RFC3339, s.StepDate)
		if err != nil {
			return nil, fmt.Errorf("parse step date %q: %w", s.StepDate, err)
		}
		out = append(out, domain.Movement{ID: s.StepID, Date: date, Description: s.Content})
	}
	return out, nil
}

func parseTime(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	return &t
}
