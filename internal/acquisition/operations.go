package acquisition

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"legalwatch/internal/domain"
	"legalwatch/internal/provider"
)

func (o *Orchestrator) SearchProcesses(ctx context.Context, accountID string, kind domain.MonitoringKind, value string) (*Result, error) {
	if err := validLookup(kind, value); err != nil {
		return nil, err
	}
	return o.Acquire(ctx, Request{
		Operation:  domain.OpProcessSearch,
		LookupKey:  SearchKey(kind, value),
		AccountID:  accountID,
		CreditCost: o.pricing.Cost(domain.OpProcessSearch),
		Provider:   provider.Request{Kind: kind, Value: value},
	})
}

func (o *Orchestrator) ProcessDetail(ctx context.Context, accountID, caseNumber string, includeAttachments bool) (*Result, error) {
	if err := validLookup(domain.KindCaseNumber, caseNumber); err != nil {
		return nil, err
	}
	return o.Acquire(ctx, Request{
		Operation:  domain.OpProcessDetail,
		LookupKey:  DetailKey(caseNumber, includeAttachments),
		ResourceID: ProcessResource(caseNumber),
		AccountID:  accountID,
		CreditCost: o.pricing.Cost(domain.OpProcessDetail),
		Provider: provider.Request{
			Kind:               domain.KindCaseNumber,
			Value:              caseNumber,
			IncludeAttachments: includeAttachments,
		},
	})
}

func (o *Orchestrator) Registration(ctx context.Context, accountID, taxID string) (*Result, error) {
	if err := validLookup(domain.KindTaxID, taxID); err != nil {
		return nil, err
	}
	return o.Acquire(ctx, Request{
		Operation:  domain.OpRegistration,
		LookupKey:  RegistrationKey(taxID),
		AccountID:  accountID,
		CreditCost: o.pricing.Cost(domain.OpRegistration),
		Provider:   provider.Request{Kind: domain.KindTaxID, Value: domain.Digits(taxID)},
	})
}

func (o *Orchestrator) CriminalRecord(ctx context.Context, accountID, taxID string) (*Result, error) {
	if err := validLookup(domain.KindTaxID, taxID); err != nil {
		return nil, err
	}
	return o.Acquire(ctx, Request{
		Operation:  domain.OpCriminalRecord,
		LookupKey:  CriminalRecordKey(taxID),
		ResourceID: CriminalRecordResource(taxID),
		AccountID:  accountID,
		CreditCost: o.pricing.Cost(domain.OpCriminalRecord),
		Provider:   provider.Request{Kind: domain.KindTaxID, Value: domain.Digits(taxID)},
	})
}

func (o *Orchestrator) GazetteSearch(ctx context.Context, accountID, query string) (*Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("gazette query is empty: %w", domain.ErrInvalidArgument)
	}
	return o.Acquire(ctx, Request{
		Operation: domain.OpGazetteSearch,
		LookupKey: GazetteKey(query),
		AccountID: accountID,
		Provider:  provider.Request{Value: strings.TrimSpace(query)},
	})
}

// Movements refreshes the movement list of a case for the poller.
func (o *Orchestrator) Movements(ctx context.Context, caseNumber string) ([]domain.Movement, error) {
	payload, err := o.Refresh(ctx, domain.OpProcessMovements, MovementsKey(caseNumber), provider.Request{
		Kind:  domain.KindCaseNumber,
		Value: caseNumber,
	})
	if err != nil {
		return nil, err
	}

	var movements []domain.Movement
	if err := json.Unmarshal(payload, &movements); err != nil {
		return nil, fmt.Errorf("decode movements: %w", err)
	}
	return movements, nil
}

// Processes re-runs a process search for the poller.
func (o *Orchestrator) Processes(ctx context.Context, kind domain.MonitoringKind, value string) ([]domain.ProcessSummary, error) {
	payload, err := o.Refresh(ctx, domain.OpProcessSearch, SearchKey(kind, value), provider.Request{
		Kind:  kind,
		Value: value,
	})
	if err != nil {
		return nil, err
	}

	var result domain.ProcessSearchResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("decode process search: %w", err)
	}
	return result.Processes, nil
}

func validLookup(kind domain.MonitoringKind, value string) error {
	switch kind {
	case domain.KindTaxID:
		if n := len(domain.Digits(value)); n != 11 && n != 14 {
			return fmt.Errorf("tax id must have 11 or 14 digits: %w", domain.ErrInvalidArgument)
		}
	case domain.KindCaseNumber:
		if len(domain.Digits(value)) != 20 {
			return fmt.Errorf("case number must have 20 digits: %w", domain.ErrInvalidArgument)
		}
	case domain.KindBarNumber:
		if n, st := domain.ParseBarNumber(value); n == "" || len(st) != 2 {
			return fmt.Errorf("bar number must be digits plus a state: %w", domain.ErrInvalidArgument)
		}
	default:
		return fmt.Errorf("lookup kind %q: %w", kind, domain.ErrInvalidArgument)
	}
	return nil
}
