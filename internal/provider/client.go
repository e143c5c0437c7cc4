package provider

import (
	"context"
	"encoding/json"

	"legalwatch/internal/domain"
)

// Request carries the lookup parameters of one provider call. Which fields
// matter depends on the operation.
type Request struct {
	Kind               domain.MonitoringKind `json:"kind,omitempty"`
	Value              string                `json:"value"`
	Page               int                   `json:"page,omitempty"`
	PageSize           int                   `json:"page_size,omitempty"`
	IncludeAttachments bool                  `json:"include_attachments,omitempty"`
}

// Client is a vendor adapter. Do returns the payload already normalised into
// the canonical shape of op.
type Client interface {
	Name() string
	Supports(op domain.Operation) bool
	Do(ctx context.Context, op domain.Operation, req Request) (json.RawMessage, error)
}

// Factory builds a client from its registry row.
type Factory func(cfg domain.ProviderConfig) (Client, error)
