package provider

import (
	"context"

	"legalwatch/internal/domain"
)

// Gateway resolves every call against the registry snapshot current at call time.
type Gateway struct {
	registry *Registry
	resolver *Resolver
}

func NewGateway(registry *Registry, resolver *Resolver) *Gateway {
	return &Gateway{registry: registry, resolver: resolver}
}

func (g *Gateway) Call(ctx context.Context, op domain.Operation, req Request) (*Result, error) {
	return g.resolver.CallWithFallback(ctx, g.registry.Snapshot(), op, req)
}
