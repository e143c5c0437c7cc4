package provider

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"legalwatch/internal/domain"
)

type fakeClient struct {
	name  string
	ops   map[domain.Operation]bool
	calls atomic.Int32
	do    func(ctx context.Context) (json.RawMessage, error)
}

func (f *fakeClient) Name() string                      { return f.name }
func (f *fakeClient) Supports(op domain.Operation) bool { return f.ops == nil || f.ops[op] }
func (f *fakeClient) Do(ctx context.Context, _ domain.Operation, _ Request) (json.RawMessage, error) {
	f.calls.Add(1)
	return f.do(ctx)
}

func succeed(payload string) func(context.Context) (json.RawMessage, error) {
	return func(context.Context) (json.RawMessage, error) { return json.RawMessage(payload), nil }
}

func failWith(err error) func(context.Context) (json.RawMessage, error) {
	return func(context.Context) (json.RawMessage, error) { return nil, err }
}

type healthSpy struct {
	names []string
}

func (h *healthSpy) MarkHealthy(_ context.Context, name string, _ time.Time) error {
	h.names = append(h.names, name)
	return nil
}

func entry(name string, priority int, client *fakeClient) *Entry {
	return &Entry{
		Config: domain.ProviderConfig{Name: name, IsActive: true, Priority: priority, TimeoutMs: 1000},
		Client: client,
	}
}

type ResolverTestSuite struct {
	suite.Suite
	health   *healthSpy
	resolver *Resolver
}

func (s *ResolverTestSuite) SetupTest() {
	s.health = &healthSpy{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.resolver = NewResolver(s.health, logger)
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) TestFallsBackToNextPriority() {
	p1 := &fakeClient{name: "p1", do: failWith(&domain.ProviderHTTPError{Status: 500})}
	p2 := &fakeClient{name: "p2", do: succeed(`{"ok":true}`)}
	snap := NewSnapshot([]*Entry{entry("p2", 2, p2), entry("p1", 1, p1)}, time.Now())

	res, err := s.resolver.CallWithFallback(context.Background(), snap, domain.OpProcessDetail, Request{Value: "x"})

	s.Require().NoError(err)
	s.Equal("p2", res.Provider)
	s.JSONEq(`{"ok":true}`, string(res.Payload))
	s.Require().Len(res.Failures, 1)
	s.Equal("p1", res.Failures[0].Provider)
	s.EqualValues(1, p1.calls.Load())
	s.EqualValues(1, p2.calls.Load())
	s.Equal([]string{"p2"}, s.health.names)
}

func (s *ResolverTestSuite) TestStopsAtFirstSuccess() {
	p1 := &fakeClient{name: "p1", do: succeed(`1`)}
	p2 := &fakeClient{name: "p2", do: succeed(`2`)}
	snap := NewSnapshot([]*Entry{entry("p1", 1, p1), entry("p2", 2, p2)}, time.Now())

	res, err := s.resolver.CallWithFallback(context.Background(), snap, domain.OpRegistration, Request{})

	s.Require().NoError(err)
	s.Equal("p1", res.Provider)
	s.Empty(res.Failures)
	s.EqualValues(0, p2.calls.Load())
}

func (s *ResolverTestSuite) TestAllProvidersFailed() {
	p1 := &fakeClient{name: "p1", do: failWith(&domain.ProviderHTTPError{Status: 404})}
	p2 := &fakeClient{name: "p2", do: failWith(&domain.ProviderHTTPError{Status: 404})}
	snap := NewSnapshot([]*Entry{entry("p1", 1, p1), entry("p2", 2, p2)}, time.Now())

	_, err := s.resolver.CallWithFallback(context.Background(), snap, domain.OpProcessDetail, Request{})

	var all *domain.AllProvidersFailedError
	s.Require().ErrorAs(err, &all)
	s.Len(all.Failures, 2)
	s.True(all.AllNotFound())
	s.False(all.AllTimedOut())
	s.Empty(s.health.names)
}

func (s *ResolverTestSuite) TestTimeoutIsAFailureNotARetry() {
	slow := &fakeClient{name: "slow", do: func(ctx context.Context) (json.RawMessage, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}}
	fast := &fakeClient{name: "fast", do: succeed(`"fast"`)}

	e := entry("slow", 1, slow)
	e.Config.TimeoutMs = 20
	snap := NewSnapshot([]*Entry{e, entry("fast", 2, fast)}, time.Now())

	res, err := s.resolver.CallWithFallback(context.Background(), snap, domain.OpProcessSearch, Request{})

	s.Require().NoError(err)
	s.Equal("fast", res.Provider)
	s.Require().Len(res.Failures, 1)
	s.ErrorIs(res.Failures[0].Err, domain.ErrProviderTimeout)
	s.EqualValues(1, slow.calls.Load())
}

func (s *ResolverTestSuite) TestNoProvidersForOperation() {
	p1 := &fakeClient{name: "p1", ops: map[domain.Operation]bool{domain.OpGazetteSearch: true}, do: succeed(`1`)}
	snap := NewSnapshot([]*Entry{entry("p1", 1, p1)}, time.Now())

	_, err := s.resolver.CallWithFallback(context.Background(), snap, domain.OpCriminalRecord, Request{})

	var all *domain.AllProvidersFailedError
	s.Require().ErrorAs(err, &all)
	s.Empty(all.Failures)
	s.EqualValues(0, p1.calls.Load())
}

func (s *ResolverTestSuite) TestCanceledCallerStopsResolution() {
	ctx, cancel := context.WithCancel(context.Background())
	p1 := &fakeClient{name: "p1", do: func(context.Context) (json.RawMessage, error) {
		cancel()
		return nil, errors.New("boom")
	}}
	p2 := &fakeClient{name: "p2", do: succeed(`2`)}
	snap := NewSnapshot([]*Entry{entry("p1", 1, p1), entry("p2", 2, p2)}, time.Now())

	_, err := s.resolver.CallWithFallback(ctx, snap, domain.OpProcessDetail, Request{})

	s.ErrorIs(err, context.Canceled)
	s.EqualValues(0, p2.calls.Load())
}

func (s *ResolverTestSuite) TestRateLimitedProviderIsSkipped() {
	registry := NewRegistry(StaticSource{
		{Name: "p1", IsActive: true, Priority: 1, RateLimit: 1},
		{Name: "p2", IsActive: true, Priority: 2},
	}, map[string]Factory{
		"p1": func(domain.ProviderConfig) (Client, error) { return &fakeClient{name: "p1", do: succeed(`1`)}, nil },
		"p2": func(domain.ProviderConfig) (Client, error) { return &fakeClient{name: "p2", do: succeed(`2`)}, nil },
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Require().NoError(registry.Refresh(context.Background()))

	first, err := s.resolver.CallWithFallback(context.Background(), registry.Snapshot(), domain.OpProcessDetail, Request{})
	s.Require().NoError(err)
	s.Equal("p1", first.Provider)

	second, err := s.resolver.CallWithFallback(context.Background(), registry.Snapshot(), domain.OpProcessDetail, Request{})
	s.Require().NoError(err)
	s.Equal("p2", second.Provider)
	s.Require().Len(second.Failures, 1)
	s.ErrorIs(second.Failures[0].Err, domain.ErrRateLimited)
}
