package escavador

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalwatch/internal/domain"
	"legalwatch/internal/provider"
)

const caseNumber = "0001234-56.2023.8.26.0100"

func newTestClient(t *testing.T, mux *http.ServeMux) provider.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	c, err := New(domain.ProviderConfig{Name: ProviderName, EndpointURL: srv.URL, Credential: "token", TimeoutMs: 2000})
	require.NoError(t, err)
	return c
}

func TestSearch_ByTaxID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/envolvido/processos", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "12345678901", r.URL.Query().Get("cpf_cnpj"))
		_, _ = w.Write([]byte(`{"items":[{"numero_cnj":"` + caseNumber + `","tribunal":{"sigla":"TJSP"},"assunto":"Cobrança","classe":"Procedimento Comum","data_inicio":"2023-02-01"}]}`))
	})
	c := newTestClient(t, mux)

	raw, err := c.Do(context.Background(), domain.OpProcessSearch, provider.Request{Kind: domain.KindTaxID, Value: "123.456.789-01"})
	require.NoError(t, err)

	var result domain.ProcessSearchResult
	require.NoError(t, json.Unmarshal(raw, &result))
	require.Len(t, result.Processes, 1)
	assert.Equal(t, caseNumber, result.Processes[0].CaseNumber)
	assert.Equal(t, "TJSP", result.Processes[0].Court)
	require.NotNil(t, result.Processes[0].StartedAt)
	assert.Equal(t, 2023, result.Processes[0].StartedAt.Year())
}

func TestSearch_ByBarNumber(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/advogado/processos", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "123456", r.URL.Query().Get("oab_numero"))
		assert.Equal(t, "SP", r.URL.Query().Get("oab_estado"))
		_, _ = w.Write([]byte(`{"items":[]}`))
	})
	c := newTestClient(t, mux)

	raw, err := c.Do(context.Background(), domain.OpProcessSearch, provider.Request{Kind: domain.KindBarNumber, Value: "123456/SP"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"bar_number","value":"123456/SP","processes":[]}`, string(raw))
}

func TestDetail_WithMovements(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/processos/numero_cnj/"+caseNumber, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"numero_cnj":"` + caseNumber + `","tribunal":{"sigla":"TJSP"},"status":"Ativo","juiz":"Dra. Silva",
			"envolvidos":[{"nome":"ACME LTDA","tipo":"Autor","cpf_cnpj":"12.345.678/0001-90","advogado":"Fulano"}]}`))
	})
	mux.HandleFunc("/api/v2/processos/numero_cnj/"+caseNumber+"/movimentacoes", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items":[{"id":7,"data":"2024-05-02","conteudo":"Conclusos para despacho"}]}`))
	})
	c := newTestClient(t, mux)

	raw, err := c.Do(context.Background(), domain.OpProcessDetail, provider.Request{Value: caseNumber})
	require.NoError(t, err)

	var detail domain.ProcessDetail
	require.NoError(t, json.Unmarshal(raw, &detail))
	assert.Equal(t, "Ativo", detail.Status)
	require.Len(t, detail.Parties, 1)
	assert.Equal(t, "12345678000190", detail.Parties[0].TaxID)
	require.Len(t, detail.Movements, 1)
	assert.Equal(t, "7", detail.Movements[0].ID)
	assert.True(t, detail.Movements[0].Date.Equal(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)))
}

func TestAttachments_Paginates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/processos/numero_cnj/"+caseNumber+"/autos", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(`{"items":[{"id":1,"titulo":"Petição inicial","link":"https://files/1"}],"paginator":{"total":3,"current_page":2,"last_page":3}}`))
	})
	c := newTestClient(t, mux)

	raw, err := c.Do(context.Background(), domain.OpProcessAttachments, provider.Request{Value: caseNumber, Page: 2, PageSize: 1})
	require.NoError(t, err)

	var page domain.AttachmentPage
	require.NoError(t, json.Unmarshal(raw, &page))
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 3, page.NextPage)
	require.Len(t, page.Items, 1)
	assert.Equal(t, caseNumber, page.Items[0].CaseNumber)
}

func TestUnsupportedOperation(t *testing.T) {
	c := newTestClient(t, http.NewServeMux())

	assert.False(t, c.Supports(domain.OpRegistration))
	_, err := c.Do(context.Background(), domain.OpRegistration, provider.Request{})
	assert.ErrorIs(t, err, domain.ErrUnknownOperation)
}

func TestNotFoundIsHTTPError(t *testing.T) {
	c := newTestClient(t, http.NewServeMux())

	_, err := c.Do(context.Background(), domain.OpProcessDetail, provider.Request{Value: caseNumber})

	var httpErr *domain.ProviderHTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}
