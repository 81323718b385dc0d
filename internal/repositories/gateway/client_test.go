package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ProLedger/project_ledger_app/internal/apperrors"
	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	"github.com/ProLedger/project_ledger_app/internal/repositories/gateway"
)

type ClientTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) newClient(handler http.HandlerFunc) *gateway.Client {
	srv := httptest.NewServer(handler)
	s.T().Cleanup(srv.Close)
	return gateway.NewClient(srv.URL, 2*time.Second)
}

func (s *ClientTestSuite) TestGetCollection_DecodesJSON() {
	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodGet, r.Method)
		s.Equal("/collections/suppliers", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]domain.Supplier{{SupplierID: "s-1", Name: "Cement Co"}})
	})

	var out []domain.Supplier
	s.Require().NoError(client.GetCollection(s.ctx, "suppliers", &out))
	s.Require().Len(out, 1)
	s.Equal("Cement Co", out[0].Name)
}

func (s *ClientTestSuite) TestGetCollection_HTMLBodyIsOutage() {
	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<!DOCTYPE html><html><body>Maintenance</body></html>"))
	})

	var out []domain.Supplier
	err := client.GetCollection(s.ctx, "suppliers", &out)
	s.ErrorIs(err, apperrors.ErrGatewayUnavailable)
}

func (s *ClientTestSuite) TestGetCollection_ServerErrorIsOutage() {
	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	})

	var out []domain.Supplier
	err := client.GetCollection(s.ctx, "suppliers", &out)
	s.ErrorIs(err, apperrors.ErrGatewayUnavailable)
}

func (s *ClientTestSuite) TestGetCollection_ConnectionRefusedIsOutage() {
	// Port 1 is never listening.
	client := gateway.NewClient("http://127.0.0.1:1", 500*time.Millisecond)

	var out []domain.Supplier
	err := client.GetCollection(s.ctx, "suppliers", &out)
	s.ErrorIs(err, apperrors.ErrGatewayUnavailable)
}

func (s *ClientTestSuite) TestReplaceCollection_ClientErrorUsesBodyMessage() {
	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPut, r.Method)
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"schema mismatch"}`))
	})

	err := client.ReplaceCollection(s.ctx, "suppliers", []domain.Supplier{})
	s.Require().Error(err)
	s.NotErrorIs(err, apperrors.ErrGatewayUnavailable)
	s.Contains(err.Error(), "schema mismatch")
}

func (s *ClientTestSuite) TestReplaceCollection_SendsWholeCollection() {
	var received []domain.Supplier
	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	})

	in := []domain.Supplier{{SupplierID: "s-1"}, {SupplierID: "s-2"}}
	s.Require().NoError(client.ReplaceCollection(s.ctx, "suppliers", in))
	s.Len(received, 2)
}
