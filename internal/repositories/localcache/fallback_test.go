package localcache_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/ProLedger/project_ledger_app/internal/apperrors"
	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	"github.com/ProLedger/project_ledger_app/internal/repositories/localcache"
)

// fakeGateway is an in-memory stand-in for the HTTP client. Setting
// down makes every call fail the way an unreachable gateway would.
type fakeGateway struct {
	collections map[string]json.RawMessage
	down        bool
	getCalls    int
	putCalls    int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{collections: make(map[string]json.RawMessage)}
}

func (f *fakeGateway) GetCollection(_ context.Context, name string, out interface{}) error {
	f.getCalls++
	if f.down {
		return fmt.Errorf("%w: connection refused", apperrors.ErrGatewayUnavailable)
	}
	raw, ok := f.collections[name]
	if !ok {
		return apperrors.ErrNotFound
	}
	return json.Unmarshal(raw, out)
}

func (f *fakeGateway) ReplaceCollection(_ context.Context, name string, data interface{}) error {
	f.putCalls++
	if f.down {
		return fmt.Errorf("%w: connection refused", apperrors.ErrGatewayUnavailable)
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	f.collections[name] = raw
	return nil
}

type FallbackTestSuite struct {
	suite.Suite
	gw       *fakeGateway
	cache    *localcache.Store
	fallback *localcache.FallbackStore
	ctx      context.Context
}

func (s *FallbackTestSuite) SetupTest() {
	mr := miniredis.RunT(s.T())
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s.gw = newFakeGateway()
	s.cache = localcache.NewStore(rdb)
	s.fallback = localcache.NewFallbackStore(s.gw, s.cache, testLogger)
	s.ctx = context.Background()
}

func TestFallbackTestSuite(t *testing.T) {
	suite.Run(t, new(FallbackTestSuite))
}

func (s *FallbackTestSuite) seedGateway(name string, data interface{}) {
	raw, err := json.Marshal(data)
	s.Require().NoError(err)
	s.gw.collections[name] = raw
}

func (s *FallbackTestSuite) TestGetCollection_MirrorsIntoCache() {
	s.seedGateway("suppliers", []domain.Supplier{{SupplierID: "s-1", Name: "Cement Co"}})

	var out []domain.Supplier
	s.Require().NoError(s.fallback.GetCollection(s.ctx, "suppliers", &out))
	s.Require().Len(out, 1)

	// Cached copy now serves the same data without the gateway.
	var cached []domain.Supplier
	s.Require().NoError(s.cache.GetCollection(s.ctx, "suppliers", &cached))
	s.Equal("s-1", cached[0].SupplierID)
}

func (s *FallbackTestSuite) TestGetCollection_ServesFromCacheWhenGatewayDown() {
	s.seedGateway("suppliers", []domain.Supplier{{SupplierID: "s-1", Name: "Cement Co"}})

	var warm []domain.Supplier
	s.Require().NoError(s.fallback.GetCollection(s.ctx, "suppliers", &warm))

	s.gw.down = true
	var out []domain.Supplier
	s.Require().NoError(s.fallback.GetCollection(s.ctx, "suppliers", &out))
	s.Require().Len(out, 1)
	s.Equal("Cement Co", out[0].Name)
}

func (s *FallbackTestSuite) TestGetCollection_ColdCacheReportsOutage() {
	s.gw.down = true
	var out []domain.Supplier
	err := s.fallback.GetCollection(s.ctx, "suppliers", &out)
	s.ErrorIs(err, apperrors.ErrGatewayUnavailable)
}

func (s *FallbackTestSuite) TestGetCollection_NonOutageErrorPassesThrough() {
	var out []domain.Supplier
	err := s.fallback.GetCollection(s.ctx, "suppliers", &out)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.False(errors.Is(err, apperrors.ErrGatewayUnavailable))
}

func (s *FallbackTestSuite) TestReplaceCollection_WritesThroughAndMirrors() {
	in := []domain.Supplier{{SupplierID: "s-2", Name: "Steel Ltd"}}
	s.Require().NoError(s.fallback.ReplaceCollection(s.ctx, "suppliers", in))
	s.Equal(1, s.gw.putCalls)

	var cached []domain.Supplier
	s.Require().NoError(s.cache.GetCollection(s.ctx, "suppliers", &cached))
	s.Equal("s-2", cached[0].SupplierID)
}

func (s *FallbackTestSuite) TestReplaceCollection_GatewayDownPersistsToCache() {
	s.gw.down = true
	err := s.fallback.ReplaceCollection(s.ctx, "suppliers", []domain.Supplier{{SupplierID: "s-3", Name: "Gravel GmbH"}})
	s.Require().NoError(err)

	// The write survived the outage in the cache and reads keep working.
	var cached []domain.Supplier
	s.Require().NoError(s.cache.GetCollection(s.ctx, "suppliers", &cached))
	s.Equal("s-3", cached[0].SupplierID)

	var out []domain.Supplier
	s.Require().NoError(s.fallback.GetCollection(s.ctx, "suppliers", &out))
	s.Equal("Gravel GmbH", out[0].Name)

	// The gateway itself never saw the data.
	s.Empty(s.gw.collections)
}

func (s *FallbackTestSuite) TestReplaceCollection_NonOutageErrorFailsWithoutCaching() {
	in := make(chan int) // json.Marshal rejects this, a plain write error
	err := s.fallback.ReplaceCollection(s.ctx, "suppliers", in)

	s.Error(err)
	s.False(errors.Is(err, apperrors.ErrGatewayUnavailable))
	var cached []domain.Supplier
	s.ErrorIs(s.cache.GetCollection(s.ctx, "suppliers", &cached), apperrors.ErrNotFound)
}
