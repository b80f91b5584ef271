package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gcn-portal/internal/domain"
	"github.com/stretchr/testify/assert"
)

const adminGroup = "gcn.nasa.gov/gcn-admin"

func TestRequireGroup_NoIdentityInContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	RequireGroup(adminGroup)(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRequireGroup_NotMember(t *testing.T) {
	ctx := WithIdentity(context.Background(), domain.Identity{Sub: "s", Groups: []string{"gcn.nasa.gov/kafka-public-consumer"}})
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	rr := httptest.NewRecorder()
	RequireGroup(adminGroup)(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRequireGroup_Member(t *testing.T) {
	ctx := WithIdentity(context.Background(), domain.Identity{Sub: "s", Groups: []string{adminGroup}})
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	rr := httptest.NewRecorder()
	RequireGroup(adminGroup)(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRequireGroup_AnyOfSeveral(t *testing.T) {
	ctx := WithIdentity(context.Background(), domain.Identity{Sub: "s", Groups: []string{"b"}})
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	rr := httptest.NewRecorder()
	RequireGroup("a", "b")(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
