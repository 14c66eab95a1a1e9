package handler_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taxdesk/internal/domain"
	"taxdesk/internal/handler"
	"taxdesk/internal/service"
	"taxdesk/mocks"
)

func newClientHandler() (*handler.ClientHandler, *mocks.MockClientService) {
	svc := new(mocks.MockClientService)
	return handler.NewClientHandler(svc), svc
}

func TestClientHandler_Create_Success(t *testing.T) {
	h, svc := newClientHandler()
	actor := staffActor()
	pan := "ABCDE1234F"

	svc.On("Create", mock.Anything, actor, mock.MatchedBy(func(in service.ClientInput) bool {
		return in.Name == "Asha Traders" && in.PAN == pan && in.ClientType == "Company"
	})).Return(&domain.Client{ID: uuid.New(), Name: "Asha Traders", PAN: &pan}, nil)

	c, w := newContext(t, http.MethodPost, "/api/v1/clients", map[string]string{
		"name":        "Asha Traders",
		"pan":         pan,
		"client_type": "Company",
	}, &actor)
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, decode(t, w).Success)
	svc.AssertExpectations(t)
}

func TestClientHandler_Create_DuplicatePAN(t *testing.T) {
	h, svc := newClientHandler()
	actor := staffActor()
	svc.On("Create", mock.Anything, actor, mock.Anything).Return(nil, domain.ErrDuplicatePAN)

	c, w := newContext(t, http.MethodPost, "/api/v1/clients", map[string]string{"name": "X", "client_type": "Individual"}, &actor)
	h.Create(c)

	requireErrorCode(t, w, http.StatusConflict, "DUPLICATE_PAN")
}

func TestClientHandler_Create_NoAuth(t *testing.T) {
	h, svc := newClientHandler()

	c, w := newContext(t, http.MethodPost, "/api/v1/clients", map[string]string{"name": "X"}, nil)
	h.Create(c)

	requireErrorCode(t, w, http.StatusUnauthorized, "UNAUTHORIZED")
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestClientHandler_Create_MalformedJSON(t *testing.T) {
	h, _ := newClientHandler()
	actor := staffActor()

	c, w := newContext(t, http.MethodPost, "/api/v1/clients", "not an object", &actor)
	h.Create(c)

	requireErrorCode(t, w, http.StatusBadRequest, "INVALID_REQUEST")
}

func TestClientHandler_List_PassesFilter(t *testing.T) {
	h, svc := newClientHandler()
	actor := staffActor()

	svc.On("List", mock.Anything, actor, mock.MatchedBy(func(f domain.ListFilter) bool {
		return f.Search == "asha" && f.Status == "Active" && f.Offset == 20 && f.Limit == 10 &&
			f.From != nil && f.From.Format(domain.DateLayout) == "2024-04-01"
	})).Return([]domain.Client{{Name: "Asha Traders"}}, 21, nil)

	c, w := newContext(t, http.MethodGet, "/api/v1/clients?search=asha&status=Active&offset=20&limit=10&from=2024-04-01", nil, &actor)
	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 21, resp.Meta.Total)
	assert.Equal(t, 10, resp.Meta.Limit)
	svc.AssertExpectations(t)
}

func TestClientHandler_List_ClampsLimit(t *testing.T) {
	h, svc := newClientHandler()
	actor := staffActor()

	svc.On("List", mock.Anything, actor, mock.MatchedBy(func(f domain.ListFilter) bool {
		return f.Limit == 20 && f.Offset == 0
	})).Return([]domain.Client{}, 0, nil)

	c, w := newContext(t, http.MethodGet, "/api/v1/clients?limit=500&offset=-3", nil, &actor)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestClientHandler_List_BadDate(t *testing.T) {
	h, svc := newClientHandler()
	actor := staffActor()

	c, w := newContext(t, http.MethodGet, "/api/v1/clients?from=01-04-2024", nil, &actor)
	h.List(c)

	requireErrorCode(t, w, http.StatusBadRequest, "INVALID_REQUEST")
	svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestClientHandler_GetByID_InvalidID(t *testing.T) {
	h, _ := newClientHandler()
	actor := staffActor()

	c, w := newContext(t, http.MethodGet, "/api/v1/clients/nope", nil, &actor)
	c.Params = append(c.Params, ginParam("id", "nope"))
	h.GetByID(c)

	requireErrorCode(t, w, http.StatusBadRequest, "INVALID_ID")
}

func TestClientHandler_GetByID_NotFound(t *testing.T) {
	h, svc := newClientHandler()
	actor := staffActor()
	id := uuid.New()
	svc.On("GetByID", mock.Anything, actor, id).Return(nil, domain.ErrNotFound)

	c, w := newContext(t, http.MethodGet, "/api/v1/clients/"+id.String(), nil, &actor)
	withID(c, id)
	h.GetByID(c)

	requireErrorCode(t, w, http.StatusNotFound, "NOT_FOUND")
}

func TestClientHandler_SetStatus(t *testing.T) {
	h, svc := newClientHandler()
	actor := staffActor()
	id := uuid.New()
	svc.On("SetStatus", mock.Anything, actor, id, domain.ClientStatusInactive).
		Return(&domain.Client{ID: id, Status: domain.ClientStatusInactive}, nil)

	c, w := newContext(t, http.MethodPut, "/", map[string]string{"status": "Inactive"}, &actor)
	withID(c, id)
	h.SetStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestClientHandler_Delete_OpenFees(t *testing.T) {
	h, svc := newClientHandler()
	actor := staffActor()
	actor.Role = domain.RoleAdmin
	id := uuid.New()
	svc.On("Delete", mock.Anything, actor, id).Return(domain.ErrClientHasOpenFees)

	c, w := newContext(t, http.MethodDelete, "/", nil, &actor)
	withID(c, id)
	h.Delete(c)

	requireErrorCode(t, w, http.StatusConflict, "CLIENT_HAS_OPEN_FEES")
}

func TestClientHandler_Search(t *testing.T) {
	h, svc := newClientHandler()
	actor := staffActor()
	svc.On("Search", mock.Anything, actor, "ash").Return([]domain.Client{{Name: "Asha"}}, nil)

	c, w := newContext(t, http.MethodGet, "/api/v1/clients/search?q=ash", nil, &actor)
	h.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
