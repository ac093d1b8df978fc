package client

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeClientStore struct {
	clients map[uint]*Client
	nextID  uint
}

func newFakeClientStore() *fakeClientStore {
	return &fakeClientStore{clients: make(map[uint]*Client), nextID: 1}
}

func (f *fakeClientStore) Create(c *Client) error {
	c.ID = f.nextID
	f.nextID++
	f.clients[c.ID] = c
	return nil
}

func (f *fakeClientStore) FindByID(id uint) (*Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeClientStore) ListRecent(limit int) ([]Client, error) { return nil, nil }

func (f *fakeClientStore) Update(c *Client) error {
	f.clients[c.ID] = c
	return nil
}

func (f *fakeClientStore) Delete(id uint) error {
	if _, ok := f.clients[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.clients, id)
	return nil
}

func newRouter(store Store) *mux.Router {
	h := NewHandler(store)
	r := mux.NewRouter()
	r.HandleFunc("/api/admin/clients", h.Create).Methods("POST")
	r.HandleFunc("/api/admin/clients/{id}", h.Get).Methods("GET")
	r.HandleFunc("/api/admin/clients/{id}", h.Update).Methods("PUT")
	r.HandleFunc("/api/admin/clients/{id}", h.Delete).Methods("DELETE")
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestClientCRUD(t *testing.T) {
	store := newFakeClientStore()
	r := newRouter(store)

	rec := do(t, r, "POST", "/api/admin/clients", Client{BusinessName: "Acme Roofing Co.", Email: "jo@acme.test"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created Client
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, uint(1), created.ID)

	rec = do(t, r, "GET", "/api/admin/clients/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, r, "PUT", "/api/admin/clients/1", Client{BusinessName: "Acme Roofing LLC"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Acme Roofing LLC", store.clients[1].BusinessName)

	rec = do(t, r, "DELETE", "/api/admin/clients/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, r, "GET", "/api/admin/clients/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClientCreateRequiresBusinessName(t *testing.T) {
	r := newRouter(newFakeClientStore())
	rec := do(t, r, "POST", "/api/admin/clients", Client{Email: "jo@acme.test"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClientInvalidID(t *testing.T) {
	r := newRouter(newFakeClientStore())
	rec := do(t, r, "GET", "/api/admin/clients/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, r, "DELETE", "/api/admin/clients/9", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
