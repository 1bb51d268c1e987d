package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"horse-registry/internal/adapters/storage"
	"horse-registry/internal/adapters/storage/sqlite"
	"horse-registry/internal/adapters/storage/sqlstore"
	"horse-registry/internal/router"
)

type horseBody struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DateOfBirth string `json:"dateOfBirth"`
	Sex         string `json:"sex"`
	Owner       *struct {
		ID int64 `json:"id"`
	} `json:"owner"`
	Mother *struct {
		ID int64 `json:"id"`
	} `json:"mother"`
	Father *struct {
		ID int64 `json:"id"`
	} `json:"father"`
}

type errorBody struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

type treeBody struct {
	ID     int64     `json:"id"`
	Name   string    `json:"name"`
	Mother *treeBody `json:"mother"`
	Father *treeBody `json:"father"`
}

func backends(t *testing.T) map[string]func(t *testing.T) *storage.Stores {
	t.Helper()
	return map[string]func(t *testing.T) *storage.Stores{
		"memory": func(t *testing.T) *storage.Stores { return storage.NewMemory() },
		"sqlite": func(t *testing.T) *storage.Stores {
			db, err := sqlite.Open(sqlite.InMemory)
			if err != nil {
				t.Fatalf("open sqlite: %v", err)
			}
			t.Cleanup(func() { _ = db.Close() })
			if err := sqlstore.MigrateUp(context.Background(), db, sqlstore.SQLite); err != nil {
				t.Fatalf("migrate: %v", err)
			}
			return storage.NewSQL(db, sqlstore.SQLite)
		},
	}
}

func TestHTTP_EndToEnd_Pedigree(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ts := httptest.NewServer(router.NewRouter(router.Options{Stores: open(t)}))
			defer ts.Close()

			// 1) Owner
			st, body := doReq(t, ts.URL, "POST", "/owners", map[string]any{
				"firstName": "Ann",
				"lastName":  "Smith",
				"email":     "ann@example.com",
			})
			if st != http.StatusCreated {
				t.Fatalf("expected 201 create owner, got %d body=%s", st, string(body))
			}
			var owner struct {
				ID int64 `json:"id"`
			}
			_ = json.Unmarshal(body, &owner)

			// 2) Padres e hijo sin relacionar
			motherID := createHorse(t, ts.URL, map[string]any{
				"name": "SuitableMother", "dateOfBirth": "2000-01-01", "sex": "FEMALE", "ownerId": owner.ID,
			})
			fatherID := createHorse(t, ts.URL, map[string]any{
				"name": "SuitableFather", "dateOfBirth": "2000-01-01", "sex": "MALE",
			})
			childID := createHorse(t, ts.URL, map[string]any{
				"name": "SuitableChildForSuitableMotherAndSuitableFather", "dateOfBirth": "2010-01-01", "sex": "MALE",
				"description": "The famous one!",
			})
			createHorse(t, ts.URL, map[string]any{"name": "Wendy", "dateOfBirth": "2012-12-12", "sex": "FEMALE"})

			// 3) Update del hijo con madre y padre
			{
				st, body := doReq(t, ts.URL, "PUT", fmt.Sprintf("/horses/%d", childID), map[string]any{
					"name":        "SuitableChildForSuitableMotherAndSuitableFather",
					"description": "The famous one!",
					"dateOfBirth": "2010-01-01",
					"sex":         "MALE",
					"motherId":    motherID,
					"fatherId":    fatherID,
				})
				if st != http.StatusOK {
					t.Fatalf("expected 200 update child, got %d body=%s", st, string(body))
				}
				var h horseBody
				_ = json.Unmarshal(body, &h)
				if h.Mother == nil || h.Mother.ID != motherID || h.Father == nil || h.Father.ID != fatherID {
					t.Fatalf("expected parents %d/%d, got body=%s", motherID, fatherID, string(body))
				}
			}

			// 4) Search por substring del nombre
			{
				st, body := doReq(t, ts.URL, "GET", "/horses?name=sui", nil)
				if st != http.StatusOK {
					t.Fatalf("expected 200 search, got %d", st)
				}
				var items []horseBody
				_ = json.Unmarshal(body, &items)
				if len(items) != 3 {
					t.Fatalf("expected 3 horses matching 'sui', got %d body=%s", len(items), string(body))
				}
			}
			{
				st, body := doReq(t, ts.URL, "GET", "/horses?ownerName=ann%20sm", nil)
				if st != http.StatusOK {
					t.Fatalf("expected 200 search by owner, got %d", st)
				}
				var items []horseBody
				_ = json.Unmarshal(body, &items)
				if len(items) != 1 || items[0].ID != motherID || items[0].Owner == nil || items[0].Owner.ID != owner.ID {
					t.Fatalf("expected only the mother with its owner, got body=%s", string(body))
				}
			}
			{
				st, body := doReq(t, ts.URL, "GET", "/horses?sex=FEMALE&bornBefore=2012-12-12", nil)
				if st != http.StatusOK {
					t.Fatalf("expected 200 search by sex, got %d", st)
				}
				var items []horseBody
				_ = json.Unmarshal(body, &items)
				if len(items) != 1 || items[0].ID != motherID {
					t.Fatalf("expected only the mother, got body=%s", string(body))
				}
			}

			// 5) Árbol genealógico
			{
				tree := getTree(t, ts.URL, childID, "2")
				if tree == nil || tree.Mother == nil || tree.Father == nil {
					t.Fatalf("expected root with both parents, got %+v", tree)
				}
				if tree.Mother.Mother != nil || tree.Mother.Father != nil {
					t.Fatalf("expected parents without ancestors")
				}

				root := getTree(t, ts.URL, childID, "1")
				if root == nil || root.Mother != nil || root.Father != nil {
					t.Fatalf("expected root only with generations=1, got %+v", root)
				}

				if empty := getTree(t, ts.URL, childID, "0"); empty != nil {
					t.Fatalf("expected null tree with generations=0, got %+v", empty)
				}

				st, _ := doReq(t, ts.URL, "GET", "/horses/99999/familytree", nil)
				if st != http.StatusNotFound {
					t.Fatalf("expected 404 tree of unknown horse, got %d", st)
				}
			}

			// 6) Conflictos de pedigree
			{
				st, body := doReq(t, ts.URL, "POST", "/horses", map[string]any{
					"name": "Foal", "dateOfBirth": "2015-05-05", "sex": "MALE",
					"motherId": fatherID, "fatherId": motherID,
				})
				if st != http.StatusConflict {
					t.Fatalf("expected 409 swapped parents, got %d body=%s", st, string(body))
				}
				var e errorBody
				_ = json.Unmarshal(body, &e)
				if !contains(e.Errors, "Father cannot be female") || !contains(e.Errors, "Mother cannot be male") {
					t.Fatalf("expected both sex conflicts, got %v", e.Errors)
				}
			}

			// 7) Validación: todas las fallas juntas
			{
				st, body := doReq(t, ts.URL, "POST", "/horses", map[string]any{
					"name": "  ", "dateOfBirth": "2999-01-01", "sex": "MALE",
				})
				if st != http.StatusUnprocessableEntity {
					t.Fatalf("expected 422, got %d body=%s", st, string(body))
				}
				var e errorBody
				_ = json.Unmarshal(body, &e)
				if len(e.Errors) != 2 {
					t.Fatalf("expected 2 validation errors, got %v", e.Errors)
				}
			}

			// 8) Chequeo retroactivo: la madre ya tiene un hijo
			{
				st, body := doReq(t, ts.URL, "PUT", fmt.Sprintf("/horses/%d", motherID), map[string]any{
					"name": "SuitableMother", "dateOfBirth": "2000-01-01", "sex": "MALE", "ownerId": owner.ID,
				})
				if st != http.StatusConflict {
					t.Fatalf("expected 409 changing sex of a parent, got %d body=%s", st, string(body))
				}
			}

			// 9) Delete de la madre: el hijo queda sin madre
			{
				st, _ := doReq(t, ts.URL, "DELETE", fmt.Sprintf("/horses/%d", motherID), nil)
				if st != http.StatusNoContent {
					t.Fatalf("expected 204 delete, got %d", st)
				}

				st, body := doReq(t, ts.URL, "GET", fmt.Sprintf("/horses/%d", childID), nil)
				if st != http.StatusOK {
					t.Fatalf("expected 200 get child, got %d", st)
				}
				var h horseBody
				_ = json.Unmarshal(body, &h)
				if h.Mother != nil || h.Father == nil || h.Father.ID != fatherID {
					t.Fatalf("expected child without mother and same father, got body=%s", string(body))
				}

				st, _ = doReq(t, ts.URL, "DELETE", fmt.Sprintf("/horses/%d", motherID), nil)
				if st != http.StatusNotFound {
					t.Fatalf("expected 404 second delete, got %d", st)
				}
			}
		})
	}
}

func TestHTTP_BadRequests(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	cases := []struct {
		method, path string
		body         any
		want         int
	}{
		{"GET", "/horses?sex=pony", nil, http.StatusBadRequest},
		{"GET", "/horses?limit=-1", nil, http.StatusBadRequest},
		{"GET", "/horses?bornBefore=12/12/2012", nil, http.StatusBadRequest},
		{"GET", "/horses/abc", nil, http.StatusNotFound},
		{"GET", "/horses/42", nil, http.StatusNotFound},
		{"PUT", "/horses/42", map[string]any{"name": "X", "dateOfBirth": "2000-01-01", "sex": "MALE"}, http.StatusNotFound},
		{"POST", "/horses", map[string]any{"name": "X", "dateOfBirth": "01-01-2000", "sex": "MALE"}, http.StatusBadRequest},
		{"GET", "/horses/1/familytree?generations=many", nil, http.StatusBadRequest},
		{"POST", "/owners", map[string]any{"firstName": "", "lastName": "Doe", "email": "nope"}, http.StatusUnprocessableEntity},
		{"GET", "/owners?limit=x", nil, http.StatusBadRequest},
		{"GET", "/owners/7", nil, http.StatusNotFound},
	}

	for _, tc := range cases {
		st, body := doReq(t, ts.URL, tc.method, tc.path, tc.body)
		if st != tc.want {
			t.Fatalf("%s %s: expected %d, got %d body=%s", tc.method, tc.path, tc.want, st, string(body))
		}
	}
}

func TestHTTP_HealthAndMetrics(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d %q", st, string(body))
	}

	_, _ = doReq(t, ts.URL, "GET", "/horses", nil)

	st, body = doReq(t, ts.URL, "GET", "/metrics", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 metrics, got %d", st)
	}
	if !strings.Contains(string(body), "horse_registry_http_requests_total") {
		t.Fatalf("expected request counter in metrics output")
	}
}

func createHorse(t *testing.T, baseURL string, payload map[string]any) int64 {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/horses", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create horse, got %d body=%s", st, string(body))
	}

	var resp horseBody
	_ = json.Unmarshal(body, &resp)
	if resp.ID == 0 {
		t.Fatalf("create horse: missing id body=%s", string(body))
	}
	return resp.ID
}

func getTree(t *testing.T, baseURL string, id int64, generations string) *treeBody {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", fmt.Sprintf("/horses/%d/familytree?generations=%s", id, generations), nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 family tree, got %d body=%s", st, string(body))
	}
	var tree *treeBody
	if err := json.Unmarshal(body, &tree); err != nil {
		t.Fatalf("decode tree: %v body=%s", err, string(body))
	}
	return tree
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
