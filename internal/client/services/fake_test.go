package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type apiCall struct {
	Method string
	Path   string
	Body   any
}

// fakeAPI answers calls from canned JSON keyed by "METHOD path".
type fakeAPI struct {
	calls     []apiCall
	responses map[string]string
	errs      map[string]error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{responses: map[string]string{}, errs: map[string]error{}}
}

func (f *fakeAPI) on(method, path, body string) *fakeAPI {
	f.responses[method+" "+path] = body
	return f
}

func (f *fakeAPI) fail(method, path string, err error) *fakeAPI {
	f.errs[method+" "+path] = err
	return f
}

func (f *fakeAPI) do(method, path string, body, out any) error {
	f.calls = append(f.calls, apiCall{Method: method, Path: path, Body: body})

	key := method + " " + path
	if err := f.errs[key]; err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	raw, ok := f.responses[key]
	if !ok {
		return fmt.Errorf("unexpected call %s", key)
	}
	return json.Unmarshal([]byte(raw), out)
}

func (f *fakeAPI) Get(_ context.Context, path string, out any) error {
	return f.do(http.MethodGet, path, nil, out)
}

func (f *fakeAPI) Post(_ context.Context, path string, body, out any) error {
	return f.do(http.MethodPost, path, body, out)
}

func (f *fakeAPI) Patch(_ context.Context, path string, body, out any) error {
	return f.do(http.MethodPatch, path, body, out)
}

func (f *fakeAPI) Delete(_ context.Context, path string, out any) error {
	return f.do(http.MethodDelete, path, nil, out)
}

// bodyJSON renders the body of call i for JSONEq comparisons.
func (f *fakeAPI) bodyJSON(i int) string {
	b, err := json.Marshal(f.calls[i].Body)
	if err != nil {
		panic(err)
	}
	return string(b)
}
