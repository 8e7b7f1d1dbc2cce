package remote_test

import (
	"encoding/xml"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// methodCall mirrors the XML-RPC request body for test-side inspection.
type methodCall struct {
	XMLName    xml.Name   `xml:"methodCall"`
	MethodName string     `xml:"methodName"`
	Params     []xmlParam `xml:"params>param"`
}

type xmlParam struct {
	Value xmlValue `xml:"value"`
}

type xmlValue struct {
	String  *string   `xml:"string"`
	Int     *string   `xml:"int"`
	I4      *string   `xml:"i4"`
	Boolean *string   `xml:"boolean"`
	Double  *string   `xml:"double"`
	Base64  *string   `xml:"base64"`
	Array   *xmlArray `xml:"array"`
	Raw     string    `xml:",chardata"`
}

type xmlArray struct {
	Values []xmlValue `xml:"data>value"`
}

// testServer is a canned XML-RPC endpoint. Handlers are keyed by method
// name; get_version answers by default so Connect's probe succeeds.
type testServer struct {
	mu       sync.Mutex
	calls    []methodCall
	handlers map[string]func(call methodCall) string
	srv      *httptest.Server
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{handlers: map[string]func(methodCall) string{}}
	ts.handlers["get_version"] = func(methodCall) string { return respString("1.0.0") }
	ts.srv = httptest.NewServer(http.HandlerFunc(ts.handle))
	t.Cleanup(ts.srv.Close)
	return ts
}

func (ts *testServer) handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var call methodCall
	if err := xml.Unmarshal(body, &call); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ts.mu.Lock()
	ts.calls = append(ts.calls, call)
	handler := ts.handlers[call.MethodName]
	ts.mu.Unlock()

	w.Header().Set("Content-Type", "text/xml")
	if handler == nil {
		fmt.Fprint(w, respFault(1, "method "+call.MethodName+" is not supported"))
		return
	}
	fmt.Fprint(w, handler(call))
}

func (ts *testServer) on(method string, handler func(methodCall) string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.handlers[method] = handler
}

func (ts *testServer) port(t *testing.T) int {
	t.Helper()
	addr, ok := ts.srv.Listener.Addr().(*net.TCPAddr)
	if !ok {
		t.Fatalf("unexpected listener address %T", ts.srv.Listener.Addr())
	}
	return addr.Port
}

func (ts *testServer) lastCall(t *testing.T, method string) methodCall {
	t.Helper()
	ts.mu.Lock()
	defer ts.mu.Unlock()
	for i := len(ts.calls) - 1; i >= 0; i-- {
		if ts.calls[i].MethodName == method {
			return ts.calls[i]
		}
	}
	t.Fatalf("no recorded call to %s", method)
	return methodCall{}
}

func respString(s string) string {
	return envelope("<string>" + xmlEscape(s) + "</string>")
}

func respBool(b bool) string {
	v := "0"
	if b {
		v = "1"
	}
	return envelope("<boolean>" + v + "</boolean>")
}

func respStrings(items ...string) string {
	var sb strings.Builder
	sb.WriteString("<array><data>")
	for _, item := range items {
		sb.WriteString("<value><string>")
		sb.WriteString(xmlEscape(item))
		sb.WriteString("</string></value>")
	}
	sb.WriteString("</data></array>")
	return envelope(sb.String())
}

func respFault(code int, message string) string {
	return `<?xml version="1.0"?><methodResponse><fault><value><struct>` +
		`<member><name>faultCode</name><value><int>` + fmt.Sprint(code) + `</int></value></member>` +
		`<member><name>faultString</name><value><string>` + xmlEscape(message) + `</string></value></member>` +
		`</struct></value></fault></methodResponse>`
}

func envelope(value string) string {
	return `<?xml version="1.0"?><methodResponse><params><param><value>` + value + `</value></param></params></methodResponse>`
}

func xmlEscape(s string) string {
	var sb strings.Builder
	if err := xml.EscapeText(&sb, []byte(s)); err != nil {
		return s
	}
	return sb.String()
}

// scalar returns the string form of whichever scalar field is set.
func (v xmlValue) scalar() string {
	switch {
	case v.String != nil:
		return *v.String
	case v.Int != nil:
		return *v.Int
	case v.I4 != nil:
		return *v.I4
	case v.Boolean != nil:
		return *v.Boolean
	case v.Double != nil:
		return *v.Double
	case v.Base64 != nil:
		return *v.Base64
	default:
		return strings.TrimSpace(v.Raw)
	}
}
