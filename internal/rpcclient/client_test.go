package rpcclient

import (
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aurora-net/aurora-keytool/internal/keys"
)

// insertServer records author_insertKey request bodies and replies with
// the canned JSON-RPC response.
type insertServer struct {
	*httptest.Server
	bodies []string
}

func newInsertServer(t *testing.T, reply string) *insertServer {
	t.Helper()
	s := &insertServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read request body: %v", err)
		}
		s.bodies = append(s.bodies, string(body))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, reply)
	}))
	t.Cleanup(s.Close)
	return s
}

func alicePublic(t *testing.T) []byte {
	t.Helper()
	public, err := hex.DecodeString("d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d")
	if err != nil {
		t.Fatalf("decode public: %v", err)
	}
	return public
}

func TestInsertKey_RequestBody(t *testing.T) {
	srv := newInsertServer(t, `{"jsonrpc":"2.0","id":1,"result":null}`)
	client := New(srv.URL)

	if err := client.InsertKey("gran", keys.NewSecret("//Alice"), alicePublic(t)); err != nil {
		t.Fatalf("InsertKey error: %v", err)
	}

	want := `{"jsonrpc":"2.0","id":1,"method":"author_insertKey",` +
		`"params":["gran","//Alice","0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"]}`
	if len(srv.bodies) != 1 {
		t.Fatalf("request count = %d, want 1", len(srv.bodies))
	}
	if srv.bodies[0] != want {
		t.Errorf("request body = %s\nwant %s", srv.bodies[0], want)
	}
}

func TestInsertKey_IdenticalBodies(t *testing.T) {
	srv := newInsertServer(t, `{"jsonrpc":"2.0","id":1,"result":null}`)
	client := New(srv.URL)
	public := alicePublic(t)

	for i := 0; i < 2; i++ {
		if err := client.InsertKey("gran", keys.NewSecret("//Alice"), public); err != nil {
			t.Fatalf("InsertKey #%d error: %v", i, err)
		}
	}

	if len(srv.bodies) != 2 {
		t.Fatalf("request count = %d, want 2", len(srv.bodies))
	}
	if srv.bodies[0] != srv.bodies[1] {
		t.Errorf("identical invocations produced different bodies:\n%s\n%s", srv.bodies[0], srv.bodies[1])
	}
}

func TestInsertKey_ResultValueIgnored(t *testing.T) {
	// Any response with a result member is success, whatever the value.
	srv := newInsertServer(t, `{"jsonrpc":"2.0","id":1,"result":false}`)
	client := New(srv.URL)

	if err := client.InsertKey("gran", keys.NewSecret("//Alice"), alicePublic(t)); err != nil {
		t.Fatalf("InsertKey error: %v", err)
	}
}

func TestInsertKey_ServerRejection(t *testing.T) {
	srv := newInsertServer(t, `{"jsonrpc":"2.0","id":1,"error":{"code":-32000,"message":"BadKey"}}`)
	client := New(srv.URL)

	err := client.InsertKey("gran", keys.NewSecret("//Alice"), alicePublic(t))
	var rpcErr *RPCError
	if !errors.As(err, &rpcErr) {
		t.Fatalf("error = %T %v, want RPCError", err, err)
	}
	if rpcErr.Code != -32000 {
		t.Errorf("code = %d, want -32000", rpcErr.Code)
	}
	if rpcErr.Message != "BadKey" {
		t.Errorf("message = %q, want BadKey", rpcErr.Message)
	}
	if !strings.Contains(err.Error(), "BadKey") {
		t.Errorf("error text = %q, want it to carry the server message", err)
	}
}

func TestInsertKey_NodeUnreachable(t *testing.T) {
	client := New("http://127.0.0.1:1/") // port 1 — should refuse

	err := client.InsertKey("gran", keys.NewSecret("//Alice"), alicePublic(t))
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("error = %T %v, want TransportError", err, err)
	}
}

func TestInsertKey_NonJSONResponse(t *testing.T) {
	srv := newInsertServer(t, `<html>proxy error</html>`)
	client := New(srv.URL)

	err := client.InsertKey("gran", keys.NewSecret("//Alice"), alicePublic(t))
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("error = %T %v, want TransportError", err, err)
	}
}

func TestInsertKey_NoSecretInErrors(t *testing.T) {
	client := New("http://127.0.0.1:1/")

	err := client.InsertKey("gran", keys.NewSecret("//Alice"), alicePublic(t))
	if err == nil {
		t.Fatal("expected connection error")
	}
	if strings.Contains(err.Error(), "Alice") {
		t.Errorf("secret leaked into error text: %q", err)
	}
}
