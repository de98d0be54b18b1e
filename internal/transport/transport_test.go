package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danmuck/obswire/internal/testutil/testlog"
)

func TestDialAcceptRoundTrip(t *testing.T) {
	testlog.Start(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := Accept(w, r)
		if err != nil {
			t.Errorf("server accept: %v", err)
			return
		}
		defer conn.Close()
		mt, data, err := conn.ReadMessage()
		if err != nil {
			t.Errorf("server read: %v", err)
			return
		}
		if err := conn.WriteMessage(mt, data); err != nil {
			t.Errorf("server echo: %v", err)
		}
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := Dial(context.Background(), wsURL, EncodingJSON)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	want := []byte(`{"op":1,"d":{}}`)
	if err := conn.WriteMessage(TextMessage, want); err != nil {
		t.Fatalf("client write: %v", err)
	}
	_, got, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("client read: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("got=%q want=%q", got, want)
	}
}

func TestDialRejectsMsgPack(t *testing.T) {
	testlog.Start(t)

	_, _, err := Dial(context.Background(), "ws://127.0.0.1:0", EncodingMsgPack)
	if !errors.Is(err, ErrMsgPackUnsupported) {
		t.Fatalf("got err=%v, want ErrMsgPackUnsupported", err)
	}
}
