// Command obsmock is a minimal local stand-in for an OBS instance: it
// speaks just enough of the OBS-WebSocket v5 protocol (Hello/Identify/
// Identified plus a couple of requests) to exercise cmd/obsctl and the
// engine end to end without a real OBS Studio process.
package main

import (
	"encoding/json"
	"flag"
	"net/http"

	"github.com/danmuck/obswire/internal/logging"
	"github.com/danmuck/obswire/internal/protocol"
	"github.com/danmuck/obswire/internal/requests"
	"github.com/danmuck/obswire/internal/transport"
)

func main() {
	logging.ConfigureRuntime()

	addr := flag.String("addr", "localhost:4455", "listen address")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("/", handleConn)

	logging.Infof("obsmock: listening on %s", *addr)
	if err := http.ListenAndServe(*addr, mux); err != nil {
		logging.Errorf("obsmock: %v", err)
	}
}

func handleConn(w http.ResponseWriter, r *http.Request) {
	conn, err := transport.Accept(w, r)
	if err != nil {
		logging.Errorf("obsmock: accept: %v", err)
		return
	}
	defer conn.Close()

	session := &mockSession{conn: conn, currentScene: "Scene A"}
	session.run()
}

// mockSession drives one client connection through the handshake and
// answers a small, fixed set of requests.
type mockSession struct {
	conn         transport.Conn
	currentScene string
}

func (s *mockSession) run() {
	if err := s.send(protocol.OpHello, protocol.HelloData{
		OBSWebSocketVersion: "5.5.5",
		RPCVersion:          1,
	}); err != nil {
		logging.Errorf("obsmock: sending hello: %v", err)
		return
	}

	op, raw, err := s.recv()
	if err != nil {
		logging.Errorf("obsmock: awaiting identify: %v", err)
		return
	}
	if op != protocol.OpIdentify {
		logging.Errorf("obsmock: expected Identify, got %s", op)
		return
	}
	if _, err := protocol.DecodePayload[protocol.IdentifyData](op, raw); err != nil {
		logging.Errorf("obsmock: decoding identify: %v", err)
		return
	}
	if err := s.send(protocol.OpIdentified, protocol.IdentifiedData{NegotiatedRPCVersion: 1}); err != nil {
		logging.Errorf("obsmock: sending identified: %v", err)
		return
	}

	for {
		op, raw, err := s.recv()
		if err != nil {
			logging.Infof("obsmock: connection closed: %v", err)
			return
		}
		switch op {
		case protocol.OpRequest:
			s.handleRequest(raw)
		case protocol.OpReidentify:
			logging.Infof("obsmock: reidentify received")
		default:
			logging.Warnf("obsmock: unexpected opcode %s", op)
		}
	}
}

func (s *mockSession) handleRequest(raw json.RawMessage) {
	req, err := protocol.DecodePayload[protocol.RequestData](protocol.OpRequest, raw)
	if err != nil {
		logging.Errorf("obsmock: decoding request: %v", err)
		return
	}

	status := protocol.RequestStatus{Result: true, Code: protocol.RequestStatusSuccess}
	var data any
	switch req.RequestType {
	case requests.GetVersion:
		data = requests.GetVersionResponse{ObsVersion: "30.0.0", ObsWebSocketVersion: "5.5.5", RPCVersion: 1}
	case requests.GetStudioModeEnabled:
		data = requests.GetStudioModeEnabledResponse{StudioModeEnabled: false}
	case requests.GetCurrentProgramScene:
		data = requests.GetCurrentProgramSceneResponse{SceneName: s.currentScene}
	case requests.SetCurrentProgramScene:
		s.currentScene = "Scene B"
		data = requests.SetCurrentProgramSceneResponse{}
	default:
		status = protocol.RequestStatus{Result: false, Code: 403, Comment: "obsmock does not implement " + req.RequestType}
	}

	responseData, _ := json.Marshal(data)
	if err := s.send(protocol.OpRequestResponse, protocol.RequestResponseData{
		RequestType:   req.RequestType,
		RequestID:     req.RequestID,
		RequestStatus: status,
		ResponseData:  responseData,
	}); err != nil {
		logging.Errorf("obsmock: sending response for %s: %v", req.RequestType, err)
	}
}

func (s *mockSession) send(op protocol.Opcode, payload any) error {
	raw, err := protocol.Encode(op, payload)
	if err != nil {
		return err
	}
	return s.conn.WriteMessage(transport.TextMessage, raw)
}

func (s *mockSession) recv() (protocol.Opcode, json.RawMessage, error) {
	_, data, err := s.conn.ReadMessage()
	if err != nil {
		return 0, nil, err
	}
	return protocol.Decode(data)
}
