package protocol

import "fmt"

// Opcode is the outer envelope's "op" field. It selects which payload
// shape the "d" field carries.
type Opcode int

const (
	OpHello                Opcode = 0
	OpIdentify             Opcode = 1
	OpIdentified           Opcode = 2
	OpReidentify           Opcode = 3
	OpEvent                Opcode = 5
	OpRequest              Opcode = 6
	OpRequestResponse      Opcode = 7
	OpRequestBatch         Opcode = 8
	OpRequestBatchResponse Opcode = 9
)

func (o Opcode) String() string {
	switch o {
	case OpHello:
		return "Hello"
	case OpIdentify:
		return "Identify"
	case OpIdentified:
		return "Identified"
	case OpReidentify:
		return "Reidentify"
	case OpEvent:
		return "Event"
	case OpRequest:
		return "Request"
	case OpRequestResponse:
		return "RequestResponse"
	case OpRequestBatch:
		return "RequestBatch"
	case OpRequestBatchResponse:
		return "RequestBatchResponse"
	default:
		return fmt.Sprintf("Opcode(%d)", int(o))
	}
}

// Known reports whether o is one of the nine defined opcodes.
func (o Opcode) Known() bool {
	switch o {
	case OpHello, OpIdentify, OpIdentified, OpReidentify, OpEvent,
		OpRequest, OpRequestResponse, OpRequestBatch, OpRequestBatchResponse:
		return true
	default:
		return false
	}
}
