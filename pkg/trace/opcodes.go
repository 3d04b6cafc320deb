package trace

import (
	"cmp"
	"fmt"

	"github.com/benbjohnson/immutable"
)

// Opcodes of the TinyML RISC CPU.
const (
	OpADD     uint32 = 0x0
	OpSUB     uint32 = 0x1
	OpAND     uint32 = 0x2
	OpOR      uint32 = 0x3
	OpXOR     uint32 = 0x4
	OpLOADI   uint32 = 0x5
	OpLOADHI  uint32 = 0x6
	OpMAC4    uint32 = 0x8
	OpCONV3   uint32 = 0xD
	OpSIGMOID uint32 = 0xE
	OpACC     uint32 = 0xF
)

// OpcodeComparer orders opcode keys of immutable sorted maps.
type OpcodeComparer struct{}

func (OpcodeComparer) Compare(a, b uint32) int { return cmp.Compare(a, b) }

// OpcodeTable is an immutable opcode-keyed lookup iterated in opcode order.
type OpcodeTable = immutable.SortedMap[uint32, string]

// NewOpcodeTable builds an OpcodeTable from m.
func NewOpcodeTable(m map[uint32]string) *OpcodeTable {
	b := immutable.NewSortedMapBuilder[uint32, string](OpcodeComparer{})
	for k, v := range m {
		b.Set(k, v)
	}
	return b.Map()
}

var mnemonics = NewOpcodeTable(map[uint32]string{
	OpADD:     "ADD",
	OpSUB:     "SUB",
	OpAND:     "AND",
	OpOR:      "OR",
	OpXOR:     "XOR",
	OpLOADI:   "LOADI",
	OpLOADHI:  "LOADHI",
	OpMAC4:    "MAC4",
	OpCONV3:   "CONV3",
	OpSIGMOID: "SIGMOID",
	OpACC:     "ACC",
})

// Mnemonic returns the assembler name of op, or its hex value when the
// opcode is not part of the instruction set.
func Mnemonic(op uint32) string {
	if name, ok := mnemonics.Get(op); ok {
		return name
	}
	return fmt.Sprintf("%#x", op)
}
