package graphing

import "TracePlot/pkg/trace"

const fallbackColor = "#7f7f7f"

// opcodeColors fills timeline blocks. Opcodes without an entry are gray and
// absent from the legend.
var opcodeColors = trace.NewOpcodeTable(map[uint32]string{
	trace.OpADD:     "#1f77b4",
	trace.OpLOADI:   "#ff7f0e",
	trace.OpLOADHI:  "#2ca02c",
	trace.OpMAC4:    "#d62728",
	trace.OpCONV3:   "#9467bd",
	trace.OpSIGMOID: "#8c564b",
	trace.OpACC:     "#e377c2",
})

// featureEvents are the opcodes tagged on the waveform panels, with the
// short labels drawn above each marker.
var featureEvents = trace.NewOpcodeTable(map[uint32]string{
	trace.OpMAC4:    "MAC4",
	trace.OpCONV3:   "CONV3",
	trace.OpSIGMOID: "SIG",
	trace.OpACC:     "ACC",
})

func opcodeColor(op uint32) string {
	if c, ok := opcodeColors.Get(op); ok {
		return c
	}
	return fallbackColor
}
