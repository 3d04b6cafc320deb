package commands

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"TracePlot/pkg/graphing"
)

// NewProfilesCmd creates the profiles subcommand.
func NewProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the available style profiles",
		Args:  cobra.NoArgs,
		RunE:  runProfiles,
	}
}

func runProfiles(cmd *cobra.Command, _ []string) error {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Profile", "Waveform", "Accumulator", "Timeline", "Annotations"})

	for _, name := range graphing.ProfileNames() {
		p, err := graphing.LookupProfile(name)
		if err != nil {
			return err
		}
		table.Append([]string{
			name,
			size(p.Waveform.Width, p.Waveform.PanelHeight*float64(len(graphing.WaveformSignals()))),
			size(p.Accumulator.Width, p.Accumulator.Height),
			size(p.Timeline.Width, p.Timeline.Height),
			strconv.FormatBool(p.Waveform.Features),
		})
	}
	table.Render()
	return nil
}

func size(w, h float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64) + "x" + strconv.FormatFloat(h, 'f', -1, 64)
}
