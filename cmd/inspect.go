package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/eabc2acep/ace"
	"github.com/jsphweid/eabc2acep/midi"
	"github.com/jsphweid/eabc2acep/parser"
	"github.com/spf13/cobra"
)

var inspectMidi bool

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectMidi, "midi", false, "treat the argument as a written .mid and print its notes")
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Inspects an EABC file",
	Long:  `Prints the metadata and timeline of an EABC file along with each note's ACE parameters`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if inspectMidi {
			cobra.CheckErr(inspectMidiFile(args[0]))
			return
		}
		cobra.CheckErr(inspect(args[0]))
	},
}

func inspect(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	score, err := parser.Parse(string(source))
	if err != nil {
		return err
	}

	m := score.Metadata
	fmt.Printf("title: %v\n", m.Title)
	fmt.Printf("composer: %v\n", m.Composer)
	fmt.Printf("meter: %v  unit: %v  tempo: %v  key: %v\n", m.Meter, m.UnitLength, m.Tempo, m.Key)
	fmt.Printf("end tick: %v\n", score.EndTick)
	for _, n := range score.Notes {
		v := ace.Map(n.Params)
		fmt.Printf("%8d %6d %4d %-8q ten=%.2f br=%.2f en=%.2f fal=%.2f gen=%.2f pd=%.2f\n",
			n.Tick, n.Duration, n.Pitch, n.Lyric,
			v.Tension, v.Breathiness, v.Energy, v.Falsetto, v.Gender, v.PitchDelta)
	}
	for _, w := range score.Warnings {
		fmt.Printf("warning: %v\n", w)
	}
	return nil
}

func inspectMidiFile(path string) error {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	midi.Describe(os.Stdout, midi.ReadNotes(s))
	return nil
}
