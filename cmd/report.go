package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jsphweid/eabc2acep/file"
	"github.com/jsphweid/eabc2acep/parser"
	"github.com/jsphweid/eabc2acep/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <dir> [max]",
	Short: "Creates a report",
	Long:  `Parses every EABC file under a directory and reports note, lyric and warning counts`,
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		var maxNum int
		if len(args) == 2 {
			arg1, err := strconv.Atoi(args[1])
			cobra.CheckErr(err)
			maxNum = arg1
		}
		r, err := analyzeSources(args[0], maxNum)
		cobra.CheckErr(err)
		printReport(r)
	},
}

type sourcesReport struct {
	numFiles    int
	numFailed   int
	numNotes    []int
	numLyrics   int
	numWarnings int
	totalTicks  int
	failures    map[string]string
}

func analyzeSources(dir string, maxNum int) (sourcesReport, error) {
	report := sourcesReport{failures: make(map[string]string)}

	paths, err := file.GatherSourcePaths(dir, maxNum)
	if err != nil {
		return report, err
	}

	for _, path := range paths {
		report.numFiles += 1
		source, err := os.ReadFile(path)
		if err != nil {
			return report, err
		}
		score, err := parser.Parse(string(source))
		if err != nil {
			report.numFailed += 1
			report.failures[path] = err.Error()
			continue
		}
		report.numNotes = append(report.numNotes, len(score.Notes))
		report.numWarnings += len(score.Warnings)
		report.totalTicks += score.EndTick
		for _, n := range score.Notes {
			if n.Lyric != "" {
				report.numLyrics += 1
			}
		}
	}
	return report, nil
}

func printReport(r sourcesReport) {
	numNotes := util.Sum(r.numNotes)
	fmt.Printf("numFiles: %v\n", r.numFiles)
	fmt.Printf("numFailed: %v\n", r.numFailed)
	fmt.Printf("numNotes: %v\n", numNotes)
	fmt.Printf("notesPerFile: %v\n", r.numNotes)
	if numNotes > 0 {
		fmt.Printf("lyric coverage: %.2f\n", float64(r.numLyrics)/float64(numNotes))
	}
	fmt.Printf("numWarnings: %v\n", r.numWarnings)
	fmt.Printf("totalTicks: %v\n", r.totalTicks)
	for _, path := range util.SortedKeys(r.failures) {
		fmt.Printf("failed %v: %v\n", path, r.failures[path])
	}
}
