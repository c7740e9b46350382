package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/eabc2acep/constants"
	"github.com/spf13/cobra"
)

var (
	watchInterval time.Duration
	watchDelay    time.Duration
	watchOpts     encodeOptions
)

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 250*time.Millisecond, "how often to check the file")
	watchCmd.Flags().DurationVar(&watchDelay, "delay", 500*time.Millisecond, "quiet period before re-encoding")
	watchCmd.Flags().StringVarP(&watchOpts.method, "method", "m", constants.GetCompressMethod(), "compress method (gzip or zstd)")
	watchCmd.Flags().StringVarP(&watchOpts.outDir, "out", "o", constants.GetOutDir(), "output directory")
	watchCmd.Flags().BoolVar(&watchOpts.json, "json", false, "also write the uncompressed project JSON")
	watchCmd.Flags().BoolVar(&watchOpts.midi, "midi", false, "also write a standard MIDI file with lyrics")
}

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-encodes a file whenever it changes",
	Long:  `Re-encodes a file whenever it changes`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt)
		cobra.CheckErr(watch(args[0], watchOpts, stop))
	},
}

// changes sends on the returned channel every time path's modification time
// moves, until stop fires.
func changes(path string, interval time.Duration, stop <-chan os.Signal) <-chan struct{} {
	out := make(chan struct{})
	go func() {
		defer close(out)
		var last time.Time
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				info, err := os.Stat(path)
				if err != nil {
					continue
				}
				if mod := info.ModTime(); !mod.Equal(last) {
					last = mod
					out <- struct{}{}
				}
			}
		}
	}()
	return out
}

func watch(path string, opts encodeOptions, stop <-chan os.Signal) error {
	enc, err := newEncoder(opts.method, false)
	if err != nil {
		return err
	}
	debounced := debounce.New(watchDelay)

	fmt.Printf("watching %v\n", path)
	for range changes(path, watchInterval, stop) {
		debounced(func() {
			if err := encodeFile(path, enc, nil, opts); err != nil {
				fmt.Printf("could not encode %v: %v\n", path, err)
			}
		})
	}
	return nil
}
