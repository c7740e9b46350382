package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jsphweid/eabc2acep/constants"
	"github.com/jsphweid/eabc2acep/db"
	"github.com/jsphweid/eabc2acep/envelope"
	"github.com/jsphweid/eabc2acep/file"
	"github.com/jsphweid/eabc2acep/midi"
	"github.com/jsphweid/eabc2acep/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type encodeOptions struct {
	method    string
	outDir    string
	json      bool
	midi      bool
	timestamp bool
	archive   bool
}

var encodeOpts encodeOptions

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().StringVarP(&encodeOpts.method, "method", "m", constants.GetCompressMethod(), "compress method (gzip or zstd)")
	encodeCmd.Flags().StringVarP(&encodeOpts.outDir, "out", "o", constants.GetOutDir(), "output directory")
	encodeCmd.Flags().BoolVar(&encodeOpts.json, "json", false, "also write the uncompressed project JSON")
	encodeCmd.Flags().BoolVar(&encodeOpts.midi, "midi", false, "also write a standard MIDI file with lyrics")
	encodeCmd.Flags().BoolVar(&encodeOpts.timestamp, "timestamp", false, "stamp envelopes with the encode time")
	encodeCmd.Flags().BoolVar(&encodeOpts.archive, "archive", false, "store envelopes in DynamoDB")
}

var encodeCmd = &cobra.Command{
	Use:   "encode <file>...",
	Short: "Encodes EABC files into .acep envelopes",
	Long:  `Encodes EABC files into .acep envelopes`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(encodeAll(args, encodeOpts))
	},
}

func encodeAll(paths []string, opts encodeOptions) error {
	enc, err := newEncoder(opts.method, opts.timestamp)
	if err != nil {
		return err
	}

	var archive *db.Archive
	if opts.archive {
		archive, err = db.NewArchive(constants.GetDynamoEndpoint(), constants.GetArchiveTable())
		if err != nil {
			return err
		}
	}

	for i, path := range paths {
		fmt.Printf("Processing %v of %v - %v\n", i+1, len(paths), path)
		if err := encodeFile(path, enc, archive, opts); err != nil {
			return errors.Wrapf(err, "could not encode %v", path)
		}
	}
	return nil
}

func encodeFile(path string, enc *envelope.Encoder, archive *db.Archive, opts encodeOptions) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	c, err := convert(string(source), enc)
	if err != nil {
		return err
	}
	for _, w := range c.Score.Warnings {
		fmt.Printf("  warning: %v\n", w)
	}

	data, err := envelope.Marshal(c.Envelope)
	if err != nil {
		return err
	}
	out := file.OutputPath(opts.outDir, path, ".acep")
	if err := util.WriteOutput(out, data); err != nil {
		return err
	}
	fmt.Printf("  wrote %v (%v notes)\n", out, len(c.Score.Notes))

	if opts.json {
		doc, err := json.MarshalIndent(c.Project, "", "  ")
		if err != nil {
			return errors.Wrap(err, "could not marshal project")
		}
		if err := util.WriteOutput(file.OutputPath(opts.outDir, path, ".json"), doc); err != nil {
			return err
		}
	}

	if opts.midi {
		var buf bytes.Buffer
		if err := midi.Write(&buf, c.Score); err != nil {
			return err
		}
		if err := util.WriteOutput(file.OutputPath(opts.outDir, path, ".mid"), buf.Bytes()); err != nil {
			return err
		}
	}

	if archive != nil {
		id, err := archive.Put(c.Envelope, string(source))
		if err != nil {
			return err
		}
		fmt.Printf("  archived as %v\n", id)
	}
	return nil
}
