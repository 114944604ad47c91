// Copyright 2021 KoSpeech Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/Youngmi-Park/KoSpeech/result"
	"github.com/Youngmi-Park/KoSpeech/vocab"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel)

	app := &cli.App{
		Name:  "kospeech",
		Usage: "Inspect and export speech-recognition evaluation artifacts",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "set log level (trace, debug, info, warn, error, fatal, panic)",
				Action: func(c *cli.Context, s string) error {
					return setLogLevel(s)
				},
				Value:   "info",
				EnvVars: []string{"KOSPEECH_LOGLEVEL"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "export",
				Usage: "Export an evaluation result CSV into a SQLite store",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "csv",
						Usage:    "path of the result CSV to export",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "db",
						Usage:    "path of the SQLite database to export into",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "encoding",
						Usage: "text encoding of the CSV (utf-8, euc-kr)",
						Value: "euc-kr",
					},
				},
				Action: func(c *cli.Context) error {
					return export(c.String("csv"), c.String("db"), c.String("encoding"))
				},
			},
			{
				Name:  "vocab",
				Usage: "Print a summary of a vocabulary label file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "path",
						Usage:    "path of the label file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "encoding",
						Usage: "text encoding of the label file (utf-8, euc-kr)",
						Value: "utf-8",
					},
				},
				Action: func(c *cli.Context) error {
					return vocabInfo(c.String("path"), c.String("encoding"))
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func setLogLevel(logLevel string) error {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log.Logger = log.Level(level)
	return nil
}

func parseEncoding(name string) (encoding.Encoding, error) {
	switch name {
	case "utf-8", "utf8":
		return nil, nil
	case "euc-kr", "euckr", "cp949":
		return korean.EUCKR, nil
	}
	return nil, fmt.Errorf("unsupported text encoding %q", name)
}

func export(csvPath, dbPath, encodingName string) error {
	enc, err := parseEncoding(encodingName)
	if err != nil {
		return err
	}
	pairs, err := result.ReadCSV(csvPath, enc)
	if err != nil {
		return err
	}
	store, err := result.OpenStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.SaveAll(pairs); err != nil {
		return err
	}
	log.Info().Int("samples", len(pairs)).Str("db", dbPath).Msg("export complete")
	return nil
}

func vocabInfo(path, encodingName string) error {
	enc, err := parseEncoding(encodingName)
	if err != nil {
		return err
	}
	v, err := vocab.Load(path, enc)
	if err != nil {
		return err
	}
	fmt.Printf("size: %d\n", v.Size())
	fmt.Printf("pad: %d sos: %d eos: %d blank: %d\n", v.PadID(), v.SosID(), v.EosID(), v.BlankID())
	return nil
}
