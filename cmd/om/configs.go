package main

import (
	"os"

	"github.com/scott-cotton/cli"

	"github.com/OpenMath/go-openmath/encode"
	"github.com/OpenMath/go-openmath/omxml"
	"github.com/OpenMath/go-openmath/parse"
)

type MainConfig struct {
	S     bool `cli:"name=s aliases=snippet desc='accept bare elements without the OMOBJ wrapper'"`
	Color bool `cli:"name=color desc='encode with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.S {
		return []parse.ParseOption{parse.Snippet()}
	}
	return nil
}

func (cfg *MainConfig) encOpts(indent int) []encode.EncodeOption {
	res := []encode.EncodeOption{encode.Document()}
	if indent > 0 {
		res = append(res, encode.Indent(indent))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(omxml.NewColors()))
		return res
	}
	if cfg.Out == "" || cfg.Out == "-" {
		if c := omxml.TerminalColors(os.Stdout); c != nil {
			res = append(res, encode.EncodeColors(c))
		}
	}
	return res
}
