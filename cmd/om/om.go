package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/OpenMath/go-openmath/convert"
	"github.com/OpenMath/go-openmath/encode"
	"github.com/OpenMath/go-openmath/om"
	"github.com/OpenMath/go-openmath/parse"
)

func omMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func view(cfg *MainConfig, cc *cli.Context, args []string) error {
	return render(cfg, cc, args, cfg.encOpts(2))
}

func wire(cfg *MainConfig, cc *cli.Context, args []string) error {
	return render(cfg, cc, args, cfg.encOpts(0))
}

func render(cfg *MainConfig, cc *cli.Context, args []string, eOpts []encode.EncodeOption) error {
	nodes, err := readObjects(cfg, args)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		if err := encode.Encode(n, cc.Out, eOpts...); err != nil {
			return err
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}

func value(cfg *MainConfig, cc *cli.Context, args []string) error {
	nodes, err := readObjects(cfg, args)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		v, err := convert.ToGo(n)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%v\n", v)
	}
	return nil
}

func readObjects(cfg *MainConfig, args []string) ([]*om.Node, error) {
	pOpts := cfg.parseOpts()
	if len(args) == 0 {
		d, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		n, err := parse.Bytes(d, pOpts...)
		if err != nil {
			return nil, err
		}
		return []*om.Node{n}, nil
	}
	res := make([]*om.Node, 0, len(args))
	for _, fn := range args {
		d, err := os.ReadFile(fn)
		if err != nil {
			return nil, err
		}
		n, err := parse.Bytes(d, pOpts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fn, err)
		}
		res = append(res, n)
	}
	return res, nil
}
