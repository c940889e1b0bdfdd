package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/urfave/cli"

	zkverifier "github.com/persona-chain/go-zkverifier"
	"github.com/persona-chain/go-zkverifier/circuits"
	"github.com/persona-chain/go-zkverifier/loaders"
	"github.com/persona-chain/go-zkverifier/logger"
)

func main() {
	ctl := cli.NewApp()
	ctl.Name = "zkverify"
	ctl.Usage = "Groth16 proof verification over BN254"
	ctl.Version = "0.1.0"
	ctl.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: "Enable debug logging",
		},
	}
	ctl.Before = func(ctx *cli.Context) error {
		if ctx.GlobalBool("debug") {
			logger.Set(logger.Logger().Level(zerolog.DebugLevel))
		}
		return nil
	}
	ctl.Commands = []cli.Command{
		{
			Name:   "verify",
			Usage:  "Verify a proof against a verification key",
			Action: verifyProof,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "vk",
					Usage: "Path to the verification key JSON file",
				},
				cli.StringFlag{
					Name:  "circuit",
					Usage: "Registered circuit id to resolve the key for, alternative to --vk",
				},
				cli.StringFlag{
					Name:  "proof",
					Usage: "Path to the proof JSON file",
				},
				cli.StringSliceFlag{
					Name:  "input, i",
					Usage: "Public input, decimal or 0x hex (repeatable, order matters)",
				},
				cli.StringFlag{
					Name:  "keys-dir",
					Usage: "Directory with <circuit>.json keys taking precedence over the embedded set",
				},
				cli.BoolFlag{
					Name:  "structural",
					Usage: "Use the structural backend instead of the pairing check",
				},
			},
		},
		{
			Name:   "validate",
			Usage:  "Run format checks on a verification key or proof file",
			Action: validateMaterial,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "vk",
					Usage: "Path to the verification key JSON file",
				},
				cli.StringFlag{
					Name:  "proof",
					Usage: "Path to the proof JSON file",
				},
			},
		},
		{
			Name:   "circuits",
			Usage:  "List registered circuits",
			Action: listCircuits,
		},
	}

	if err := ctl.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func verifyProof(ctx *cli.Context) error {
	proofPath := ctx.String("proof")
	if proofPath == "" {
		return cli.NewExitError("--proof is required", 1)
	}
	proof, err := os.ReadFile(proofPath)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	var key []byte
	switch {
	case ctx.String("vk") != "":
		key, err = os.ReadFile(ctx.String("vk"))
		if err != nil {
			return cli.NewExitError(err, 1)
		}
	case ctx.String("circuit") != "":
		key, err = newKeyLoader(ctx).Load(circuits.CircuitID(ctx.String("circuit")))
		if err != nil {
			return cli.NewExitError(err, 1)
		}
	default:
		return cli.NewExitError("either --vk or --circuit is required", 1)
	}

	var opts []zkverifier.Option
	if ctx.Bool("structural") {
		opts = append(opts, zkverifier.WithStructuralVerification())
	}
	v, err := zkverifier.NewVerifier(opts...)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	ok, err := v.VerifyProof(string(key), ctx.StringSlice("input"), string(proof))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if !ok {
		return cli.NewExitError("proof is NOT valid", 1)
	}
	fmt.Fprintln(ctx.App.Writer, "proof is valid")
	return nil
}

func newKeyLoader(ctx *cli.Context) loaders.VerificationKeyLoader {
	if dir := ctx.String("keys-dir"); dir != "" {
		return loaders.NewEmbeddedKeyLoader(loaders.WithKeyLoader(&loaders.FSKeyLoader{Dir: dir}))
	}
	return loaders.NewEmbeddedKeyLoader()
}

func validateMaterial(ctx *cli.Context) error {
	vkPath := ctx.String("vk")
	proofPath := ctx.String("proof")
	if vkPath == "" && proofPath == "" {
		return cli.NewExitError("either --vk or --proof is required", 1)
	}

	if vkPath != "" {
		data, err := os.ReadFile(vkPath)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		if err := zkverifier.ValidateVerificationKey(string(data)); err != nil {
			return cli.NewExitError(err, 1)
		}
		fmt.Fprintln(ctx.App.Writer, "verification key format ok")
	}

	if proofPath != "" {
		data, err := os.ReadFile(proofPath)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		if err := zkverifier.ValidateProof(string(data)); err != nil {
			return cli.NewExitError(err, 1)
		}
		fmt.Fprintln(ctx.App.Writer, "proof format ok")
	}
	return nil
}

func listCircuits(ctx *cli.Context) error {
	tw := tabwriter.NewWriter(ctx.App.Writer, 0, 4, 4, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tPROTOCOL\tPUBLIC SIGNALS")
	for _, id := range circuits.List() {
		c, err := circuits.Get(id)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", c.ID, c.Protocol, strings.Join(c.PublicSignals, ","))
	}
	return tw.Flush()
}
