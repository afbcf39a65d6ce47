package main

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/nix-user-chroot/chroot"
	"code.cloudfoundry.org/nix-user-chroot/commands"
	"code.cloudfoundry.org/nix-user-chroot/commands/config"
	"github.com/containers/storage/pkg/reexec"
	"github.com/urfave/cli/v2"
)

func main() {
	if reexec.Init() {
		os.Exit(0)
	}

	if command, ok := commands.MulticallCommand(os.Args[0]); ok {
		multicall(command, os.Args[1:])
		return
	}

	nixUserChroot := cli.NewApp()
	nixUserChroot.Name = "nix-user-chroot"
	nixUserChroot.Usage = "run a command with a private /nix, without privileges"
	nixUserChroot.UsageText = "nix-user-chroot [global options] <nixpath> <command> [args...]"
	nixUserChroot.Version = "0.0.0"
	nixUserChroot.HideHelpCommand = true

	nixUserChroot.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to config file",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Set logging level <debug|info|error|fatal>",
			Value: chroot.DefaultLogLevel,
		},
		&cli.StringFlag{
			Name:  "tmp-dir",
			Usage: "Directory the ephemeral root is created in",
			Value: os.TempDir(),
		},
		&cli.StringFlag{
			Name:  "nix-conf-dir",
			Usage: "NIX_CONF_DIR seen by the command",
			Value: chroot.DefaultConfDir,
		},
	}

	nixUserChroot.Before = func(ctx *cli.Context) error {
		cfgBuilder, err := config.NewBuilderFromFile(ctx.String("config"))
		if err != nil {
			return cli.Exit(err.Error(), chroot.FallbackExitStatus)
		}

		cfg, err := cfgBuilder.
			WithLogLevel(ctx.String("log-level"), ctx.IsSet("log-level")).
			WithTmpDir(ctx.String("tmp-dir"), ctx.IsSet("tmp-dir")).
			WithNixConfDir(ctx.String("nix-conf-dir"), ctx.IsSet("nix-conf-dir")).
			Build()
		if err != nil {
			return cli.Exit(err.Error(), chroot.FallbackExitStatus)
		}

		ctx.App.Metadata["config"] = cfg
		ctx.App.Metadata["logger"] = newLogger(cfg)
		return nil
	}

	nixUserChroot.Action = commands.RunAction

	if err := nixUserChroot.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(chroot.FallbackExitStatus)
	}
}

func multicall(command string, args []string) {
	cfg, err := config.NewBuilder().WithTmpDir(os.TempDir(), false).Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(chroot.FallbackExitStatus)
	}

	err = commands.Multicall(newLogger(cfg), cfg, command, args)
	cli.HandleExitCoder(err)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(chroot.FallbackExitStatus)
	}
}

func newLogger(cfg config.Config) lager.Logger {
	level, _ := chroot.ParseLogLevel(cfg.LogLevel)

	logger := lager.NewLogger("nix-user-chroot")
	logger.RegisterSink(lager.NewWriterSink(os.Stderr, level))
	return logger
}
