package cli

import (
	"fmt"
	"prtrack/internal/cli/paramutils"
	"prtrack/internal/cli/utils"
	"prtrack/internal/configutils"
	"prtrack/internal/errcodes"
	"prtrack/internal/gitutils"
	"prtrack/internal/logging"
	"prtrack/internal/pkg/api"
	"prtrack/internal/tui"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	loadConfig     = configutils.Load
	setupLogging   = logging.Setup
	closeLogging   = logging.Close
	getLocalRemote = gitutils.GetLocalRemoteRepository
	runTUI         = tui.Run
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "prtrack",
		Short:   "prtrack tracks repositories and their pull requests",
		Long:    `Terminal client for a repository tracker API: add and remove tracked repositories and browse their pull requests.`,
		Version: fmt.Sprintf("%v, commit %v, built at %v", version, commit, date),
		Args:    cobra.NoArgs,
		Run:     utils.RunCommandWrapper(run),
	}

	cmd.PersistentFlags().String("config", "", "config file path")
	cmd.PersistentFlags().String("api-url", "", fmt.Sprintf("API server address (default %s)", configutils.DefaultAPIURL))
	cmd.PersistentFlags().Bool("debug", false, "log at debug level, including HTTP traffic")
	cmd.PersistentFlags().Bool("from-git", false, "prefill the add form from the git origin of the working directory")

	return cmd
}

func buildOptions(flags paramutils.FlagSet) (*tui.Options, error) {
	config, err := loadConfig(flags.GetStringOrDefault("config", ""))
	if err != nil {
		return nil, errors.Wrap(errcodes.ErrInvalidConfig, err.Error())
	}

	debug := flags.GetBoolOrDefault("debug", false)
	err = setupLogging(&logging.Options{
		File:  config.GetString("log.file"),
		Level: config.GetString("log.level"),
		Debug: debug,
	})
	if err != nil {
		return nil, err
	}

	client, err := api.New(&api.ClientOptions{
		BaseURL: flags.GetStringOrDefault("api-url", config.GetString("api.url")),
		Debug:   debug,
	})
	if err != nil {
		closeLogging()
		return nil, err
	}

	o := &tui.Options{
		Config:       config,
		Repos:        client.Repos,
		PullRequests: client.PullRequests,
	}

	if flags.GetBoolOrDefault("from-git", false) {
		remote, err := getLocalRemote()
		if err != nil {
			log.Warn().Err(err).Msg("cannot infer repository from git")
		} else {
			o.PrefillOwner = remote.Owner
			o.PrefillName = remote.Name
		}
	}

	return o, nil
}

func run(cmd *cobra.Command, args []string) error {
	o, err := buildOptions(paramutils.NewFlagSet(cmd.Flags()))
	if err != nil {
		return err
	}
	defer closeLogging()

	log.Info().Str("version", version).Msg("starting")
	if err := runTUI(o); err != nil {
		return errors.Wrap(errcodes.ErrTerminal, err.Error())
	}

	return nil
}

func Execute() {
	NewRootCmd().Execute()
}
