package run

import (
	"context"
	"fmt"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssync/state"
)

// Init produces starting profile from embedded default stylesheet.
func Init(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("init")

	dst := cmd.Args().Get(0)
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	log.Info("Creating default profile", zap.String("profile", displayName(dst)))
	return initProfile(env, dst, cmd.String("stylesheet"), cmd.Bool("overwrite"), log)
}

// initProfile handles init logic independently of CLI framework. When css
// is not empty default stylesheet is saved there as well.
func initProfile(env *state.LocalEnv, dst, css string, overwrite bool, log *zap.Logger) error {
	data, err := encodeProfile(env.Engine().Read(env.DefaultStyle))
	if err != nil {
		return err
	}
	if err := writeOutput(dst, data, overwrite, log); err != nil {
		return fmt.Errorf("unable to save profile: %w", err)
	}
	if len(css) == 0 {
		return nil
	}
	if err := writeOutput(css, env.DefaultStyle, overwrite, log); err != nil {
		return fmt.Errorf("unable to save default stylesheet: %w", err)
	}
	return nil
}
