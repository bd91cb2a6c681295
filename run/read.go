package run

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssync/state"
)

// Read extracts style profile from stylesheet.
func Read(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("read")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input stylesheet has been specified")
	}
	dst := cmd.Args().Get(1)
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	forceCodePage(env, cmd.String("encoding"), log)

	log.Info("Reading profile", zap.String("stylesheet", src), zap.String("profile", displayName(dst)))
	defer func(start time.Time) {
		log.Debug("Reading completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return readProfile(env, src, dst, readOptions{
		unmanaged: cmd.Bool("list-unmanaged"),
		overwrite: cmd.Bool("overwrite"),
	}, log)
}

type readOptions struct {
	unmanaged bool
	overwrite bool
}

// readProfile handles read logic independently of CLI framework.
func readProfile(env *state.LocalEnv, src, dst string, opts readOptions, log *zap.Logger) error {
	text, _, err := loadStylesheet(env, src, false, log)
	if err != nil {
		return err
	}
	engine := env.Engine()

	if opts.unmanaged {
		selectors := engine.Unmanaged(text)
		sort.Sort(natural.StringSlice(selectors))
		log.Info("Unmanaged rules found", zap.Int("count", len(selectors)))

		var out string
		if len(selectors) > 0 {
			out = strings.Join(selectors, "\n") + "\n"
		}
		return writeOutput(dst, []byte(out), opts.overwrite, log)
	}

	p := engine.Read(text)
	data, err := encodeProfile(p)
	if err != nil {
		return err
	}
	env.Rpt.StoreData("output/profile.yaml", data)
	if err := writeOutput(dst, data, opts.overwrite, log); err != nil {
		return fmt.Errorf("unable to save profile: %w", err)
	}
	return nil
}

// forceCodePage sets encoding requested on command line. Unknown names are
// ignored.
func forceCodePage(env *state.LocalEnv, name string, log *zap.Logger) {
	if len(name) == 0 {
		return
	}
	enc, err := lookupEncoding(name)
	if err != nil {
		log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", name), zap.Error(err))
		env.CodePage = nil
		return
	}
	env.CodePage = enc
	log.Debug("Forcefully decoding stylesheet", zap.String("charset", encodingName(enc)))
}

func displayName(name string) string {
	if len(name) == 0 {
		return "STDOUT"
	}
	return name
}
