package run

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssync/state"
)

// Write synchronizes style profile into stylesheet.
func Write(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("write")

	prof, src := cmd.Args().Get(0), cmd.Args().Get(1)
	if len(prof) == 0 {
		return errors.New("no input profile has been specified")
	}
	if len(src) == 0 {
		return errors.New("no stylesheet has been specified")
	}
	dst := cmd.Args().Get(2)
	if cmd.Args().Len() > 3 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[3:]))
	}

	env.InPlace = cmd.Bool("in-place")
	if env.InPlace {
		if len(dst) > 0 {
			log.Warn("Destination ignored, stylesheet is updated in place", zap.String("ignoring", dst))
		}
		dst = src
	}
	forceCodePage(env, cmd.String("encoding"), log)

	log.Info("Writing profile", zap.String("profile", prof), zap.String("stylesheet", src), zap.String("destination", displayName(dst)))
	defer func(start time.Time) {
		log.Debug("Writing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return writeProfile(env, prof, src, dst, env.InPlace || cmd.Bool("overwrite"), log)
}

// writeProfile handles write logic independently of CLI framework.
func writeProfile(env *state.LocalEnv, prof, src, dst string, overwrite bool, log *zap.Logger) error {
	p, err := loadProfile(env, prof)
	if err != nil {
		return err
	}
	text, cp, err := loadStylesheet(env, src, true, log)
	if err != nil {
		return err
	}

	engine := env.Engine()
	out, err := engine.Write(text, p)
	if err != nil {
		return fmt.Errorf("unable to synchronize stylesheet: %w", err)
	}
	if env.Rpt != nil {
		env.Rpt.StoreData("output/stylesheet.css", out)
		env.Rpt.StoreData("output/stylesheet.tree", []byte(engine.Tree(out)))
	}

	if env.Cfg != nil && env.Cfg.Encoding.PreserveOutput {
		if out, err = encodeStylesheet(out, cp); err != nil {
			return err
		}
	} else if cp.source == "@charset" && !strings.EqualFold(cp.name, "utf-8") {
		log.Warn("Stylesheet declares non UTF-8 @charset but is written as UTF-8", zap.String("charset", cp.name))
	}
	if err := writeOutput(dst, out, overwrite, log); err != nil {
		return fmt.Errorf("unable to save stylesheet: %w", err)
	}
	return nil
}
