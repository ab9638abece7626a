package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/fakeit"
	"github.com/dmitrymomot/fakeit/pkg/locale"
)

func generateCommand(d defaults) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Generate values of a given kind, one per line",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "kind",
				Aliases: []string{"k"},
				Value:   "email",
				Usage:   "Kind of value to generate (see 'fakeit kinds')",
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "Number of values to generate",
			},
			&cli.IntFlag{
				Name:    "seed",
				Aliases: []string{"s"},
				Usage:   "Seed for reproducible output (0 or unset: random)",
			},
			&cli.StringFlag{
				Name:    "locale",
				Aliases: []string{"l"},
				Usage:   "Primary locale code (falls back to en)",
			},
			&cli.IntFlag{
				Name:  "length",
				Usage: "Password length (kind=password only)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			count := int(cmd.Int("count"))
			if count <= 0 {
				count = d.Count
			}
			length := int(cmd.Int("length"))
			if length <= 0 {
				length = d.Length
			}
			loc := cmd.String("locale")
			if loc == "" {
				loc = d.Locale
			}
			seed := int64(cmd.Int("seed"))
			if seed == 0 {
				seed = d.Seed
			}

			opts := []fakeit.Option{}
			if seed != 0 {
				opts = append(opts, fakeit.WithSeed(uint64(seed)))
			}
			chain := []string{loc}
			if loc != locale.DefaultLocale {
				chain = append(chain, locale.DefaultLocale)
			}
			opts = append(opts, fakeit.WithLocaleChain(chain...))

			f, err := fakeit.New(ctx, opts...)
			if err != nil {
				return err
			}

			for i := 0; i < count; i++ {
				value, err := render(f, cmd.String("kind"), length)
				if err != nil {
					return err
				}
				fmt.Println(value)
			}
			return nil
		},
	}
}

func kindsCommand() *cli.Command {
	return &cli.Command{
		Name:  "kinds",
		Usage: "List the kinds of values fakeit can generate",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			for _, k := range kinds {
				fmt.Println(k)
			}
			return nil
		},
	}
}
