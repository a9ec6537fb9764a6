package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rsharan/jyotish/pkg/chart"
	"github.com/rsharan/jyotish/pkg/errors"
	"github.com/rsharan/jyotish/pkg/panchanga"
	"github.com/rsharan/jyotish/pkg/zodiac"
)

// panchangaCommand creates the panchanga command: compute just the
// five limbs for an input file.
func (c *CLI) panchangaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "panchanga [input.toml]",
		Short: "Compute the panchanga (five limbs) for an input file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := chart.LoadInput(args[0])
			if err != nil {
				return err
			}

			sun, okSun := in.Bodies[zodiac.Sun]
			moon, okMoon := in.Bodies[zodiac.Moon]
			if !okSun || !okMoon {
				return errors.New(errors.ErrCodeInvalidInput,
					"panchanga needs both Sun and Moon longitudes")
			}

			res, err := panchanga.Compute(sun, moon, in.Instant, in.Timezone)
			if err != nil {
				return err
			}

			fmt.Println(StyleTitle.Render("Panchanga"))
			fmt.Print(renderPanchanga(&res))
			return nil
		},
	}
}
