package console

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
)

const barSymbol = "█"

// NewProgressBar draws on out, which should not be the stream the results are printed to.
func NewProgressBar(out io.Writer, total int, description string, colored bool) *progressbar.ProgressBar {
	saucer := aurora.NewAurora(colored).Yellow(barSymbol).String()

	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        saucer,
			SaucerHead:    saucer,
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(out)
		}),
	)
}
