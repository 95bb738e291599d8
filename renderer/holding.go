package renderer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	finquant "github.com/Magic-Academy/FinQuant"
)

// HoldingMarkdown renders the properties of a single holding.
func HoldingMarkdown(h *finquant.Holding) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", h.Name())
	fmt.Fprintln(&b, "| Property | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| FMV | %s |\n", h.Metadata().FMV)
	fmt.Fprintf(&b, "| Expected Return | %.2f%% |\n", h.ExpectedReturn()*100)
	fmt.Fprintf(&b, "| Volatility | %.2f%% |\n", h.Volatility()*100)
	fmt.Fprintf(&b, "| Skewness | %.4f |\n", h.Skew())
	fmt.Fprintf(&b, "| Kurtosis | %.4f |\n", h.Kurtosis())

	// Extra descriptive attributes, when the holding carries any.
	ConditionalBlock(&b, func(w io.Writer) bool {
		attrs := h.Metadata().Attrs
		if len(attrs) == 0 {
			return false
		}
		keys := make([]string, 0, len(attrs))
		for k := range attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintf(w, "\n## Attributes\n\n")
		fmt.Fprintln(w, "| Key | Value |")
		fmt.Fprintln(w, "|:---|:---|")
		for _, k := range keys {
			fmt.Fprintf(w, "| %s | %s |\n", k, attrs[k])
		}
		return true
	})
	return b.String()
}
