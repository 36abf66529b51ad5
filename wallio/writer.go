package wallio

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/patchwall/patch"
)

// ParseFormat converts a name to a Format. An empty name selects FormatText.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case "":
		return FormatText, nil
	case FormatText, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// WritePrice writes price followed by a newline.
func WritePrice(w io.Writer, price int64) error {
	_, err := fmt.Fprintf(w, "%d\n", price)
	return err
}

// WriteReport writes res in the given format. The text format prints the
// plan (when present) followed by one "key: value" line per figure.
func WriteReport(w io.Writer, res *patch.Result, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("wallio: encode yaml: %w", err)
		}
		return enc.Close()
	case FormatText, "":
		return writeText(w, res)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeText(w io.Writer, res *patch.Result) error {
	if res.Plan != nil {
		if _, err := io.WriteString(w, res.Plan.Render()); err != nil {
			return err
		}
	}
	strategy := string(res.Strategy)
	if res.SimpleOnly {
		strategy = "none (simple patches only)"
	}
	_, err := fmt.Fprintf(w,
		"price: %d\nrepair cells: %d\ndouble patches: %d\nsimple patches: %d\nregions: %d\nmatching: %s\n",
		res.Price, res.TotalFree, res.Doubles, res.Simples, res.Regions, strategy)
	return err
}
