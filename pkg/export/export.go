package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/scale"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/errors"
)

// csvHeader is the fixed column order of the CSV form.
var csvHeader = []string{"value", "normalizedPosition", "absolutePosition", "tickLength", "label"}

// Document is the JSON shape of one exported scale.
type Document struct {
	Name                string       `json:"name" bson:"name"`
	BeginValue          float64      `json:"beginValue" bson:"beginValue"`
	EndValue            float64      `json:"endValue" bson:"endValue"`
	ScaleLengthInPoints float64      `json:"scaleLengthInPoints" bson:"scaleLengthInPoints"`
	TickMarks           []scale.Tick `json:"tickMarks" bson:"tickMarks"`
}

// WriteCSV writes the generated scale's ticks as CSV rows to w.
func WriteCSV(gen *scale.Generated, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "write csv header")
	}

	extent := gen.Definition.Layout.Extent()
	for _, tick := range gen.Ticks {
		row := []string{
			formatFloat(tick.Value),
			formatFloat(tick.Position),
			formatFloat(tick.Position * extent),
			formatFloat(tick.Style.RelativeLength()),
			tick.Label,
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidFormat, err, "write csv row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "flush csv")
	}
	return nil
}

// ExportCSV writes a generated scale to a CSV file at path.
func ExportCSV(gen *scale.Generated, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "create %s", path)
	}
	defer f.Close()
	return WriteCSV(gen, f)
}

// WriteJSON encodes a generated scale as an indented JSON document.
func WriteJSON(gen *scale.Generated, w io.Writer) error {
	doc := Document{
		Name:                gen.Definition.Name,
		BeginValue:          gen.Definition.BeginValue,
		EndValue:            gen.Definition.EndValue,
		ScaleLengthInPoints: gen.Definition.Layout.Extent(),
		TickMarks:           gen.Ticks,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "encode json")
	}
	return nil
}

// ExportJSON writes a generated scale to a JSON file at path.
func ExportJSON(gen *scale.Generated, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "create %s", path)
	}
	defer f.Close()
	return WriteJSON(gen, f)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
