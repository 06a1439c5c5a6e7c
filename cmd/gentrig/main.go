// gentrig writes the fixed-point sine and cosine tables used by pkg/fixed.
// Floating point is only ever evaluated here, at generation time; the
// simulation reads the checked-in integer tables.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"math"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog/log"
)

const (
	NUMBER_OF_ANGLES = 512
	TRIG_MAGNITUDE   = 16384
)

var CLI struct {
	Output string `short:"o" help:"File to write the tables to." default:"trig_table.go"`
}

func buildTables() (sine [NUMBER_OF_ANGLES]int32, cosine [NUMBER_OF_ANGLES]int32) {
	for i := 0; i < NUMBER_OF_ANGLES; i++ {
		theta := 2 * math.Pi * float64(i) / float64(NUMBER_OF_ANGLES)

		// float to int conversion truncates toward zero
		cosine[i] = int32(float64(TRIG_MAGNITUDE)*math.Cos(theta) + 0.5)
		sine[i] = int32(float64(TRIG_MAGNITUDE)*math.Sin(theta) + 0.5)

		switch i {
		case 0:
			sine[i], cosine[i] = 0, TRIG_MAGNITUDE
		case NUMBER_OF_ANGLES / 4:
			sine[i], cosine[i] = TRIG_MAGNITUDE, 0
		case NUMBER_OF_ANGLES / 2:
			sine[i], cosine[i] = 0, -TRIG_MAGNITUDE
		case 3 * NUMBER_OF_ANGLES / 4:
			sine[i], cosine[i] = -TRIG_MAGNITUDE, 0
		}
	}

	return sine, cosine
}

func writeTable(out *bytes.Buffer, name string, table [NUMBER_OF_ANGLES]int32) {
	fmt.Fprintf(out, "var %s = [NUMBER_OF_ANGLES]int32{\n", name)
	for i := 0; i < NUMBER_OF_ANGLES; i += 8 {
		out.WriteString("\t")
		for j := i; j < i+8; j++ {
			if j != i {
				out.WriteString(", ")
			}
			fmt.Fprintf(out, "%d", table[j])
		}
		out.WriteString(",\n")
	}
	out.WriteString("}\n")
}

func main() {
	kong.Parse(&CLI,
		kong.Name("gentrig"),
		kong.Description("generate fixed-point trigonometry tables"),
		kong.UsageOnError(),
	)

	sine, cosine := buildTables()

	var out bytes.Buffer
	out.WriteString("// Code generated by gentrig. DO NOT EDIT.\n\npackage fixed\n\n")
	writeTable(&out, "SINE_TABLE", sine)
	out.WriteString("\n")
	writeTable(&out, "COSINE_TABLE", cosine)

	source, err := format.Source(out.Bytes())
	if err != nil {
		log.Fatal().Err(err).Msg("generated source does not parse")
	}

	err = os.WriteFile(CLI.Output, source, 0644)
	if err != nil {
		log.Fatal().Err(err).Msgf("failed to write %s", CLI.Output)
	}
}
