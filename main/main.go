package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/phil-mansfield/gofoil"
	"github.com/phil-mansfield/gofoil/io"
	"github.com/phil-mansfield/gofoil/render"
)

type FileGroup struct {
	log *os.File
}

func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil { log.Fatal(err.Error()) }
	}
}

func main() {
	var (
		wing, resample, printFile string
		exampleConfig             string
		threads                   int
	)
	vars := map[string]*string{
		"Wing":          &wing,
		"Resample":      &resample,
		"Print":         &printFile,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&wing, "Wing", "",
		"Configuration file for [Wing] mode.",
	)
	flag.StringVar(
		&resample, "Resample", "",
		"Configuration file for [Resample] mode.",
	)
	flag.StringVar(
		&printFile, "Print", "",
		"Airfoil file which is printed to stdout.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the "+
			"specified type to stdout. Accepted arguments are 'Wing' and "+
			"'Resample'.",
	)
	flag.IntVar(
		&threads, "Threads", 1,
		"Number of goroutines the span projection is split across.",
	)

	flag.Parse()

	if threads < 1 {
		log.Fatalf("'Threads' must be positive, but is %d.", threads)
	}
	gofoil.NumCores = threads

	modeName, err := getModeName(vars)
	if err != nil { log.Fatal(err.Error()) }

	switch modeName {
	case "Wing":
		con, err := io.ReadWingConfig(wing)
		if err != nil { log.Fatal(err.Error()) }
		fg := &FileGroup{}
		if con.ValidLogFile() { fg = setupLog(con.LogFile) }
		defer fg.Close()
		log.Printf("Running %s main.", modeName)
		wingMain(con)

	case "Resample":
		con, err := io.ReadResampleConfig(resample)
		if err != nil { log.Fatal(err.Error()) }
		fg := &FileGroup{}
		if con.ValidLogFile() { fg = setupLog(con.LogFile) }
		defer fg.Close()
		log.Printf("Running %s main.", modeName)
		resampleMain(con)

	case "Print":
		af, err := io.Load(printFile)
		if err != nil { log.Fatal(err.Error()) }
		if err = af.Print(os.Stdout); err != nil { log.Fatal(err.Error()) }

	case "ExampleConfig":
		switch exampleConfig {
		case "Wing":
			fmt.Println(io.ExampleWingFile)
		case "Resample":
			fmt.Println(io.ExampleResampleFile)
		default:
			log.Fatalf(
				"Unrecognized ExampleConfig type '%s'. Accepted arguments "+
					"are 'Wing' and 'Resample'.", exampleConfig,
			)
		}

	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" { setNames = append(setNames, name) }
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but gofoil "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// setupLog redirects log output to logFile.
func setupLog(logFile string) *FileGroup {
	fg := &FileGroup{}
	var err error
	fg.log, err = os.Create(logFile)
	if err != nil { log.Fatal(err.Error()) }
	log.SetOutput(fg.log)
	return fg
}

func wingMain(con *io.WingConfig) {
	spans, err := con.SpanFractions()
	if err != nil { log.Fatal(err.Error()) }

	chord, err := io.Load(con.Chord)
	if err != nil { log.Fatal(err.Error()) }
	tip, err := io.Load(con.Tip)
	if err != nil { log.Fatal(err.Error()) }
	log.Printf("Loaded chord '%s' and tip '%s'.", chord.Name, tip.Name)

	out, err := gofoil.NewAirfoil3D(chord, tip).Interpolate(con.XDim, spans)
	if err != nil { log.Fatal(err.Error()) }
	log.Printf(
		"Interpolated %d stations with %d points per surface.",
		out.Len(), con.XDim,
	)

	if err = os.MkdirAll(con.Output, 0777); err != nil {
		log.Fatal(err.Error())
	}
	fnames, err := io.SaveAirfoil3DPrefix(out, con.Output, con.PrependName)
	if err != nil { log.Fatal(err.Error()) }
	for _, fname := range fnames {
		log.Printf("Wrote %s.", fname)
	}

	switch con.Plot {
	case io.PlotPNG:
		fnames, err = render.WingPNGs(out, con.Output, con.PrependName)
		if err != nil { log.Fatal(err.Error()) }
	case io.PlotPyplot:
		fnames = render.WingPyplots(out, con.Output, con.PrependName)
		render.Flush()
	default:
		return
	}
	for _, fname := range fnames {
		log.Printf("Plotted %s.", fname)
	}
}

func resampleMain(con *io.ResampleConfig) {
	af, err := io.Load(con.Input)
	if err != nil { log.Fatal(err.Error()) }

	out, err := af.Interpolate(con.XDim)
	if err != nil { log.Fatal(err.Error()) }

	fname, err := io.SaveCSV(out, con.Output)
	if err != nil { log.Fatal(err.Error()) }
	log.Printf("Wrote %s.", fname)

	plotName := strings.TrimSuffix(fname, ".csv") + ".png"
	switch con.Plot {
	case io.PlotPNG:
		err = render.PNG(render.NewSurface(out), plotName)
		if err != nil { log.Fatal(err.Error()) }
	case io.PlotPyplot:
		render.Pyplot(render.NewSurface(out), plotName)
		render.Flush()
	default:
		return
	}
	log.Printf("Plotted %s.", plotName)
}
