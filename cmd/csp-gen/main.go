package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"omibyte.io/cordic/cmd/csp-gen/generator"
	stm32_svd "omibyte.io/cordic/cmd/csp-gen/generator/STM32/svd"
	"omibyte.io/cordic/cmd/csp-gen/svd"
)

var (
	input     string
	outputDir string
	module    string
	verbose   bool
)

func init() {
	flag.StringVar(&input, "in", "", "input file")
	flag.StringVar(&outputDir, "out", ".", "output directory")
	flag.StringVar(&module, "module", "omibyte.io/cordic", "module path of the mmio and register packages")
	flag.BoolVar(&verbose, "v", false, "verbose logging")
}

func main() {
	flag.Parse()

	var log *zap.Logger
	if verbose {
		log, _ = zap.NewDevelopment()
	} else {
		log, _ = zap.NewProduction()
	}
	defer log.Sync()

	fnames, err := filepath.Glob(input)
	if err != nil {
		log.Fatal("bad input pattern", zap.Error(err))
	}
	if len(fnames) == 0 {
		log.Fatal("no input files", zap.String("in", input))
	}

	for _, fname := range fnames {
		if err := generate(log, fname); err != nil {
			log.Fatal("generator error", zap.String("file", fname), zap.Error(err))
		}
	}
	log.Info("done", zap.Int("files", len(fnames)))
}

func generate(log *zap.Logger, fname string) error {
	if filetype := strings.ToLower(filepath.Ext(fname)); filetype != ".svd" {
		log.Warn("unsupported file type", zap.String("file", fname), zap.String("type", filetype))
		return nil
	}

	file, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer file.Close()

	def, err := svd.Decode(file)
	if err != nil {
		return err
	}

	log.Info("generating the chip package",
		zap.String("device", def.Name),
		zap.String("series", def.Series),
		zap.String("version", def.Version),
		zap.String("cpu", def.CPU.Name),
		zap.String("revision", def.CPU.Revision),
		zap.Int("peripherals", len(def.Peripherals.Elements)))

	// Choose the generator based on the series
	var gen generator.Generator
	switch def.Series {
	case "STM32G4":
		gen = stm32_svd.NewGenerator(def, module)
	default:
		log.Warn("unsupported device", zap.String("device", def.Name), zap.String("series", def.Series))
		return nil
	}

	if err = os.MkdirAll(outputDir, 0750); err != nil {
		return err
	}
	return gen.Generate(outputDir)
}
