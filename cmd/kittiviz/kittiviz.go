package main

import (
	"fmt"
	"os"

	"github.com/akamensky/argparse"
	"github.com/cyclopcam/dsconv/pkg/dsdoc"
	"github.com/cyclopcam/dsconv/pkg/kittiviz"
	"github.com/cyclopcam/logs"
)

func main() {
	const tool = dsdoc.ToolKittiViz
	help := func(flag string) string { return dsdoc.Default.Summary(tool + "." + flag) }

	parser := argparse.NewParser(tool, dsdoc.Default.Summary(tool))
	imageFile := parser.String("i", "image", &argparse.Options{Help: help("image"), Required: true})
	labelFile := parser.String("l", "label", &argparse.Options{Help: help("label"), Required: true})
	outputFile := parser.String("o", "output", &argparse.Options{Help: help("output"), Required: true})
	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	logger, _ := logs.NewLog()
	if err := kittiviz.RenderFile(*imageFile, *labelFile, *outputFile); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
	logger.Infof("Wrote %v", *outputFile)
}
