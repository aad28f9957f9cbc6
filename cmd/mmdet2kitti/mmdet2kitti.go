package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/akamensky/argparse"
	"github.com/cyclopcam/dsconv/pkg/detections"
	"github.com/cyclopcam/dsconv/pkg/dsdoc"
	"github.com/cyclopcam/dsconv/pkg/nn"
	"github.com/cyclopcam/logs"
)

func main() {
	const tool = dsdoc.ToolMmdet2Kitti
	help := func(flag string) string { return dsdoc.Default.Summary(tool + "." + flag) }

	parser := argparse.NewParser(tool, dsdoc.Default.Summary(tool))
	resultFile := parser.String("", "result_file", &argparse.Options{Help: help("result_file"), Required: true})
	outputDir := parser.String("", "output_dir_path", &argparse.Options{Help: help("output_dir_path"), Required: true})
	threshold := parser.Float("", "score_threshold", &argparse.Options{Help: help("score_threshold"), Default: nn.DefaultScoreThreshold})
	classNames := parser.String("", "class_names", &argparse.Options{Help: help("class_names"), Default: strings.Join(nn.DefaultDetectorClasses, ",")})
	classFile := parser.String("", "class_file", &argparse.Options{Help: help("class_file"), Default: ""})
	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	logger, err := logs.NewLog()
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	fail := func(format string, args ...any) {
		logger.Errorf(format, args...)
		logger.Close()
		os.Exit(1)
	}

	classes := nn.ParseClassList(*classNames)
	if *classFile != "" {
		if classes, err = nn.LoadClassFile(*classFile); err != nil {
			fail("Failed to load class file '%v': %v", *classFile, err)
		}
	}
	if len(classes) == 0 {
		fail("No class names specified")
	}
	logger.Infof("Classes: %v", strings.Join(classes, ", "))

	if err := detections.Convert(logger, *resultFile, *outputDir, *threshold, classes); err != nil {
		fail("%v", err)
	}
}
