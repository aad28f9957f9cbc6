package main

import (
	"fmt"
	"os"

	"github.com/akamensky/argparse"
	"github.com/cyclopcam/dsconv/pkg/coco"
	"github.com/cyclopcam/dsconv/pkg/dsdoc"
	"github.com/cyclopcam/logs"
)

func main() {
	const tool = dsdoc.ToolKitti2Coco
	help := func(flag string) string { return dsdoc.Default.Summary(tool + "." + flag) }

	parser := argparse.NewParser(tool, dsdoc.Default.Summary(tool))
	kittiPath := parser.String("", "kitti_path", &argparse.Options{Help: help("kitti_path"), Required: true})
	outputFile := parser.String("", "output_file", &argparse.Options{Help: help("output_file"), Required: true})
	splitFile := parser.String("", "label_split_file", &argparse.Options{Help: help("label_split_file"), Default: ""})
	outputCount := parser.Int("", "output_count", &argparse.Options{Help: help("output_count"), Default: 10, Validate: validateCount})
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

	opt := coco.Options{
		KittiPath:   *kittiPath,
		OutputFile:  *outputFile,
		SplitFile:   *splitFile,
		OutputCount: *outputCount,
	}
	if err := coco.Convert(logger, opt); err != nil {
		logger.Errorf("%v", err)
		logger.Close()
		os.Exit(1)
	}
}

func validateCount(args []string) error {
	var n int
	if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil || n < 0 {
		return fmt.Errorf("output_count must be a non-negative integer, not '%v'", args[0])
	}
	return nil
}
