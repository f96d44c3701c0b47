// Command dota2coco assembles one granularity level of DOTA labelTxt
// annotations, together with the corresponding images, into a COCO-style
// dataset description.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	redet "github.com/suker799/ReDet-v1"
	"github.com/suker799/ReDet-v1/internal/config"
	"github.com/suker799/ReDet-v1/pkg/types"
)

func main() {
	var src, dest, levelToken, configPath string
	var sanitized, strict bool

	flag.StringVar(&src, "src", "", "directory containing images/ and labelTxt/")
	flag.StringVar(&dest, "dest", "", "output COCO JSON path")
	flag.StringVar(&levelToken, "level", "", "granularity level to convert: l1, l2 or l3")
	flag.BoolVar(&sanitized, "sanitized", false, "set if the L3 labelTxt used sanitized class names")
	flag.BoolVar(&strict, "strict", false, "drop instances whose class is not in the class list")
	flag.StringVar(&configPath, "config", "", "optional JSON config file; flags override its values")
	flag.Parse()

	if src == "" || dest == "" || levelToken == "" {
		log.Fatalf("usage: %s -src /path/to/split -dest train.json -level l1|l2|l3 [-sanitized] [-strict]",
			filepath.Base(os.Args[0]))
	}

	level, err := types.ParseLevel(levelToken)
	if err != nil {
		log.Fatal(err)
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadFromFile(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sanitized":
			cfg.Converter.SanitizeL3 = sanitized
		case "strict":
			cfg.Assembler.Strict = strict
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	pipeline := redet.NewWithConfig(cfg)
	stats, err := pipeline.Assemble(src, dest, level)
	if err != nil {
		log.Fatalf("Assembly failed: %v", err)
	}

	log.Printf("saved %s: %d images (%d label files skipped), %d instances (%d dropped)",
		dest, stats.Images, stats.SkippedLabels, stats.Instances, stats.DroppedInstances)
}
