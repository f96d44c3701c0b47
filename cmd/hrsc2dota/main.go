// Command hrsc2dota converts one HRSC2016 split (images plus per-image XML
// annotations) into three aligned DOTA labelTxt sets, one per granularity
// level of the ship class hierarchy.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	redet "github.com/suker799/ReDet-v1"
	"github.com/suker799/ReDet-v1/internal/config"
)

func main() {
	var root, prefix, configPath string
	var strictL2, sanitizeL3 bool

	flag.StringVar(&root, "root", "", "HRSC2016 split root containing images/ and Annotations/")
	flag.StringVar(&prefix, "prefix", "labelTxt", "output directory prefix: <prefix>_L1/_L2/_L3")
	flag.BoolVar(&strictL2, "strict-l2", false, "skip objects that cannot be merged at L2 (default: fall back to \"ship\")")
	flag.BoolVar(&sanitizeL3, "sanitize-l3", false, "write token-safe L3 class names (lowercase, underscores, no symbols)")
	flag.StringVar(&configPath, "config", "", "optional JSON config file; flags override its values")
	flag.Parse()

	if root == "" {
		log.Fatalf("usage: %s -root /path/to/HRSC2016/Train [-prefix labelTxt] [-strict-l2] [-sanitize-l3]",
			filepath.Base(os.Args[0]))
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
		case "prefix":
			cfg.Converter.OutPrefix = prefix
		case "strict-l2":
			cfg.Converter.StrictL2 = strictL2
		case "sanitize-l3":
			cfg.Converter.SanitizeL3 = sanitizeL3
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	pipeline := redet.NewWithConfig(cfg)
	stats, err := pipeline.ConvertSplit(root)
	if err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}

	log.Printf("converted %d images (%d without annotations, %d bad documents), %d objects, %d skipped at L2",
		stats.Images, stats.Missing, stats.BadDocuments, stats.Objects, stats.MergeSkipped)
}
