// Package redet converts HRSC2016 ship-detection annotations into DOTA
// labelTxt sets and COCO-style dataset descriptions at three granularity
// levels of the ship class hierarchy.
//
// Level 3 keeps the 31 fine-grained HRSC classes, level 2 merges them into
// four vessel types (aircraft carrier, warship, merchant ship, submarine)
// and level 1 collapses everything to the single class "ship". A split is
// converted in two stages: the batch converter turns the per-image XML
// annotations into three aligned labelTxt directories, and the assembler
// turns one of those directories plus the images into a single COCO JSON
// document.
//
// Basic usage:
//
//	package main
//
//	import (
//		"log"
//
//		redet "github.com/suker799/ReDet-v1"
//		"github.com/suker799/ReDet-v1/pkg/types"
//	)
//
//	func main() {
//		pipeline := redet.New()
//
//		// Stage 1: HRSC XML -> labelTxt_L1/_L2/_L3 under the split root.
//		stats, err := pipeline.ConvertSplit("HRSC2016/Train")
//		if err != nil {
//			log.Fatal(err)
//		}
//		log.Printf("converted %d images, %d objects", stats.Images, stats.Objects)
//
//		// Stage 2: one level's labelTxt + images -> COCO JSON.
//		if _, err := pipeline.Assemble("HRSC_DOTA_L2/train", "HRSC_DOTA_L2/train.json", types.L2); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// The package consists of four main components:
//
// 1. Geometry (pkg/geometry): rotated boxes, oriented polygons, bbox/area math
// 2. Taxonomy (pkg/taxonomy): the three-level class hierarchy and label sanitizer
// 3. DOTA (pkg/dota): the labelTxt codec and the multi-level batch converter
// 4. COCO (pkg/coco): the unified dataset assembler
package redet

import (
	"github.com/suker799/ReDet-v1/internal/config"
	"github.com/suker799/ReDet-v1/pkg/coco"
	"github.com/suker799/ReDet-v1/pkg/dota"
	"github.com/suker799/ReDet-v1/pkg/taxonomy"
	"github.com/suker799/ReDet-v1/pkg/types"
)

// Version of the conversion library
const Version = "1.0.0"

// Pipeline provides a high-level interface over the two conversion stages.
type Pipeline struct {
	cfg       *config.Config
	converter *dota.Converter
	assembler *coco.Assembler
}

// New creates a Pipeline with default configuration.
func New() *Pipeline {
	return NewWithConfig(config.Default())
}

// NewWithConfig creates a Pipeline with custom configuration.
func NewWithConfig(cfg *config.Config) *Pipeline {
	return &Pipeline{
		cfg: cfg,
		converter: dota.NewWithOptions(dota.Options{
			OutPrefix:  cfg.Converter.OutPrefix,
			StrictL2:   cfg.Converter.StrictL2,
			SanitizeL3: cfg.Converter.SanitizeL3,
		}),
		assembler: coco.NewWithOptions(coco.Options{
			Strict:     cfg.Assembler.Strict,
			Extensions: cfg.Assembler.ImageExtensions,
		}),
	}
}

// ConvertSplit converts one HRSC split (root/images plus root/Annotations)
// into three aligned labelTxt directories under root.
func (p *Pipeline) ConvertSplit(root string) (dota.Stats, error) {
	return p.converter.ConvertSplit(root)
}

// Assemble builds the COCO dataset description for one granularity level
// from srcPath/images and srcPath/labelTxt and writes it to destFile.
func (p *Pipeline) Assemble(srcPath, destFile string, level types.Level) (coco.Stats, error) {
	classNames := taxonomy.NamesForLevel(level, p.cfg.Converter.SanitizeL3)
	return p.assembler.Assemble(srcPath, destFile, classNames)
}

// ClassNames returns the category list the pipeline uses for a level,
// honoring the configured L3 sanitization.
func (p *Pipeline) ClassNames(level types.Level) []string {
	return taxonomy.NamesForLevel(level, p.cfg.Converter.SanitizeL3)
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
