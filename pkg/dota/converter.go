package dota

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/suker799/ReDet-v1/internal/utils"
	"github.com/suker799/ReDet-v1/pkg/hrsc"
	"github.com/suker799/ReDet-v1/pkg/taxonomy"
	"github.com/suker799/ReDet-v1/pkg/types"
)

// Options control the multi-level batch conversion.
type Options struct {
	// OutPrefix names the output directories: <prefix>_L1, _L2, _L3.
	OutPrefix string
	// StrictL2 drops objects from the L2 set when their fine class cannot
	// be merged into one of the four coarse classes. Without it such
	// objects fall back to the root class.
	StrictL2 bool
	// SanitizeL3 writes token-safe fine class names instead of the raw
	// ones.
	SanitizeL3 bool
}

// Stats counts what one split conversion did.
type Stats struct {
	Images       int // image stems found in the split
	Missing      int // images without an annotation document
	BadDocuments int // annotation documents that failed to parse
	Objects      int // objects converted
	MergeSkipped int // objects left out of the L2 set under StrictL2
}

// Converter turns one HRSC2016 split into three aligned DOTA labelTxt sets,
// one per granularity level.
type Converter struct {
	opts Options
}

// New creates a Converter with default options.
func New() *Converter {
	return NewWithOptions(Options{OutPrefix: "labelTxt"})
}

// NewWithOptions creates a Converter with custom options.
func NewWithOptions(opts Options) *Converter {
	if opts.OutPrefix == "" {
		opts.OutPrefix = "labelTxt"
	}
	return &Converter{opts: opts}
}

// ConvertSplit converts the split rooted at root, expecting root/images and
// root/Annotations. Every image stem yields exactly one output file per
// level; stems without an annotation document (or with an unparseable one)
// yield empty files so the three sets stay aligned with the image list.
func (c *Converter) ConvertSplit(root string) (Stats, error) {
	var stats Stats

	imageDir := filepath.Join(root, "images")
	annotationDir := filepath.Join(root, "Annotations")

	stems, err := utils.ImageStems(imageDir)
	if err != nil {
		return stats, fmt.Errorf("failed to list images: %w", err)
	}
	stats.Images = len(stems)

	outDirs := make(map[types.Level]string, 3)
	for _, level := range types.Levels() {
		dir := filepath.Join(root, c.opts.OutPrefix+level.Suffix())
		if err := utils.EnsureDir(dir); err != nil {
			return stats, fmt.Errorf("failed to create output directory: %w", err)
		}
		outDirs[level] = dir
	}

	for _, stem := range stems {
		xmlPath := filepath.Join(annotationDir, stem+".xml")

		var objects []types.Object
		if !utils.FileExists(xmlPath) {
			stats.Missing++
		} else {
			objects, err = hrsc.ParseAnnotationFile(xmlPath)
			if err != nil {
				log.Printf("[WARN] parse failed: %s (%v)", xmlPath, err)
				stats.BadDocuments++
				objects = nil
			}
		}

		rows := c.buildRows(objects, &stats)
		for _, level := range types.Levels() {
			path := filepath.Join(outDirs[level], stem+".txt")
			if err := WriteLabelFile(path, rows[level]); err != nil {
				return stats, err
			}
		}
	}

	return stats, nil
}

// buildRows derives the three per-level record lists for one image.
func (c *Converter) buildRows(objects []types.Object, stats *Stats) map[types.Level][]Record {
	rows := map[types.Level][]Record{}

	for _, obj := range objects {
		stats.Objects++

		fineName := taxonomy.FineNameForID(obj.ClassID)
		l3Name := fineName
		if c.opts.SanitizeL3 {
			l3Name = taxonomy.Sanitize(fineName)
		}

		coarseName := taxonomy.CoarseNameForFine(fineName)
		if coarseName == taxonomy.Fallback && c.opts.StrictL2 {
			stats.MergeSkipped++
		} else {
			rows[types.L2] = append(rows[types.L2], Record{Poly: obj.Poly, Name: coarseName, Difficult: obj.Difficult})
		}

		rows[types.L1] = append(rows[types.L1], Record{Poly: obj.Poly, Name: taxonomy.Fallback, Difficult: obj.Difficult})
		rows[types.L3] = append(rows[types.L3], Record{Poly: obj.Poly, Name: l3Name, Difficult: obj.Difficult})
	}

	return rows
}
