package coco

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/suker799/ReDet-v1/internal/utils"
	"github.com/suker799/ReDet-v1/pkg/dota"
)

// Options control the dataset assembly.
type Options struct {
	// Strict drops instances whose category name is not an exact member
	// of the class list. Without it a chain of name normalizations is
	// tried before dropping.
	Strict bool
	// Extensions is the image lookup priority order. Defaults to the
	// recognized image extensions, .bmp first.
	Extensions []string
}

// Stats counts what one assembly run did.
type Stats struct {
	Images           int // images registered
	SkippedLabels    int // label files without a matching image
	Instances        int // annotation instances emitted
	DroppedInstances int // instances dropped for an unresolvable category
}

// Assembler builds a unified dataset description from one level's labelTxt
// set and the corresponding images.
type Assembler struct {
	opts Options
}

// New creates an Assembler with default options.
func New() *Assembler {
	return NewWithOptions(Options{})
}

// NewWithOptions creates an Assembler with custom options.
func NewWithOptions(opts Options) *Assembler {
	if len(opts.Extensions) == 0 {
		opts.Extensions = utils.ImageExtensions
	}
	return &Assembler{opts: opts}
}

// normalizers is the ordered chain of category-name rewrites tried during
// lenient matching. The first form present in the class list wins.
var normalizers = []func(string) string{
	func(s string) string { return s },
	strings.ToLower,
	func(s string) string { return strings.ReplaceAll(s, "_", " ") },
	func(s string) string { return strings.ReplaceAll(s, " ", "_") },
	func(s string) string { return strings.ToLower(strings.ReplaceAll(s, "_", " ")) },
	func(s string) string { return strings.ToLower(strings.ReplaceAll(s, " ", "_")) },
}

// Build assembles the dataset for the split rooted at srcPath, expecting
// srcPath/images and srcPath/labelTxt. Label files are visited in
// lexicographic order, which fixes the image and annotation id assignment.
func (a *Assembler) Build(srcPath string, classNames []string) (*Dataset, Stats, error) {
	var stats Stats

	imageDir := filepath.Join(srcPath, "images")
	labelDir := filepath.Join(srcPath, "labelTxt")

	labelFiles, err := utils.ListFilesWithExt(labelDir, ".txt")
	if err != nil {
		return nil, stats, fmt.Errorf("failed to list label files: %w", err)
	}

	// First occurrence wins for duplicate names, matching the list-index
	// lookup of the original converter.
	index := make(map[string]int, len(classNames))
	for i, name := range classNames {
		if _, ok := index[name]; !ok {
			index[name] = i + 1
		}
	}

	dataset := &Dataset{
		Info:        buildInfo("HRSC (DOTA to COCO)"),
		Images:      []Image{},
		Categories:  BuildCategories(classNames),
		Annotations: []Annotation{},
	}

	imageID := 1
	annotationID := 1

	for _, labelFile := range labelFiles {
		stem := utils.Stem(labelFile)

		imagePath, ok := utils.FindImage(imageDir, stem, a.opts.Extensions)
		if !ok {
			// No image for this label file: skip it entirely, its ids
			// are never consumed.
			stats.SkippedLabels++
			continue
		}

		width, height, err := ReadImageSize(imagePath)
		if err != nil {
			return nil, stats, fmt.Errorf("failed to read %s: %w", imagePath, err)
		}

		dataset.Images = append(dataset.Images, Image{
			FileName: filepath.Base(imagePath),
			ID:       imageID,
			Width:    width,
			Height:   height,
		})

		records, err := dota.ReadLabelFile(labelFile)
		if err != nil {
			return nil, stats, err
		}

		for _, rec := range records {
			categoryID, ok := a.resolveCategory(rec.Name, index)
			if !ok {
				stats.DroppedInstances++
				continue
			}

			x, y, w, h := rec.Poly.Bounds()
			dataset.Annotations = append(dataset.Annotations, Annotation{
				ID:           annotationID,
				ImageID:      imageID,
				CategoryID:   categoryID,
				Segmentation: [][]float64{rec.Poly[:]},
				Area:         rec.Poly.Area(),
				BBox:         [4]float64{x, y, w, h},
				IsCrowd:      0,
			})
			annotationID++
			stats.Instances++
		}

		imageID++
		stats.Images++
	}

	if stats.SkippedLabels > 0 || stats.DroppedInstances > 0 {
		log.Printf("[WARN] assembly skipped %d label files and dropped %d instances",
			stats.SkippedLabels, stats.DroppedInstances)
	}

	return dataset, stats, nil
}

// Assemble builds the dataset and writes it to destFile.
func (a *Assembler) Assemble(srcPath, destFile string, classNames []string) (Stats, error) {
	dataset, stats, err := a.Build(srcPath, classNames)
	if err != nil {
		return stats, err
	}
	if err := WriteDataset(dataset, destFile); err != nil {
		return stats, err
	}
	return stats, nil
}

// resolveCategory maps a raw category name to its 1-based id. In strict mode
// only exact members of the class list resolve; otherwise the normalizer
// chain is tried in order.
func (a *Assembler) resolveCategory(name string, index map[string]int) (int, bool) {
	if id, ok := index[name]; ok {
		return id, true
	}
	if a.opts.Strict {
		return 0, false
	}
	for _, normalize := range normalizers {
		if id, ok := index[normalize(name)]; ok {
			return id, true
		}
	}
	return 0, false
}

// WriteDataset writes the dataset as JSON to destFile, creating parent
// directories as needed. The document is staged in a temporary file and
// renamed into place so a partial write is never visible.
func WriteDataset(dataset *Dataset, destFile string) error {
	dir := filepath.Dir(destFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".coco-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := json.NewEncoder(tmp).Encode(dataset); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}

	if err := os.Rename(tmp.Name(), destFile); err != nil {
		return fmt.Errorf("failed to move dataset into place: %w", err)
	}
	return nil
}

// ReadDataset loads a previously written dataset description.
func ReadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	var dataset Dataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	return &dataset, nil
}
