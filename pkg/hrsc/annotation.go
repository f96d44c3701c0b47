// Package hrsc parses HRSC2016 per-image annotation documents.
package hrsc

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/suker799/ReDet-v1/pkg/geometry"
	"github.com/suker799/ReDet-v1/pkg/types"
)

// annotationDoc mirrors the HRSC_Image/HRSC_Objects/HRSC_Object structure of
// the source XML. All fields are decoded as text so that a missing or
// malformed value can drop a single object instead of failing the document.
type annotationDoc struct {
	Objects []annotationObject `xml:"HRSC_Objects>HRSC_Object"`
}

type annotationObject struct {
	ClassID   string `xml:"Class_ID"`
	CX        string `xml:"mbox_cx"`
	CY        string `xml:"mbox_cy"`
	W         string `xml:"mbox_w"`
	H         string `xml:"mbox_h"`
	Angle     string `xml:"mbox_ang"`
	Difficult string `xml:"difficult"`
}

// ParseAnnotations extracts the annotated objects from one HRSC document.
// Objects missing any of the five rotated-box fields are dropped; an
// unparseable document returns an error and no objects. The caller decides
// whether a failed document aborts anything (the batch converter treats it as
// an empty annotation and keeps going).
func ParseAnnotations(r io.Reader) ([]types.Object, error) {
	var doc annotationDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode annotation document: %w", err)
	}

	var objects []types.Object
	for _, raw := range doc.Objects {
		box, ok := parseBox(raw)
		if !ok {
			// Incomplete record: skip this object, keep its siblings.
			continue
		}

		difficult := 0
		if strings.TrimSpace(raw.Difficult) == "1" {
			difficult = 1
		}

		objects = append(objects, types.Object{
			Poly:      box.Polygon(),
			ClassID:   strings.TrimSpace(raw.ClassID),
			Difficult: difficult,
		})
	}
	return objects, nil
}

// ParseAnnotationFile extracts the annotated objects from an XML file on
// disk.
func ParseAnnotationFile(path string) ([]types.Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open annotation file: %w", err)
	}
	defer f.Close()
	return ParseAnnotations(f)
}

// parseBox reads the five rotated-box fields of one object. The second
// return value is false when any field is absent or not numeric.
func parseBox(raw annotationObject) (geometry.RotatedBox, bool) {
	fields := []string{raw.CX, raw.CY, raw.W, raw.H, raw.Angle}
	values := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return geometry.RotatedBox{}, false
		}
		values[i] = v
	}
	return geometry.RotatedBox{
		CX:    values[0],
		CY:    values[1],
		W:     values[2],
		H:     values[3],
		Angle: values[4],
	}, true
}
