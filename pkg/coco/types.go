// Package coco assembles one granularity level of DOTA labelTxt annotations
// into a COCO-style unified dataset description.
package coco

// Info is the free-form metadata block of a dataset description.
type Info struct {
	Contributor string `json:"contributor"`
	Description string `json:"description"`
	Version     string `json:"version"`
	Year        int    `json:"year"`
}

// Image describes one registered image. Ids are 1-based and assigned in
// label-file iteration order.
type Image struct {
	FileName string `json:"file_name"`
	ID       int    `json:"id"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// Category is one entry of the fixed class list. Ids are 1-based and follow
// the input list order; the supercategory repeats the name.
type Category struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Supercategory string `json:"supercategory"`
}

// Annotation is one object instance. Segmentation holds the oriented polygon
// as a single flattened ring; BBox is the axis-aligned box as x, y, w, h.
type Annotation struct {
	ID           int         `json:"id"`
	ImageID      int         `json:"image_id"`
	CategoryID   int         `json:"category_id"`
	Segmentation [][]float64 `json:"segmentation"`
	Area         float64     `json:"area"`
	BBox         [4]float64  `json:"bbox"`
	IsCrowd      int         `json:"iscrowd"`
}

// Dataset is the unified dataset description consumed by downstream
// detection tooling.
type Dataset struct {
	Info        Info         `json:"info"`
	Images      []Image      `json:"images"`
	Categories  []Category   `json:"categories"`
	Annotations []Annotation `json:"annotations"`
}

// BuildCategories maps a class-name list to category entries with dense
// 1-based ids.
func BuildCategories(classNames []string) []Category {
	categories := make([]Category, 0, len(classNames))
	for i, name := range classNames {
		categories = append(categories, Category{
			ID:            i + 1,
			Name:          name,
			Supercategory: name,
		})
	}
	return categories
}

// buildInfo returns the fixed metadata block stamped on every output.
func buildInfo(description string) Info {
	return Info{
		Contributor: "converted by dota2coco",
		Description: description,
		Version:     "1.0",
		Year:        2025,
	}
}
