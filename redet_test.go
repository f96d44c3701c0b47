package redet

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/suker799/ReDet-v1/internal/config"
	"github.com/suker799/ReDet-v1/pkg/coco"
	"github.com/suker799/ReDet-v1/pkg/types"
)

// createTestSplit lays out a small HRSC split with real BMP images and one
// annotated stem.
func createTestSplit(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	imageDir := filepath.Join(root, "images")
	annotationDir := filepath.Join(root, "Annotations")
	for _, dir := range []string{imageDir, annotationDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}

	for _, stem := range []string{"100000001", "100000002"} {
		img := imaging.New(64, 48, color.NRGBA{R: 10, G: 60, B: 110, A: 255})
		if err := imaging.Save(img, filepath.Join(imageDir, stem+".bmp")); err != nil {
			t.Fatal(err)
		}
	}

	doc := fmt.Sprintf(`<HRSC_Image><HRSC_Objects>
		<HRSC_Object>
			<Class_ID>100000013</Class_ID>
			<mbox_cx>10</mbox_cx><mbox_cy>10</mbox_cy>
			<mbox_w>4</mbox_w><mbox_h>2</mbox_h><mbox_ang>0</mbox_ang>
			<difficult>0</difficult>
		</HRSC_Object>
		<HRSC_Object>
			<Class_ID>100000027</Class_ID>
			<mbox_cx>30</mbox_cx><mbox_cy>20</mbox_cy>
			<mbox_w>10</mbox_w><mbox_h>4</mbox_h><mbox_ang>%v</mbox_ang>
			<difficult>1</difficult>
		</HRSC_Object>
	</HRSC_Objects></HRSC_Image>`, 0.5)
	if err := os.WriteFile(filepath.Join(annotationDir, "100000001.xml"), []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	return root
}

func TestNew(t *testing.T) {
	pipeline := New()
	if pipeline == nil {
		t.Fatal("New() returned nil")
	}
	if pipeline.converter == nil {
		t.Error("converter component is nil")
	}
	if pipeline.assembler == nil {
		t.Error("assembler component is nil")
	}
}

func TestNewWithConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Converter.SanitizeL3 = true

	pipeline := NewWithConfig(cfg)
	names := pipeline.ClassNames(types.L3)
	if len(names) != 31 {
		t.Fatalf("expected 31 L3 names, got %d", len(names))
	}
	if names[19] != "car_carrier" {
		t.Errorf("expected sanitized names, got %q", names[19])
	}
}

func TestClassNames(t *testing.T) {
	pipeline := New()

	if names := pipeline.ClassNames(types.L1); len(names) != 1 || names[0] != "ship" {
		t.Errorf("unexpected L1 names: %v", names)
	}
	if names := pipeline.ClassNames(types.L2); len(names) != 4 {
		t.Errorf("expected 4 L2 names, got %v", names)
	}
	if names := pipeline.ClassNames(types.L3); len(names) != 31 || names[12] != "Kuznetsov" {
		t.Errorf("unexpected L3 names: %v", names)
	}
}

func TestPipelineEndToEnd(t *testing.T) {
	root := createTestSplit(t)
	pipeline := New()

	convStats, err := pipeline.ConvertSplit(root)
	if err != nil {
		t.Fatalf("ConvertSplit failed: %v", err)
	}
	if convStats.Images != 2 || convStats.Objects != 2 || convStats.Missing != 1 {
		t.Fatalf("unexpected conversion stats: %+v", convStats)
	}

	// Point the assembler at the L2 output by renaming it to the expected
	// labelTxt location inside the split.
	if err := os.Rename(filepath.Join(root, "labelTxt_L2"), filepath.Join(root, "labelTxt")); err != nil {
		t.Fatal(err)
	}

	destFile := filepath.Join(root, "train_l2.json")
	asmStats, err := pipeline.Assemble(root, destFile, types.L2)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if asmStats.Images != 2 || asmStats.Instances != 2 || asmStats.DroppedInstances != 0 {
		t.Fatalf("unexpected assembly stats: %+v", asmStats)
	}

	dataset, err := coco.ReadDataset(destFile)
	if err != nil {
		t.Fatalf("ReadDataset failed: %v", err)
	}

	if len(dataset.Images) != 2 || len(dataset.Categories) != 4 || len(dataset.Annotations) != 2 {
		t.Fatalf("unexpected document shape: %d images, %d categories, %d annotations",
			len(dataset.Images), len(dataset.Categories), len(dataset.Annotations))
	}
	for i, img := range dataset.Images {
		if img.ID != i+1 {
			t.Errorf("image %d has id %d", i, img.ID)
		}
		if img.Width != 64 || img.Height != 48 {
			t.Errorf("image %d has size %dx%d, want 64x48", i, img.Width, img.Height)
		}
	}

	// The Kuznetsov merges to aircraft carrier (id 1), the submarine to
	// submarine (id 4).
	gotCats := []int{dataset.Annotations[0].CategoryID, dataset.Annotations[1].CategoryID}
	if gotCats[0] != 1 || gotCats[1] != 4 {
		t.Errorf("unexpected category ids: %v", gotCats)
	}
}

func TestGetVersion(t *testing.T) {
	if GetVersion() != Version {
		t.Errorf("GetVersion() = %q, want %q", GetVersion(), Version)
	}
}
