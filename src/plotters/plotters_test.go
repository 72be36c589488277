package plotters

import (
	"bytes"
	"errors"
	"image"
	_ "image/png" // register PNG decoder
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iafilius/TrainingPlots/src/render"
)

// testOptions renders at 72 DPI into a fresh directory so runs stay fast.
func testOptions(t *testing.T, out *bytes.Buffer) Options {
	t.Helper()
	return Options{OutDir: filepath.Join(t.TempDir(), "plot"), DPI: 72, Out: out}
}

func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "ocr.csv")
	if err := os.WriteFile(p, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return p
}

func csvPlotter(t *testing.T, out *bytes.Buffer, file string) *CSVPlotter {
	t.Helper()
	p := NewCSVPlotter(testOptions(t, out))
	p.File = file
	return p
}

func assertNoImage(t *testing.T, dir string) {
	t.Helper()
	if _, err := os.Stat(filepath.Join(dir, OCRFile)); !os.IsNotExist(err) {
		t.Fatalf("expected no %s in %s (stat err=%v)", OCRFile, dir, err)
	}
}

func TestGenEvalPlotter_WritesImage(t *testing.T) {
	var out bytes.Buffer
	p := NewGenEvalPlotter(testOptions(t, &out))
	res, err := p.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Written() || res.Points != 9 || res.Stopped != nil {
		t.Fatalf("unexpected outcome %+v", res)
	}
	st, err := os.Stat(res.Path)
	if err != nil || st.Size() == 0 {
		t.Fatalf("output missing or empty: %v", err)
	}
	f, err := os.Open(res.Path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 864 || img.Bounds().Dy() != 576 { // 12x8in at 72 DPI
		t.Fatalf("image size %v", img.Bounds())
	}
	for _, want := range []string{"Plotting 9 data points", "Training steps: [0 50 100 150 200 250 300 350 400]", "Plot saved successfully to:"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestGenEvalPlotter_Spec(t *testing.T) {
	spec := NewGenEvalPlotter(Options{}).Spec()
	if spec.Title != "GenEval GRPO Performance" || spec.YLabel != "GenEval Performance (%)" || spec.XLabel != "Training Steps" {
		t.Fatalf("labels = %+v", spec)
	}
	if spec.YRange == nil || *spec.YRange != (render.Range{Min: 80, Max: 92}) || len(spec.XTicks) != 9 {
		t.Fatalf("axes = %+v %v", spec.YRange, spec.XTicks)
	}
	if spec.DPI != 300 {
		t.Fatalf("default dpi = %v", spec.DPI)
	}
}

func TestGenEvalPlotter_Deterministic(t *testing.T) {
	var outs [][]byte
	for i := 0; i < 2; i++ {
		var buf bytes.Buffer
		res, err := NewGenEvalPlotter(testOptions(t, &buf)).Run()
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		b, err := os.ReadFile(res.Path)
		if err != nil {
			t.Fatal(err)
		}
		outs = append(outs, b)
	}
	if !bytes.Equal(outs[0], outs[1]) {
		t.Fatalf("two GenEval runs produced different images")
	}
}

func TestGenEvalPlotter_ShowHook(t *testing.T) {
	var out bytes.Buffer
	opts := testOptions(t, &out)
	var shown string
	opts.Show = func(title string, img image.Image) error {
		shown = title
		return errors.New("no display")
	}
	res, err := NewGenEvalPlotter(opts).Run()
	if err != nil {
		t.Fatalf("display failure must not fail the run: %v", err)
	}
	if shown != "GenEval GRPO Performance" || !res.Written() {
		t.Fatalf("show hook not called after save: shown=%q res=%+v", shown, res)
	}
}

func TestCSVPlotter_FiltersSteps(t *testing.T) {
	var out bytes.Buffer
	file := writeCSV(t,
		DefaultXCol+","+DefaultYCol,
		"0,1.0",
		"500,2.0",
		"900,3.0",
		"1000,4.0",
	)
	p := csvPlotter(t, &out, file)
	res, err := p.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Stopped != nil || !res.Written() {
		t.Fatalf("expected an image, got %+v\n%s", res, out.String())
	}
	if res.Points != 3 {
		t.Fatalf("points = %d, want 3 (step 1000 excluded)", res.Points)
	}
	if filepath.Base(res.Path) != OCRFile {
		t.Fatalf("path = %s", res.Path)
	}
	if !strings.Contains(out.String(), "Plotting 3 data points") {
		t.Fatalf("missing progress line:\n%s", out.String())
	}
}

func TestCSVPlotter_NotFound(t *testing.T) {
	var out bytes.Buffer
	p := csvPlotter(t, &out, filepath.Join(t.TempDir(), "absent.csv"))
	res, err := p.Run()
	if err != nil {
		t.Fatalf("not-found must not propagate: %v", err)
	}
	if !errors.Is(res.Stopped, ErrNotFound) || res.Written() {
		t.Fatalf("outcome = %+v", res)
	}
	if !strings.Contains(out.String(), "file not found") {
		t.Fatalf("missing diagnostic:\n%s", out.String())
	}
	assertNoImage(t, p.OutDir)
}

func TestCSVPlotter_Malformed(t *testing.T) {
	var out bytes.Buffer
	p := csvPlotter(t, &out, writeCSV(t, "a,b", "1,2,3"))
	res, err := p.Run()
	if err != nil {
		t.Fatalf("malformed input must not propagate: %v", err)
	}
	if !errors.Is(res.Stopped, ErrMalformed) || !Reportable(res.Stopped) {
		t.Fatalf("outcome = %+v", res)
	}
	if !strings.Contains(out.String(), "Error reading") {
		t.Fatalf("missing diagnostic:\n%s", out.String())
	}
	assertNoImage(t, p.OutDir)
}

func TestCSVPlotter_MissingXColumn(t *testing.T) {
	var out bytes.Buffer
	p := csvPlotter(t, &out, writeCSV(t, "step,"+DefaultYCol, "0,1"))
	res, err := p.Run()
	if err != nil {
		t.Fatal(err)
	}
	if !errors.Is(res.Stopped, ErrMissingColumn) {
		t.Fatalf("outcome = %+v", res)
	}
	if !strings.Contains(out.String(), `column "train/global_step" not found`) {
		t.Fatalf("missing column-not-found diagnostic:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Available columns: ['step', '"+DefaultYCol+"']") {
		t.Fatalf("available columns not listed:\n%s", out.String())
	}
	assertNoImage(t, p.OutDir)
}

func TestCSVPlotter_MissingYColumnListsHints(t *testing.T) {
	var out bytes.Buffer
	p := csvPlotter(t, &out, writeCSV(t,
		DefaultXCol+",run-b - train/REWARDS/total,loss_Mean,lr",
		"0,1,2,3",
	))
	res, err := p.Run()
	if err != nil {
		t.Fatal(err)
	}
	if !errors.Is(res.Stopped, ErrMissingColumn) || res.Written() {
		t.Fatalf("outcome = %+v", res)
	}
	want := "Columns containing 'reward' or 'mean': ['run-b - train/REWARDS/total', 'loss_Mean']\n"
	if !strings.Contains(out.String(), want) {
		t.Fatalf("hint line missing or includes unrelated columns:\n%s", out.String())
	}
	assertNoImage(t, p.OutDir)
}

func TestCSVPlotter_NoValidDataPoints(t *testing.T) {
	var out bytes.Buffer
	p := csvPlotter(t, &out, writeCSV(t,
		DefaultXCol+","+DefaultYCol,
		"0,",
		"450,nan",
		"900,",
		"950,0.7",
		"1200,0.8",
	))
	res, err := p.Run()
	if err != nil {
		t.Fatal(err)
	}
	if !errors.Is(res.Stopped, ErrNoData) || res.Written() {
		t.Fatalf("outcome = %+v", res)
	}
	if !strings.Contains(out.String(), "no valid data points") {
		t.Fatalf("missing diagnostic:\n%s", out.String())
	}
	assertNoImage(t, p.OutDir)
}

func TestCSVPlotter_CustomColumnsAndGonum(t *testing.T) {
	var out bytes.Buffer
	r, err := render.Backend("gonum")
	if err != nil {
		t.Fatal(err)
	}
	p := csvPlotter(t, &out, writeCSV(t, "step,acc", "0,0.1", "10,0.2", "20,0.4"))
	p.Renderer = r
	p.XCol, p.YCol, p.MaxStep = "step", "acc", 15
	res, err := p.Run()
	if err != nil {
		t.Fatal(err)
	}
	if res.Points != 2 || !res.Written() {
		t.Fatalf("outcome = %+v\n%s", res, out.String())
	}
}

func TestReportable(t *testing.T) {
	if Reportable(errors.New("boom")) || Reportable(nil) {
		t.Fatalf("arbitrary errors are not reportable")
	}
	if !Reportable(ErrNoData) {
		t.Fatalf("ErrNoData must be reportable")
	}
}

func TestCSVPlotter_InfiniteValuesLeftOut(t *testing.T) {
	var out bytes.Buffer
	p := csvPlotter(t, &out, writeCSV(t,
		DefaultXCol+","+DefaultYCol,
		"0,1.0",
		"100,inf",
		"200,2.0",
		"300,-Infinity",
	))
	res, err := p.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Written() || res.Points != 2 {
		t.Fatalf("expected an image with 2 finite points, got %+v\n%s", res, out.String())
	}
}

func TestCSVPlotter_OnlyInfiniteValuesReportNoData(t *testing.T) {
	var out bytes.Buffer
	p := csvPlotter(t, &out, writeCSV(t, DefaultXCol+","+DefaultYCol, "0,inf"))
	res, err := p.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !errors.Is(res.Stopped, ErrNoData) || res.Written() {
		t.Fatalf("outcome = %+v", res)
	}
	if strings.Contains(out.String(), "Plotting") {
		t.Fatalf("progress printed before stopping:\n%s", out.String())
	}
	assertNoImage(t, p.OutDir)
}

func TestColumnList(t *testing.T) {
	if got := columnList([]string{"a", "b c"}); got != "['a', 'b c']" {
		t.Fatalf("columnList = %s", got)
	}
	if got := columnList(nil); got != "[]" {
		t.Fatalf("columnList(nil) = %s", got)
	}
}
