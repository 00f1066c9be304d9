package trace

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTraceFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFileTotalCommaSeparated(t *testing.T) {
	dir := t.TempDir()
	writeTraceFile(t, dir, "t1.txt", "1,0,0\n0,1,1\n")

	tr, err := loadFile(filepath.Join(dir, "t1.txt"))
	if err != nil {
		t.Fatalf("loadFile error: %v", err)
	}
	if tr.Len() != 2 || tr.Width() != 3 {
		t.Fatalf("got len=%d width=%d, want len=2 width=3", tr.Len(), tr.Width())
	}
	if !tr.Bit(0, 0) || tr.Bit(0, 1) || tr.Bit(0, 2) {
		t.Fatal("first state should decode to 100")
	}
	if tr.Bit(1, 0) || !tr.Bit(1, 1) || !tr.Bit(1, 2) {
		t.Fatal("second state should decode to 011")
	}
}

func TestLoadFileEmptyLineIsZeroWidthState(t *testing.T) {
	dir := t.TempDir()
	writeTraceFile(t, dir, "t2.txt", "\n")

	tr, err := loadFile(filepath.Join(dir, "t2.txt"))
	if err != nil {
		t.Fatalf("loadFile error: %v", err)
	}
	if tr.Len() != 1 {
		t.Fatalf("got len=%d, want 1", tr.Len())
	}
}

func TestLoadDatasetReadsAllFourSubdirs(t *testing.T) {
	root := t.TempDir()
	for _, sub := range []string{"pos_train", "neg_train", "pos_test", "neg_test"} {
		dir := filepath.Join(root, sub)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		writeTraceFile(t, dir, "a.txt", "10\n11\n")
	}

	ds, err := LoadDataset(root)
	if err != nil {
		t.Fatalf("LoadDataset error: %v", err)
	}
	if len(ds.PosTrain) != 1 || len(ds.NegTrain) != 1 || len(ds.PosTest) != 1 || len(ds.NegTest) != 1 {
		t.Fatalf("expected one trace per subdirectory, got %+v", ds)
	}
	if ds.NumVars() != 2 {
		t.Fatalf("NumVars() = %d, want 2", ds.NumVars())
	}
	if ds.MaxPosTrainTraceLen() != 2 {
		t.Fatalf("MaxPosTrainTraceLen() = %d, want 2", ds.MaxPosTrainTraceLen())
	}
}

func TestLoadDatasetMissingDirErrors(t *testing.T) {
	root := t.TempDir()
	if _, err := LoadDataset(root); err == nil {
		t.Fatal("expected an error for a dataset directory missing its subdirectories")
	}
}
