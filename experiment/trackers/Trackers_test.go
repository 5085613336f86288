package trackers

import (
	"path/filepath"
	"testing"

	ts "github.com/samuelfneumann/gotabular/timestep"
)

func TestReturnAccumulatesEpisodes(t *testing.T) {
	tracker := NewReturn[string](filepath.Join(t.TempDir(), "returns.bin"))

	tracker.Track(ts.New(ts.First, 0.0, "s0", 0))
	tracker.Track(ts.New(ts.Mid, -1.0, "s1", 1))
	tracker.Track(ts.New(ts.Mid, -1.0, "s2", 2))
	tracker.Track(ts.New(ts.Last, 10.0, "s3", 3))

	returns := tracker.Returns()
	if len(returns) != 1 || returns[0] != 8.0 {
		t.Errorf("want one return of 8, have %v", returns)
	}

	// A second episode accumulates separately
	tracker.Track(ts.New(ts.First, 0.0, "s0", 0))
	tracker.Track(ts.New(ts.Last, 10.0, "s3", 1))

	returns = tracker.Returns()
	if len(returns) != 2 || returns[1] != 10.0 {
		t.Errorf("want returns [8 10], have %v", returns)
	}
}

func TestReturnDiscardsCutOffEpisode(t *testing.T) {
	tracker := NewReturn[string](filepath.Join(t.TempDir(), "returns.bin"))

	// An episode that never reaches its last timestep...
	tracker.Track(ts.New(ts.First, 0.0, "s0", 0))
	tracker.Track(ts.New(ts.Mid, -100.0, "s1", 1))

	// ...does not leak its partial return into the next one
	tracker.Track(ts.New(ts.First, 0.0, "s0", 0))
	tracker.Track(ts.New(ts.Last, 10.0, "s3", 1))

	returns := tracker.Returns()
	if len(returns) != 1 || returns[0] != 10.0 {
		t.Errorf("want returns [10], have %v", returns)
	}
}

func TestReturnPanicsOnGap(t *testing.T) {
	tracker := NewReturn[string](filepath.Join(t.TempDir(), "returns.bin"))

	defer func() {
		if recover() == nil {
			t.Error("tracking non-sequential timesteps should panic")
		}
	}()

	tracker.Track(ts.New(ts.First, 0.0, "s0", 0))
	tracker.Track(ts.New(ts.Mid, -1.0, "s5", 5))
}

func TestEpisodeLength(t *testing.T) {
	tracker := NewEpisodeLength[string](filepath.Join(t.TempDir(),
		"lengths.bin"))

	tracker.Track(ts.New(ts.First, 0.0, "s0", 0))
	tracker.Track(ts.New(ts.Mid, -1.0, "s1", 1))
	tracker.Track(ts.New(ts.Last, 10.0, "s2", 2))

	lengths := tracker.Lengths()
	if len(lengths) != 1 || lengths[0] != 2.0 {
		t.Errorf("want lengths [2], have %v", lengths)
	}
}

func TestSaveLoadData(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "lengths.bin")
	tracker := NewEpisodeLength[string](filename)

	tracker.Track(ts.New(ts.Last, 1.0, "s", 4))
	tracker.Track(ts.New(ts.Last, 1.0, "s", 9))
	tracker.Save()

	data := LoadData(filename)
	if len(data) != 2 || data[0] != 4.0 || data[1] != 9.0 {
		t.Errorf("want [4 9], have %v", data)
	}
}
