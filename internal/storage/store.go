package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/techsphere/internal/scene"
)

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.csv"
)

// ErrNotFound indicates an unknown run id.
var ErrNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID           string             `json:"id"`
	Preset       string             `json:"preset"`
	Timestamp    time.Time          `json:"timestamp"`
	Icons        int                `json:"icons"`
	Radius       float64            `json:"radius"`
	ElasticRange float64            `json:"elastic_range"`
	FPS          int                `json:"fps"`
	Duration     float64            `json:"duration"`
	Frames       int                `json:"frames"`
	Metrics      map[string]float64 `json:"metrics"`
}

var header = []string{"index", "time", "polar", "offset", "azimuth", "dragging", "clamped"}

// Save writes the run under a fresh id and returns it. The id and
// timestamp fields of meta are filled in.
func (s *Store) Save(meta RunMetadata, result *scene.Result) (string, error) {
	now := time.Now()
	preset := meta.Preset
	if preset == "" {
		preset = "run"
	}
	runID := fmt.Sprintf("%s_%d_%s", preset, now.Unix(), uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = now
	meta.Frames = len(result.Frames)
	meta.Metrics = result.Metrics

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, framesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := WriteFrames(w, result.Frames); err != nil {
		return "", err
	}
	return runID, nil
}

// WriteFrames writes frames as CSV with a header row and flushes w.
func WriteFrames(w *csv.Writer, frames []scene.Frame) error {
	if err := w.Write(header); err != nil {
		return err
	}
	for _, f := range frames {
		row := []string{
			strconv.Itoa(f.Index),
			strconv.FormatFloat(f.Time, 'f', 6, 64),
			strconv.FormatFloat(f.Polar, 'f', 9, 64),
			strconv.FormatFloat(f.Offset, 'f', 9, 64),
			strconv.FormatFloat(f.Azimuth, 'f', 9, 64),
			strconv.FormatBool(f.Dragging),
			strconv.FormatBool(f.Clamped),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns all runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadFrames(runID string) ([]scene.Frame, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, framesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(header)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []scene.Frame{}, nil
	}

	frames := make([]scene.Frame, 0, len(records)-1)
	for i, rec := range records[1:] {
		f, err := parseFrame(rec)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", framesFile, i+2, err)
		}
		frames = append(frames, f)
	}
	return frames, nil
}

func parseFrame(rec []string) (scene.Frame, error) {
	var (
		f   scene.Frame
		err error
	)
	if f.Index, err = strconv.Atoi(rec[0]); err != nil {
		return f, err
	}
	floats := []*float64{&f.Time, &f.Polar, &f.Offset, &f.Azimuth}
	for i, dst := range floats {
		if *dst, err = strconv.ParseFloat(rec[i+1], 64); err != nil {
			return f, err
		}
	}
	if f.Dragging, err = strconv.ParseBool(rec[5]); err != nil {
		return f, err
	}
	if f.Clamped, err = strconv.ParseBool(rec[6]); err != nil {
		return f, err
	}
	return f, nil
}
