// Package dataset reads labelled vector datasets from text files and writes
// predictions back.
//
// A dataset is stored as two line-aligned files: one comma-separated input
// vector per line, and one integer label per line.
//
//	vectors.csv    labels.csv
//	0,0,12,255     3
//	0,7,0,1        0
package dataset

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/nnets/internal/parallel"
	"github.com/born-ml/nnets/internal/random"
	"github.com/pkg/errors"
)

// maxLineSize bounds a single vector line.
const maxLineSize = 16 << 20

// Sample is one input vector with its expected category.
type Sample struct {
	Input []float64
	Label int
}

// Dataset is an ordered collection of samples.
type Dataset []Sample

// ParseVector parses a comma-separated line such as "0,1,0,2".
//
// Parsing stops at the first empty field, so a trailing comma is ignored and
// an empty line yields an empty vector.
func ParseVector(line string) ([]float64, error) {
	line = strings.TrimRight(line, "\r\n")
	fields := strings.Split(line, ",")

	result := make([]float64, 0, len(fields))
	for i, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			break
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "field %d", i+1)
		}
		result = append(result, v)
	}
	return result, nil
}

// Read loads a dataset from a vectors file and a labels file.
func Read(vectorsPath, labelsPath string) (Dataset, error) {
	vectors, err := os.Open(vectorsPath)
	if err != nil {
		return nil, errors.Wrap(err, "open vectors")
	}
	defer vectors.Close()

	labels, err := os.Open(labelsPath)
	if err != nil {
		return nil, errors.Wrap(err, "open labels")
	}
	defer labels.Close()

	ds, err := ReadFrom(vectors, labels)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", vectorsPath)
	}
	return ds, nil
}

// ReadFrom loads a dataset from line-aligned readers.
//
// Reading stops at the end of the shorter input or at the first line whose
// vector is empty. Lines are parsed with parallel.DefaultConfig.
func ReadFrom(vectors, labels io.Reader) (Dataset, error) {
	vecLines, labelLines, err := readLinePairs(vectors, labels)
	if err != nil {
		return nil, err
	}

	ds := make(Dataset, len(vecLines))
	err = parallel.ForErr(len(ds), func(i int) error {
		input, err := ParseVector(vecLines[i])
		if err != nil {
			return errors.Wrapf(err, "vectors line %d", i+1)
		}
		label, err := strconv.Atoi(strings.TrimSpace(labelLines[i]))
		if err != nil {
			return errors.Wrapf(err, "labels line %d", i+1)
		}
		if label < 0 {
			return errors.Errorf("labels line %d: negative label %d", i+1, label)
		}
		ds[i] = Sample{Input: input, Label: label}
		return nil
	}, parallel.DefaultConfig())
	if err != nil {
		return nil, err
	}
	return ds, nil
}

func readLinePairs(vectors, labels io.Reader) (vecLines, labelLines []string, err error) {
	vs := bufio.NewScanner(vectors)
	vs.Buffer(make([]byte, 64*1024), maxLineSize)
	ls := bufio.NewScanner(labels)

	for vs.Scan() && ls.Scan() {
		line := vs.Text()
		if emptyVector(line) {
			break
		}
		vecLines = append(vecLines, line)
		labelLines = append(labelLines, ls.Text())
	}
	if err := vs.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "scan vectors")
	}
	if err := ls.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "scan labels")
	}
	return vecLines, labelLines, nil
}

func emptyVector(line string) bool {
	first, _, _ := strings.Cut(line, ",")
	return strings.TrimSpace(first) == ""
}

// NumCategories returns the number of label categories, max label + 1.
// An empty dataset has one category.
func NumCategories(ds Dataset) int {
	maxLabel := 0
	for _, s := range ds {
		maxLabel = max(maxLabel, s.Label)
	}
	return maxLabel + 1
}

// InputSize returns the length of the first input vector, or 0 if ds is empty.
func (ds Dataset) InputSize() int {
	if len(ds) == 0 {
		return 0
	}
	return len(ds[0].Input)
}

// Shuffle reorders the samples in place.
func (ds Dataset) Shuffle(r *random.Random) {
	r.Shuffle(len(ds), func(i, j int) {
		ds[i], ds[j] = ds[j], ds[i]
	})
}

// Split cuts ds into a leading training part and a trailing validation part
// holding validationFraction of the samples. Both share ds's backing array.
func (ds Dataset) Split(validationFraction float64) (train, validation Dataset) {
	cut := int((1 - validationFraction) * float64(len(ds)))
	cut = min(max(cut, 0), len(ds))
	return ds[:cut:cut], ds[cut:]
}

// Clone returns a copy of ds with its own backing array.
// Input vectors are shared.
func (ds Dataset) Clone() Dataset {
	return append(Dataset(nil), ds...)
}

// WritePredictions writes one prediction per line to path.
func WritePredictions(path string, predictions []int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create predictions")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close predictions")
		}
	}()

	return WritePredictionsTo(f, predictions)
}

// WritePredictionsTo writes one prediction per line to w.
func WritePredictionsTo(w io.Writer, predictions []int) error {
	bw := bufio.NewWriter(w)
	for _, p := range predictions {
		bw.WriteString(strconv.Itoa(p))
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "write predictions")
}
