package pkg

import (
	"errors"
	"io/fs"
	"math"
	"os"
)

// FileExists is false for missing paths and for directories.
func FileExists(path string) (bool, error) {
	stat, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !stat.IsDir(), nil
}

// RoundTo2 rounds f to two decimals, the precision used in all volume figures.
func RoundTo2(f float64) float64 {
	return math.Round(f*100) / 100
}
