// Package corpus reads the line-delimited lecture transcript file and filters
// blocks by lecture number and time range.
package corpus

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"lecture-qa/internal/models"
)

const maxLineSize = 10 * 1024 * 1024 // 10MB

var (
	// ErrCorpusNotFound signals a missing corpus file.
	ErrCorpusNotFound = errors.New("corpus file not found")
	// ErrCorpusMalformed signals an invalid record in the corpus file.
	ErrCorpusMalformed = errors.New("corpus file malformed")
)

// Store reads transcript blocks from a JSONL corpus file. Every query
// re-reads the file, so corpus updates are picked up without a restart.
type Store struct {
	Path string
}

func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Filter returns the blocks of the given lecture overlapping [start, end]
func (s *Store) Filter(lecture, start, end int) ([]models.TranscriptBlock, error) {
	return Filter(s.Path, lecture, start, end)
}

// Load reads every transcript block from the JSONL corpus at path. The corpus
// is re-read on every call; blocks are returned in file order.
func Load(path string) ([]models.TranscriptBlock, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCorpusNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var blocks []models.TranscriptBlock
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var block models.TranscriptBlock
		if err := json.Unmarshal(line, &block); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrCorpusMalformed, lineNum, err)
		}
		blocks = append(blocks, block)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return blocks, nil
}

// Filter returns the blocks of lecture number lecture whose time range
// overlaps [start, end]. Titles must equal "Lecture <n>" exactly; overlap is
// inclusive at the boundaries, so a block that merely touches the requested
// interval matches. An error aborts the whole call with no partial results.
func Filter(path string, lecture, start, end int) ([]models.TranscriptBlock, error) {
	blocks, err := Load(path)
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Lecture %d", lecture)
	filtered := []models.TranscriptBlock{}
	for _, block := range blocks {
		if block.DocumentTitle != title {
			continue
		}
		if block.BlockMetadata.StartTime <= end && block.BlockMetadata.EndTime >= start {
			filtered = append(filtered, block)
		}
	}

	return filtered, nil
}
