// Package fasta reads single-record FASTA files: one '>' header line
// followed by sequence lines that are concatenated ignoring line breaks
// and surrounding whitespace.
//
// Errors:
//
//	ErrBadHeader        - leading content is not a FASTA header.
//	ErrMultipleRecords  - the file holds more than one record.
//	ErrSequenceTooLong  - the sequence exceeds the caller's length bound.
package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// Sentinel errors for FASTA parsing. Branch on them with errors.Is.
var (
	// ErrBadHeader indicates the input does not start with a '>' header line.
	ErrBadHeader = errors.New("fasta: input does not start with a FASTA header")

	// ErrMultipleRecords indicates a second '>' header where exactly one
	// record was expected.
	ErrMultipleRecords = errors.New("fasta: expected exactly one record")

	// ErrSequenceTooLong indicates the sequence exceeds the maximum length
	// accepted by the caller.
	ErrSequenceTooLong = errors.New("fasta: sequence exceeds maximum length")
)

// Record is one parsed FASTA sequence.
type Record struct {
	// ID is the header text after '>', up to the first line break.
	ID string

	// Seq is the sequence data with line breaks and whitespace removed.
	Seq []byte
}

// ReadSingle parses exactly one FASTA record from r. The first non-empty
// line must be a '>' header; sequence lines are concatenated with
// whitespace trimmed. A positive maxLen bounds the sequence length and
// yields ErrSequenceTooLong beyond it; maxLen <= 0 disables the bound.
func ReadSingle(r io.Reader, maxLen int) (Record, error) {
	var rec Record
	sawHeader := false

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if sawHeader {
				return Record{}, ErrMultipleRecords
			}
			sawHeader = true
			rec.ID = string(bytes.TrimSpace(line[1:]))

			continue
		}
		if !sawHeader {
			return Record{}, ErrBadHeader
		}
		rec.Seq = append(rec.Seq, line...)
		if maxLen > 0 && len(rec.Seq) > maxLen {
			return Record{}, fmt.Errorf("%w: %d > %d", ErrSequenceTooLong, len(rec.Seq), maxLen)
		}
	}
	if err := sc.Err(); err != nil {
		return Record{}, fmt.Errorf("fasta: scan: %w", err)
	}
	if !sawHeader {
		return Record{}, ErrBadHeader
	}

	return rec, nil
}

// ReadFile opens path and parses its single FASTA record; see ReadSingle.
func ReadFile(path string, maxLen int) (Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return Record{}, fmt.Errorf("fasta: open %s: %w", path, err)
	}
	defer f.Close()

	rec, err := ReadSingle(f, maxLen)
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", path, err)
	}

	return rec, nil
}
