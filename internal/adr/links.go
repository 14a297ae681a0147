package adr

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// LinkSpec describes one link from a new record to an existing one, as
// parsed from the command line.
type LinkSpec struct {
	Target      int
	ForwardText string
	ReverseText string // empty means no reverse annotation
}

// linkSpecPattern restricts link text to word characters, spaces and
// hyphens.
var linkSpecPattern = regexp.MustCompile(`^([0-9]+):([\w -]+):([\w -]+)$`)

// ParseLinkSpec parses a "<number>:<forward text>:<reverse text>" link
// specification.
func ParseLinkSpec(spec string) (LinkSpec, error) {
	match := linkSpecPattern.FindStringSubmatch(spec)
	if match == nil {
		return LinkSpec{}, fmt.Errorf("%w: malformed link %q (want <number>:<forward text>:<reverse text>)", ErrInvalidArgument, spec)
	}

	target, err := strconv.Atoi(match[1])
	if err != nil {
		return LinkSpec{}, fmt.Errorf("%w: malformed link %q: %v", ErrInvalidArgument, spec, err)
	}

	return LinkSpec{Target: target, ForwardText: match[2], ReverseText: match[3]}, nil
}

// AddLink appends "<text> [<title>](<file>)" to the status of record
// from, separated from existing status text by a blank line. When
// reverseText is non-empty the mirrored annotation is added to record to.
//
// The two writes are independent, not transactional: a failure after the
// first leaves a one-sided link. Validation happens before any I/O, and
// both records must exist before either file is touched.
func (s *Store) AddLink(from int, text string, to int, reverseText string) error {
	if from <= 0 || to <= 0 {
		return fmt.Errorf("%w: record numbers must be positive", ErrInvalidArgument)
	}

	if from == to {
		return fmt.Errorf("%w: record %d cannot link to itself", ErrInvalidArgument, from)
	}

	fromRec, toRec, err := s.pair(from, to)
	if err != nil {
		return err
	}

	line := fmt.Sprintf("%s [%s](%s)", text, toRec.Title, filepath.Base(toRec.Path))

	if fromRec.Status == "" {
		fromRec.Status = line
	} else {
		fromRec.Status += "\n\n" + line
	}

	writeErr := s.rewrite(&fromRec)
	if writeErr != nil {
		return writeErr
	}

	if reverseText != "" {
		return s.AddLink(to, reverseText, from, "")
	}

	return nil
}

// ClearStatus empties the status of the given record and rewrites its
// file. Used before adding a supersede pair so the replacement annotation
// isn't appended after a stale lifecycle label.
func (s *Store) ClearStatus(number int) error {
	rec, err := s.Get(number)
	if err != nil {
		return err
	}

	rec.Status = ""

	return s.rewrite(&rec)
}

// pair loads both link endpoints, reporting every absent number in one
// error before any write happens.
func (s *Store) pair(from, to int) (Record, Record, error) {
	fromRec, fromErr := s.Get(from)
	toRec, toErr := s.Get(to)

	var missing []string

	if errors.Is(fromErr, ErrRecordNotFound) {
		missing = append(missing, strconv.Itoa(from))
	}

	if errors.Is(toErr, ErrRecordNotFound) {
		missing = append(missing, strconv.Itoa(to))
	}

	if len(missing) > 0 {
		return Record{}, Record{}, fmt.Errorf("%w: %s", ErrRecordNotFound, strings.Join(missing, ", "))
	}

	if fromErr != nil {
		return Record{}, Record{}, fromErr
	}

	if toErr != nil {
		return Record{}, Record{}, toErr
	}

	return fromRec, toRec, nil
}
