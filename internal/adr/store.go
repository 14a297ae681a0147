package adr

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/natefinch/atomic"
)

// DefaultStatus is the status given to new records.
const DefaultStatus = "Accepted"

// InitTitle is the title of the bootstrap record created by Init.
const InitTitle = "Record architecture decisions"

// Section guidance used when the author does not supply text up front.
const (
	defaultContext      = "The issue motivating this decision, and any context that influences or constrains the decision."
	defaultDecision     = "The change that we're proposing or have agreed to implement."
	defaultConsequences = "What becomes easier or more difficult to do and any risks introduced by the change."
)

// Store reads and writes the records of a single directory.
//
// All paths and overrides are resolved by the caller before the store is
// built; the store itself never consults the process environment.
//
// Concurrent writers are not coordinated: two simultaneous Create calls
// against the same directory can both read the same maximum number.
// Single writer at a time is a precondition.
type Store struct {
	// Dir is the records directory, absolute.
	Dir string

	// TemplatePath is an explicitly named template file (from a flag or
	// ADR_TEMPLATE, chosen by the caller). Empty selects the store-local
	// or bundled template.
	TemplatePath string

	// Now returns the creation timestamp. Defaults to time.Now.
	Now func() time.Time
}

// List returns every record in the store in directory-listing order
// (os.ReadDir name order; no numeric sort is imposed). A missing
// directory yields an empty result together with ErrStoreMissing so that
// callers tolerating an empty store, such as number assignment, keep
// working.
func (s *Store) List() ([]Record, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrStoreMissing, s.Dir)
		}

		return nil, fmt.Errorf("listing records: %w", err)
	}

	var records []Record

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		number, ok := numberFromFilename(entry.Name())
		if !ok {
			continue
		}

		path := filepath.Join(s.Dir, entry.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading record %s: %w", entry.Name(), err)
		}

		rec := Decode(string(data))
		rec.Path = path

		// The file name is authoritative for identity; a record body
		// without the numbered heading still resolves by number.
		if rec.Number == 0 {
			rec.Number = number
		}

		records = append(records, rec)
	}

	return records, nil
}

// Get returns the record with the given number, or ErrRecordNotFound.
func (s *Store) Get(number int) (Record, error) {
	records, err := s.List()
	if err != nil && !errors.Is(err, ErrStoreMissing) {
		return Record{}, err
	}

	for _, rec := range records {
		if rec.Number == number {
			return rec, nil
		}
	}

	return Record{}, fmt.Errorf("%w: %d", ErrRecordNotFound, number)
}

// NextNumber returns max(existing numbers)+1, or 1 for an empty or
// missing store. Gaps left by out-of-band removals are never refilled.
func (s *Store) NextNumber() (int, error) {
	records, err := s.List()
	if err != nil && !errors.Is(err, ErrStoreMissing) {
		return 0, err
	}

	next := 1

	for _, rec := range records {
		if rec.Number >= next {
			next = rec.Number + 1
		}
	}

	return next, nil
}

// CreateOptions controls Create. Title is required; everything else has
// defaults.
type CreateOptions struct {
	Title      string
	Status     string // defaults to DefaultStatus
	Supersedes []int  // records replaced by the new one
	Links      []LinkSpec

	// Template selects a bundled template kind (TemplateDefault or
	// TemplateInit). An explicit store TemplatePath replaces
	// TemplateDefault but never the init template.
	Template string

	Context      string
	Decision     string
	Consequences string
}

// Create writes a new record numbered max+1, then processes each
// supersede and link target as an independent single-file update.
//
// A failing target does not roll back earlier writes; per-target errors
// are collected and returned joined, alongside the created record.
func (s *Store) Create(opts CreateOptions) (Record, error) {
	if strings.TrimSpace(opts.Title) == "" {
		return Record{}, fmt.Errorf("%w: title is required", ErrInvalidArgument)
	}

	next, err := s.NextNumber()
	if err != nil {
		return Record{}, err
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	rec := Record{
		Number:       next,
		Title:        opts.Title,
		Date:         now().Format("2006-01-02"),
		Status:       opts.Status,
		Context:      opts.Context,
		Decision:     opts.Decision,
		Consequences: opts.Consequences,
	}

	if rec.Status == "" {
		rec.Status = DefaultStatus
	}

	if rec.Context == "" {
		rec.Context = defaultContext
	}

	if rec.Decision == "" {
		rec.Decision = defaultDecision
	}

	if rec.Consequences == "" {
		rec.Consequences = defaultConsequences
	}

	kind := opts.Template
	if kind == "" {
		kind = TemplateDefault
	}

	// An explicitly named template applies to regular records only; the
	// bootstrap record always renders from the init template.
	named := s.TemplatePath
	if kind == TemplateInit {
		named = ""
	}

	tmpl, err := LoadTemplate(kind, named, s.Dir)
	if err != nil {
		return Record{}, err
	}

	mkdirErr := os.MkdirAll(s.Dir, dirPerms)
	if mkdirErr != nil {
		return Record{}, fmt.Errorf("creating records directory: %w", mkdirErr)
	}

	rec.Path = filepath.Join(s.Dir, Filename(next, opts.Title))

	writeErr := s.write(&rec, tmpl)
	if writeErr != nil {
		return Record{}, writeErr
	}

	var targetErrs []error

	for _, target := range opts.Supersedes {
		clearErr := s.ClearStatus(target)
		if clearErr != nil {
			targetErrs = append(targetErrs, clearErr)

			continue
		}

		linkErr := s.AddLink(rec.Number, "Supersedes", target, "Superseded by")
		if linkErr != nil {
			targetErrs = append(targetErrs, linkErr)
		}
	}

	for _, link := range opts.Links {
		linkErr := s.AddLink(rec.Number, link.ForwardText, link.Target, link.ReverseText)
		if linkErr != nil {
			targetErrs = append(targetErrs, linkErr)
		}
	}

	// Reload so the returned record carries any link annotations.
	if len(opts.Supersedes) > 0 || len(opts.Links) > 0 {
		updated, getErr := s.Get(rec.Number)
		if getErr == nil {
			rec = updated
		}
	}

	return rec, errors.Join(targetErrs...)
}

// Init creates the bootstrap record documenting the decision to keep
// architecture decision records, rendered from the init template. The
// store's TemplatePath does not apply to the bootstrap record.
func (s *Store) Init() (Record, error) {
	return s.Create(CreateOptions{Title: InitTitle, Template: TemplateInit})
}

// write encodes rec through tmpl and atomically replaces its file.
func (s *Store) write(rec *Record, tmpl string) error {
	content := Encode(rec, tmpl)

	writeErr := atomic.WriteFile(rec.Path, strings.NewReader(content))
	if writeErr != nil {
		return fmt.Errorf("writing record file: %w", writeErr)
	}

	// atomic.WriteFile doesn't set permissions for new files.
	chmodErr := os.Chmod(rec.Path, filePerms)
	if chmodErr != nil {
		return fmt.Errorf("setting record file permissions: %w", chmodErr)
	}

	return nil
}

// rewrite re-encodes an existing record in place using the store's
// resolved default template.
func (s *Store) rewrite(rec *Record) error {
	tmpl, err := LoadTemplate(TemplateDefault, s.TemplatePath, s.Dir)
	if err != nil {
		return err
	}

	return s.write(rec, tmpl)
}
