package embercsv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Mode selects what a record-level failure does to the conversion.
type Mode int

const (
	// AbortOnError stops at the first failed record and discards the partial
	// output. This is the default: either every input record becomes a fully
	// populated row, or no output is produced at all.
	AbortOnError Mode = iota
	// SkipAndReport keeps valid rows, collects every failure, and reports
	// them once the input is exhausted. The output file is retained.
	SkipAndReport
)

// Options configures a Converter.
type Options struct {
	Mode   Mode
	Logger *slog.Logger // nil discards logs
	// ProgressEvery is the number of emitted rows between progress log lines;
	// 0 means 10000.
	ProgressEvery int64
	// OnFailure, when set, observes each failed record before the mode policy
	// applies. rec is nil for lines that never decoded.
	OnFailure func(rec Mapping, iss Issues)
}

// Converter drives the whole pipeline: read JSONL lines, project each record
// onto the schema, write CSV rows.
type Converter struct {
	proj  *Projector
	mode  Mode
	log   *slog.Logger
	every int64
	onErr func(Mapping, Issues)
}

// NewConverter builds a Converter for the given feature names.
func NewConverter(features []string, opt Options) *Converter {
	log := opt.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	every := opt.ProgressEvery
	if every <= 0 {
		every = 10000
	}
	return &Converter{
		proj:  NewProjector(features),
		mode:  opt.Mode,
		log:   log,
		every: every,
		onErr: opt.OnFailure,
	}
}

// OutputPath derives the CSV path for an input: the extension is swapped for
// .csv, with a .gz suffix stripped first (x.jsonl.gz becomes x.csv).
func OutputPath(path string) string {
	p := strings.TrimSuffix(path, ".gz")
	if ext := filepath.Ext(p); ext != "" {
		p = strings.TrimSuffix(p, ext)
	}
	return p + ".csv"
}

// Convert reads the JSONL input at path and writes the derived CSV next to
// it. It refuses to overwrite an existing output. The terminal error is
// all-or-nothing under AbortOnError; under SkipAndReport it is the collected
// Issues, with the output retained.
func (c *Converter) Convert(ctx context.Context, path string) error {
	in, err := Open(path)
	if err != nil {
		return fmt.Errorf("input: %w", err)
	}
	defer in.Close()

	out := OutputPath(path)
	f, err := os.OpenFile(out, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("output %s already exists", out)
		}
		return fmt.Errorf("output: %w", err)
	}
	discard := func() {
		f.Close()
		os.Remove(out)
	}

	c.log.Info("converting", "input", path, "output", out, "columns", c.proj.Schema().Len())

	w := csv.NewWriter(f)
	if err := w.Write(c.proj.Header()); err != nil {
		discard()
		return err
	}

	src := NewLineSource(in)
	var rows int64
	var collected Issues
	for {
		if cerr := ctx.Err(); cerr != nil {
			discard()
			return cerr
		}
		rec, rerr := src.Next()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			iss, ok := AsIssues(rerr)
			if !ok {
				// reader failure, fatal in either mode
				discard()
				return rerr
			}
			if c.onErr != nil {
				c.onErr(nil, iss)
			}
			if c.mode == SkipAndReport {
				c.log.Warn("skipping record", "record", src.Line(), "err", iss.Error())
				collected = AppendIssues(collected, iss...)
				continue
			}
			discard()
			return iss
		}
		row, perr := c.proj.Project(rec)
		if perr != nil {
			iss := stampRecord(perr, src.Line())
			if c.onErr != nil {
				c.onErr(rec, iss)
			}
			if c.mode == SkipAndReport {
				c.log.Warn("skipping record", "record", src.Line(), "err", iss.Error())
				collected = AppendIssues(collected, iss...)
				continue
			}
			discard()
			return iss
		}
		if werr := w.Write(row.Strings()); werr != nil {
			discard()
			return werr
		}
		rows++
		if rows%c.every == 0 {
			c.log.Info("progress", "input", path, "rows", rows)
		}
	}
	w.Flush()
	if werr := w.Error(); werr != nil {
		discard()
		return werr
	}
	if cerr := f.Close(); cerr != nil {
		os.Remove(out)
		return cerr
	}
	c.log.Info("conversion complete", "input", path, "output", out, "rows", rows, "failed", len(collected))
	if len(collected) > 0 {
		return collected
	}
	return nil
}

// stampRecord fills in the line number on issues raised below the source
// layer, which does not know it.
func stampRecord(err error, line int64) Issues {
	iss, ok := AsIssues(err)
	if !ok {
		return Issues{{Code: CodeMalformedRecord, Message: err.Error(), Record: line, Cause: err}}
	}
	out := make(Issues, len(iss))
	for i := range iss {
		out[i] = iss[i]
		if out[i].Record <= 0 {
			out[i].Record = line
		}
	}
	return out
}
