package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/alexiusacademia/argoprssm/internal/argo"
	"github.com/alexiusacademia/argoprssm/internal/config"
	"github.com/alexiusacademia/argoprssm/internal/convert"
	"github.com/alexiusacademia/argoprssm/internal/diag"
	"github.com/alexiusacademia/argoprssm/internal/prssm"
)

// MaxListedErrors is how many failures a summary lists in full.
const MaxListedErrors = 15

const comp = "batch"

// Runner converts files with a bounded number of workers. Each file is
// converted independently; one failure never stops the others.
type Runner struct {
	RawDir  string
	OutDir  string
	Workers int
	Logger  *diag.Logger
}

// New builds a runner from the configuration.
func New(cfg config.Config, logger *diag.Logger) *Runner {
	if logger == nil {
		logger = diag.Nop()
	}
	return &Runner{RawDir: cfg.RawDir, OutDir: cfg.OutDir, Workers: cfg.Workers, Logger: logger}
}

// FileResult is the outcome of one file.
type FileResult struct {
	Path     string // relative to the input directory
	Output   string
	Document *argo.Document
	Result   *convert.Result
	Err      error
	Code     diag.Code
	Duration time.Duration
}

// OK reports whether the file was converted and written.
func (f *FileResult) OK() bool { return f.Err == nil }

// Summary collects the outcome of a run, in input order.
type Summary struct {
	Files     []FileResult
	Succeeded int
	Failed    int
	Elapsed   time.Duration
}

func (s *Summary) Total() int { return len(s.Files) }

// Errors lists up to limit failures as "path: message".
func (s *Summary) Errors(limit int) []string {
	var out []string
	for _, f := range s.Files {
		if f.Err == nil {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, fmt.Sprintf("%s: %v", f.Path, f.Err))
	}
	return out
}

// CountByCode groups failures by error class.
func (s *Summary) CountByCode() map[diag.Code]int {
	counts := map[diag.Code]int{}
	for _, f := range s.Files {
		if f.Err != nil {
			counts[f.Code]++
		}
	}
	return counts
}

// Run converts the given files (paths relative to RawDir).
func (r *Runner) Run(ctx context.Context, files []string) *Summary {
	start := time.Now()
	timer := r.Logger.Start(comp, "", fmt.Sprintf("converting %d files with %d workers", len(files), r.workers()))

	sum := &Summary{Files: make([]FileResult, len(files))}
	jobs := make(chan int, r.workers()*2)

	var wg sync.WaitGroup
	for w := 0; w < r.workers(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				sum.Files[i] = r.ConvertFile(ctx, files[i])
			}
		}()
	}
	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, f := range sum.Files {
		if f.Err == nil {
			sum.Succeeded++
		} else {
			sum.Failed++
		}
	}
	sum.Elapsed = time.Since(start)
	timer.Finish("done", int64(sum.Succeeded), map[string]string{
		"failed": strconv.Itoa(sum.Failed),
	})
	return sum
}

func (r *Runner) workers() int {
	return max(1, r.Workers)
}

// ConvertFile converts one file and writes its output.
func (r *Runner) ConvertFile(ctx context.Context, rel string) FileResult {
	res := FileResult{Path: rel, Output: OutputPath(r.OutDir, rel)}
	timer := r.Logger.Start(comp, rel, "convert")

	err := func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		doc, err := argo.LoadFile(filepath.Join(r.RawDir, filepath.FromSlash(rel)), r.Logger.Tracer("argo", rel))
		if err != nil {
			return err
		}
		res.Document = doc

		out, err := convert.Convert(doc)
		if err != nil {
			return err
		}
		res.Result = out
		for _, w := range out.Warnings {
			r.Logger.Warn(comp, rel, w)
		}
		return WriteDocument(res.Output, out.Document)
	}()

	res.Duration = time.Since(*timer.Since())
	if err != nil {
		res.Err = err
		res.Code = diag.Classify(err)
		r.Logger.Error(comp, rel, err, timer.Since())
		return res
	}
	timer.Finish("ok", int64(len(res.Result.Beams)), map[string]string{"out": res.Output})
	return res
}

// WriteDocument encodes doc and writes it atomically to dest.
func WriteDocument(dest string, doc *prssm.Document) error {
	data, err := prssm.Marshal(doc)
	if err != nil {
		return err
	}
	return writeAtomic(dest, data)
}
