package testkit

import (
	"context"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/yhkl-dev/navisonic/subsonic"
)

// Result is the outcome of one check.
type Result struct {
	Name    string        `yaml:"name"`
	OK      bool          `yaml:"ok"`
	Summary string        `yaml:"summary,omitempty"`
	Error   string        `yaml:"error,omitempty"`
	Code    *int          `yaml:"code,omitempty"`
	Elapsed time.Duration `yaml:"elapsed"`

	err error
}

type Report struct {
	Generated time.Time `yaml:"generated"`
	Passed    int       `yaml:"passed"`
	Failed    int       `yaml:"failed"`
	Results   []Result  `yaml:"results"`
}

// CheckError ties a failure to the check that produced it.
type CheckError struct {
	Check string
	Err   error
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("%s: %v", e.Check, e.Err)
}

func (e *CheckError) Unwrap() error { return e.Err }

// Run executes checks with at most concurrency in flight. Every check yields
// a Result, ordered by name; the returned error combines all failures.
func Run(ctx context.Context, api API, checks []Check, concurrency int) (*Report, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	p := pool.NewWithResults[Result]().WithMaxGoroutines(concurrency)
	for _, check := range checks {
		p.Go(func() Result {
			return runCheck(ctx, api, check)
		})
	}
	results := p.Wait()
	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })

	report := &Report{Generated: time.Now().UTC(), Results: results}
	var errs error
	for _, r := range results {
		if r.OK {
			report.Passed++
			continue
		}
		report.Failed++
		errs = multierr.Append(errs, &CheckError{Check: r.Name, Err: r.err})
	}
	return report, errs
}

func runCheck(ctx context.Context, api API, check Check) Result {
	start := time.Now()
	summary, err := check.Run(ctx, api)

	result := Result{Name: check.Name, Elapsed: time.Since(start)}
	if err != nil {
		result.Error = err.Error()
		result.err = err
		if code, ok := subsonic.CodeOf(err); ok {
			c := int(code)
			result.Code = &c
		}
		return result
	}
	result.OK = true
	result.Summary = summary
	return result
}

func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, res := range r.Results {
		status, detail := "ok", res.Summary
		if !res.OK {
			status, detail = "FAIL", res.Error
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", status, res.Name, res.Elapsed.Round(time.Millisecond), detail)
	}
	fmt.Fprintf(tw, "\n%d passed, %d failed\n", r.Passed, r.Failed)
	return tw.Flush()
}
